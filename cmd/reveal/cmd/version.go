package cmd

import (
	"fmt"
	"runtime"

	"github.com/go-drift/reveal/cmd/reveal/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Print version information",
		Long:  "Print the reveal version, the supported config version and the Go runtime.",
		Usage: "reveal version",
		Run:   runVersion,
	})
}

func runVersion(env *Env, args []string) error {
	fmt.Fprintf(env.Stdout, "reveal %s\n", Version)
	fmt.Fprintf(env.Stdout, "  Build time: %s\n", BuildTime)
	fmt.Fprintf(env.Stdout, "  Config:     %s\n", config.CurrentVersion)
	fmt.Fprintf(env.Stdout, "  Go version: %s\n", runtime.Version())
	fmt.Fprintf(env.Stdout, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return nil
}
