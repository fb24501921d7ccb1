package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
)

func init() {
	RegisterCommand(&Command{
		Name:  "mask",
		Short: "Print the mask variables for a simulated session",
		Long: `Print the CSS variables and data attributes of a mask.

The mask is configured from reveal.yaml and mounted in a container of
--width x --height pixels. Pointer events given as flags are dispatched,
then --frames frames of 16ms are stepped before the output is printed.

Flags:
  --width N        Container width in pixels (default 400 or the config value)
  --height N       Container height in pixels (default 300 or the config value)
  --cursor         Follow the pointer even if the config does not
  --enter          Send a pointer enter event
  --focus          Send a focus event
  --at X,Y         Move the pointer to X,Y in container pixels
  --frames N       Number of frames to step (default 60)
  --format FORMAT  Output format: text or json (default text)`,
		Usage: "reveal mask [flags]",
		Run:   runMask,
	})
}

func runMask(env *Env, args []string) error {
	sim := newSimulation()
	format := "text"
	for i := 0; i < len(args); i++ {
		next, ok, err := sim.parseFlag(args, i)
		if err != nil {
			return err
		}
		if ok {
			i = next
			continue
		}
		switch args[i] {
		case "--format":
			value, err := flagValue(args, i, "--format")
			if err != nil {
				return err
			}
			format = value
			i++
		default:
			return fmt.Errorf("unknown flag %q", args[i])
		}
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("--format wants text or json, got %q", format)
	}

	file, err := env.Config()
	if err != nil {
		return err
	}
	cfg, err := file.MaskConfig()
	if err != nil {
		return err
	}
	res := sim.run(env, cfg, file.ContainerSize(defaultWidth, defaultHeight))

	if format == "json" {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			CSS       map[string]string `json:"css"`
			Attrs     map[string]string `json:"attrs"`
			Animating bool              `json:"animating"`
		}{res.Vars.CSS(), res.Vars.Attrs(), res.Animating})
	}

	printSorted(env, res.Vars.CSS())
	printSorted(env, res.Vars.Attrs())
	if res.Animating {
		fmt.Fprintln(env.Stdout, "# still animating")
	}
	return nil
}

func printSorted(env *Env, values map[string]string) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(env.Stdout, "%s: %s\n", k, values[k])
	}
}
