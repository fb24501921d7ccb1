package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/reveal/pkg/jsontree"
)

func init() {
	RegisterCommand(&Command{
		Name:  "tree",
		Short: "Print a JSON or YAML document as a tree",
		Long: `Print a JSON or YAML document as an expandable tree.

The document is read from FILE, or from stdin when FILE is "-" or
omitted. Files ending in .yaml or .yml are read as YAML.

Flags:
  --yaml             Read the input as YAML
  --functions MODE   Function display: as-string, hide or as-object
  --collapsed        Expand only the root node
  --expand PATH      Also expand PATH (repeatable), e.g. root.items
  --guides           Draw indent guides
  --title TEXT       Print TEXT above the tree
  --format FORMAT    Output format: text or json (default text)`,
		Usage: "reveal tree [flags] [FILE]",
		Run:   runTree,
	})
}

func runTree(env *Env, args []string) error {
	file, err := env.Config()
	if err != nil {
		return err
	}
	opts, err := file.TreeOptions()
	if err != nil {
		return err
	}

	var input string
	var asYAML bool
	var expand []string
	format := "text"
	policy := string(opts.Functions)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--yaml":
			asYAML = true
		case "--collapsed":
			opts.DefaultExpanded = false
		case "--guides":
			opts.ShowIndentGuides = true
		case "--functions", "--expand", "--title", "--format":
			value, err := flagValue(args, i, arg)
			if err != nil {
				return err
			}
			i++
			switch arg {
			case "--functions":
				policy = value
			case "--expand":
				expand = append(expand, value)
			case "--title":
				opts.Title = value
			case "--format":
				format = value
			}
		default:
			if strings.HasPrefix(arg, "--") {
				return fmt.Errorf("unknown flag %q", arg)
			}
			if input != "" {
				return fmt.Errorf("unexpected argument %q", arg)
			}
			input = arg
		}
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("--format wants text or json, got %q", format)
	}
	if opts.Functions, err = jsontree.ParseFunctionPolicy(policy); err != nil {
		return err
	}

	data, err := readInput(env, input)
	if err != nil {
		return err
	}
	ext := strings.ToLower(filepath.Ext(input))
	if ext == ".yaml" || ext == ".yml" {
		asYAML = true
	}

	var doc any
	if asYAML {
		doc, err = jsontree.DecodeYAML(data)
	} else {
		doc, err = jsontree.DecodeJSON(data)
	}
	if err != nil {
		return err
	}

	root := jsontree.Convert(doc, jsontree.WithFunctions(opts.Functions))
	env.Log.Debug("converted document", "input", input, "yaml", asYAML, "items", root.Meta.ItemCount)

	if format == "json" {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(root)
	}

	var state *jsontree.ExpandState
	if opts.DefaultExpanded {
		state = jsontree.DefaultExpanded(root)
	} else {
		state = jsontree.NewExpandState(jsontree.RootPath)
	}
	for _, path := range expand {
		state.Expand(path)
	}
	return jsontree.Render(env.Stdout, root, jsontree.RenderOptions{
		Title:            opts.Title,
		ShowIndentGuides: opts.ShowIndentGuides,
		Expanded:         state,
	})
}

func readInput(env *Env, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(env.Stdin)
	}
	return os.ReadFile(path)
}
