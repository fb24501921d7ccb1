package cmd

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strconv"

	"github.com/go-drift/reveal/pkg/preview"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Render the mask to a PNG or WebP image",
		Long: `Render the mask of a simulated session to an image.

The session is set up as for "reveal mask". The content (an image file,
or solid white) is drawn through the mask over a black background.

Flags:
  --out FILE        Output file, "-" for stdout (required)
  --format FORMAT   png or webp (default from the --out extension)
  --content FILE    PNG, WebP or TGA image to draw through the mask
  --scale F         Sampling scale in (0, 1] (default 0.25)
  --show-inactive   Draw the mask even when it has faded out

  --width, --height, --cursor, --enter, --focus, --at and --frames
  work as for "reveal mask".`,
		Usage: "reveal preview --out FILE [flags]",
		Run:   runPreview,
	})
}

func runPreview(env *Env, args []string) error {
	sim := newSimulation()
	var out, formatName, contentPath string
	var opts preview.Options
	for i := 0; i < len(args); i++ {
		next, ok, err := sim.parseFlag(args, i)
		if err != nil {
			return err
		}
		if ok {
			i = next
			continue
		}
		arg := args[i]
		switch arg {
		case "--show-inactive":
			opts.ShowInactive = true
		case "--out", "--format", "--content", "--scale":
			value, err := flagValue(args, i, arg)
			if err != nil {
				return err
			}
			i++
			switch arg {
			case "--out":
				out = value
			case "--format":
				formatName = value
			case "--content":
				contentPath = value
			case "--scale":
				f, err := strconv.ParseFloat(value, 64)
				if err != nil || f <= 0 || f > 1 {
					return fmt.Errorf("--scale wants a number in (0, 1], got %q", value)
				}
				opts.Scale = f
			}
		default:
			return fmt.Errorf("unknown flag %q", arg)
		}
	}
	if out == "" {
		return fmt.Errorf("--out is required")
	}

	format := preview.FormatForPath(out)
	if formatName != "" {
		f, err := preview.ParseFormat(formatName)
		if err != nil {
			return err
		}
		format = f
	}

	var content image.Image
	if contentPath != "" {
		img, err := preview.LoadImage(contentPath)
		if err != nil {
			return err
		}
		content = img
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

	m, err := preview.Rasterize(res.Vars, opts)
	if err != nil {
		return err
	}
	img := preview.Composite(m, content, color.Black)

	if out == "-" {
		return preview.Encode(env.Stdout, img, format)
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := preview.Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	env.Log.Info("wrote preview", "path", out, "format", string(format),
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}
