package preview

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/go-drift/reveal/pkg/errors"

	// Decoders for content images.
	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/webp"
)

// Format is an output image format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
)

// ParseFormat parses a format name. The empty string selects PNG.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatPNG, nil
	case FormatPNG, FormatWebP:
		return f, nil
	}
	return "", errors.New("preview.ParseFormat", errors.KindParsing, &errors.ParseError{
		Field: "format",
		Want:  "png or webp",
		Got:   s,
	})
}

// FormatForPath picks the format from a file extension, defaulting to PNG.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".webp") {
		return FormatWebP
	}
	return FormatPNG
}

// Encode writes img in format f. WebP output is lossless.
func Encode(w io.Writer, img image.Image, f Format) error {
	const op = "preview.Encode"
	var err error
	switch f {
	case FormatPNG, "":
		err = png.Encode(w, img)
	case FormatWebP:
		err = nativewebp.Encode(w, img, nil)
	default:
		err = fmt.Errorf("unknown format %q", f)
	}
	if err != nil {
		return errors.New(op, errors.KindRender, err)
	}
	return nil
}

// LoadImage decodes a PNG, WebP or TGA file to draw through the mask.
func LoadImage(path string) (image.Image, error) {
	const op = "preview.LoadImage"
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New(op, errors.KindRender, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		e := errors.New(op, errors.KindParsing, err)
		e.Source = path
		return nil, e
	}
	return img, nil
}
