// Package config loads the optional reveal.yaml file that configures the
// reveal command.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-drift/reveal/pkg/errors"
	"github.com/go-drift/reveal/pkg/geometry"
	"github.com/go-drift/reveal/pkg/jsontree"
	"github.com/go-drift/reveal/pkg/mask"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file.
const FileName = "reveal.yaml"

// CurrentVersion is the schema version written by new files.
const CurrentVersion = "v1.0.0"

// Config represents the optional reveal.yaml configuration.
type Config struct {
	Version string     `yaml:"version,omitempty"`
	Mask    MaskConfig `yaml:"mask"`
	Tree    TreeConfig `yaml:"tree"`

	// Source is the file the configuration was read from, if any.
	Source string `yaml:"-"`
}

// MaskConfig mirrors the mask properties. Unset fields keep the mask
// defaults.
type MaskConfig struct {
	Variant                  string   `yaml:"variant,omitempty"`
	Angle                    any      `yaml:"maskAngle,omitempty"`
	WithCursorMask           *bool    `yaml:"withCursorMask,omitempty"`
	TrackPointerOnDocument   *bool    `yaml:"trackPointerOnDocument,omitempty"`
	X                        *float64 `yaml:"maskX,omitempty"`
	Y                        *float64 `yaml:"maskY,omitempty"`
	Radius                   any      `yaml:"maskRadius,omitempty"`
	RadiusX                  any      `yaml:"maskRadiusX,omitempty"`
	RadiusY                  any      `yaml:"maskRadiusY,omitempty"`
	TransparencyStart        *float64 `yaml:"maskTransparencyStart,omitempty"`
	TransparencyEnd          *float64 `yaml:"maskTransparencyEnd,omitempty"`
	Feather                  *float64 `yaml:"maskFeather,omitempty"`
	Opacity                  *float64 `yaml:"maskOpacity,omitempty"`
	Easing                   *float64 `yaml:"easing,omitempty"`
	Invert                   *bool    `yaml:"invertMask,omitempty"`
	OffsetX                  *float64 `yaml:"cursorOffsetX,omitempty"`
	OffsetY                  *float64 `yaml:"cursorOffsetY,omitempty"`
	ClampToBounds            *bool    `yaml:"clampToBounds,omitempty"`
	ClampPadding             *float64 `yaml:"clampPadding,omitempty"`
	RecenterOnResize         *bool    `yaml:"recenterOnResize,omitempty"`
	RecenterOnChildrenChange *bool    `yaml:"recenterOnChildrenChange,omitempty"`
	Activation               string   `yaml:"activation,omitempty"`
	Active                   *bool    `yaml:"active,omitempty"`
	Animation                string   `yaml:"animation,omitempty"`
	FadeDuration             string   `yaml:"fadeDuration,omitempty"`
	FadeEase                 string   `yaml:"fadeEase,omitempty"`

	// Container is the size used when previewing the mask.
	Container ContainerConfig `yaml:"container"`
}

// ContainerConfig is a preview container size in pixels.
type ContainerConfig struct {
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// TreeConfig contains tree rendering settings.
type TreeConfig struct {
	DisplayFunctions string `yaml:"displayFunctions,omitempty"`
	DefaultExpanded  *bool  `yaml:"defaultExpanded,omitempty"`
	ShowIndentGuides bool   `yaml:"showIndentGuides,omitempty"`
	Title            string `yaml:"title,omitempty"`
}

// TreeOptions are the resolved tree settings.
type TreeOptions struct {
	Functions        jsontree.FunctionPolicy
	DefaultExpanded  bool
	ShowIndentGuides bool
	Title            string
}

// LoadOptional reads reveal.yaml from dir if present. A missing file yields
// an empty configuration.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{Version: CurrentVersion}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		e := errors.New("config.Load", errors.KindConfig, fmt.Errorf("failed to read %s: %w", FileName, err))
		e.Source = path
		return nil, e
	}
	return Parse(data, path)
}

// Parse decodes and validates configuration data. source names the data in
// errors.
func Parse(data []byte, source string) (*Config, error) {
	const op = "config.Parse"
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		e := errors.New(op, errors.KindConfig, fmt.Errorf("failed to parse %s: %w", FileName, err))
		e.Source = source
		return nil, e
	}
	cfg.Source = source
	if err := cfg.validateVersion(); err != nil {
		e := errors.New(op, errors.KindConfig, err)
		e.Source = source
		return nil, e
	}
	return &cfg, nil
}

// FindFile walks up from dir looking for reveal.yaml.
func FindFile(dir string) (string, bool) {
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func (c *Config) validateVersion() error {
	v := strings.TrimSpace(c.Version)
	if v == "" {
		c.Version = CurrentVersion
		return nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return &errors.ValidationError{Field: "version", Value: c.Version, Reason: "not a semantic version"}
	}
	if semver.Major(v) != semver.Major(CurrentVersion) {
		return &errors.ValidationError{Field: "version", Value: c.Version, Reason: "unsupported major version, want " + semver.Major(CurrentVersion)}
	}
	c.Version = semver.Canonical(v)
	return nil
}

// MaskConfig overlays the file's mask settings on mask.DefaultConfig and
// validates the result.
func (c *Config) MaskConfig() (mask.Config, error) {
	m := c.Mask
	cfg := mask.DefaultConfig()

	if m.Variant != "" {
		cfg.Variant = mask.Variant(m.Variant)
	}
	if m.Angle != nil {
		cfg.Angle = m.Angle
	}
	setBool(&cfg.WithCursorMask, m.WithCursorMask)
	setBool(&cfg.TrackPointerOnDocument, m.TrackPointerOnDocument)
	setFloat(&cfg.X, m.X)
	setFloat(&cfg.Y, m.Y)
	for _, l := range []struct {
		dst *geometry.Length
		src any
	}{
		{&cfg.Radius, m.Radius},
		{&cfg.RadiusX, m.RadiusX},
		{&cfg.RadiusY, m.RadiusY},
	} {
		if parsed, ok := geometry.ParseLength(l.src); ok {
			*l.dst = parsed
		}
	}
	setFloat(&cfg.TransparencyStart, m.TransparencyStart)
	setFloat(&cfg.TransparencyEnd, m.TransparencyEnd)
	cfg.Feather = m.Feather
	setFloat(&cfg.Opacity, m.Opacity)
	setFloat(&cfg.Easing, m.Easing)
	setBool(&cfg.Invert, m.Invert)
	setFloat(&cfg.OffsetX, m.OffsetX)
	setFloat(&cfg.OffsetY, m.OffsetY)
	setBool(&cfg.ClampToBounds, m.ClampToBounds)
	setFloat(&cfg.ClampPadding, m.ClampPadding)
	setBool(&cfg.RecenterOnResize, m.RecenterOnResize)
	setBool(&cfg.RecenterOnChildrenChange, m.RecenterOnChildrenChange)
	if m.Activation != "" {
		cfg.Activation = mask.Activation(m.Activation)
	}
	cfg.Active = m.Active
	if m.Animation != "" {
		cfg.Animation = mask.AnimationMode(m.Animation)
	}
	if m.FadeDuration != "" {
		d, err := time.ParseDuration(m.FadeDuration)
		if err != nil || d < 0 {
			return mask.Config{}, c.fieldError("fadeDuration", m.FadeDuration, "want a non-negative duration such as 150ms")
		}
		cfg.FadeDuration = d
	}
	cfg.FadeEase = m.FadeEase

	if err := cfg.Validate(); err != nil {
		if e, ok := err.(*errors.Error); ok && e.Source == "" {
			e.Source = c.Source
		}
		return mask.Config{}, err
	}
	return cfg, nil
}

// ContainerSize returns the preview container size, falling back to
// width x height for unset dimensions.
func (c *Config) ContainerSize(width, height float64) geometry.Size {
	size := geometry.Size{Width: width, Height: height}
	if c.Mask.Container.Width > 0 {
		size.Width = c.Mask.Container.Width
	}
	if c.Mask.Container.Height > 0 {
		size.Height = c.Mask.Container.Height
	}
	return size
}

// TreeOptions resolves the tree settings. Trees are expanded by default.
func (c *Config) TreeOptions() (TreeOptions, error) {
	policy, err := jsontree.ParseFunctionPolicy(c.Tree.DisplayFunctions)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.Source = c.Source
		}
		return TreeOptions{}, err
	}
	expanded := true
	if c.Tree.DefaultExpanded != nil {
		expanded = *c.Tree.DefaultExpanded
	}
	return TreeOptions{
		Functions:        policy,
		DefaultExpanded:  expanded,
		ShowIndentGuides: c.Tree.ShowIndentGuides,
		Title:            c.Tree.Title,
	}, nil
}

func (c *Config) fieldError(field string, value any, reason string) error {
	e := errors.New("config.MaskConfig", errors.KindConfig, &errors.ValidationError{Field: field, Value: value, Reason: reason})
	e.Source = c.Source
	return e
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
