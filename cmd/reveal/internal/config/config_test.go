package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-drift/reveal/pkg/errors"
	"github.com/go-drift/reveal/pkg/geometry"
	"github.com/go-drift/reveal/pkg/jsontree"
	"github.com/go-drift/reveal/pkg/mask"
)

const sample = `
version: v1
mask:
  variant: linear
  maskAngle: 0.25turn
  withCursorMask: true
  maskRadius: 320
  maskRadiusY: 12rem
  maskFeather: 20
  maskOpacity: 0.6
  clampToBounds: true
  clampPadding: 8
  activation: hover
  animation: none
  fadeDuration: 150ms
  fadeEase: in-out-sine
  container:
    width: 640
tree:
  displayFunctions: hide
  defaultExpanded: false
  showIndentGuides: true
  title: contact.json
`

func TestParseSample(t *testing.T) {
	cfg, err := Parse([]byte(sample), "reveal.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Version != "v1.0.0" {
		t.Errorf("version = %q, want canonical v1.0.0", cfg.Version)
	}

	m, err := cfg.MaskConfig()
	if err != nil {
		t.Fatal(err)
	}
	if m.Variant != mask.VariantLinear || m.Angle != "0.25turn" || !m.WithCursorMask {
		t.Errorf("mask = %+v", m)
	}
	if px, ok := m.Radius.Pixels(); !ok || px != 320 {
		t.Errorf("radius = %v", m.Radius)
	}
	if m.RadiusY.CSS() != "12rem" || m.RadiusX.IsSet() {
		t.Errorf("radius axes = %v/%v", m.RadiusX, m.RadiusY)
	}
	if m.Feather == nil || *m.Feather != 20 || m.Opacity != 0.6 {
		t.Errorf("feather/opacity = %v/%v", m.Feather, m.Opacity)
	}
	if !m.ClampToBounds || m.ClampPadding != 8 {
		t.Errorf("clamp = %v/%v", m.ClampToBounds, m.ClampPadding)
	}
	if m.Activation != mask.ActivationHover || m.Animation != mask.AnimationNone {
		t.Errorf("modes = %s/%s", m.Activation, m.Animation)
	}
	if m.FadeDuration != 150*time.Millisecond || m.FadeEase != "in-out-sine" {
		t.Errorf("fade = %v/%q", m.FadeDuration, m.FadeEase)
	}
	// Untouched fields keep their defaults.
	if m.X != 50 || m.Easing != 0.12 || m.TransparencyEnd != 100 {
		t.Errorf("defaults lost: %+v", m)
	}

	if got := cfg.ContainerSize(400, 300); got != (geometry.Size{Width: 640, Height: 300}) {
		t.Errorf("container = %+v", got)
	}

	tree, err := cfg.TreeOptions()
	if err != nil {
		t.Fatal(err)
	}
	want := TreeOptions{Functions: jsontree.FunctionsHide, DefaultExpanded: false, ShowIndentGuides: true, Title: "contact.json"}
	if tree != want {
		t.Errorf("tree = %+v, want %+v", tree, want)
	}
}

func TestEmptyConfigUsesDefaults(t *testing.T) {
	cfg, err := Parse(nil, "")
	if err != nil {
		t.Fatal(err)
	}
	m, err := cfg.MaskConfig()
	if err != nil {
		t.Fatal(err)
	}
	def := mask.DefaultConfig()
	if m.Variant != def.Variant || m.Radius != def.Radius || m.Activation != def.Activation || m.Angle != def.Angle {
		t.Errorf("mask = %+v, want defaults", m)
	}
	tree, err := cfg.TreeOptions()
	if err != nil || tree.Functions != jsontree.FunctionsAsString || !tree.DefaultExpanded {
		t.Errorf("tree = %+v, %v", tree, err)
	}
}

func TestVersionValidation(t *testing.T) {
	tests := []struct {
		version string
		ok      bool
		want    string
	}{
		{"v1", true, "v1.0.0"},
		{"v1.2", true, "v1.2.0"},
		{"1.4.0", true, "v1.4.0"},
		{"v2.0.0", false, ""},
		{"latest", false, ""},
	}
	for _, tt := range tests {
		cfg, err := Parse([]byte("version: "+tt.version+"\n"), "reveal.yaml")
		if !tt.ok {
			var e *errors.Error
			if !stderrors.As(err, &e) || e.Kind != errors.KindConfig || e.Source != "reveal.yaml" {
				t.Errorf("version %q: error = %v", tt.version, err)
			}
			continue
		}
		if err != nil || cfg.Version != tt.want {
			t.Errorf("version %q: got %v, %v", tt.version, cfg, err)
		}
	}
}

func TestMaskConfigErrors(t *testing.T) {
	for _, src := range []string{
		"mask: {variant: conic}",
		"mask: {easing: 2}",
		"mask: {fadeDuration: soon}",
		"mask: {maskRadius: -5}",
	} {
		cfg, err := Parse([]byte(src), "reveal.yaml")
		if err != nil {
			t.Fatalf("%s: parse error %v", src, err)
		}
		_, err = cfg.MaskConfig()
		var e *errors.Error
		if !stderrors.As(err, &e) || e.Kind != errors.KindConfig || e.Source != "reveal.yaml" {
			t.Errorf("%s: error = %v", src, err)
		}
	}
}

func TestTreeOptionsError(t *testing.T) {
	cfg, err := Parse([]byte("tree: {displayFunctions: show}"), "reveal.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.TreeOptions(); err == nil {
		t.Error("expected an error for an unknown function policy")
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("mask: [1, 2"), "broken.yaml")
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Source != "broken.yaml" {
		t.Errorf("error = %v", err)
	}
}

func TestLoadOptionalAndFindFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadOptional(dir)
	if err != nil || cfg.Version != CurrentVersion {
		t.Fatalf("missing file: %+v, %v", cfg, err)
	}

	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	path, ok := FindFile(nested)
	if !ok || path != filepath.Join(dir, FileName) {
		t.Fatalf("FindFile = %q, %v", path, ok)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Source != path || cfg.Mask.Variant != "linear" {
		t.Errorf("loaded %+v", cfg)
	}

	if _, err := Load(filepath.Join(dir, "nope.yaml")); !stderrors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
}
