// Package config loads sketch configuration from YAML or TOML files
// layered over embedded defaults.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/grain"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrUnknownFormat is returned for files that are neither YAML nor TOML.
var ErrUnknownFormat = errors.New("config: unknown file format")

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds everything a render needs.
type Config struct {
	Recipe string       `yaml:"recipe" toml:"recipe"`
	Seed   uint64       `yaml:"seed" toml:"seed"`
	Canvas CanvasConfig `yaml:"canvas" toml:"canvas"`
	Noise  NoiseConfig  `yaml:"noise" toml:"noise"`
	Rocks  RocksConfig  `yaml:"rocks" toml:"rocks"`
	Growth GrowthConfig `yaml:"growth" toml:"growth"`
	Flow   FlowConfig   `yaml:"flow" toml:"flow"`
	Flower FlowerConfig `yaml:"flower" toml:"flower"`
	Clips  ClipsConfig  `yaml:"clips" toml:"clips"`
	Grain  GrainConfig  `yaml:"grain" toml:"grain"`
}

// CanvasConfig holds output image settings.
type CanvasConfig struct {
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Background string `yaml:"background" toml:"background"` // color keyword or hex
}

// NoiseConfig selects the noise field shared by a sketch.
type NoiseConfig struct {
	Kind      string `yaml:"kind" toml:"kind"` // perlin | simplex
	Smoothing bool   `yaml:"smoothing" toml:"smoothing"`
}

// RocksConfig tunes the rocks recipe.
type RocksConfig struct {
	Margin     float64 `yaml:"margin" toml:"margin"`
	MaxLevels  int     `yaml:"max_levels" toml:"max_levels"`
	RockChance float64 `yaml:"rock_chance" toml:"rock_chance"`
	HoleChance float64 `yaml:"hole_chance" toml:"hole_chance"`
}

// GrowthConfig tunes the growth recipe.
type GrowthConfig struct {
	Layout          string  `yaml:"layout" toml:"layout"` // scatter | packed
	Count           int     `yaml:"count" toml:"count"`
	PackRadius      float64 `yaml:"pack_radius" toml:"pack_radius"`
	MinRadius       float64 `yaml:"min_radius" toml:"min_radius"`
	MaxRadius       float64 `yaml:"max_radius" toml:"max_radius"`
	HueChangeChance float64 `yaml:"hue_change_chance" toml:"hue_change_chance"`
}

// FlowConfig tunes the flow recipe.
type FlowConfig struct {
	Field     string  `yaml:"field" toml:"field"` // basic | noise
	Rows      int     `yaml:"rows" toml:"rows"`
	Cols      int     `yaml:"cols" toml:"cols"`
	Frequency float64 `yaml:"frequency" toml:"frequency"`
	Curves    int     `yaml:"curves" toml:"curves"`
	Steps     int     `yaml:"steps" toml:"steps"`
	StepSize  float64 `yaml:"step_size" toml:"step_size"`
}

// FlowerConfig tunes the flower recipe.
type FlowerConfig struct {
	Count  int     `yaml:"count" toml:"count"`
	Margin float64 `yaml:"margin" toml:"margin"`
}

// ClipsConfig tunes the clips recipe.
type ClipsConfig struct {
	Scale         float64 `yaml:"scale" toml:"scale"` // fraction of the canvas drawn into
	Circles       int     `yaml:"circles" toml:"circles"`
	Dots          int     `yaml:"dots" toml:"dots"`
	Lines         int     `yaml:"lines" toml:"lines"`
	Erasers       int     `yaml:"erasers" toml:"erasers"`
	EraserStrokes int     `yaml:"eraser_strokes" toml:"eraser_strokes"`
}

// GrainConfig tunes the paper grain scattered over the background.
type GrainConfig struct {
	MaxPoints int     `yaml:"max_points" toml:"max_points"`
	MinSize   float64 `yaml:"min_size" toml:"min_size"`
	MaxSize   float64 `yaml:"max_size" toml:"max_size"`
	Alpha     float64 `yaml:"alpha" toml:"alpha"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: parsing embedded defaults: %v", err))
	}
	return cfg
}

// Load reads the file at path over the embedded defaults; only the keys
// present in the file are replaced. The format follows the extension:
// .yaml/.yml or .toml. An empty path yields the defaults. The result is
// validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := cfg.decode(filepath.Ext(path), data); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(ext string, data []byte) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, c)
	case ".toml":
		return toml.Unmarshal(data, c)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, ext)
	}
}

// Write stores the configuration at path in the format matching its
// extension.
func (c *Config) Write(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	case ".toml":
		var b strings.Builder
		err = toml.NewEncoder(&b).Encode(c)
		data = []byte(b.String())
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// BackgroundColor parses Canvas.Background.
func (c *Config) BackgroundColor() (grain.Color, error) {
	col, ok := grain.ParseColor(c.Canvas.Background)
	if !ok {
		return grain.Color{}, fmt.Errorf("%w: canvas.background %q", ErrInvalid, c.Canvas.Background)
	}
	return col, nil
}

// FieldKind returns the flow field kind named by Flow.Field.
func (c *Config) FieldKind() (grain.FieldKind, error) {
	switch strings.ToLower(c.Flow.Field) {
	case "basic":
		return grain.FieldBasic, nil
	case "noise":
		return grain.FieldNoise, nil
	default:
		return 0, fmt.Errorf("%w: flow.field %q", ErrInvalid, c.Flow.Field)
	}
}

// Validate reports every out-of-range value, each wrapping ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Recipe != "", "recipe is empty")
	check(c.Canvas.Width > 0 && c.Canvas.Height > 0,
		"canvas size %dx%d", c.Canvas.Width, c.Canvas.Height)
	if _, err := c.BackgroundColor(); err != nil {
		errs = append(errs, err)
	}
	switch c.Noise.Kind {
	case "perlin", "simplex":
	default:
		check(false, "noise.kind %q", c.Noise.Kind)
	}

	check(c.Rocks.Margin > 0 && c.Rocks.Margin <= 1, "rocks.margin %v not in (0, 1]", c.Rocks.Margin)
	check(c.Rocks.MaxLevels >= 0, "rocks.max_levels %d", c.Rocks.MaxLevels)
	check(isChance(c.Rocks.RockChance), "rocks.rock_chance %v", c.Rocks.RockChance)
	check(isChance(c.Rocks.HoleChance), "rocks.hole_chance %v", c.Rocks.HoleChance)

	switch c.Growth.Layout {
	case "scatter", "packed":
	default:
		check(false, "growth.layout %q", c.Growth.Layout)
	}
	check(c.Growth.Count >= 0, "growth.count %d", c.Growth.Count)
	check(c.Growth.PackRadius > 0, "growth.pack_radius %v", c.Growth.PackRadius)
	check(c.Growth.MinRadius > 0 && c.Growth.MinRadius <= c.Growth.MaxRadius,
		"growth radius range [%v, %v]", c.Growth.MinRadius, c.Growth.MaxRadius)
	check(isChance(c.Growth.HueChangeChance), "growth.hue_change_chance %v", c.Growth.HueChangeChance)

	if _, err := c.FieldKind(); err != nil {
		errs = append(errs, err)
	}
	check(c.Flow.Rows >= 2 && c.Flow.Cols >= 2, "flow grid %dx%d", c.Flow.Rows, c.Flow.Cols)
	check(c.Flow.Curves >= 0 && c.Flow.Steps > 0, "flow curves %d steps %d", c.Flow.Curves, c.Flow.Steps)
	check(c.Flow.StepSize > 0, "flow.step_size %v", c.Flow.StepSize)

	check(c.Flower.Count >= 0, "flower.count %d", c.Flower.Count)
	check(c.Flower.Margin > 0 && c.Flower.Margin <= 1, "flower.margin %v not in (0, 1]", c.Flower.Margin)

	check(c.Clips.Scale > 0 && c.Clips.Scale <= 1, "clips.scale %v not in (0, 1]", c.Clips.Scale)
	check(c.Clips.Circles >= 0 && c.Clips.Dots >= 0 && c.Clips.Lines >= 0,
		"clips counts %d/%d/%d", c.Clips.Circles, c.Clips.Dots, c.Clips.Lines)
	check(c.Clips.Erasers >= 0 && c.Clips.EraserStrokes >= 0,
		"clips erasers %d x %d", c.Clips.Erasers, c.Clips.EraserStrokes)

	check(c.Grain.MaxPoints >= 0, "grain.max_points %d", c.Grain.MaxPoints)
	check(c.Grain.MinSize > 0 && c.Grain.MinSize <= c.Grain.MaxSize,
		"grain size range [%v, %v]", c.Grain.MinSize, c.Grain.MaxSize)
	check(isChance(c.Grain.Alpha), "grain.alpha %v", c.Grain.Alpha)

	return errors.Join(errs...)
}

func isChance(p float64) bool {
	return p >= 0 && p <= 1
}
