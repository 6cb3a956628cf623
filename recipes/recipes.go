// Package recipes holds complete compositions built from the grain
// texturing operations. Each recipe turns a sketch, the drawing bounds
// and a configuration into a scene ready for the raster package.
package recipes

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/grain"
	"github.com/gogpu/grain/config"
)

// ErrUnknownRecipe is returned by Lookup for unregistered names.
var ErrUnknownRecipe = errors.New("recipes: unknown recipe")

// Recipe draws one composition into bounds.
type Recipe func(sk *grain.Sketch, bounds grain.Rect, cfg *config.Config) *grain.Group

var registry = map[string]Recipe{
	"rocks":  Rocks,
	"growth": Growth,
	"flow":   Flow,
	"flower": Flower,
	"clips":  Clips,
}

// Lookup returns the recipe registered under name (case-insensitive).
func Lookup(name string) (Recipe, error) {
	r, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownRecipe, name, strings.Join(Names(), ", "))
	}
	return r, nil
}

// Names returns the registered recipe names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// grainOptions maps the grain section of cfg onto the scatter options.
func grainOptions(cfg *config.Config) grain.GrainOptions {
	o := grain.DefaultGrainOptions()
	o.MaxPoints = cfg.Grain.MaxPoints
	o.MinSize = cfg.Grain.MinSize
	o.MaxSize = cfg.Grain.MaxSize
	o.Alpha = cfg.Grain.Alpha
	return o
}
