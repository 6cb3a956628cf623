// Package grain builds textured, hand-drawn looking vector compositions.
//
// # Overview
//
// grain is a small retained-mode scene graph (Path, Group) plus the
// operations that roughen it: noise displacement, tapered brush strokes,
// grain speckle, hatching, flow-field tracing and rectangle/circle
// packing. All randomness flows through a Sketch, so a fixed seed
// reproduces a composition exactly.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/grain"
//		"github.com/gogpu/grain/raster"
//	)
//
//	sk := grain.NewSketch(grain.NewSource(7))
//
//	rock := grain.RegularPolygon(grain.Pt(200, 200), 9, 120)
//	rock.SetStroke(grain.Black, 1)
//	sk.Displace(rock, 6, 60, 20)
//
//	scene := grain.NewGroup(sk.Hatch(grain.HatchCover, rock), rock)
//	canvas := raster.NewCanvas(400, 400, raster.WithBackground(grain.White))
//	canvas.Draw(scene)
//	_ = canvas.SavePNG("rock.png")
//
// # Ownership
//
// Operations mutate the paths they are given (Displace, Wiggle, Flatten,
// Smooth) or return freshly allocated geometry (Taper, Grain, Hatch). The
// caller owns both.
//
// # Architecture
//
// The library is organized into:
//   - Core: Point, Matrix, Path, Group, Color, Rand, Sketch
//   - noise: Perlin gradient noise, OpenSimplex adapter, statistics
//   - raster: scene rendering into image.RGBA
//   - recipes: complete compositions (rocks, growth, flow, flower, clips)
//   - config: YAML/TOML configuration for the grain command
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rotations given in degrees turn clockwise on screen
package grain

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
