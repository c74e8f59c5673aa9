// Package particles animates the drifting glyph field rendered behind the
// countdown. The field is deterministic for a given seed so frames can be
// asserted in tests, and it is fully independent of the countdown engine:
// it keeps animating after expiry.
package particles

import (
	"math"
	"math/rand"
)

// defaultGlyphs are indexed by depth, nearest last.
const defaultGlyphs = "·•∘"

// Particle is one drifting point in normalized [0,1)² space. Depth selects
// the glyph and scales apparent speed, cheap parallax.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Depth  float64
}

// Field owns the particle set and steps it over time.
type Field struct {
	particles []Particle
	glyphs    []rune
	speed     float64
	linkDist  float64
}

// Options configures a Field.
type Options struct {
	// Count is the number of particles.
	Count int
	// Speed scales velocity, in cell-widths per second at depth 1.
	Speed float64
	// Glyphs maps depth bands to runes, farthest first. Empty selects the
	// default set.
	Glyphs string
	// LinkDist draws faint links between particles closer than this
	// normalized distance. Zero disables linking.
	LinkDist float64
	// Seed fixes the random source; zero picks an arbitrary field layout
	// seed of 1 for reproducibility.
	Seed int64
}

// NewField scatters Count particles with random headings.
func NewField(opts Options) *Field {
	glyphs := opts.Glyphs
	if glyphs == "" {
		glyphs = defaultGlyphs
	}
	seed := opts.Seed
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // Visual jitter, not cryptography.

	f := &Field{
		particles: make([]Particle, opts.Count),
		glyphs:    []rune(glyphs),
		speed:     opts.Speed,
		linkDist:  opts.LinkDist,
	}
	for i := range f.particles {
		angle := rng.Float64() * 2 * math.Pi
		f.particles[i] = Particle{
			X:     rng.Float64(),
			Y:     rng.Float64(),
			VX:    math.Cos(angle),
			VY:    math.Sin(angle),
			Depth: 0.25 + 0.75*rng.Float64(),
		}
	}
	return f
}

// Step advances every particle by dt seconds, wrapping at the edges.
func (f *Field) Step(dt float64) {
	scale := f.speed * dt / 100
	for i := range f.particles {
		p := &f.particles[i]
		p.X = wrap(p.X + p.VX*scale*p.Depth)
		p.Y = wrap(p.Y + p.VY*scale*p.Depth)
	}
}

func wrap(v float64) float64 {
	v = math.Mod(v, 1)
	if v < 0 {
		v++
	}
	return v
}

// Render draws the field onto a w×h rune grid and returns it as lines.
// Links are drawn first so particles overwrite them.
func (f *Field) Render(w, h int) []string {
	if w <= 0 || h <= 0 {
		return nil
	}
	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = make([]rune, w)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	if f.linkDist > 0 {
		f.drawLinks(grid, w, h)
	}

	for _, p := range f.particles {
		x := int(p.X * float64(w))
		y := int(p.Y * float64(h))
		if x >= w {
			x = w - 1
		}
		if y >= h {
			y = h - 1
		}
		grid[y][x] = f.glyphAt(p.Depth)
	}

	lines := make([]string, h)
	for y := range grid {
		lines[y] = string(grid[y])
	}
	return lines
}

// glyphAt maps depth bands onto the glyph ramp.
func (f *Field) glyphAt(depth float64) rune {
	idx := int(depth * float64(len(f.glyphs)))
	if idx >= len(f.glyphs) {
		idx = len(f.glyphs) - 1
	}
	return f.glyphs[idx]
}

// drawLinks marks cells midway between near particle pairs, the terminal
// analog of the web particle library's connecting lines.
func (f *Field) drawLinks(grid [][]rune, w, h int) {
	for i := 0; i < len(f.particles); i++ {
		for j := i + 1; j < len(f.particles); j++ {
			a, b := f.particles[i], f.particles[j]
			dx := a.X - b.X
			dy := a.Y - b.Y
			if math.Hypot(dx, dy) > f.linkDist {
				continue
			}
			mx := int((a.X + b.X) / 2 * float64(w))
			my := int((a.Y + b.Y) / 2 * float64(h))
			if mx >= 0 && mx < w && my >= 0 && my < h {
				grid[my][mx] = '.'
			}
		}
	}
}

// Count reports the number of particles in the field.
func (f *Field) Count() int { return len(f.particles) }
