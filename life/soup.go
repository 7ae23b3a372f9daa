package life

import (
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
)

// SoupOptions controls Soup.
type SoupOptions struct {
	Seed   int64
	Origin Cell
	Width  int32
	Height int32
	// Scale is the noise wavelength in cells.
	Scale float64
	// Density is the fill probability where the noise field peaks.
	Density float64
}

// DefaultSoupOptions returns a 64x64 soup with patchy density.
func DefaultSoupOptions(seed int64) SoupOptions {
	return SoupOptions{
		Seed:    seed,
		Width:   64,
		Height:  64,
		Scale:   12,
		Density: 0.6,
	}
}

// Soup fills a rectangle with random cells whose local density follows a
// Perlin noise field, giving clustered regions instead of uniform static.
// The result depends only on opts.
func Soup(opts SoupOptions) CellSet {
	noise := perlin.NewPerlin(2, 2, 3, opts.Seed)
	rng := rand.New(rand.NewPCG(uint64(opts.Seed), uint64(opts.Seed)^0x9e3779b97f4a7c15))

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	cells := CellSet{}
	for dy := int32(0); dy < opts.Height; dy++ {
		for dx := int32(0); dx < opts.Width; dx++ {
			n := noise.Noise2D(float64(dx)/scale+0.5, float64(dy)/scale+0.5)
			p := opts.Density * min(max(n+0.5, 0), 1)
			if rng.Float64() < p {
				cells.Add(Cell{X: opts.Origin.X + dx, Y: opts.Origin.Y + dy})
			}
		}
	}
	return cells
}
