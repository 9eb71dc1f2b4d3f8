package model

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB display attribute. It carries no layout meaning.
type Color struct {
	R, G, B uint8
}

// Hex returns the colour as "#rrggbb"
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// ColorProvider hands out a colour for each constructed node
type ColorProvider interface {
	Color() Color
}

// ColorFunc adapts a function to ColorProvider
type ColorFunc func() Color

// Color implements ColorProvider
func (f ColorFunc) Color() Color {
	return f()
}

// Fixed returns a provider that always yields c
func Fixed(c Color) ColorProvider {
	return ColorFunc(func() Color { return c })
}

// randomColors picks well-saturated random hues
type randomColors struct {
	rng *rand.Rand
}

// RandomColors returns a provider of random colours. A zero seed picks one
// from the global source.
func RandomColors(seed int64) ColorProvider {
	if seed == 0 {
		seed = rand.Int63()
	}
	return &randomColors{rng: rand.New(rand.NewSource(seed))}
}

// Color implements ColorProvider
func (r *randomColors) Color() Color {
	c := colorful.Hsv(r.rng.Float64()*360, 0.45+r.rng.Float64()*0.4, 0.55+r.rng.Float64()*0.35)
	red, green, blue := c.Clamped().RGB255()
	return Color{R: red, G: green, B: blue}
}
