package colors

// Color is linear RGBA in [0, 1].
type Color [4]float32

var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
	Transparent = Color{}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Lerp blends from a to b; t=0 is a, t=1 is b.
func Lerp(a, b Color, t float32) Color {
	var c Color
	for i := range c {
		c[i] = a[i] + (b[i]-a[i])*t
	}
	return c
}

// Uniform returns the four corner colors of a flat fill.
func Uniform(c Color) [4]Color { return [4]Color{c, c, c, c} }
