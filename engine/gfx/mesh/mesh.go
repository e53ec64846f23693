// Package mesh tessellates 2D UI primitives into triangle lists.
package mesh

import (
	"math"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/geom"
)

// RoundSegments is the number of edges per rounded corner.
const RoundSegments = 8

// Vertex is one triangle corner: position, atlas UV, color.
type Vertex struct {
	X, Y  float32
	U, V  float32
	Color colors.Color
}

// Floats is the number of float32 values per Vertex.
const Floats = 8

// Quad appends two triangles covering (x0, y0)-(x1, y1).
func Quad(dst []Vertex, x0, y0, x1, y1, u0, v0, u1, v1 float32, c colors.Color) []Vertex {
	tl := Vertex{x0, y0, u0, v0, c}
	tr := Vertex{x1, y0, u1, v0, c}
	bl := Vertex{x0, y1, u0, v1, c}
	br := Vertex{x1, y1, u1, v1, c}
	return append(dst, tl, bl, tr, tr, bl, br)
}

// RoundedRect appends a filled rectangle whose selected corners are rounded
// with the given radius. c holds the corner colors ordered top-left,
// top-right, bottom-left, bottom-right and is interpolated bilinearly across
// the shape. Every vertex samples the atlas at (u, v).
func RoundedRect(dst []Vertex, r geom.Rect, c [4]colors.Color, rounding float32, corners geom.Corners, u, v float32) []Vertex {
	if r.Empty() {
		return dst
	}
	rounding = min(rounding, r.W/2, r.H/2)
	if rounding <= 0 {
		corners = geom.CornerNone
	}

	at := func(x, y float32) Vertex {
		tx, ty := (x-r.X)/r.W, (y-r.Y)/r.H
		top := colors.Lerp(c[0], c[1], tx)
		bottom := colors.Lerp(c[2], c[3], tx)
		return Vertex{x, y, u, v, colors.Lerp(top, bottom, ty)}
	}

	// Outline in clockwise screen order starting at the top-left corner.
	var outline [4 * (RoundSegments + 1)]Vertex
	n := 0
	arc := func(flag geom.Corners, cx, cy, px, py float32, from float64) {
		if corners&flag == 0 {
			outline[n] = at(px, py)
			n++
			return
		}
		for i := 0; i <= RoundSegments; i++ {
			a := from + float64(i)*math.Pi/2/RoundSegments
			x := cx + float32(math.Cos(a))*rounding
			y := cy + float32(math.Sin(a))*rounding
			outline[n] = at(x, y)
			n++
		}
	}
	x0, y0, x1, y1 := r.X, r.Y, r.Right(), r.Bottom()
	arc(geom.CornerTL, x0+rounding, y0+rounding, x0, y0, math.Pi)
	arc(geom.CornerTR, x1-rounding, y0+rounding, x1, y0, 3*math.Pi/2)
	arc(geom.CornerBR, x1-rounding, y1-rounding, x1, y1, 0)
	arc(geom.CornerBL, x0+rounding, y1-rounding, x0, y1, math.Pi/2)

	center := at(r.Center())
	for i := 0; i < n; i++ {
		dst = append(dst, center, outline[i], outline[(i+1)%n])
	}
	return dst
}
