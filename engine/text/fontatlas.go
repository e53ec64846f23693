// Package text rasterises a font into a glyph atlas and lays out strings as
// textured quads.
package text

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // top bearing in pixels (distance from baseline to glyph top)
	W, H     int     // glyph bitmap size
	U0, V0   float32 // UVs in atlas
	U1, V1   float32
}

// Atlas is a white-on-transparent glyph sheet. Metrics are in pixels at
// SizePx; layout scales them to the requested size.
type Atlas struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	Glyphs                   map[rune]Glyph
	Kerning                  map[[2]rune]float32
	Image                    *image.RGBA

	// WhiteU, WhiteV address an opaque texel so untextured fills can share
	// the atlas texture.
	WhiteU, WhiteV float32

	closeFace func()
}

func (fa *Atlas) Close() {
	if fa != nil && fa.closeFace != nil {
		fa.closeFace()
		fa.closeFace = nil
	}
}

// LoadDefault builds an atlas from the bundled Go Regular font.
func LoadDefault(sizePx float32) (*Atlas, error) {
	return Build(goregular.TTF, sizePx)
}

const (
	atlasPadding = 4
	whiteSize    = 4
	maxAtlasSize = 4096
)

// Build rasterises Latin-1 from the TrueType/OpenType data ttf.
func Build(ttf []byte, sizePx float32) (*Atlas, error) {
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	// Metrics in pixels
	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent + descent

	var runes []rune
	for r := rune(32); r <= rune(255); r++ {
		runes = append(runes, r)
	}

	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	measure := make([]meas, 0, len(runes))
	for _, rr := range runes {
		br, adv, ok := face.GlyphBounds(rr)
		if !ok {
			continue
		}
		measure = append(measure, meas{
			r: rr,
			w: (br.Max.X - br.Min.X).Ceil(), h: (br.Max.Y - br.Min.Y).Ceil(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Floor()),
			by:  float32(-br.Min.Y.Floor()), // distance from baseline to top
		})
	}

	// Shelf packer. The first slot of the first row holds the white block.
	atlasSize := 128
	var pos map[rune]image.Point
	for {
		x, y, rowH := atlasPadding*2+whiteSize, atlasPadding, whiteSize
		fits := true
		pos = make(map[rune]image.Point, len(measure))

		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if g.w+atlasPadding*2 > atlasSize || g.h+atlasPadding*2 > atlasSize {
				fits = false
				break
			}
			if x+g.w+atlasPadding > atlasSize {
				x = atlasPadding
				y += rowH + atlasPadding
				rowH = 0
			}
			if y+g.h+atlasPadding > atlasSize {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + atlasPadding
			rowH = max(rowH, g.h)
		}

		if fits {
			break
		}
		atlasSize *= 2
		if atlasSize > maxAtlasSize {
			_ = face.Close()
			return nil, fmt.Errorf("font atlas too large (>%d)", maxAtlasSize)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	white := image.Rect(atlasPadding, atlasPadding, atlasPadding+whiteSize, atlasPadding+whiteSize)
	draw.Draw(dst, white, image.White, image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
	}

	glyphs := make(map[rune]Glyph, len(measure))
	for _, g := range measure {
		gl := Glyph{
			Rune: g.r, Advance: g.adv,
			BearingX: g.bx, BearingY: g.by,
			W: g.w, H: g.h,
		}
		if p, ok := pos[g.r]; ok {
			// Drawer expects a dot at the baseline
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))

			gl.U0 = float32(p.X) / float32(atlasSize)
			gl.V0 = float32(p.Y) / float32(atlasSize)
			gl.U1 = float32(p.X+g.w) / float32(atlasSize)
			gl.V1 = float32(p.Y+g.h) / float32(atlasSize)
		}
		glyphs[g.r] = gl
	}

	kerning := make(map[[2]rune]float32)
	for _, a := range measure {
		for _, b := range measure {
			if dx := face.Kern(a.r, b.r); dx != 0 {
				kerning[[2]rune{a.r, b.r}] = float32(dx.Round())
			}
		}
	}

	center := float32(atlasPadding+whiteSize/2) / float32(atlasSize)
	return &Atlas{
		SizePx: sizePx,
		Ascent: ascent, Descent: descent, LineGap: lineGap,
		Glyphs:    glyphs,
		Kerning:   kerning,
		Image:     dst,
		WhiteU:    center,
		WhiteV:    center,
		closeFace: func() { _ = face.Close() },
	}, nil
}

// LineHeight is the baseline-to-baseline distance at size.
func (fa *Atlas) LineHeight(size float32) float32 {
	return (fa.Ascent - fa.Descent + fa.LineGap) * size / fa.SizePx
}
