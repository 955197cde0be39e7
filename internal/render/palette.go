package render

import "image/color"

// Palette maps material ids to colours. Ids past the end use the last entry.
type Palette []color.RGBA

// MaxPaletteSize bounds how far WithMaterials grows a palette.
const MaxPaletteSize = 256

// DefaultPalette covers the builtin level materials. Entry 0 is the void
// colour used for empty cells.
func DefaultPalette() Palette {
	return Palette{
		{R: 0x10, G: 0x10, B: 0x14, A: 0xff},
		{R: 0x8c, G: 0x3b, B: 0x2e, A: 0xff},
		{R: 0x5c, G: 0x5c, B: 0x66, A: 0xff},
		{R: 0x3e, G: 0x8e, B: 0x4f, A: 0xff},
		{R: 0x4a, G: 0x40, B: 0x36, A: 0xff},
		{R: 0x36, G: 0x2e, B: 0x27, A: 0xff},
		{R: 0x2b, G: 0x2f, B: 0x3a, A: 0xff},
	}
}

// Color returns the colour for material v. An empty palette yields
// transparent black.
func (p Palette) Color(v uint32) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{}
	}
	if last := uint32(len(p) - 1); v > last {
		v = last
	}
	return p[v]
}

// WithMaterials returns a copy of p with the given ids overridden. The copy
// grows when an id is past the end; gap entries repeat the previous last
// colour so clamping behaviour is unchanged for them. Ids at or beyond
// MaxPaletteSize are ignored.
func (p Palette) WithMaterials(overrides map[uint32]color.RGBA) Palette {
	size := len(p)
	for id := range overrides {
		if id < MaxPaletteSize && int(id) >= size {
			size = int(id) + 1
		}
	}
	out := make(Palette, size)
	copy(out, p)
	fill := p.Color(uint32(len(p)))
	for i := len(p); i < size; i++ {
		out[i] = fill
	}
	for id, c := range overrides {
		if int(id) < len(out) {
			out[id] = c
		}
	}
	return out
}

func putRGBA(buf []byte, i int, c color.RGBA) {
	base := i * 4
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}

func shade(c color.RGBA, f float64) color.RGBA {
	if f >= 1 {
		return c
	}
	if f <= 0 {
		return color.RGBA{A: c.A}
	}
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
