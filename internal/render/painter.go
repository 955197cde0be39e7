//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter owns an RGBA buffer and the image it is uploaded to.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewFramePainter allocates a painter for a w*h frame.
func NewFramePainter(w, h int) *FramePainter {
	return &FramePainter{w: w, h: h, buf: make([]byte, 4*w*h), img: ebiten.NewImage(w, h)}
}

// Buffer exposes the pixel buffer for FillFrame or FillMinimap.
func (p *FramePainter) Buffer() []byte { return p.buf }

// Size returns the dimensions of the underlying image.
func (p *FramePainter) Size() (int, int) { return p.w, p.h }

// Present uploads the buffer and draws it onto dst scaled by scale and offset
// by (x, y).
func (p *FramePainter) Present(dst *ebiten.Image, x, y, scale float64) {
	p.img.WritePixels(p.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	dst.DrawImage(p.img, op)
}
