package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"raycast-dda/pkg/raycast"
)

// ErrFrameShape reports a buffer or ray slice that does not fit the frame.
var ErrFrameShape = errors.New("render: frame shape mismatch")

const (
	fogStrength     = 0.8
	horizontalShade = 0.7
	edgeWidth       = 0.04
	edgeShade       = 0.6
)

// View is the viewpoint a frame was cast from.
type View struct {
	Origin  raycast.Vec2
	Heading float64
	Camera  Camera
}

// Layers are the optional floor and ceiling maps. Sky and Ground are used for
// rows whose layer is missing or reads an empty or outside cell.
type Layers struct {
	Floor   raycast.CellMap
	Ceiling raycast.CellMap
	Sky     color.RGBA
	Ground  color.RGBA
}

// FillFrame draws one column per ray into buf, an RGBA buffer of w*h pixels.
func FillFrame(buf []byte, w, h int, rays []raycast.Ray, view View, layers Layers, palette Palette) error {
	if w <= 0 || h <= 0 || len(buf) < 4*w*h {
		return fmt.Errorf("%w: buffer of %d bytes for %dx%d", ErrFrameShape, len(buf), w, h)
	}
	if len(rays) != w {
		return fmt.Errorf("%w: %d rays for %d columns", ErrFrameShape, len(rays), w)
	}
	half := float64(h) / 2
	for x, ray := range rays {
		top, bottom := h/2, h/2
		var wall color.RGBA
		if ray.Hit {
			depth := Depth(ray, view.Heading)
			top, bottom = Project(depth, h)
			wall = wallColor(ray, depth, view.Camera.ViewDistance, palette)
		}
		cosOffset := math.Cos(ray.Angle - view.Heading)
		for y := 0; y < h; y++ {
			var c color.RGBA
			switch {
			case y < top:
				c = layers.Sky
				// The horizon row of an odd-height frame has no finite distance.
				if d := half - (float64(y) + 0.5); d > 0 {
					c = surfaceColor(layers.Ceiling, layers.Sky, ray, view, half/d, cosOffset, palette)
				}
			case y < bottom:
				c = wall
			default:
				c = layers.Ground
				if d := (float64(y) + 0.5) - half; d > 0 {
					c = surfaceColor(layers.Floor, layers.Ground, ray, view, half/d, cosOffset, palette)
				}
			}
			putRGBA(buf, y*w+x, c)
		}
	}
	return nil
}

func wallColor(ray raycast.Ray, depth, viewDistance float64, palette Palette) color.RGBA {
	f := fog(depth, viewDistance)
	if ray.Side == raycast.SideHorizontal {
		f *= horizontalShade
	}
	if u := FaceOffset(ray); u < edgeWidth {
		f *= edgeShade
	}
	return shade(palette.Color(ray.Value), f)
}

// FaceOffset is the hit position across the wall face in [0, 1), measured
// left to right as seen by the viewer. Faces seen from the east or north
// would otherwise read mirrored.
func FaceOffset(ray raycast.Ray) float64 {
	u := ray.WallOffset()
	switch {
	case ray.Side == raycast.SideVertical && ray.Direction.X < 0:
		u = 1 - u
	case ray.Side == raycast.SideHorizontal && ray.Direction.Y > 0:
		u = 1 - u
	}
	if u >= 1 {
		u = 0
	}
	return u
}

func surfaceColor(layer raycast.CellMap, fallback color.RGBA, ray raycast.Ray, view View, rowDist, cosOffset float64, palette Palette) color.RGBA {
	if layer == nil || !(cosOffset > 0) {
		return fallback
	}
	dist := rowDist / cosOffset
	p := view.Origin.Add(ray.Direction.Scale(dist))
	if !(math.Abs(p.X) < math.MaxInt32 && math.Abs(p.Y) < math.MaxInt32) {
		return fallback
	}
	v, ok := layer.CellAt(int(math.Floor(p.X)), int(math.Floor(p.Y)))
	if !ok || v == 0 {
		return fallback
	}
	return shade(palette.Color(v), fog(rowDist, view.Camera.ViewDistance))
}

func fog(depth, viewDistance float64) float64 {
	if !(viewDistance > 0) {
		return 1
	}
	t := depth / viewDistance
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return 1 - fogStrength*t
}

// FillMinimap writes one pixel per cell of m into buf.
func FillMinimap(buf []byte, m raycast.CellMap, palette Palette) error {
	size := m.Size()
	if len(buf) < 4*size.W*size.H {
		return fmt.Errorf("%w: buffer of %d bytes for %dx%d map", ErrFrameShape, len(buf), size.W, size.H)
	}
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			v, _ := m.CellAt(x, y)
			putRGBA(buf, y*size.W+x, palette.Color(v))
		}
	}
	return nil
}
