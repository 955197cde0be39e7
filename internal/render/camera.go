package render

import (
	"math"

	"raycast-dda/pkg/raycast"
)

// Camera holds the projection settings. FOV is in radians, ViewDistance in
// grid units.
type Camera struct {
	FOV          float64
	ViewDistance float64
}

// Fan returns the column fan for a view facing heading.
func (c Camera) Fan(heading float64, columns int) raycast.Fan {
	return raycast.Fan{Heading: heading, FOV: c.FOV, Columns: columns}
}

// Depth is the distance of the ray's end measured along the view heading. It
// removes the fisheye bulge that raw lengths produce at the screen edges.
func Depth(r raycast.Ray, heading float64) float64 {
	return r.Length * math.Cos(r.Angle-heading)
}

// Project returns the rows [top, bottom) covered by a unit-high wall at depth
// on a screen h pixels tall. The slice is centred on the horizon.
func Project(depth float64, h int) (top, bottom int) {
	if h <= 0 {
		return 0, 0
	}
	if !(depth > 0) {
		return 0, h
	}
	line := float64(h) / depth
	if line >= float64(h) {
		return 0, h
	}
	top = int(math.Round((float64(h) - line) / 2))
	return top, h - top
}
