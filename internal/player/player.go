// Package player moves a viewpoint through a cell map with wall collision.
package player

import (
	"math"

	"raycast-dda/pkg/raycast"
)

// DefaultRadius keeps the camera a little off the walls so slices never fill
// the whole screen.
const DefaultRadius = 0.2

// Player is a position and heading in grid units and radians. Radius is the
// half-size of the square used for collision.
type Player struct {
	Pos    raycast.Vec2
	Angle  float64
	Radius float64
}

// New places a player at (x, y) facing angle.
func New(x, y, angle float64) *Player {
	return &Player{Pos: raycast.Vec2{X: x, Y: y}, Angle: angle, Radius: DefaultRadius}
}

// Direction is the unit vector the player faces.
func (p *Player) Direction() raycast.Vec2 {
	return raycast.Vec2{X: math.Cos(p.Angle), Y: math.Sin(p.Angle)}
}

// Turn rotates the heading by delta radians, keeping it in [0, 2*Pi).
func (p *Player) Turn(delta float64) {
	a := math.Mod(p.Angle+delta, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	p.Angle = a
}

// Move walks distance along the heading. Negative distances walk backwards.
func (p *Player) Move(m raycast.CellMap, distance float64) {
	p.slide(m, p.Direction().Scale(distance))
}

// Strafe walks distance to the right of the heading.
func (p *Player) Strafe(m raycast.CellMap, distance float64) {
	d := p.Direction()
	p.slide(m, raycast.Vec2{X: -d.Y, Y: d.X}.Scale(distance))
}

// slide applies each axis on its own and drops the axis that would collide,
// so walking into a wall at an angle glides along it.
func (p *Player) slide(m raycast.CellMap, delta raycast.Vec2) {
	if next := p.Pos.X + delta.X; delta.X != 0 && p.fits(m, next, p.Pos.Y) {
		p.Pos.X = next
	}
	if next := p.Pos.Y + delta.Y; delta.Y != 0 && p.fits(m, p.Pos.X, next) {
		p.Pos.Y = next
	}
}

func (p *Player) fits(m raycast.CellMap, x, y float64) bool {
	r := p.Radius
	x0, x1 := int(math.Floor(x-r)), int(math.Floor(x+r))
	y0, y1 := int(math.Floor(y-r)), int(math.Floor(y+r))
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if raycast.Blocked(m, cx, cy) {
				return false
			}
		}
	}
	return true
}

// Cell returns the grid cell containing the player.
func (p *Player) Cell() raycast.Cell {
	return raycast.Cell{X: int(math.Floor(p.Pos.X)), Y: int(math.Floor(p.Pos.Y))}
}
