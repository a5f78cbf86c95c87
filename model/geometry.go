package model

import "math"

// Position is a point on the continuous map. The origin is the top-left corner.
type Position struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between two points.
func (p Position) Distance(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// OrientTowards returns the angle in radians from p to o.
func (p Position) OrientTowards(o Position) float64 {
	return math.Atan2(o.Y-p.Y, o.X-p.X)
}

// Offset returns the point at the given angle and distance from p.
func (p Position) Offset(angle, dist float64) Position {
	return Position{
		X: p.X + math.Cos(angle)*dist,
		Y: p.Y + math.Sin(angle)*dist,
	}
}

// Entity is anything with a footprint on the map: ships and planets.
type Entity struct {
	Position
	ID     int
	Owner  int // NoOwner when unowned
	Radius float64
}

// ClosestPoint returns the point just outside target's footprint on the
// side facing p. Navigating there approaches target without overlapping it.
func (p Position) ClosestPoint(target Entity) Position {
	radius := target.Radius + MinDistanceForClosestPoint
	angle := target.OrientTowards(p)
	return target.Offset(angle, radius)
}

// RadToDegClipped converts an angle to whole degrees in [0, 360).
func RadToDegClipped(rad float64) int {
	deg := int(math.Floor(rad*180/math.Pi + 0.5))
	return ((deg % 360) + 360) % 360
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
