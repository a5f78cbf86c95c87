package nav

import (
	"log/slog"

	"github.com/nstehr/valuenetwork/ipc"
	"github.com/nstehr/valuenetwork/model"
)

// Navigator turns a destination into a single-turn thrust command, steering
// around planets and ships by rotating the heading in fixed steps.
type Navigator struct {
	MaxCorrections int
	AngularStep    float64 // radians
}

// New returns a navigator with the engine's standard correction budget and
// a one-degree steering step.
func New() *Navigator {
	return &Navigator{
		MaxCorrections: model.MaxNavigationCorrections,
		AngularStep:    model.DegToRad(1),
	}
}

// TowardPoint heads the ship at target. With avoid set, the heading is
// rotated by step until the straight path is clear; it gives up after
// maxCorrections rotations. The returned command is absent when no clear
// heading was found.
func (n *Navigator) TowardPoint(m *model.Map, ship model.Ship, target model.Position, maxThrust int, avoid bool, maxCorrections int, step float64) (ipc.Command, bool) {
	dist := ship.Distance(target)
	angle := ship.OrientTowards(target)

	dest := target
	for corrections := maxCorrections; corrections > 0; corrections-- {
		if avoid && len(ObstaclesBetween(m, ship.Position, dest)) > 0 {
			angle += step
			dest = ship.Offset(angle, dist)
			continue
		}

		thrust := maxThrust
		if dist < float64(maxThrust) {
			thrust = int(dist)
		}
		return ipc.ThrustCommand{
			Ship:      ship.ID,
			Magnitude: thrust,
			Angle:     model.RadToDegClipped(angle),
		}, true
	}

	slog.Debug("navigation exhausted corrections", "ship", ship.ID, "x", target.X, "y", target.Y)
	return nil, false
}

// ToDock approaches the nearest point of the planet that is still outside
// its surface, which also leaves the ship inside docking range on arrival.
func (n *Navigator) ToDock(m *model.Map, ship model.Ship, planet model.Planet, maxThrust int) (ipc.Command, bool) {
	target := ship.ClosestPoint(planet.Entity)
	return n.TowardPoint(m, ship, target, maxThrust, true, n.MaxCorrections, n.AngularStep)
}
