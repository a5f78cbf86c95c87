package rules

import (
	"log/slog"

	"github.com/nstehr/valuenetwork/ipc"
	"github.com/nstehr/valuenetwork/model"
)

// colonisable reports whether a planet may be picked as a target: free
// planets always, our own only while they still have an unclaimed spot.
func colonisable(myID int, p model.Planet, res Reservations) bool {
	return !p.IsOwned() || (p.Owner == myID && !res.WillBeFull(p))
}

// attackable is the enemy filter. Even-numbered ships hunt anything;
// odd-numbered ships only go after ships that are docking, docked or
// undocking.
func attackable(shipID int, enemy model.Ship) bool {
	return shipID%2 == 0 || enemy.Status != model.Undocked
}

// preferPlanet decides between the two candidates when both exist. The
// (id+1)%6 term is kept exactly as tuned; it vetoes the planet for ids 4,
// 10, 16, … regardless of distance.
func preferPlanet(shipID int, planetDist, enemyDist float64) bool {
	return (shipID+1)%6 != 5 && planetDist <= enemyDist
}

// nearestPlanet picks the closest colonisable planet. Ties keep the planet
// listed first.
func nearestPlanet(m *model.Map, res Reservations, ship model.Ship) (model.Planet, bool) {
	var (
		best  model.Planet
		found bool
		bestD float64
	)
	for _, p := range m.Planets {
		if !colonisable(m.MyID, p, res) {
			continue
		}
		d := ship.Distance(p.Position)
		if !found || d < bestD {
			best, bestD, found = p, d, true
		}
	}
	return best, found
}

// nearestEnemy picks the closest attackable enemy ship.
func nearestEnemy(m *model.Map, ship model.Ship) (model.Ship, bool) {
	var (
		best  model.Ship
		found bool
		bestD float64
	)
	for _, pl := range m.Players {
		if pl.ID == m.MyID {
			continue
		}
		for _, s := range pl.Ships {
			if !attackable(ship.ID, s) {
				continue
			}
			d := ship.Distance(s.Position)
			if !found || d < bestD {
				best, bestD, found = s, d, true
			}
		}
	}
	return best, found
}

// selectTarget is the standard per-ship decision: colonise, attack or idle.
func (e *Engine) selectTarget(m *model.Map, res Reservations, ship model.Ship) (ipc.Command, bool) {
	planet, hasPlanet := nearestPlanet(m, res, ship)
	enemy, hasEnemy := nearestEnemy(m, ship)

	switch {
	case hasPlanet && hasEnemy:
		if preferPlanet(ship.ID, ship.Distance(planet.Position), ship.Distance(enemy.Position)) {
			return e.pursuePlanet(m, res, ship, planet)
		}
		return e.engageShip(m, ship, enemy)
	case hasEnemy:
		return e.engageShip(m, ship, enemy)
	case hasPlanet:
		return e.pursuePlanet(m, res, ship, planet)
	}

	slog.Debug("ship has no target", "ship", ship.ID)
	return nil, false
}

// pursuePlanet claims a spot on the planet for this turn and either docks
// or flies in to dock. The claim stands even if the ship is still en route.
func (e *Engine) pursuePlanet(m *model.Map, res Reservations, ship model.Ship, planet model.Planet) (ipc.Command, bool) {
	slog.Debug("ship going to planet", "ship", ship.ID, "planet", planet.ID)
	res.Reserve(planet.ID)

	if ship.CanDock(planet) && !planet.IsFull() {
		return ipc.DockCommand{Ship: ship.ID, Planet: planet.ID}, true
	}
	return e.nav.ToDock(m, ship, planet, e.doctrine.MaxThrust)
}

// engageShip closes on the enemy, stopping just short of its hull.
func (e *Engine) engageShip(m *model.Map, ship model.Ship, enemy model.Ship) (ipc.Command, bool) {
	slog.Debug("ship going to enemy ship", "ship", ship.ID, "enemy", enemy.ID, "owner", enemy.Owner)
	target := ship.ClosestPoint(enemy.Entity)
	return e.nav.TowardPoint(m, ship, target, e.doctrine.MaxThrust, true, e.doctrine.MaxCorrections, e.doctrine.AngularStep)
}
