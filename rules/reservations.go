package rules

import "github.com/nstehr/valuenetwork/model"

// Reservations counts ships sent to each planet during the current turn.
// It overlays the snapshot without touching it and is discarded at turn end.
type Reservations map[int]int

func (r Reservations) Reserve(planetID int) {
	r[planetID]++
}

// WillBeFull reports whether the ships already docked plus the ships sent
// this turn cover every docking spot.
func (r Reservations) WillBeFull(p model.Planet) bool {
	return len(p.DockedShips)+r[p.ID] >= p.DockingSpots
}
