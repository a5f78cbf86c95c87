package agent

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nstehr/valuenetwork/model"
	"github.com/nstehr/valuenetwork/rules"
)

// EventKind identifies a change between consecutive turns worth logging.
type EventKind string

const (
	EventPhaseTransition EventKind = "phase_transition"
	EventCornerAssigned  EventKind = "corner_assigned"
	EventCornerLost      EventKind = "corner_lost"
	EventShipsLost       EventKind = "ships_lost"
	EventPlanetCaptured  EventKind = "planet_captured"
	EventPlanetLost      EventKind = "planet_lost"
)

// Event is a significant change detected by diffing consecutive turns.
type Event struct {
	Kind   EventKind
	Turn   int
	ID     int // ship or planet concerned, if any
	Detail string
}

// turnSnapshot captures the diffable fields of one turn.
type turnSnapshot struct {
	shipIDs      map[int]bool
	ownedPlanets map[int]bool
	mode         rules.Mode
	cornerShipID int
}

func takeSnapshot(m *model.Map, st rules.State) turnSnapshot {
	snap := turnSnapshot{
		shipIDs:      make(map[int]bool),
		ownedPlanets: make(map[int]bool),
		mode:         st.Mode,
		cornerShipID: st.CornerShipID,
	}
	for _, s := range m.MyShips() {
		snap.shipIDs[s.ID] = true
	}
	for _, p := range m.Planets {
		if p.Owner == m.MyID {
			snap.ownedPlanets[p.ID] = true
		}
	}
	return snap
}

// detectEvents compares this turn against the previous snapshot. It returns
// nil on the first turn.
func detectEvents(m *model.Map, st rules.State, prev *turnSnapshot) []Event {
	if prev == nil {
		return nil
	}

	var events []Event
	cur := takeSnapshot(m, st)

	if prev.mode != cur.mode {
		events = append(events, Event{
			Kind:   EventPhaseTransition,
			Turn:   st.Turn,
			Detail: fmt.Sprintf("%s -> %s", prev.mode, cur.mode),
		})
	}

	// A corner runner that died is replaced in the same turn, so both
	// events can fire together.
	if prev.cornerShipID != rules.NoShip && !cur.shipIDs[prev.cornerShipID] {
		events = append(events, Event{
			Kind:   EventCornerLost,
			Turn:   st.Turn,
			ID:     prev.cornerShipID,
			Detail: fmt.Sprintf("corner ship %d destroyed", prev.cornerShipID),
		})
	}
	if cur.cornerShipID != rules.NoShip && cur.cornerShipID != prev.cornerShipID {
		events = append(events, Event{
			Kind:   EventCornerAssigned,
			Turn:   st.Turn,
			ID:     cur.cornerShipID,
			Detail: fmt.Sprintf("ship %d heading for corner", cur.cornerShipID),
		})
	}

	if lost := missing(prev.shipIDs, cur.shipIDs); len(lost) > 0 {
		events = append(events, Event{
			Kind:   EventShipsLost,
			Turn:   st.Turn,
			Detail: fmt.Sprintf("lost %d ships %v", len(lost), lost),
		})
	}

	for _, id := range missing(cur.ownedPlanets, prev.ownedPlanets) {
		events = append(events, Event{
			Kind:   EventPlanetCaptured,
			Turn:   st.Turn,
			ID:     id,
			Detail: fmt.Sprintf("planet %d", id),
		})
	}
	for _, id := range missing(prev.ownedPlanets, cur.ownedPlanets) {
		events = append(events, Event{
			Kind:   EventPlanetLost,
			Turn:   st.Turn,
			ID:     id,
			Detail: fmt.Sprintf("planet %d", id),
		})
	}

	return events
}

// missing returns the ids in prev that are absent from cur, sorted.
func missing(prev, cur map[int]bool) []int {
	var ids []int
	for id := range prev {
		if !cur[id] {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// formatEvents renders events one per line for the turn log.
func formatEvents(events []Event) string {
	if len(events) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range events {
		fmt.Fprintf(&b, "[turn %d] %s: %s\n", e.Turn, e.Kind, e.Detail)
	}
	return b.String()
}
