package model

import (
	"fmt"
	"strconv"
	"strings"
)

// tokens walks a whitespace-separated map line.
type tokens struct {
	fields []string
	pos    int
}

func (t *tokens) next() (string, error) {
	if t.pos >= len(t.fields) {
		return "", fmt.Errorf("unexpected end of map data at token %d", t.pos)
	}
	s := t.fields[t.pos]
	t.pos++
	return s, nil
}

func (t *tokens) int() (int, error) {
	s, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("token %d: %w", t.pos-1, err)
	}
	return v, nil
}

func (t *tokens) float() (float64, error) {
	s, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("token %d: %w", t.pos-1, err)
	}
	return v, nil
}

// count reads a list length. Negative lengths are rejected.
func (t *tokens) count() (int, error) {
	n, err := t.int()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid count %d", n)
	}
	return n, nil
}

// capacity bounds a preallocation by the tokens left on the line, so a
// bogus count cannot force a huge allocation.
func (t *tokens) capacity(n int) int {
	return min(n, len(t.fields)-t.pos)
}

// Parse decodes one Halite II map line:
//
//	nPlayers {playerID nShips {ship}} nPlanets {planet}
//	ship   = id x y health velX velY status dockedPlanet progress cooldown
//	planet = id x y health radius spots production remaining hasOwner owner nDocked {shipID}
func Parse(line string, width, height, myID int) (*Map, error) {
	t := &tokens{fields: strings.Fields(line)}

	nPlayers, err := t.count()
	if err != nil {
		return nil, fmt.Errorf("player count: %w", err)
	}
	players := make([]Player, 0, t.capacity(nPlayers))
	for range nPlayers {
		pl, err := parsePlayer(t)
		if err != nil {
			return nil, err
		}
		players = append(players, pl)
	}

	nPlanets, err := t.count()
	if err != nil {
		return nil, fmt.Errorf("planet count: %w", err)
	}
	planets := make([]Planet, 0, t.capacity(nPlanets))
	for range nPlanets {
		p, err := parsePlanet(t)
		if err != nil {
			return nil, err
		}
		planets = append(planets, p)
	}

	if t.pos != len(t.fields) {
		return nil, fmt.Errorf("trailing map data: %d unread tokens", len(t.fields)-t.pos)
	}
	return NewMap(width, height, myID, players, planets), nil
}

func parsePlayer(t *tokens) (Player, error) {
	id, err := t.int()
	if err != nil {
		return Player{}, fmt.Errorf("player id: %w", err)
	}
	n, err := t.count()
	if err != nil {
		return Player{}, fmt.Errorf("player %d ship count: %w", id, err)
	}
	ships := make([]Ship, 0, t.capacity(n))
	for range n {
		s, err := parseShip(t, id)
		if err != nil {
			return Player{}, fmt.Errorf("player %d: %w", id, err)
		}
		ships = append(ships, s)
	}
	return Player{ID: id, Ships: ships}, nil
}

func parseShip(t *tokens, owner int) (Ship, error) {
	var (
		s      Ship
		ints   [4]int
		err    error
		status int
	)
	s.Owner = owner
	s.Radius = ShipRadius
	if s.ID, err = t.int(); err != nil {
		return Ship{}, fmt.Errorf("ship id: %w", err)
	}
	if s.X, err = t.float(); err != nil {
		return Ship{}, fmt.Errorf("ship %d x: %w", s.ID, err)
	}
	if s.Y, err = t.float(); err != nil {
		return Ship{}, fmt.Errorf("ship %d y: %w", s.ID, err)
	}
	if s.Health, err = t.int(); err != nil {
		return Ship{}, fmt.Errorf("ship %d health: %w", s.ID, err)
	}
	// Velocity is always zero in the released engine.
	for range 2 {
		if _, err = t.float(); err != nil {
			return Ship{}, fmt.Errorf("ship %d velocity: %w", s.ID, err)
		}
	}
	for i := range ints {
		if ints[i], err = t.int(); err != nil {
			return Ship{}, fmt.Errorf("ship %d docking fields: %w", s.ID, err)
		}
	}
	status = ints[0]
	if status < int(Undocked) || status > int(Undocking) {
		return Ship{}, fmt.Errorf("ship %d: invalid docking status %d", s.ID, status)
	}
	s.Status = DockingStatus(status)
	s.DockedPlanet = ints[1]
	s.DockingProgress = ints[2]
	s.WeaponCooldown = ints[3]
	return s, nil
}

func parsePlanet(t *tokens) (Planet, error) {
	var (
		p   Planet
		err error
	)
	if p.ID, err = t.int(); err != nil {
		return Planet{}, fmt.Errorf("planet id: %w", err)
	}
	if p.X, err = t.float(); err != nil {
		return Planet{}, fmt.Errorf("planet %d x: %w", p.ID, err)
	}
	if p.Y, err = t.float(); err != nil {
		return Planet{}, fmt.Errorf("planet %d y: %w", p.ID, err)
	}
	if p.Health, err = t.int(); err != nil {
		return Planet{}, fmt.Errorf("planet %d health: %w", p.ID, err)
	}
	if p.Radius, err = t.float(); err != nil {
		return Planet{}, fmt.Errorf("planet %d radius: %w", p.ID, err)
	}
	if p.DockingSpots, err = t.int(); err != nil {
		return Planet{}, fmt.Errorf("planet %d docking spots: %w", p.ID, err)
	}
	if p.CurrentProduction, err = t.int(); err != nil {
		return Planet{}, fmt.Errorf("planet %d production: %w", p.ID, err)
	}
	if p.RemainingProduction, err = t.int(); err != nil {
		return Planet{}, fmt.Errorf("planet %d remaining production: %w", p.ID, err)
	}
	hasOwner, err := t.int()
	if err != nil {
		return Planet{}, fmt.Errorf("planet %d owned flag: %w", p.ID, err)
	}
	owner, err := t.int()
	if err != nil {
		return Planet{}, fmt.Errorf("planet %d owner: %w", p.ID, err)
	}
	p.Owner = NoOwner
	if hasOwner == 1 {
		p.Owner = owner
	}
	n, err := t.count()
	if err != nil {
		return Planet{}, fmt.Errorf("planet %d docked count: %w", p.ID, err)
	}
	p.DockedShips = make([]int, 0, t.capacity(n))
	for range n {
		id, err := t.int()
		if err != nil {
			return Planet{}, fmt.Errorf("planet %d docked ship: %w", p.ID, err)
		}
		p.DockedShips = append(p.DockedShips, id)
	}
	return p, nil
}
