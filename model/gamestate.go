package model

// Engine constants. These must match the Halite II game engine.
const (
	ShipRadius                 = 0.5
	DockRadius                 = 4.0
	MaxSpeed                   = 7
	MinDistanceForClosestPoint = 3.0
	ForecastFudgeFactor        = ShipRadius + 0.1
	MaxNavigationCorrections   = 90
)

// NoOwner is the owner id of an unowned planet.
const NoOwner = -1

// DockingStatus is the wire-level docking state of a ship.
type DockingStatus int

const (
	Undocked  DockingStatus = 0
	Docking   DockingStatus = 1
	Docked    DockingStatus = 2
	Undocking DockingStatus = 3
)

func (s DockingStatus) String() string {
	switch s {
	case Undocked:
		return "undocked"
	case Docking:
		return "docking"
	case Docked:
		return "docked"
	case Undocking:
		return "undocking"
	}
	return "unknown"
}

type Ship struct {
	Entity
	Health          int
	Status          DockingStatus
	DockedPlanet    int
	DockingProgress int
	WeaponCooldown  int
}

// CanDock reports whether the planet is within docking range of the ship.
func (s Ship) CanDock(p Planet) bool {
	return s.Distance(p.Position) <= ShipRadius+DockRadius+p.Radius
}

type Planet struct {
	Entity
	Health              int
	DockingSpots        int
	CurrentProduction   int
	RemainingProduction int
	DockedShips         []int
}

func (p Planet) IsOwned() bool { return p.Owner != NoOwner }

// IsFull reports whether every docking spot is taken right now.
func (p Planet) IsFull() bool { return len(p.DockedShips) >= p.DockingSpots }

type Player struct {
	ID    int
	Ships []Ship // wire order
}

// Map is the fully observed state for one turn. It is rebuilt from the
// engine every turn and treated as read-only.
type Map struct {
	Width   int
	Height  int
	MyID    int
	Players []Player
	Planets []Planet

	ships   map[int]map[int]int // player id → ship id → index into that player's Ships
	planets map[int]int         // planet id → index into Planets
}

// NewMap indexes players and planets for lookup.
func NewMap(width, height, myID int, players []Player, planets []Planet) *Map {
	m := &Map{
		Width:   width,
		Height:  height,
		MyID:    myID,
		Players: players,
		Planets: planets,
		ships:   make(map[int]map[int]int, len(players)),
		planets: make(map[int]int, len(planets)),
	}
	for _, pl := range players {
		idx := make(map[int]int, len(pl.Ships))
		for i, s := range pl.Ships {
			idx[s.ID] = i
		}
		m.ships[pl.ID] = idx
	}
	for i, p := range planets {
		m.planets[p.ID] = i
	}
	return m
}

// Player returns the player with the given id.
func (m *Map) Player(id int) (Player, bool) {
	for _, pl := range m.Players {
		if pl.ID == id {
			return pl, true
		}
	}
	return Player{}, false
}

// MyShips returns our own fleet in wire order.
func (m *Map) MyShips() []Ship {
	pl, ok := m.Player(m.MyID)
	if !ok {
		return nil
	}
	return pl.Ships
}

// Ship looks up a ship in a player's fleet.
func (m *Map) Ship(playerID, shipID int) (Ship, bool) {
	idx, ok := m.ships[playerID][shipID]
	if !ok {
		return Ship{}, false
	}
	pl, _ := m.Player(playerID)
	return pl.Ships[idx], true
}

func (m *Map) Planet(id int) (Planet, bool) {
	idx, ok := m.planets[id]
	if !ok {
		return Planet{}, false
	}
	return m.Planets[idx], true
}

// AllShips returns every ship on the map, grouped by player in wire order.
func (m *Map) AllShips() []Ship {
	n := 0
	for _, pl := range m.Players {
		n += len(pl.Ships)
	}
	all := make([]Ship, 0, n)
	for _, pl := range m.Players {
		all = append(all, pl.Ships...)
	}
	return all
}

// Center returns the centre of the map using the engine's integer halving.
func (m *Map) Center() Position {
	return Position{X: float64(m.Width / 2), Y: float64(m.Height / 2)}
}
