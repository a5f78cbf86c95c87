package rules

import (
	"github.com/nstehr/valuenetwork/ipc"
	"github.com/nstehr/valuenetwork/model"
)

// fakeNav records what the engine asked for and answers with a plain
// thrust toward the requested point.
type fakeNav struct {
	fail    map[int]bool           // ship ids whose navigation fails
	targets map[int]model.Position // ship id → requested point
	docks   map[int]int            // ship id → planet id for ToDock
	avoid   map[int]bool
}

func newFakeNav() *fakeNav {
	return &fakeNav{
		fail:    make(map[int]bool),
		targets: make(map[int]model.Position),
		docks:   make(map[int]int),
		avoid:   make(map[int]bool),
	}
}

func (f *fakeNav) TowardPoint(m *model.Map, ship model.Ship, target model.Position, maxThrust int, avoid bool, maxCorrections int, step float64) (ipc.Command, bool) {
	f.targets[ship.ID] = target
	f.avoid[ship.ID] = avoid
	if f.fail[ship.ID] || maxCorrections <= 0 {
		return nil, false
	}
	return ipc.ThrustCommand{Ship: ship.ID, Magnitude: maxThrust, Angle: model.RadToDegClipped(ship.OrientTowards(target))}, true
}

func (f *fakeNav) ToDock(m *model.Map, ship model.Ship, planet model.Planet, maxThrust int) (ipc.Command, bool) {
	f.docks[ship.ID] = planet.ID
	return f.TowardPoint(m, ship, ship.ClosestPoint(planet.Entity), maxThrust, true, model.MaxNavigationCorrections, model.DegToRad(1))
}

func newShip(id, owner int, x, y float64, status model.DockingStatus) model.Ship {
	return model.Ship{
		Entity: model.Entity{ID: id, Owner: owner, Position: model.Position{X: x, Y: y}, Radius: model.ShipRadius},
		Health: 255,
		Status: status,
	}
}

func newPlanet(id, owner int, x, y, radius float64, spots int, docked ...int) model.Planet {
	return model.Planet{
		Entity:       model.Entity{ID: id, Owner: owner, Position: model.Position{X: x, Y: y}, Radius: radius},
		DockingSpots: spots,
		DockedShips:  docked,
	}
}

// fleet groups ships into players in the order given, by owner.
func fleet(ships ...model.Ship) []model.Player {
	var players []model.Player
	index := make(map[int]int)
	for _, s := range ships {
		i, ok := index[s.Owner]
		if !ok {
			i = len(players)
			index[s.Owner] = i
			players = append(players, model.Player{ID: s.Owner})
		}
		players[i].Ships = append(players[i].Ships, s)
	}
	return players
}

func newTestEngine(t interface{ Fatalf(string, ...any) }, nav Navigator) *Engine {
	e, err := NewEngine(DefaultDoctrine(), nav)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func startState(turn int) State {
	return State{Turn: turn, Mode: ModeStart, CornerShipID: NoShip, TargetCorner: model.Position{X: 0, Y: 0}}
}

func shipIDs(cmds []ipc.Command) []int {
	ids := make([]int, len(cmds))
	for i, c := range cmds {
		ids[i] = c.ShipID()
	}
	return ids
}
