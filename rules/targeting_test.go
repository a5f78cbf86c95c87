package rules

import (
	"math"
	"testing"

	"github.com/nstehr/valuenetwork/ipc"
	"github.com/nstehr/valuenetwork/model"
)

func TestAttackable(t *testing.T) {
	tests := []struct {
		shipID int
		status model.DockingStatus
		want   bool
	}{
		{0, model.Undocked, true},
		{2, model.Docked, true},
		{1, model.Undocked, false},
		{1, model.Docking, true},
		{1, model.Docked, true},
		{3, model.Undocking, true},
		{7, model.Undocked, false},
	}
	for _, tc := range tests {
		enemy := newShip(99, 1, 0, 0, tc.status)
		if got := attackable(tc.shipID, enemy); got != tc.want {
			t.Errorf("attackable(ship %d, enemy %s) = %v, want %v", tc.shipID, tc.status, got, tc.want)
		}
	}
}

func TestPreferPlanet(t *testing.T) {
	tests := []struct {
		shipID          int
		planetD, enemyD float64
		want            bool
	}{
		{0, 3, 5, true},
		{0, 5, 5, true}, // ties go to the planet
		{0, 5, 3, false},
		{3, 1, 2, true},
		{4, 1, 50, false}, // (4+1)%6 == 5 vetoes the planet
		{10, 1, 50, false},
		{16, 1, 50, false},
		{5, 1, 50, true},
	}
	for _, tc := range tests {
		if got := preferPlanet(tc.shipID, tc.planetD, tc.enemyD); got != tc.want {
			t.Errorf("preferPlanet(%d, %.0f, %.0f) = %v, want %v", tc.shipID, tc.planetD, tc.enemyD, got, tc.want)
		}
	}
}

func TestColonisable(t *testing.T) {
	res := Reservations{2: 1}
	tests := []struct {
		name   string
		planet model.Planet
		want   bool
	}{
		{"unowned", newPlanet(0, model.NoOwner, 0, 0, 3, 2), true},
		{"ours with room", newPlanet(1, 0, 0, 0, 3, 3, 10), true},
		{"ours full after reservation", newPlanet(2, 0, 0, 0, 3, 2, 10), false},
		{"ours already full", newPlanet(3, 0, 0, 0, 3, 1, 10), false},
		{"enemy owned", newPlanet(4, 1, 0, 0, 3, 6), false},
	}
	for _, tc := range tests {
		if got := colonisable(0, tc.planet, res); got != tc.want {
			t.Errorf("%s: colonisable = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func near(a, b model.Position) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

// Even ship, planet 5 away, docked enemy 3 away: the enemy is closer so the
// modulus term never comes into play.
func TestSelectTargetEnemyCloserThanPlanet(t *testing.T) {
	nav := newFakeNav()
	e := newTestEngine(t, nav)

	me := newShip(0, 0, 0, 0, model.Undocked)
	enemy := newShip(7, 1, 0, 3, model.Docked)
	planets := []model.Planet{newPlanet(0, model.NoOwner, 5, 0, 1, 2)}
	m := model.NewMap(100, 100, 0, fleet(me, enemy), planets)

	res := make(Reservations)
	cmd, ok := e.selectTarget(m, res, me)
	if !ok {
		t.Fatal("expected a command")
	}
	if _, isThrust := cmd.(ipc.ThrustCommand); !isThrust {
		t.Fatalf("command = %#v, want thrust", cmd)
	}
	want := model.Position{X: 0, Y: -0.5} // enemy radius + 3 standoff, on our side
	if got := nav.targets[0]; !near(got, want) {
		t.Errorf("navigated to %v, want %v", got, want)
	}
	if !nav.avoid[0] {
		t.Error("enemy approach should avoid obstacles")
	}
	if len(res) != 0 {
		t.Errorf("reservations = %v, want none", res)
	}
}

func TestSelectTargetPlanetCloserThanEnemy(t *testing.T) {
	nav := newFakeNav()
	e := newTestEngine(t, nav)

	me := newShip(0, 0, 0, 0, model.Undocked)
	enemy := newShip(7, 1, 0, 30, model.Docked)
	planets := []model.Planet{newPlanet(3, model.NoOwner, 20, 0, 2, 2)}
	m := model.NewMap(100, 100, 0, fleet(me, enemy), planets)

	res := make(Reservations)
	_, ok := e.selectTarget(m, res, me)
	if !ok {
		t.Fatal("expected a command")
	}
	if nav.docks[0] != 3 {
		t.Errorf("docking approach to planet %d, want 3", nav.docks[0])
	}
	if res[3] != 1 {
		t.Errorf("reservation on planet 3 = %d, want 1", res[3])
	}
}

func TestSelectTargetModulusVetoesPlanet(t *testing.T) {
	nav := newFakeNav()
	e := newTestEngine(t, nav)

	me := newShip(4, 0, 0, 0, model.Undocked)
	enemy := newShip(7, 1, 0, 30, model.Undocked)
	planets := []model.Planet{newPlanet(3, model.NoOwner, 5, 0, 2, 2)}
	m := model.NewMap(100, 100, 0, fleet(me, enemy), planets)

	res := make(Reservations)
	if _, ok := e.selectTarget(m, res, me); !ok {
		t.Fatal("expected a command")
	}
	if _, docked := nav.docks[4]; docked {
		t.Error("ship 4 went for the planet despite the veto")
	}
	want := model.Position{X: 0, Y: 26.5}
	if got := nav.targets[4]; !near(got, want) {
		t.Errorf("navigated to %v, want %v", got, want)
	}
	if len(res) != 0 {
		t.Errorf("reservations = %v, want none", res)
	}
}

func TestSelectTargetOddShipIgnoresUndockedEnemies(t *testing.T) {
	nav := newFakeNav()
	e := newTestEngine(t, nav)

	me := newShip(1, 0, 0, 0, model.Undocked)
	roaming := newShip(7, 1, 2, 0, model.Undocked)
	planets := []model.Planet{newPlanet(3, model.NoOwner, 40, 0, 2, 2)}
	m := model.NewMap(100, 100, 0, fleet(me, roaming), planets)

	if _, ok := e.selectTarget(m, make(Reservations), me); !ok {
		t.Fatal("expected a command")
	}
	if nav.docks[1] != 3 {
		t.Errorf("odd ship should head for planet 3, docks = %v, targets = %v", nav.docks, nav.targets)
	}

	// Without the planet there is nothing an odd ship may attack.
	m = model.NewMap(100, 100, 0, fleet(me, roaming), nil)
	if cmd, ok := e.selectTarget(m, make(Reservations), me); ok {
		t.Errorf("odd ship got %#v, want no command", cmd)
	}
}

func TestSelectTargetEvenShipHuntsUndockedEnemy(t *testing.T) {
	nav := newFakeNav()
	e := newTestEngine(t, nav)

	me := newShip(2, 0, 0, 0, model.Undocked)
	roaming := newShip(7, 1, 10, 0, model.Undocked)
	m := model.NewMap(100, 100, 0, fleet(me, roaming), nil)

	if _, ok := e.selectTarget(m, make(Reservations), me); !ok {
		t.Fatal("expected a command")
	}
	if got, want := nav.targets[2], (model.Position{X: 6.5, Y: 0}); !near(got, want) {
		t.Errorf("navigated to %v, want %v", got, want)
	}
}

func TestSelectTargetNearestEnemyWins(t *testing.T) {
	nav := newFakeNav()
	e := newTestEngine(t, nav)

	me := newShip(0, 0, 0, 0, model.Undocked)
	far := newShip(7, 1, 40, 0, model.Docked)
	nearer := newShip(8, 2, 20, 0, model.Docked)
	m := model.NewMap(100, 100, 0, fleet(me, far, nearer), nil)

	e.selectTarget(m, make(Reservations), me)
	if got, want := nav.targets[0], (model.Position{X: 16.5, Y: 0}); !near(got, want) {
		t.Errorf("navigated to %v, want %v (ship 8)", got, want)
	}
}

func TestPursuePlanetDocksOnlyInRange(t *testing.T) {
	nav := newFakeNav()
	e := newTestEngine(t, nav)
	planet := newPlanet(3, model.NoOwner, 10, 0, 2, 2)

	inRange := newShip(0, 0, 3.6, 0, model.Undocked) // 6.4 <= 0.5+4+2
	m := model.NewMap(100, 100, 0, fleet(inRange), []model.Planet{planet})
	cmd, ok := e.selectTarget(m, make(Reservations), inRange)
	if !ok {
		t.Fatal("expected a command")
	}
	if got, want := cmd, (ipc.DockCommand{Ship: 0, Planet: 3}); got != want {
		t.Errorf("in range: %#v, want %#v", got, want)
	}

	outOfRange := newShip(0, 0, 3.4, 0, model.Undocked) // 6.6 > 6.5
	m = model.NewMap(100, 100, 0, fleet(outOfRange), []model.Planet{planet})
	cmd, ok = e.selectTarget(m, make(Reservations), outOfRange)
	if !ok {
		t.Fatal("expected a command")
	}
	if _, isDock := cmd.(ipc.DockCommand); isDock {
		t.Errorf("out of range ship was told to dock: %#v", cmd)
	}
	if nav.docks[0] != 3 {
		t.Errorf("expected docking approach to planet 3, got %v", nav.docks)
	}
}

func TestReservationsSpreadShipsAcrossPlanets(t *testing.T) {
	nav := newFakeNav()
	e := newTestEngine(t, nav)

	// Our planet has one free spot left; a free planet lies further out.
	ours := newPlanet(0, 0, 10, 0, 2, 2, 9)
	free := newPlanet(1, model.NoOwner, 60, 0, 2, 3)
	ships := []model.Ship{
		newShip(0, 0, 5, 0, model.Undocked),
		newShip(2, 0, 5, 1, model.Undocked),
		newShip(9, 0, 14, 0, model.Docked),
	}
	m := model.NewMap(100, 100, 0, fleet(ships...), []model.Planet{ours, free})

	cmds, _ := e.Evaluate(m, startState(3))
	if len(cmds) != 2 {
		t.Fatalf("got %d commands, want 2", len(cmds))
	}
	if got, want := cmds[0], (ipc.DockCommand{Ship: 0, Planet: 0}); got != want {
		t.Errorf("first ship: %#v, want %#v", got, want)
	}
	if _, isDock := cmds[1].(ipc.DockCommand); isDock {
		t.Errorf("second ship docked at a full planet: %#v", cmds[1])
	}
	if nav.docks[2] != 1 {
		t.Errorf("second ship should head for planet 1, got %v", nav.docks)
	}
}

func TestReservationsCountShipsStillEnRoute(t *testing.T) {
	nav := newFakeNav()
	e := newTestEngine(t, nav)

	ours := newPlanet(0, 0, 50, 0, 3, 2)
	backup := newPlanet(1, model.NoOwner, 50, 60, 3, 3)
	ships := []model.Ship{
		newShip(0, 0, 0, 0, model.Undocked),
		newShip(2, 0, 0, 1, model.Undocked),
		newShip(6, 0, 0, 2, model.Undocked),
	}
	m := model.NewMap(100, 100, 0, fleet(ships...), []model.Planet{ours, backup})

	cmds, _ := e.Evaluate(m, startState(3))
	if len(cmds) != 3 {
		t.Fatalf("got %d commands, want 3", len(cmds))
	}
	want := map[int]int{0: 0, 2: 0, 6: 1}
	for ship, planet := range want {
		if got, ok := nav.docks[ship]; !ok || got != planet {
			t.Errorf("ship %d heading for planet %d (%v), want %d", ship, got, ok, planet)
		}
	}
}

func TestReservationsResetEachTurn(t *testing.T) {
	nav := newFakeNav()
	e := newTestEngine(t, nav)

	ours := newPlanet(0, 0, 50, 0, 3, 1)
	ships := []model.Ship{newShip(0, 0, 0, 0, model.Undocked)}
	m := model.NewMap(100, 100, 0, fleet(ships...), []model.Planet{ours})

	for turn := 1; turn <= 3; turn++ {
		cmds, _ := e.Evaluate(m, startState(turn))
		if len(cmds) != 1 {
			t.Fatalf("turn %d: got %d commands, want 1", turn, len(cmds))
		}
	}
}

func TestEnemyPlanetsNeverTargeted(t *testing.T) {
	nav := newFakeNav()
	e := newTestEngine(t, nav)

	theirs := newPlanet(0, 1, 5, 0, 2, 6)
	me := newShip(1, 0, 0, 0, model.Undocked)
	m := model.NewMap(100, 100, 0, fleet(me), []model.Planet{theirs})

	if cmd, ok := e.selectTarget(m, make(Reservations), me); ok {
		t.Errorf("got %#v, want no command", cmd)
	}
}

func TestNearestPlanetTieKeepsFirst(t *testing.T) {
	me := newShip(0, 0, 0, 0, model.Undocked)
	planets := []model.Planet{
		newPlanet(5, model.NoOwner, 10, 0, 2, 2),
		newPlanet(6, model.NoOwner, -10, 0, 2, 2),
	}
	m := model.NewMap(100, 100, 0, fleet(me), planets)

	got, ok := nearestPlanet(m, make(Reservations), me)
	if !ok || got.ID != 5 {
		t.Errorf("nearestPlanet = %d, %v; want 5", got.ID, ok)
	}
}
