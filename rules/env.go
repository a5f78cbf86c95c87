package rules

import "github.com/nstehr/valuenetwork/model"

// PhaseEnv is the environment phase-rule conditions run against. Fields and
// methods are callable from expr expressions.
type PhaseEnv struct {
	Turn int
	Mode string

	m *model.Map
}

func NewPhaseEnv(m *model.Map, st State) PhaseEnv {
	return PhaseEnv{Turn: st.Turn, Mode: string(st.Mode), m: m}
}

// Players counts every player listed in the snapshot, eliminated or not.
func (e PhaseEnv) Players() int {
	if e.m == nil {
		return 0
	}
	return len(e.m.Players)
}

func (e PhaseEnv) FleetSize() int {
	if e.m == nil {
		return 0
	}
	return len(e.m.MyShips())
}

func (e PhaseEnv) OwnedPlanets() int {
	if e.m == nil {
		return 0
	}
	n := 0
	for _, p := range e.m.Planets {
		if p.Owner == e.m.MyID {
			n++
		}
	}
	return n
}
