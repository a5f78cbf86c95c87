package rules

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/nstehr/valuenetwork/ipc"
	"github.com/nstehr/valuenetwork/model"
)

// Navigator turns destinations into thrust commands. A false return means
// no safe heading was found within the correction budget.
type Navigator interface {
	TowardPoint(m *model.Map, ship model.Ship, target model.Position, maxThrust int, avoid bool, maxCorrections int, step float64) (ipc.Command, bool)
	ToDock(m *model.Map, ship model.Ship, planet model.Planet, maxThrust int) (ipc.Command, bool)
}

// Engine makes the per-turn decisions. It is driven from a single goroutine;
// everything that outlives a turn is in the State it is handed.
type Engine struct {
	rules    []*PhaseRule
	nav      Navigator
	doctrine Doctrine
}

// NewEngine compiles the doctrine's phase rules into expr bytecode.
func NewEngine(d Doctrine, nav Navigator) (*Engine, error) {
	d.Validate()
	compiled, err := compileRules(CompileDoctrine(d))
	if err != nil {
		return nil, err
	}
	return &Engine{rules: compiled, nav: nav, doctrine: d}, nil
}

// Evaluate runs one turn. It returns the commands in ship order and the
// state to carry into the next turn.
func (e *Engine) Evaluate(m *model.Map, st State) ([]ipc.Command, State) {
	st = e.Transition(m, st)

	res := make(Reservations)
	var cmds []ipc.Command
	for _, ship := range m.MyShips() {
		if ship.Status != model.Undocked {
			continue
		}

		if st.Mode == ModeExpand {
			st.CornerShipID = claimCorner(m, st.CornerShipID, ship)
			if ship.ID == st.CornerShipID {
				if cmd, ok := e.rushCorner(m, st, ship); ok {
					cmds = append(cmds, cmd)
				}
				continue
			}
		}

		if cmd, ok := e.selectTarget(m, res, ship); ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds, st
}

// Transition applies the first matching phase rule for the current mode.
// Modes only move forward.
func (e *Engine) Transition(m *model.Map, st State) State {
	env := NewPhaseEnv(m, st)
	for _, r := range e.rules {
		if r.From != st.Mode {
			continue
		}

		result, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("phase rule condition error", "rule", r.Name, "error", err)
			continue
		}
		if match, ok := result.(bool); !ok || !match {
			continue
		}

		slog.Info("strategy transition", "rule", r.Name, "from", st.Mode, "to", r.To, "turn", st.Turn, "players", env.Players())
		st.Mode = r.To
		return st
	}
	return st
}

func compileRules(rules []*PhaseRule) ([]*PhaseRule, error) {
	for _, r := range rules {
		if r.To.rank() <= r.From.rank() {
			return nil, fmt.Errorf("rule %q: %s -> %s does not move forward", r.Name, r.From, r.To)
		}
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(PhaseEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules, nil
}
