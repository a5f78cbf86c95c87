package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nstehr/valuenetwork/ipc"
	"github.com/nstehr/valuenetwork/model"
	"github.com/nstehr/valuenetwork/rules"
)

// Agent owns the decision-making for a single game session.
type Agent struct {
	Conn   *ipc.Connection
	Engine *rules.Engine
	Name   string
	State  rules.State

	playerID int
	width    int
	height   int
	planets  map[int]model.Planet // as seen at game start
	prev     *turnSnapshot
}

func New(conn *ipc.Connection, engine *rules.Engine, name string) *Agent {
	return &Agent{Conn: conn, Engine: engine, Name: name}
}

// Start consumes the initial map, derives the opening state and completes
// the handshake so the engine starts the first turn.
func (a *Agent) Start(init ipc.Init) error {
	a.playerID = init.PlayerID
	a.width = init.Width
	a.height = init.Height

	m, err := model.Parse(init.MapLine, init.Width, init.Height, init.PlayerID)
	if err != nil {
		return fmt.Errorf("parse initial map: %w", err)
	}

	st, err := rules.NewState(m)
	if err != nil {
		return fmt.Errorf("initial state: %w", err)
	}
	a.State = st

	a.planets = make(map[int]model.Planet, len(m.Planets))
	for _, p := range m.Planets {
		a.planets[p.ID] = p
	}

	slog.Info("initial map intelligence",
		"player", init.PlayerID,
		"width", init.Width,
		"height", init.Height,
		"players", len(m.Players),
		"planets", len(m.Planets),
		"ships", len(m.MyShips()),
		"corner", fmt.Sprintf("(%g, %g)", st.TargetCorner.X, st.TargetCorner.Y),
	)

	if err := a.Conn.SendName(a.Name); err != nil {
		return fmt.Errorf("send name: %w", err)
	}
	return nil
}

// Run plays turns until the engine closes the stream or ctx is cancelled.
// The end of the game surfaces as a wrapped io.EOF.
func (a *Agent) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := a.Conn.ReadTurn()
		if err != nil {
			return fmt.Errorf("read turn %d: %w", a.State.Turn+1, err)
		}
		if err := a.PlayTurn(line); err != nil {
			return err
		}
	}
}

// PlayTurn decides and sends the commands for one map line.
func (a *Agent) PlayTurn(line string) error {
	m, err := model.Parse(line, a.width, a.height, a.playerID)
	if err != nil {
		return fmt.Errorf("parse turn %d: %w", a.State.Turn+1, err)
	}

	a.State.Turn++
	cmds, next := a.Engine.Evaluate(m, a.State)
	a.State = next

	events := detectEvents(m, a.State, a.prev)
	for _, e := range events {
		a.logEvent(m, e)
	}
	snap := takeSnapshot(m, a.State)
	a.prev = &snap

	slog.Info("turn", turnSummary(m, a.State, len(cmds))...)
	if len(events) > 0 {
		slog.Debug("turn events\n" + formatEvents(events))
	}

	if err := a.Conn.SendCommands(cmds); err != nil {
		return fmt.Errorf("send commands for turn %d: %w", a.State.Turn, err)
	}
	return nil
}

// turnSummary reads the turn through the same environment the phase rules
// see, so the log shows what the rules were evaluated against.
func turnSummary(m *model.Map, st rules.State, commands int) []any {
	env := rules.NewPhaseEnv(m, st)
	return []any{
		"turn", env.Turn,
		"mode", env.Mode,
		"players", env.Players(),
		"ships", env.FleetSize(),
		"planets", env.OwnedPlanets(),
		"commands", commands,
	}
}

// planetInfo looks the planet up on this turn's map. Destroyed planets are
// gone from the map, so those come from the opening view.
func (a *Agent) planetInfo(m *model.Map, id int) (model.Planet, bool) {
	if p, ok := m.Planet(id); ok {
		return p, true
	}
	p, ok := a.planets[id]
	return p, ok
}

func (a *Agent) logEvent(m *model.Map, e Event) {
	attrs := []any{"kind", e.Kind, "turn", e.Turn, "detail", e.Detail}
	if e.Kind == EventPlanetCaptured || e.Kind == EventPlanetLost {
		if p, ok := a.planetInfo(m, e.ID); ok {
			attrs = append(attrs, "spots", p.DockingSpots, "radius", p.Radius, "health", p.Health)
		}
	}
	slog.Info("turn event", attrs...)
}
