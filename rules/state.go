package rules

import (
	"errors"

	"github.com/nstehr/valuenetwork/model"
)

type Mode string

const (
	ModeStart  Mode = "START"
	ModeExpand Mode = "EXPAND"
)

// rank orders modes; transitions only ever go up.
func (m Mode) rank() int {
	switch m {
	case ModeStart:
		return 0
	case ModeExpand:
		return 1
	}
	return -1
}

// NoShip marks an unassigned corner runner.
const NoShip = -1

// State is everything the bot carries from one turn to the next. The engine
// takes it by value and hands back the successor.
type State struct {
	Turn         int
	Mode         Mode
	CornerShipID int
	TargetCorner model.Position
}

var ErrNoShips = errors.New("no owned ships to derive starting corner")

// NewState builds the opening state from the initial snapshot. The target
// corner is the map corner in our starting quadrant, chosen independently
// on each axis from our first ship, and never changes afterwards.
func NewState(m *model.Map) (State, error) {
	ships := m.MyShips()
	if len(ships) == 0 {
		return State{}, ErrNoShips
	}
	return State{
		Mode:         ModeStart,
		CornerShipID: NoShip,
		TargetCorner: cornerFor(ships[0].Position, m),
	}, nil
}

func cornerFor(pos model.Position, m *model.Map) model.Position {
	center := m.Center()
	corner := model.Position{X: float64(m.Width), Y: float64(m.Height)}
	if pos.X < center.X {
		corner.X = 0
	}
	if pos.Y < center.Y {
		corner.Y = 0
	}
	return corner
}
