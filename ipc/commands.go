package ipc

import "strconv"

// Command type tokens. These must stay in sync with the Halite II engine.
const (
	TypeThrust = "t"
	TypeDock   = "d"
)

// Command is a single order for one ship. At most one command per ship is
// accepted by the engine each turn.
type Command interface {
	ShipID() int
	Tokens() []string
}

type ThrustCommand struct {
	Ship      int
	Magnitude int
	Angle     int // degrees, [0, 360)
}

func (c ThrustCommand) ShipID() int { return c.Ship }

func (c ThrustCommand) Tokens() []string {
	return []string{TypeThrust, strconv.Itoa(c.Ship), strconv.Itoa(c.Magnitude), strconv.Itoa(c.Angle)}
}

type DockCommand struct {
	Ship   int
	Planet int
}

func (c DockCommand) ShipID() int { return c.Ship }

func (c DockCommand) Tokens() []string {
	return []string{TypeDock, strconv.Itoa(c.Ship), strconv.Itoa(c.Planet)}
}
