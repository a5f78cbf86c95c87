package rules

import (
	"log/slog"

	"github.com/nstehr/valuenetwork/ipc"
	"github.com/nstehr/valuenetwork/model"
)

// claimCorner returns the corner runner after considering ship. The role
// stays with its holder while that ship is alive; once the holder is gone
// the first eligible ship to come along takes it over.
func claimCorner(m *model.Map, cornerID int, ship model.Ship) int {
	if _, alive := m.Ship(m.MyID, cornerID); alive {
		return cornerID
	}
	slog.Info("corner ship assigned", "ship", ship.ID, "previous", cornerID)
	return ship.ID
}

// rushCorner sends the corner runner straight for the target corner.
func (e *Engine) rushCorner(m *model.Map, st State, ship model.Ship) (ipc.Command, bool) {
	return e.nav.TowardPoint(m, ship, st.TargetCorner, e.doctrine.MaxThrust, true, e.doctrine.MaxCorrections, e.doctrine.AngularStep)
}
