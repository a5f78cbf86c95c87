package rules

import "github.com/nstehr/valuenetwork/model"

// Doctrine holds the tunable parameters of the bot's play. The defaults
// reproduce the tournament behaviour; config may override them.
type Doctrine struct {
	Name             string  `json:"name"`
	ExpandTurn       int     `json:"expand_turn"`        // exact turn the EXPAND check fires
	ExpandMinPlayers int     `json:"expand_min_players"` // EXPAND requires strictly more players than this
	MaxThrust        int     `json:"max_thrust"`
	MaxCorrections   int     `json:"max_corrections"`
	AngularStep      float64 `json:"angular_step"` // radians
}

// DefaultDoctrine returns the baseline doctrine.
func DefaultDoctrine() Doctrine {
	return Doctrine{
		Name:             "ValueNetwork",
		ExpandTurn:       30,
		ExpandMinPlayers: 2,
		MaxThrust:        model.MaxSpeed,
		MaxCorrections:   model.MaxNavigationCorrections,
		AngularStep:      model.DegToRad(1),
	}
}

// Validate clamps every parameter to a range the engine accepts.
func (d *Doctrine) Validate() {
	d.ExpandTurn = clampInt(d.ExpandTurn, 1, 300)
	d.ExpandMinPlayers = clampInt(d.ExpandMinPlayers, 0, 4)
	d.MaxThrust = clampInt(d.MaxThrust, 1, model.MaxSpeed)
	d.MaxCorrections = clampInt(d.MaxCorrections, 1, 360)
	d.AngularStep = clamp(d.AngularStep, model.DegToRad(0.1), model.DegToRad(45))
}

// clampInt restricts v to [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clamp restricts v to [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
