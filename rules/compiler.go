package rules

import "fmt"

// CompileDoctrine turns a doctrine into its phase rules.
//
// The EXPAND check is edge-triggered on the exact turn: a game that reaches
// the turn with too few players never expands, even if more join later.
func CompileDoctrine(d Doctrine) []*PhaseRule {
	d.Validate()

	return []*PhaseRule{
		{
			Name:         "expand-in-crowded-games",
			Priority:     100,
			From:         ModeStart,
			To:           ModeExpand,
			ConditionSrc: fmt.Sprintf(`Mode == %q && Turn == %d && Players() > %d`, ModeStart, d.ExpandTurn, d.ExpandMinPlayers),
		},
	}
}
