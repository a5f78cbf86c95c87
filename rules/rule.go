package rules

import "github.com/expr-lang/expr/vm"

// PhaseRule moves the strategy from one mode to a later one when its
// condition holds at the start of a turn.
type PhaseRule struct {
	Name         string      // human-readable identifier
	Priority     int         // higher = evaluated first
	From         Mode        // only considered while in this mode
	To           Mode        // must be later than From
	ConditionSrc string      // expr source (preserved for logging)
	program      *vm.Program // compiled bytecode
}
