// Package alloc models the storage allocation table spec.md §3 defines: a
// per-contract map from a state variable's declaration id to its slot,
// produced by an earlier (out-of-scope) pass and consumed read-only here.
package alloc

import (
	"fmt"

	"github.com/cwbudde/sol2cairo/internal/ast"
	cerrors "github.com/cwbudde/sol2cairo/internal/errors"
)

// Table is one contract's state-variable-id-to-slot assignment.
type Table struct {
	slots map[ast.NodeID]int
}

// NewTable wraps a pre-computed slot assignment. The caller (the
// out-of-scope allocator pass) owns the map's construction; Table only
// exposes read access plus the assertion spec.md §3's invariant demands.
func NewTable(slots map[ast.NodeID]int) *Table {
	return &Table{slots: slots}
}

// Slot returns the slot assigned to declID, or an AssertionFailure if no
// entry exists — spec.md §3's invariant is "every state variable
// referenced by later passes has an entry," so a miss here is a bug in an
// earlier pass, not a recoverable condition.
func (t *Table) Slot(ctx *ast.Context, declID ast.NodeID) (int, error) {
	slot, ok := t.slots[declID]
	if !ok {
		return 0, cerrors.NewAssertionFailure(
			"missing storage allocation for state variable",
			ctx.Describe(declID),
		)
	}
	return slot, nil
}

// String renders the table for diagnostics, in ascending declaration-id
// order so two runs over the same input print identically.
func (t *Table) String() string {
	ids := make([]ast.NodeID, 0, len(t.slots))
	for id := range t.slots {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	out := ""
	for _, id := range ids {
		out += fmt.Sprintf("%d -> %d\n", id, t.slots[id])
	}
	return out
}
