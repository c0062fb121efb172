// Package pipeline sequences the lowering passes in the fixed order
// SPEC_FULL.md §4.H requires, checking the cheap between-pass invariants
// spec.md §8 names and aborting on the first fatal error with the
// originating error kind intact (spec.md §7's propagation policy).
package pipeline

import (
	"github.com/cwbudde/sol2cairo/internal/ast"
	cerrors "github.com/cwbudde/sol2cairo/internal/errors"
)

// Pass is one lowering stage. Run rewrites the subtree rooted at root
// in-place within ctx; it never returns a semantic-error value through the
// normal result path — every condition spec.md §7 names is a fatal error
// returned here and surfaced verbatim by the Pipeline.
type Pass interface {
	Name() string
	Run(ctx *ast.Context, root ast.NodeID) error
}

// InvariantCheck runs after a named pass completes and reports an
// AssertionFailure if the pass's postcondition doesn't hold (spec.md §8,
// "Pass invariants"). It never repairs state — only detects.
type InvariantCheck struct {
	AfterPass string
	Check     func(ctx *ast.Context, root ast.NodeID) error
}

// Pipeline runs a fixed, ordered sequence of passes over one compile
// unit's AST, modeled directly on the teacher's PassManager.RunAll: first
// fatal error stops the run.
type Pipeline struct {
	passes     []Pass
	invariants []InvariantCheck
}

// NewPipeline builds a pipeline that runs passes in exactly the order given.
// The fixed order SPEC_FULL.md §4.H specifies (declaration-splitter before
// storage-access) is wired by NewLoweringPipeline.
func NewPipeline(passes ...Pass) *Pipeline {
	return &Pipeline{passes: passes}
}

// AddInvariant registers a check to run immediately after the named pass.
func (p *Pipeline) AddInvariant(check InvariantCheck) {
	p.invariants = append(p.invariants, check)
}

// Passes returns the registered passes in run order.
func (p *Pipeline) Passes() []Pass { return p.passes }

// Run executes every pass against root in order. On the first error from a
// pass or a failed invariant, Run stops and returns that error unchanged —
// the pipeline never downgrades or wraps a fatal error kind (spec.md §7).
func (p *Pipeline) Run(ctx *ast.Context, root ast.NodeID) error {
	if root == ast.InvalidID {
		return cerrors.NewAssertionFailure("pipeline run over an invalid root node", "<none>")
	}

	for _, pass := range p.passes {
		if err := pass.Run(ctx, root); err != nil {
			return err
		}
		for _, inv := range p.invariants {
			if inv.AfterPass != pass.Name() {
				continue
			}
			if err := inv.Check(ctx, root); err != nil {
				return err
			}
		}
	}
	return nil
}
