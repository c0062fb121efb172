package pipeline

import (
	"github.com/cwbudde/sol2cairo/internal/alloc"
	"github.com/cwbudde/sol2cairo/internal/ast"
	"github.com/cwbudde/sol2cairo/internal/compileunit"
	"github.com/cwbudde/sol2cairo/internal/passes"
	"github.com/cwbudde/sol2cairo/internal/types"
)

// NewLoweringPipeline builds the fixed pass order SPEC_FULL.md §4.H
// requires for one contract: declaration-splitter (component G), its
// CheckNoMultiDeclarations postcondition, then storage-access (component
// F), then its CheckNoStateVariableReads postcondition — run against unit,
// the shared compileunit.Unit (component J) every pass threads its helper
// registry and AST context through. table is that one contract's storage
// allocation; declType and calleeReturnTypes are the front-end's resolved
// types, injected rather than re-derived here (spec.md §1).
func NewLoweringPipeline(
	unit *compileunit.Unit,
	table *alloc.Table,
	declType func(ast.NodeID) types.Type,
	calleeReturnTypes func(ast.NodeID) ([]types.Type, bool),
) *Pipeline {
	declSplitter := passes.NewDeclSplitterPass(declType, calleeReturnTypes)
	storageAccess := passes.NewStorageAccessPass(unit.Helpers, table, declType)

	pl := NewPipeline(declSplitter, storageAccess)

	pl.AddInvariant(InvariantCheck{
		AfterPass: declSplitter.Name(),
		Check:     passes.CheckNoMultiDeclarations,
	})
	pl.AddInvariant(InvariantCheck{
		AfterPass: storageAccess.Name(),
		Check: func(ctx *ast.Context, root ast.NodeID) error {
			isStateVar := func(declID ast.NodeID) bool { return passes.IsStateVariable(ctx, declID) }
			isMappingBase := func(baseID ast.NodeID) bool { return passes.IsMappingBase(ctx, declType, baseID) }
			return passes.CheckNoStateVariableReads(ctx, root, isStateVar, isMappingBase)
		},
	})

	return pl
}
