package passes

import (
	"github.com/cwbudde/sol2cairo/internal/ast"
	cerrors "github.com/cwbudde/sol2cairo/internal/errors"
)

// CheckNoMultiDeclarations implements spec.md §8's declaration-splitter
// postcondition: no VariableDeclarationStatement inside any Block or
// UncheckedBlock declares more than one name, except a statement whose
// initialiser is still a tuple-returning FunctionCall (left atomic by
// design — SPEC_FULL.md §4.G).
func CheckNoMultiDeclarations(ctx *ast.Context, root ast.NodeID) error {
	return walkStatements(ctx, root, func(stmt ast.NodeID) error {
		declStmt, ok := ctx.MustLookup(stmt).(*ast.VariableDeclarationStatement)
		if !ok || len(declStmt.Declarations) <= 1 {
			return nil
		}
		if _, ok := ctx.MustLookup(declStmt.InitialValue).(*ast.FunctionCall); ok {
			return nil
		}
		return cerrors.NewAssertionFailure("declaration-splitter postcondition violated: multi-declaration statement survives with a non-call initialiser", ctx.Describe(stmt))
	})
}

// CheckNoStateVariableReads implements spec.md §8's storage-access
// postcondition: no Identifier in expression position still references a
// state variable, and no IndexAccess over a Pointer-to-Mapping base
// remains un-rewritten. isMappingBase reports whether an IndexAccess's
// Base expression names a Pointer-to-Mapping state variable — the same
// test StorageAccessPass.VisitIndexAccess uses to decide a mapping read,
// exported as passes.IsMappingBase.
func CheckNoStateVariableReads(ctx *ast.Context, root ast.NodeID, isStateVar func(ast.NodeID) bool, isMappingBase func(ast.NodeID) bool) error {
	var walk func(id ast.NodeID) error
	walk = func(id ast.NodeID) error {
		if id == ast.InvalidID {
			return nil
		}
		n, ok := ctx.Lookup(id)
		if !ok {
			return nil
		}
		switch v := n.(type) {
		case *ast.Identifier:
			if isStateVar(v.ReferencedDeclaration) {
				return cerrors.NewAssertionFailure("storage-access postcondition violated: state variable read survives as a bare Identifier", ctx.Describe(id))
			}
		case *ast.IndexAccess:
			if v.Index == ast.InvalidID {
				return nil
			}
			if isMappingBase(v.Base) {
				return cerrors.NewAssertionFailure("storage-access postcondition violated: mapping index access survives un-rewritten", ctx.Describe(id))
			}
		}
		for _, child := range ctx.Children(id) {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root)
}

// walkStatements visits every Block/UncheckedBlock statement reachable from
// root, applying fn to each.
func walkStatements(ctx *ast.Context, root ast.NodeID, fn func(ast.NodeID) error) error {
	var walk func(id ast.NodeID) error
	walk = func(id ast.NodeID) error {
		if id == ast.InvalidID {
			return nil
		}
		n, ok := ctx.Lookup(id)
		if !ok {
			return nil
		}
		switch n.(type) {
		case *ast.Block, *ast.UncheckedBlock:
			for _, stmt := range ctx.Children(id) {
				if err := fn(stmt); err != nil {
					return err
				}
				if err := walk(stmt); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return walk(root)
}
