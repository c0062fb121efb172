// Package mapper implements the uniform visitor/mapper contract spec.md
// §4.D describes: every pass dispatches through the same table, and a pass
// that only cares about a few node kinds inherits default recursion for
// everything else by embedding Base. There is no package-level mutable
// state (spec.md §9): a Walker carries the one piece of state a walk needs
// — which concrete Visitor to re-enter on recursion — explicitly, instead
// of relying on Go method embedding to fake virtual dispatch.
package mapper

import "github.com/cwbudde/sol2cairo/internal/ast"

// Visitor is the per-kind dispatch table every pass implements. A pass
// overrides only the Visit<Kind> methods it rewrites; CommonVisit is what
// every default implementation in Base delegates to, matching the
// "default handler is commonVisit(node) which recurses into every child"
// contract from spec.md §4.D.
type Visitor interface {
	VisitAssignment(w *Walker, id ast.NodeID) error
	VisitIdentifier(w *Walker, id ast.NodeID) error
	VisitLiteral(w *Walker, id ast.NodeID) error
	VisitIndexAccess(w *Walker, id ast.NodeID) error
	VisitFunctionCall(w *Walker, id ast.NodeID) error
	VisitTupleExpression(w *Walker, id ast.NodeID) error
	VisitVariableDeclaration(w *Walker, id ast.NodeID) error
	VisitVariableDeclarationStatement(w *Walker, id ast.NodeID) error
	VisitExpressionStatement(w *Walker, id ast.NodeID) error
	VisitBlock(w *Walker, id ast.NodeID) error
	VisitUncheckedBlock(w *Walker, id ast.NodeID) error
	VisitMapping(w *Walker, id ast.NodeID) error
	VisitElementaryTypeName(w *Walker, id ast.NodeID) error
}

// Base gives every Visit<Kind> method a default body that recurses into
// the node's children, the template-method shape spec.md §9 calls for.
// Concrete passes embed Base and override only the methods they rewrite.
type Base struct{}

func (Base) VisitAssignment(w *Walker, id ast.NodeID) error           { return w.CommonVisit(id) }
func (Base) VisitIdentifier(w *Walker, id ast.NodeID) error           { return w.CommonVisit(id) }
func (Base) VisitLiteral(w *Walker, id ast.NodeID) error              { return w.CommonVisit(id) }
func (Base) VisitIndexAccess(w *Walker, id ast.NodeID) error          { return w.CommonVisit(id) }
func (Base) VisitFunctionCall(w *Walker, id ast.NodeID) error         { return w.CommonVisit(id) }
func (Base) VisitTupleExpression(w *Walker, id ast.NodeID) error      { return w.CommonVisit(id) }
func (Base) VisitVariableDeclaration(w *Walker, id ast.NodeID) error  { return w.CommonVisit(id) }
func (Base) VisitBlock(w *Walker, id ast.NodeID) error                { return w.CommonVisit(id) }
func (Base) VisitUncheckedBlock(w *Walker, id ast.NodeID) error       { return w.CommonVisit(id) }
func (Base) VisitMapping(w *Walker, id ast.NodeID) error              { return w.CommonVisit(id) }
func (Base) VisitElementaryTypeName(w *Walker, id ast.NodeID) error   { return w.CommonVisit(id) }
func (Base) VisitExpressionStatement(w *Walker, id ast.NodeID) error  { return w.CommonVisit(id) }
func (Base) VisitVariableDeclarationStatement(w *Walker, id ast.NodeID) error {
	return w.CommonVisit(id)
}

// Walker threads a Context and the concrete Visitor for one walk. Passes
// construct one Walker per top-level Run call (spec.md §5: pass-local
// state, never shared across compilations).
type Walker struct {
	Ctx *ast.Context
	V   Visitor
}

// NewWalker builds a Walker over ctx that dispatches to v.
func NewWalker(ctx *ast.Context, v Visitor) *Walker {
	return &Walker{Ctx: ctx, V: v}
}

// Visit dispatches id to the Visit<Kind> method w.V implements for its
// kind. Passes call this (directly, or via CommonVisit) to walk or re-walk
// a subtree, e.g. after a Context.Replace.
func (w *Walker) Visit(id ast.NodeID) error {
	if id == ast.InvalidID {
		return nil
	}
	n, ok := w.Ctx.Lookup(id)
	if !ok {
		return nil
	}

	switch n.Kind() {
	case ast.KindAssignment:
		return w.V.VisitAssignment(w, id)
	case ast.KindIdentifier:
		return w.V.VisitIdentifier(w, id)
	case ast.KindLiteral:
		return w.V.VisitLiteral(w, id)
	case ast.KindIndexAccess:
		return w.V.VisitIndexAccess(w, id)
	case ast.KindFunctionCall:
		return w.V.VisitFunctionCall(w, id)
	case ast.KindTupleExpression:
		return w.V.VisitTupleExpression(w, id)
	case ast.KindVariableDeclaration:
		return w.V.VisitVariableDeclaration(w, id)
	case ast.KindVariableDeclarationStatement:
		return w.V.VisitVariableDeclarationStatement(w, id)
	case ast.KindExpressionStatement:
		return w.V.VisitExpressionStatement(w, id)
	case ast.KindBlock:
		return w.V.VisitBlock(w, id)
	case ast.KindUncheckedBlock:
		return w.V.VisitUncheckedBlock(w, id)
	case ast.KindMapping:
		return w.V.VisitMapping(w, id)
	case ast.KindElementaryTypeName:
		return w.V.VisitElementaryTypeName(w, id)
	default:
		return w.CommonVisit(id)
	}
}

// CommonVisit recurses into every structural child of id, re-dispatching
// each through Visit so an override further down the tree still runs.
func (w *Walker) CommonVisit(id ast.NodeID) error {
	for _, child := range w.Ctx.Children(id) {
		if err := w.Visit(child); err != nil {
			return err
		}
	}
	return nil
}
