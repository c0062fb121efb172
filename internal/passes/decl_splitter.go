package passes

import (
	"strconv"

	"github.com/cwbudde/sol2cairo/internal/ast"
	cerrors "github.com/cwbudde/sol2cairo/internal/errors"
	"github.com/cwbudde/sol2cairo/internal/mapper"
	"github.com/cwbudde/sol2cairo/internal/types"
)

// DeclSplitterPass canonicalises every multi-name VariableDeclarationStatement
// within a Block/UncheckedBlock into single-name statements, splitting a
// tuple-returning call's mismatched slots through a synthesized temporary
// (spec.md §4.G). It must run before StorageAccessPass (SPEC_FULL.md §4.H):
// a split-out `a = __warp_td_0;` is a plain Assignment that 4.F still needs
// to see.
type DeclSplitterPass struct {
	mapper.Base

	translator *types.Translator

	// declType resolves a VariableDeclaration to its structural Type, used
	// to compare a tuple slot's declared type against the callee's i-th
	// return type "textually" (by comparing their Cairo translations).
	declType func(declID ast.NodeID) types.Type

	// calleeReturnTypes resolves a FunctionCall's Callee to its declared
	// return types, reporting false when the callee's return shape isn't a
	// Tuple at all (an ordinary single-value call).
	calleeReturnTypes func(calleeID ast.NodeID) ([]types.Type, bool)

	tdCounter int
}

// NewDeclSplitterPass builds the pass against the injected type lookups —
// both come from the front-end's resolved types, never re-derived here.
func NewDeclSplitterPass(declType func(ast.NodeID) types.Type, calleeReturnTypes func(ast.NodeID) ([]types.Type, bool)) *DeclSplitterPass {
	return &DeclSplitterPass{
		translator:        types.NewTranslator(),
		declType:          declType,
		calleeReturnTypes: calleeReturnTypes,
	}
}

// Name identifies the pass for the pipeline driver's logging.
func (p *DeclSplitterPass) Name() string { return "decl-splitter" }

// Run walks root (expected to be a Block or UncheckedBlock) splitting every
// multi-declaration statement it contains, post-order over nested blocks.
func (p *DeclSplitterPass) Run(ctx *ast.Context, root ast.NodeID) error {
	return mapper.NewWalker(ctx, p).Visit(root)
}

// freshName implements spec.md §4.D's `__warp_<prefix>_<counter>` scheme.
// The counter is a field on this pass instance, never package-level state,
// so two passes (or two compilations) never share a sequence.
func (p *DeclSplitterPass) freshName(prefix string) string {
	n := p.tdCounter
	p.tdCounter++
	return "__warp_" + prefix + "_" + strconv.Itoa(n)
}

// VisitBlock and VisitUncheckedBlock both implement spec.md §4.G's "post-
// order over nested blocks, then linear rewrite of the block's direct
// children" traversal.
func (p *DeclSplitterPass) VisitBlock(w *mapper.Walker, id ast.NodeID) error {
	return p.splitBlock(w, id, func(stmts []ast.NodeID) {
		w.Ctx.MustLookup(id).(*ast.Block).SetStatements(w.Ctx, stmts)
	})
}

func (p *DeclSplitterPass) VisitUncheckedBlock(w *mapper.Walker, id ast.NodeID) error {
	return p.splitBlock(w, id, func(stmts []ast.NodeID) {
		w.Ctx.MustLookup(id).(*ast.UncheckedBlock).SetStatements(w.Ctx, stmts)
	})
}

func (p *DeclSplitterPass) splitBlock(w *mapper.Walker, id ast.NodeID, setStatements func([]ast.NodeID)) error {
	ctx := w.Ctx
	original := append([]ast.NodeID(nil), ctx.Children(id)...)

	for _, stmt := range original {
		switch ctx.MustLookup(stmt).(type) {
		case *ast.Block, *ast.UncheckedBlock:
			if err := w.Visit(stmt); err != nil {
				return err
			}
		}
	}

	rewritten := make([]ast.NodeID, 0, len(original))
	for _, stmt := range original {
		declStmt, ok := ctx.MustLookup(stmt).(*ast.VariableDeclarationStatement)
		if !ok {
			rewritten = append(rewritten, stmt)
			continue
		}
		split, err := p.splitDeclarationStatement(ctx, id, declStmt)
		if err != nil {
			return err
		}
		rewritten = append(rewritten, split...)
	}

	setStatements(rewritten)
	return nil
}

// splitDeclarationStatement implements the per-statement rewrite rule
// spec.md §4.G specifies. parent is the enclosing block, used as the
// parent for every newly synthesized node.
func (p *DeclSplitterPass) splitDeclarationStatement(ctx *ast.Context, parent ast.NodeID, stmt *ast.VariableDeclarationStatement) ([]ast.NodeID, error) {
	k := len(stmt.Declarations)
	if k <= 1 {
		return []ast.NodeID{stmt.ID()}, nil
	}

	if call, ok := ctx.MustLookup(stmt.InitialValue).(*ast.FunctionCall); ok {
		if returnTypes, isTuple := p.calleeReturnTypes(call.Callee); isTuple {
			if len(returnTypes) != k {
				return nil, cerrors.NewTranspileFailed("tuple-returning call arity does not match declaration count: " + ctx.Describe(stmt.ID()))
			}
			return p.splitTupleCall(ctx, parent, stmt, call, returnTypes)
		}
	}

	if tuple, ok := ctx.MustLookup(stmt.InitialValue).(*ast.TupleExpression); ok {
		return p.splitTupleExpression(ctx, parent, stmt, tuple)
	}

	return nil, cerrors.NewTranspileFailed("multi-declaration statement with unsupported initialiser shape: " + ctx.Describe(stmt.ID()))
}

// splitTupleCall implements the `(T0, ..., Tk-1)`-returning function call
// branch: the call executes once, each mismatched slot is routed through a
// synthesized temporary bound by a follow-up statement.
func (p *DeclSplitterPass) splitTupleCall(ctx *ast.Context, parent ast.NodeID, stmt *ast.VariableDeclarationStatement, call *ast.FunctionCall, returnTypes []types.Type) ([]ast.NodeID, error) {
	followUps := make([]ast.NodeID, 0, len(stmt.Declarations))

	for i, declID := range stmt.Declarations {
		if declID == ast.InvalidID {
			return nil, cerrors.NewTranspileFailed("tuple-returning call declaration slot has no declaration id: " + ctx.Describe(stmt.ID()))
		}
		decl := ctx.MustLookup(declID).(*ast.VariableDeclaration)

		declaredText, err := p.translator.Cairo(p.declType(declID))
		if err != nil {
			return nil, err
		}
		wantText, err := p.translator.Cairo(returnTypes[i])
		if err != nil {
			return nil, err
		}
		if declaredText == wantText {
			continue
		}

		tempName := p.freshName("td")
		typeNameID := ast.NewElementaryTypeName(ctx, ast.InvalidID, decl.Src(), wantText)
		tempID := ast.NewVariableDeclaration(ctx, parent, decl.Src(), tempName, false, ast.MutabilityConstant, ast.LocationDefault, typeNameID, ast.InvalidID)

		stmt.Declarations[i] = tempID

		tempRef := ast.NewIdentifier(ctx, ast.InvalidID, decl.Src(), tempName, tempID)
		followUpID := ast.NewVariableDeclarationStatement(ctx, parent, decl.Src(), []ast.NodeID{declID}, tempRef)
		followUps = append(followUps, followUpID)
	}

	out := make([]ast.NodeID, 0, 1+len(followUps))
	out = append(out, stmt.ID())
	out = append(out, followUps...)
	return out, nil
}

// splitTupleExpression implements the TupleExpression-initialiser branch:
// the statement deconstructs a tuple literal or prior multi-value result
// one slot at a time, with no call to preserve the single-execution order
// of.
func (p *DeclSplitterPass) splitTupleExpression(ctx *ast.Context, parent ast.NodeID, stmt *ast.VariableDeclarationStatement, tuple *ast.TupleExpression) ([]ast.NodeID, error) {
	if len(tuple.Components) != len(stmt.Declarations) {
		return nil, cerrors.NewTranspileFailed("tuple expression arity does not match declaration count: " + ctx.Describe(stmt.ID()))
	}

	out := make([]ast.NodeID, 0, len(stmt.Declarations))
	docAssigned := false

	for i, declID := range stmt.Declarations {
		rhs := tuple.Components[i]

		switch {
		case declID == ast.InvalidID && rhs == ast.InvalidID:
			// dropped: no side effect to preserve.
			continue

		case declID == ast.InvalidID:
			exprStmtID := ast.NewExpressionStatement(ctx, parent, stmt.Src(), rhs)
			out = append(out, exprStmtID)
			docAssigned = true

		default:
			newStmtID := ast.NewVariableDeclarationStatement(ctx, parent, stmt.Src(), []ast.NodeID{declID}, rhs)
			if !docAssigned {
				newStmt := ctx.MustLookup(newStmtID).(*ast.VariableDeclarationStatement)
				newStmt.Documentation = stmt.Documentation
				newStmt.Raw = stmt.Raw
			}
			out = append(out, newStmtID)
			docAssigned = true
		}
	}

	return out, nil
}
