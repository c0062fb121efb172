package passes

import (
	"testing"

	"github.com/cwbudde/sol2cairo/internal/ast"
	"github.com/cwbudde/sol2cairo/internal/types"
)

func localVar(ctx *ast.Context, name string) ast.NodeID {
	return ast.NewVariableDeclaration(ctx, ast.InvalidID, "", name, false, ast.MutabilityMutable, ast.LocationDefault, ast.InvalidID, ast.InvalidID)
}

func TestDeclSplitterLeavesSingleDeclarationsAlone(t *testing.T) {
	ctx := ast.NewContext()
	decl := localVar(ctx, "x")
	lit := ast.NewLiteral(ctx, ast.InvalidID, "", ast.LiteralNumber, "int_const 1", "0x1")
	declStmt := ast.NewVariableDeclarationStatement(ctx, ast.InvalidID, "", []ast.NodeID{decl}, lit)
	root := ast.NewBlock(ctx, ast.InvalidID, "", nil)
	ctx.MustLookup(root).(*ast.Block).SetStatements(ctx, []ast.NodeID{declStmt})

	declType := func(ast.NodeID) types.Type { return types.Int{Bits: 251} }
	calleeReturnTypes := func(ast.NodeID) ([]types.Type, bool) { return nil, false }
	pass := NewDeclSplitterPass(declType, calleeReturnTypes)

	if err := pass.Run(ctx, root); err != nil {
		t.Fatalf("Run: %v", err)
	}

	block := ctx.MustLookup(root).(*ast.Block)
	if len(block.Statements) != 1 || block.Statements[0] != declStmt {
		t.Errorf("Statements = %v, want the original single-declaration statement untouched", block.Statements)
	}
}

func TestDeclSplitterSplitsTupleCallOnTypeMismatch(t *testing.T) {
	ctx := ast.NewContext()
	a := localVar(ctx, "a")
	b := localVar(ctx, "b")
	calleeIdent := ast.NewIdentifier(ctx, ast.InvalidID, "", "divmod", ast.InvalidID)
	call := ast.NewFunctionCall(ctx, ast.InvalidID, "", calleeIdent, nil)
	declStmt := ast.NewVariableDeclarationStatement(ctx, ast.InvalidID, "", []ast.NodeID{a, b}, call)
	root := ast.NewBlock(ctx, ast.InvalidID, "", nil)
	ctx.MustLookup(root).(*ast.Block).SetStatements(ctx, []ast.NodeID{declStmt})

	// a is declared felt (matches return type), b is declared Bytes ("felt*")
	// but the callee returns felt for slot 1 — forces a temporary for slot 1
	// only.
	declType := func(id ast.NodeID) types.Type {
		if id == b {
			return types.Bytes{}
		}
		return types.Int{Bits: 251}
	}
	calleeReturnTypes := func(id ast.NodeID) ([]types.Type, bool) {
		if id == calleeIdent {
			return []types.Type{types.Int{Bits: 251}, types.Int{Bits: 251}}, true
		}
		return nil, false
	}
	pass := NewDeclSplitterPass(declType, calleeReturnTypes)

	if err := pass.Run(ctx, root); err != nil {
		t.Fatalf("Run: %v", err)
	}

	block := ctx.MustLookup(root).(*ast.Block)
	if len(block.Statements) != 2 {
		t.Fatalf("Statements = %v, want [original tuple-call stmt, one temp-bound follow-up]", block.Statements)
	}

	rewritten := ctx.MustLookup(declStmt).(*ast.VariableDeclarationStatement)
	if rewritten.Declarations[0] != a {
		t.Errorf("slot 0 (matching type) should stay bound to the original declaration")
	}
	tempDeclID := rewritten.Declarations[1]
	if tempDeclID == b {
		t.Fatal("slot 1 (mismatched type) should have been routed through a synthesized temporary")
	}

	followUp := ctx.MustLookup(block.Statements[1]).(*ast.VariableDeclarationStatement)
	if len(followUp.Declarations) != 1 || followUp.Declarations[0] != b {
		t.Fatalf("follow-up Declarations = %v, want [b]", followUp.Declarations)
	}
	ref, ok := ctx.MustLookup(followUp.InitialValue).(*ast.Identifier)
	if !ok || ref.ReferencedDeclaration != tempDeclID {
		t.Errorf("follow-up initializer should reference the synthesized temp, got %v", ctx.MustLookup(followUp.InitialValue))
	}
}

func TestDeclSplitterExpandsTupleExpressionOneStatementPerSlot(t *testing.T) {
	ctx := ast.NewContext()
	a := localVar(ctx, "a")
	b := localVar(ctx, "b")
	rhsA := ast.NewLiteral(ctx, ast.InvalidID, "", ast.LiteralNumber, "int_const 1", "0x1")
	rhsB := ast.NewLiteral(ctx, ast.InvalidID, "", ast.LiteralNumber, "int_const 2", "0x2")
	tuple := ast.NewTupleExpression(ctx, ast.InvalidID, "", []ast.NodeID{rhsA, rhsB})
	declStmt := ast.NewVariableDeclarationStatement(ctx, ast.InvalidID, "", []ast.NodeID{a, b}, tuple)
	root := ast.NewBlock(ctx, ast.InvalidID, "", nil)
	ctx.MustLookup(root).(*ast.Block).SetStatements(ctx, []ast.NodeID{declStmt})

	declType := func(ast.NodeID) types.Type { return types.Int{Bits: 251} }
	calleeReturnTypes := func(ast.NodeID) ([]types.Type, bool) { return nil, false }
	pass := NewDeclSplitterPass(declType, calleeReturnTypes)

	if err := pass.Run(ctx, root); err != nil {
		t.Fatalf("Run: %v", err)
	}

	block := ctx.MustLookup(root).(*ast.Block)
	if len(block.Statements) != 2 {
		t.Fatalf("Statements = %v, want one statement per tuple slot", block.Statements)
	}
	first := ctx.MustLookup(block.Statements[0]).(*ast.VariableDeclarationStatement)
	second := ctx.MustLookup(block.Statements[1]).(*ast.VariableDeclarationStatement)
	if first.Declarations[0] != a || first.InitialValue != rhsA {
		t.Errorf("first statement = %+v, want a = rhsA", first)
	}
	if second.Declarations[0] != b || second.InitialValue != rhsB {
		t.Errorf("second statement = %+v, want b = rhsB", second)
	}
}

func TestDeclSplitterDropsElidedTupleSlot(t *testing.T) {
	ctx := ast.NewContext()
	a := localVar(ctx, "a")
	rhsA := ast.NewLiteral(ctx, ast.InvalidID, "", ast.LiteralNumber, "int_const 1", "0x1")
	tuple := ast.NewTupleExpression(ctx, ast.InvalidID, "", []ast.NodeID{rhsA, ast.InvalidID})
	declStmt := ast.NewVariableDeclarationStatement(ctx, ast.InvalidID, "", []ast.NodeID{a, ast.InvalidID}, tuple)
	root := ast.NewBlock(ctx, ast.InvalidID, "", nil)
	ctx.MustLookup(root).(*ast.Block).SetStatements(ctx, []ast.NodeID{declStmt})

	declType := func(ast.NodeID) types.Type { return types.Int{Bits: 251} }
	calleeReturnTypes := func(ast.NodeID) ([]types.Type, bool) { return nil, false }
	pass := NewDeclSplitterPass(declType, calleeReturnTypes)

	if err := pass.Run(ctx, root); err != nil {
		t.Fatalf("Run: %v", err)
	}

	block := ctx.MustLookup(root).(*ast.Block)
	if len(block.Statements) != 1 {
		t.Fatalf("Statements = %v, want the elided slot dropped entirely", block.Statements)
	}
}

func TestDeclSplitterExpandsSideEffectOnlySlot(t *testing.T) {
	ctx := ast.NewContext()
	callee := ast.NewIdentifier(ctx, ast.InvalidID, "", "emit", ast.InvalidID)
	sideEffect := ast.NewFunctionCall(ctx, ast.InvalidID, "", callee, nil)
	a := localVar(ctx, "a")
	rhsA := ast.NewLiteral(ctx, ast.InvalidID, "", ast.LiteralNumber, "int_const 1", "0x1")
	tuple := ast.NewTupleExpression(ctx, ast.InvalidID, "", []ast.NodeID{rhsA, sideEffect})
	declStmt := ast.NewVariableDeclarationStatement(ctx, ast.InvalidID, "", []ast.NodeID{a, ast.InvalidID}, tuple)
	root := ast.NewBlock(ctx, ast.InvalidID, "", nil)
	ctx.MustLookup(root).(*ast.Block).SetStatements(ctx, []ast.NodeID{declStmt})

	declType := func(ast.NodeID) types.Type { return types.Int{Bits: 251} }
	calleeReturnTypes := func(ast.NodeID) ([]types.Type, bool) { return nil, false }
	pass := NewDeclSplitterPass(declType, calleeReturnTypes)

	if err := pass.Run(ctx, root); err != nil {
		t.Fatalf("Run: %v", err)
	}

	block := ctx.MustLookup(root).(*ast.Block)
	if len(block.Statements) != 2 {
		t.Fatalf("Statements = %v, want [a = rhsA, emit()]", block.Statements)
	}
	exprStmt, ok := ctx.MustLookup(block.Statements[1]).(*ast.ExpressionStatement)
	if !ok || exprStmt.Expression != sideEffect {
		t.Errorf("second statement = %v, want an ExpressionStatement wrapping the dropped slot's side effect", ctx.MustLookup(block.Statements[1]))
	}
}
