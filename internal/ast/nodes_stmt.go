package ast

// ExpressionStatement wraps an expression evaluated for its side effect.
type ExpressionStatement struct {
	BaseNode
	Expression NodeID
}

func (n *ExpressionStatement) VExpression() NodeID { return n.Expression }

// VariableDeclarationStatement binds zero or more declarations to an
// optional single initializer. Before the declaration-splitter pass runs,
// Declarations may hold more than one id (a multi-name `int a, b;`) or
// contain InvalidID entries (an elided tuple slot, spec.md §4.G). After the
// pass, every surviving statement holds exactly one declaration, except the
// single tuple-returning-call case the pass leaves atomic.
type VariableDeclarationStatement struct {
	BaseNode
	Declarations  []NodeID
	InitialValue  NodeID
	Documentation *string
	Raw           *string
}

func (n *VariableDeclarationStatement) VDeclarations() []NodeID { return n.Declarations }
func (n *VariableDeclarationStatement) VInitialValue() NodeID   { return n.InitialValue }

// Block is a `{ ... }` sequence whose statements execute in declaration
// order and may be freely rewritten in place by the declaration-splitter
// pass.
type Block struct {
	BaseNode
	Statements []NodeID
}

func (n *Block) VStatements() []NodeID { return n.Statements }

// SetStatements replaces the block's direct children in the arena's
// bookkeeping so later Context.Children(id) and Context.Parent(stmt) calls
// see the rewritten list — needed by the declaration-splitter pass, which
// inserts newly synthesized statements (spec.md §4.G) that never went
// through Context.Register under this block.
func (n *Block) SetStatements(ctx *Context, stmts []NodeID) {
	n.Statements = stmts
	ctx.children[n.id] = nil
	for _, s := range stmts {
		ctx.adopt(n.id, s)
	}
}

// UncheckedBlock is a Block whose contained arithmetic is exempt from
// overflow checks; it shares the declaration-splitter's rewriting rules.
type UncheckedBlock struct {
	BaseNode
	Statements []NodeID
}

func (n *UncheckedBlock) VStatements() []NodeID { return n.Statements }

// SetStatements mirrors Block.SetStatements for UncheckedBlock.
func (n *UncheckedBlock) SetStatements(ctx *Context, stmts []NodeID) {
	n.Statements = stmts
	ctx.children[n.id] = nil
	for _, s := range stmts {
		ctx.adopt(n.id, s)
	}
}
