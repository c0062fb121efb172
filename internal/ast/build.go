package ast

// The New* constructors below reserve an id, build the node, and register
// it under parent (InvalidID for a node attached later via Replace). They
// are the only supported way to add nodes to a Context: BaseNode's fields
// are unexported so a node can never exist without a reserved, registered
// id. Each constructor also adopts every typed sub-node it is handed, so
// Context.Children(id) reflects the full tree even when a caller built a
// child before the parent's id existed (the normal case for pass-synthesized
// expressions).

func NewIdentifier(ctx *Context, parent NodeID, src, name string, ref NodeID) NodeID {
	id := ctx.ReserveID()
	ctx.Register(&Identifier{
		BaseNode:              newBase(id, KindIdentifier, src),
		Name:                  name,
		ReferencedDeclaration: ref,
	}, parent)
	return id
}

func NewLiteral(ctx *Context, parent NodeID, src string, kind LiteralKind, value, hex string) NodeID {
	id := ctx.ReserveID()
	ctx.Register(&Literal{
		BaseNode: newBase(id, KindLiteral, src),
		LitKind:  kind,
		Value:    value,
		Hex:      hex,
	}, parent)
	return id
}

func NewAssignment(ctx *Context, parent NodeID, src string, lhs NodeID, operator string, rhs NodeID) NodeID {
	id := ctx.ReserveID()
	ctx.Register(&Assignment{
		BaseNode: newBase(id, KindAssignment, src),
		LHS:      lhs,
		Operator: operator,
		RHS:      rhs,
	}, parent)
	ctx.adopt(id, lhs)
	ctx.adopt(id, rhs)
	return id
}

func NewIndexAccess(ctx *Context, parent NodeID, src string, base, index NodeID) NodeID {
	id := ctx.ReserveID()
	ctx.Register(&IndexAccess{
		BaseNode: newBase(id, KindIndexAccess, src),
		Base:     base,
		Index:    index,
	}, parent)
	ctx.adopt(id, base)
	ctx.adopt(id, index)
	return id
}

func NewFunctionCall(ctx *Context, parent NodeID, src string, callee NodeID, args []NodeID) NodeID {
	id := ctx.ReserveID()
	ctx.Register(&FunctionCall{
		BaseNode:  newBase(id, KindFunctionCall, src),
		Callee:    callee,
		Arguments: args,
	}, parent)
	ctx.adopt(id, callee)
	for _, arg := range args {
		ctx.adopt(id, arg)
	}
	return id
}

func NewTupleExpression(ctx *Context, parent NodeID, src string, components []NodeID) NodeID {
	id := ctx.ReserveID()
	ctx.Register(&TupleExpression{
		BaseNode:   newBase(id, KindTupleExpression, src),
		Components: components,
	}, parent)
	for _, c := range components {
		ctx.adopt(id, c)
	}
	return id
}

func NewVariableDeclaration(ctx *Context, parent NodeID, src, name string, stateVar bool, mut Mutability, loc StorageLocation, typeName, value NodeID) NodeID {
	id := ctx.ReserveID()
	ctx.Register(&VariableDeclaration{
		BaseNode:      newBase(id, KindVariableDeclaration, src),
		Name:          name,
		StateVariable: stateVar,
		Mutability:    mut,
		Location:      loc,
		TypeName:      typeName,
		Value:         value,
	}, parent)
	ctx.adopt(id, typeName)
	ctx.adopt(id, value)
	return id
}

func NewVariableDeclarationStatement(ctx *Context, parent NodeID, src string, decls []NodeID, initial NodeID) NodeID {
	id := ctx.ReserveID()
	ctx.Register(&VariableDeclarationStatement{
		BaseNode:     newBase(id, KindVariableDeclarationStatement, src),
		Declarations: decls,
		InitialValue: initial,
	}, parent)
	for _, d := range decls {
		ctx.adopt(id, d)
	}
	ctx.adopt(id, initial)
	return id
}

func NewExpressionStatement(ctx *Context, parent NodeID, src string, expr NodeID) NodeID {
	id := ctx.ReserveID()
	ctx.Register(&ExpressionStatement{
		BaseNode:   newBase(id, KindExpressionStatement, src),
		Expression: expr,
	}, parent)
	ctx.adopt(id, expr)
	return id
}

func NewBlock(ctx *Context, parent NodeID, src string, statements []NodeID) NodeID {
	id := ctx.ReserveID()
	ctx.Register(&Block{
		BaseNode:   newBase(id, KindBlock, src),
		Statements: statements,
	}, parent)
	for _, s := range statements {
		ctx.adopt(id, s)
	}
	return id
}

func NewUncheckedBlock(ctx *Context, parent NodeID, src string, statements []NodeID) NodeID {
	id := ctx.ReserveID()
	ctx.Register(&UncheckedBlock{
		BaseNode:   newBase(id, KindUncheckedBlock, src),
		Statements: statements,
	}, parent)
	for _, s := range statements {
		ctx.adopt(id, s)
	}
	return id
}

func NewElementaryTypeName(ctx *Context, parent NodeID, src, name string) NodeID {
	id := ctx.ReserveID()
	ctx.Register(&ElementaryTypeName{
		BaseNode: newBase(id, KindElementaryTypeName, src),
		Name:     name,
	}, parent)
	return id
}

func NewMapping(ctx *Context, parent NodeID, src string, key, value NodeID) NodeID {
	id := ctx.ReserveID()
	ctx.Register(&Mapping{
		BaseNode:  newBase(id, KindMapping, src),
		KeyType:   key,
		ValueType: value,
	}, parent)
	ctx.adopt(id, key)
	ctx.adopt(id, value)
	return id
}
