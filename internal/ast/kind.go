package ast

// Kind tags every node in the arena. The set is closed: a pass that needs
// to recognize a node form switches on Kind rather than type-asserting,
// and the mapper's dispatch table (internal/mapper) has exactly one entry
// per value here.
type Kind int

const (
	KindInvalid Kind = iota

	KindAssignment
	KindIdentifier
	KindLiteral
	KindIndexAccess
	KindFunctionCall
	KindTupleExpression

	KindVariableDeclaration
	KindVariableDeclarationStatement
	KindExpressionStatement
	KindBlock
	KindUncheckedBlock

	KindMapping
	KindElementaryTypeName
)

var kindNames = map[Kind]string{
	KindInvalid:                      "Invalid",
	KindAssignment:                   "Assignment",
	KindIdentifier:                   "Identifier",
	KindLiteral:                      "Literal",
	KindIndexAccess:                  "IndexAccess",
	KindFunctionCall:                 "FunctionCall",
	KindTupleExpression:              "TupleExpression",
	KindVariableDeclaration:          "VariableDeclaration",
	KindVariableDeclarationStatement: "VariableDeclarationStatement",
	KindExpressionStatement:          "ExpressionStatement",
	KindBlock:                        "Block",
	KindUncheckedBlock:               "UncheckedBlock",
	KindMapping:                      "Mapping",
	KindElementaryTypeName:           "ElementaryTypeName",
}

// String returns the canonical kind name, matching the tag spec.md §3 uses
// when describing each node variant.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
