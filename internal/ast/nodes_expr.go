package ast

// Assignment is `vLeftHandSide <operator> vRightHandSide`.
type Assignment struct {
	BaseNode
	LHS      NodeID
	Operator string
	RHS      NodeID
}

func (n *Assignment) VLeftHandSide() NodeID  { return n.LHS }
func (n *Assignment) VRightHandSide() NodeID { return n.RHS }

// Identifier references a name; ReferencedDeclaration resolves it to the
// VariableDeclaration (or other declaration) it names, InvalidID if the
// front-end left it unresolved.
type Identifier struct {
	BaseNode
	Name                  string
	ReferencedDeclaration NodeID
}

func (n *Identifier) VName() string                { return n.Name }
func (n *Identifier) VReferencedDeclaration() NodeID { return n.ReferencedDeclaration }

// LiteralKind distinguishes the textual forms a Literal can carry.
type LiteralKind int

const (
	LiteralNumber LiteralKind = iota
	LiteralHexNumber
	LiteralString
	LiteralBool
)

// Literal is a compile-time constant. Number literals synthesized by a
// pass (e.g. a storage slot) carry both Value ("int_const 7") and Hex
// ("0x7") per spec.md §4.F.
type Literal struct {
	BaseNode
	LitKind LiteralKind
	Value   string
	Hex     string
}

// SlotLiteralText computes the two textual forms spec.md §4.F requires for
// a synthesized storage slot literal: "int_const <slot>", and its hex form.
func SlotLiteralText(slot int) (value, hex string) {
	return "int_const " + itoa(slot), "0x" + itoHex(slot)
}

// IndexAccess is `vBaseExpression[vIndexExpression]`. Index is InvalidID
// when the front-end produced an undefined index (e.g. `arr[]` on the LHS
// of a push), which spec.md §4.F treats as a fatal WillNotSupport case.
type IndexAccess struct {
	BaseNode
	Base  NodeID
	Index NodeID
}

func (n *IndexAccess) VBaseExpression() NodeID  { return n.Base }
func (n *IndexAccess) VIndexExpression() NodeID { return n.Index }

// FunctionCall is `vExpression(vArguments...)`.
type FunctionCall struct {
	BaseNode
	Callee    NodeID
	Arguments []NodeID
}

func (n *FunctionCall) VExpression() NodeID   { return n.Callee }
func (n *FunctionCall) VArguments() []NodeID { return n.Arguments }

// TupleExpression holds vComponents; a component is InvalidID for an
// elided slot (`(, b) = f();`), per spec.md §4.G.
type TupleExpression struct {
	BaseNode
	Components []NodeID
}

func (n *TupleExpression) VComponents() []NodeID { return n.Components }

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func itoHex(v int) string {
	if v == 0 {
		return "0"
	}
	const digits = "0123456789abcdef"
	var buf [16]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = digits[v%16]
		v /= 16
	}
	return string(buf[i:])
}
