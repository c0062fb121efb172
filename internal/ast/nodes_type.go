package ast

// ElementaryTypeName is a type-name node for a built-in type written out in
// source (e.g. "uint256", "address", "bool"). It is distinct from the
// structural internal/types.Type the translator consumes: this node is
// what the front-end attaches to a declaration, the structural type is
// what gets derived from it.
type ElementaryTypeName struct {
	BaseNode
	Name string
}

func (n *ElementaryTypeName) VName() string { return n.Name }

// Mapping is a type-name node for `mapping(K => V)`.
type Mapping struct {
	BaseNode
	KeyType   NodeID
	ValueType NodeID
}

func (n *Mapping) VKeyType() NodeID   { return n.KeyType }
func (n *Mapping) VValueType() NodeID { return n.ValueType }
