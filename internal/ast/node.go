// Package ast defines the typed AST arena this core rewrites: a closed set
// of node kinds, owned exclusively by a Context, with every inter-node
// reference expressed as an id rather than a pointer (spec.md §3, §4.A).
package ast

// NodeID identifies a node within exactly one Context. Ids are monotonic
// per Context and opaque across Contexts (spec.md §5).
type NodeID int64

// InvalidID is never assigned by Context.ReserveID; it marks an absent
// optional child (e.g. an IndexAccess with no index expression).
const InvalidID NodeID = 0

// Node is the common contract every arena entry satisfies. Kind-specific
// children are exposed by typed accessors on the concrete struct (e.g.
// (*Assignment).VLeftHandSide), following the vLeftHandSide/vRightHandSide naming the
// typed AST this spec distills from uses.
type Node interface {
	ID() NodeID
	Kind() Kind
	Src() string
	TypeString() string
	SetTypeString(string)
}

// BaseNode carries the fields every node variant shares: identity, kind
// tag, source span, optional type string, and pass-attached metadata.
type BaseNode struct {
	id         NodeID
	kind       Kind
	src        string
	typeString string
	metadata   map[string]any
}

func newBase(id NodeID, kind Kind, src string) BaseNode {
	return BaseNode{id: id, kind: kind, src: src}
}

func (b *BaseNode) ID() NodeID  { return b.id }
func (b *BaseNode) Kind() Kind  { return b.kind }
func (b *BaseNode) Src() string { return b.src }

func (b *BaseNode) TypeString() string       { return b.typeString }
func (b *BaseNode) SetTypeString(typ string) { b.typeString = typ }

// Metadata returns a pass-attached value, or (nil, false) if unset.
func (b *BaseNode) Metadata(key string) (any, bool) {
	v, ok := b.metadata[key]
	return v, ok
}

// SetMetadata attaches a pass-local value to the node.
func (b *BaseNode) SetMetadata(key string, value any) {
	if b.metadata == nil {
		b.metadata = make(map[string]any)
	}
	b.metadata[key] = value
}
