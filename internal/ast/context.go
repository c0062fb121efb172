package ast

import "fmt"

// Context owns every node for one compilation (spec.md §3 "Node
// ownership"). All inter-node references are by NodeID; Context resolves,
// replaces, and registers children on the owner's behalf.
type Context struct {
	nextID   NodeID
	nodes    map[NodeID]Node
	parent   map[NodeID]NodeID
	children map[NodeID][]NodeID
}

// NewContext returns an empty arena.
func NewContext() *Context {
	return &Context{
		nodes:    make(map[NodeID]Node),
		parent:   make(map[NodeID]NodeID),
		children: make(map[NodeID][]NodeID),
	}
}

// ReserveID allocates the next monotonic id without registering a node
// under it yet.
func (c *Context) ReserveID() NodeID {
	c.nextID++
	return c.nextID
}

// Register records n as a child of parent. n must already carry a reserved
// id (via ReserveID) consistent with n.ID().
func (c *Context) Register(n Node, parent NodeID) {
	c.nodes[n.ID()] = n
	if parent != InvalidID {
		c.parent[n.ID()] = parent
		c.children[parent] = append(c.children[parent], n.ID())
	}
}

// Lookup resolves an id to its node, or (nil, false) if absent (either
// never registered or dropped by Replace).
func (c *Context) Lookup(id NodeID) (Node, bool) {
	if id == InvalidID {
		return nil, false
	}
	n, ok := c.nodes[id]
	return n, ok
}

// MustLookup resolves id or panics; used once earlier passes have already
// established an invariant that id is live.
func (c *Context) MustLookup(id NodeID) Node {
	n, ok := c.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("ast: dangling node id %d", id))
	}
	return n
}

// Parent returns the registered parent of id, or (InvalidID, false) for a
// node with no recorded parent (e.g. the synthetic root).
func (c *Context) Parent(id NodeID) (NodeID, bool) {
	p, ok := c.parent[id]
	return p, ok
}

// Children returns the structural children registered under id, in
// registration order. The mapper's default CommonVisit handler uses this
// for full-tree recursion (SPEC_FULL.md §4.A).
func (c *Context) Children(id NodeID) []NodeID {
	return c.children[id]
}

// SetContextRecursive is a no-op in this implementation: every node
// constructed through Context.ReserveID/Register already belongs to this
// Context, so there is nothing to re-home. It exists so passes that move a
// cloned subtree between positions can call it unconditionally, matching
// spec.md §4.A's contract that "all descendants of new carry the correct
// context" after a replacement.
func (c *Context) SetContextRecursive(root NodeID) {
	_ = root
}

// Replace substitutes newID for oldID under oldID's recorded parent (or
// parentOverride if given), preserving the parent's reference the way
// spec.md §4.A requires. oldID is dropped from the arena; its own children
// are left registered (a pass that wants to keep evaluating them does so by
// construction, e.g. storage-access recursing into the replacement).
//
// Failing to find a parent for oldID is the "fatal bug" spec.md §4.A calls
// out: a node is being replaced that Context never saw registered under a
// parent, which can only mean a pass bug.
func (c *Context) Replace(oldID, newID NodeID, parentOverride ...NodeID) {
	var parentID NodeID
	if len(parentOverride) > 0 {
		parentID = parentOverride[0]
	} else {
		p, ok := c.parent[oldID]
		if !ok {
			panic(fmt.Sprintf("ast: Replace(%d, %d): no recorded parent and no override given", oldID, newID))
		}
		parentID = p
	}

	siblings := c.children[parentID]
	found := false
	for i, sib := range siblings {
		if sib == oldID {
			siblings[i] = newID
			found = true
			break
		}
	}
	if !found {
		panic(fmt.Sprintf("ast: Replace(%d, %d): %d is not a registered child of parent %d", oldID, newID, oldID, parentID))
	}
	c.children[parentID] = siblings

	c.parent[newID] = parentID
	c.SetContextRecursive(newID)

	delete(c.nodes, oldID)
	delete(c.parent, oldID)
}

// adopt records child as a structural child of parent, detaching it from
// any previously recorded parent first. The New* constructors in build.go
// call this for every typed sub-node they're handed (an Assignment's LHS,
// a FunctionCall's arguments, ...), so Context.Children sees the full tree
// regardless of what parent (often InvalidID) the child carried when it was
// separately constructed — which is the normal case for a pass that builds
// a leaf node before it knows the id of the composite node that will own
// it. CommonVisit's generic recursion depends on this being complete.
func (c *Context) adopt(parent, child NodeID) {
	if child == InvalidID || parent == InvalidID {
		return
	}
	if oldParent, ok := c.parent[child]; ok {
		siblings := c.children[oldParent]
		for i, s := range siblings {
			if s == child {
				c.children[oldParent] = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
	}
	c.parent[child] = parent
	c.children[parent] = append(c.children[parent], child)
}

// ClosestAncestor walks parent links from id upward and returns the first
// node whose Kind matches, or (InvalidID, false) if none does.
func (c *Context) ClosestAncestor(id NodeID, kind Kind) (NodeID, bool) {
	cur := id
	for {
		p, ok := c.parent[cur]
		if !ok {
			return InvalidID, false
		}
		if n, ok := c.Lookup(p); ok && n.Kind() == kind {
			return p, true
		}
		cur = p
	}
}

// Describe renders a short, single-line summary of a node for diagnostics
// (spec.md §7 requires the offending node's printed description in
// AssertionFailure messages). It never panics on a dangling id.
func (c *Context) Describe(id NodeID) string {
	n, ok := c.Lookup(id)
	if !ok {
		return fmt.Sprintf("<dangling node %d>", id)
	}
	switch v := n.(type) {
	case *Identifier:
		return fmt.Sprintf("Identifier#%d(%q)", id, v.Name)
	case *Literal:
		return fmt.Sprintf("Literal#%d(%q)", id, v.Value)
	case *Assignment:
		return fmt.Sprintf("Assignment#%d(%s)", id, v.Operator)
	case *IndexAccess:
		return fmt.Sprintf("IndexAccess#%d", id)
	case *FunctionCall:
		return fmt.Sprintf("FunctionCall#%d(%d args)", id, len(v.Arguments))
	case *ElementaryTypeName:
		return fmt.Sprintf("ElementaryTypeName#%d(%q)", id, v.Name)
	default:
		return fmt.Sprintf("%s#%d", n.Kind(), id)
	}
}
