package ast

// Mutability classifies how a declared variable may be written after
// initialization.
type Mutability int

const (
	MutabilityMutable Mutability = iota
	MutabilityImmutable
	MutabilityConstant
)

// StorageLocation classifies where a declaration's value lives, mirroring
// the Pointer location set in the structural type system
// (internal/types.DataLocation).
type StorageLocation int

const (
	LocationDefault StorageLocation = iota
	LocationStorage
	LocationMemory
	LocationCalldata
)

// VariableDeclaration is a named binding: a contract state variable, a
// local, a parameter, or (post declaration-splitter) a synthesized
// temporary.
//
// Value is the declaration's initializer expression when present; for a
// Mapping-typed state variable it holds the canonical base expression the
// storage-access pass splices in at every read site (spec.md §4.F).
type VariableDeclaration struct {
	BaseNode
	Name          string
	StateVariable bool
	Mutability    Mutability
	Location      StorageLocation
	Value         NodeID
	TypeName      NodeID // ElementaryTypeName or Mapping node describing the declared type
}

func (n *VariableDeclaration) VName() string     { return n.Name }
func (n *VariableDeclaration) VValue() NodeID     { return n.Value }
func (n *VariableDeclaration) VTypeName() NodeID  { return n.TypeName }
