// Package utilgen implements the utility-function generator spec.md §4.E
// describes: storageRead/storageWrite/readMapping/writeMapping build the
// target-language call expression a rewritten node needs, and memoise the
// helper body they call by a canonical (operation, type-signature) key so
// two calls with the same signature reuse one generated function.
package utilgen

import (
	"fmt"

	"github.com/maruel/natural"

	"github.com/cwbudde/sol2cairo/internal/ast"
	"github.com/cwbudde/sol2cairo/internal/types"
)

// Registry is a per-compilation helper-function table (spec.md §5: never
// shared across compilations). It is safe to construct once per
// compileunit.Unit and pass to every pass that needs it.
type Registry struct {
	helperNames map[string]string // canonical key -> generated helper name
	bodies      map[string]string // helper name -> emitted target-language source
}

// NewRegistry returns an empty, compilation-scoped registry.
func NewRegistry() *Registry {
	return &Registry{
		helperNames: make(map[string]string),
		bodies:      make(map[string]string),
	}
}

// Preamble returns every generated helper body, ordered by natural sort of
// the helper name (embedded digit runs compare by numeric value, other
// characters byte by byte, so storageRead_Uint256 precedes
// storageRead_felt), regardless of the AST traversal order that triggered
// registration — SPEC_FULL.md §4.E. Downstream pretty-printers concatenate
// this slice ahead of the lowered program.
func (r *Registry) Preamble() []string {
	names := make([]string, 0, len(r.bodies))
	for name := range r.bodies {
		names = append(names, name)
	}
	natural.Sort(names)

	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, r.bodies[name])
	}
	return out
}

// HelperCount reports how many distinct helpers have been generated so
// far, primarily for the deduplication property test in spec.md §8.
func (r *Registry) HelperCount() int {
	return len(r.bodies)
}

// register returns the existing helper name for key if one was already
// generated (idempotence, spec.md §3 "identical keys return the same
// helper name"), otherwise generates proposedName's body via build and
// records it.
func (r *Registry) register(key, proposedName string, build func() string) string {
	if name, ok := r.helperNames[key]; ok {
		return name
	}
	r.helperNames[key] = proposedName
	r.bodies[proposedName] = build()
	return proposedName
}

func calleeCall(ctx *ast.Context, parent ast.NodeID, src, helperName string, args []ast.NodeID) ast.NodeID {
	callee := ast.NewIdentifier(ctx, ast.InvalidID, src, helperName, ast.InvalidID)
	return ast.NewFunctionCall(ctx, parent, src, callee, args)
}

// StorageRead returns `storageRead_<Type>(slot)` and registers
// `storageRead_<Type>` keyed by the Cairo type name alone, so every state
// variable of the same target type shares one helper (spec.md §4.E).
func (r *Registry) StorageRead(ctx *ast.Context, parent ast.NodeID, src string, slot ast.NodeID, cairoType string) ast.NodeID {
	mangled := types.CanonicalMangle(cairoType)
	key := "storageRead:" + mangled
	name := r.register(key, "storageRead_"+mangled, func() string {
		return storageReadBody("storageRead_"+mangled, cairoType)
	})
	return calleeCall(ctx, parent, src, name, []ast.NodeID{slot})
}

// StorageWrite returns `storageWrite_<Type>(slot, value)` and registers
// `storageWrite_<Type>`.
func (r *Registry) StorageWrite(ctx *ast.Context, parent ast.NodeID, src string, slot, value ast.NodeID, cairoType string) ast.NodeID {
	mangled := types.CanonicalMangle(cairoType)
	key := "storageWrite:" + mangled
	name := r.register(key, "storageWrite_"+mangled, func() string {
		return storageWriteBody("storageWrite_"+mangled, cairoType)
	})
	return calleeCall(ctx, parent, src, name, []ast.NodeID{slot, value})
}

// ReadMapping returns `readMapping_<Key>_<Value>(base, index)` and
// registers `readMapping_<Key>_<Value>`.
func (r *Registry) ReadMapping(ctx *ast.Context, parent ast.NodeID, src string, base, index ast.NodeID, keyType, valueType string) ast.NodeID {
	mk, mv := types.CanonicalMangle(keyType), types.CanonicalMangle(valueType)
	key := "readMapping:" + mk + ":" + mv
	name := r.register(key, "readMapping_"+mk+"_"+mv, func() string {
		return readMappingBody("readMapping_"+mk+"_"+mv, keyType, valueType)
	})
	return calleeCall(ctx, parent, src, name, []ast.NodeID{base, index})
}

// WriteMapping returns `writeMapping_<Key>_<Value>(base, index, value)` and
// registers `writeMapping_<Key>_<Value>`.
func (r *Registry) WriteMapping(ctx *ast.Context, parent ast.NodeID, src string, base, index, value ast.NodeID, keyType, valueType string) ast.NodeID {
	mk, mv := types.CanonicalMangle(keyType), types.CanonicalMangle(valueType)
	key := "writeMapping:" + mk + ":" + mv
	name := r.register(key, "writeMapping_"+mk+"_"+mv, func() string {
		return writeMappingBody("writeMapping_"+mk+"_"+mv, keyType, valueType)
	})
	return calleeCall(ctx, parent, src, name, []ast.NodeID{base, index, value})
}

// storageReadBody emits a felt-pair read for Uint256 (low/high limbs) and a
// single felt read otherwise, per spec.md §4.B's value representation
// split.
func storageReadBody(name, cairoType string) string {
	if cairoType == "Uint256" {
		return fmt.Sprintf(`func %s{syscall_ptr: felt*, range_check_ptr}(slot: felt) -> (value: Uint256) {
    let (low) = storage_read(address=slot);
    let (high) = storage_read(address=slot + 1);
    return (value=Uint256(low=low, high=high));
}
`, name)
	}
	return fmt.Sprintf(`func %s{syscall_ptr: felt*, range_check_ptr}(slot: felt) -> (value: felt) {
    let (value) = storage_read(address=slot);
    return (value=value);
}
`, name)
}

func storageWriteBody(name, cairoType string) string {
	if cairoType == "Uint256" {
		return fmt.Sprintf(`func %s{syscall_ptr: felt*, range_check_ptr}(slot: felt, value: Uint256) {
    storage_write(address=slot, value=value.low);
    storage_write(address=slot + 1, value=value.high);
    return ();
}
`, name)
	}
	return fmt.Sprintf(`func %s{syscall_ptr: felt*, range_check_ptr}(slot: felt, value: felt) {
    storage_write(address=slot, value=value);
    return ();
}
`, name)
}

func readMappingBody(name, keyType, valueType string) string {
	return fmt.Sprintf(`func %s{syscall_ptr: felt*, pedersen_ptr: HashBuiltin*, range_check_ptr}(base: felt, index: %s) -> (value: %s) {
    let (slot) = hash2{hash_ptr=pedersen_ptr}(base, index);
    let (value) = storage_read(address=slot);
    return (value=value);
}
`, name, keyType, valueType)
}

func writeMappingBody(name, keyType, valueType string) string {
	return fmt.Sprintf(`func %s{syscall_ptr: felt*, pedersen_ptr: HashBuiltin*, range_check_ptr}(base: felt, index: %s, value: %s) {
    let (slot) = hash2{hash_ptr=pedersen_ptr}(base, index);
    storage_write(address=slot, value=value);
    return ();
}
`, name, keyType, valueType)
}
