// Package passes implements the representative hard passes spec.md §4.F
// and §4.G specify: the storage-access rewriter and the declaration
// splitter. Both are mapper.Visitor implementations run by
// internal/pipeline's driver.
package passes

import (
	"github.com/cwbudde/sol2cairo/internal/alloc"
	"github.com/cwbudde/sol2cairo/internal/ast"
	cerrors "github.com/cwbudde/sol2cairo/internal/errors"
	"github.com/cwbudde/sol2cairo/internal/mapper"
	"github.com/cwbudde/sol2cairo/internal/types"
	"github.com/cwbudde/sol2cairo/internal/utilgen"
)

// StorageAccessPass lowers contract-state reads and writes — including
// mapping indexing — into calls to generated storage accessor helpers,
// using an allocation table assigned by an earlier (out-of-scope) pass
// (spec.md §4.F).
type StorageAccessPass struct {
	mapper.Base

	Helpers    *utilgen.Registry
	Translator *types.Translator
	Table      *alloc.Table

	// declType resolves an Identifier/IndexAccess's owning
	// VariableDeclaration to its structural Type, since the AST's own
	// type-name nodes (internal/ast.ElementaryTypeName/Mapping) only carry
	// source-level names, not the resolved structural Type the translator
	// consumes. In a full pipeline this would come from the front-end's
	// type-resolution output; the pass takes it as an injected lookup so
	// it stays decoupled from how that resolution happened.
	declType func(declID ast.NodeID) types.Type
}

// NewStorageAccessPass builds the pass against one contract's allocation
// table and declared-type lookup.
func NewStorageAccessPass(helpers *utilgen.Registry, table *alloc.Table, declType func(ast.NodeID) types.Type) *StorageAccessPass {
	return &StorageAccessPass{
		Helpers:    helpers,
		Translator: types.NewTranslator(),
		Table:      table,
		declType:   declType,
	}
}

// Name identifies the pass for the pipeline driver's logging.
func (p *StorageAccessPass) Name() string { return "storage-access" }

// Run walks program (a Block or UncheckedBlock root) rewriting every
// Assignment and Identifier per spec.md §4.F.
func (p *StorageAccessPass) Run(ctx *ast.Context, root ast.NodeID) error {
	return mapper.NewWalker(ctx, p).Visit(root)
}

func (p *StorageAccessPass) isStateVar(ctx *ast.Context, declID ast.NodeID) (*ast.VariableDeclaration, bool) {
	n, ok := ctx.Lookup(declID)
	if !ok {
		return nil, false
	}
	decl, ok := n.(*ast.VariableDeclaration)
	if !ok || !decl.StateVariable {
		return nil, false
	}
	return decl, true
}

// IsStateVariable reports whether declID names a state variable. It is
// exported for the between-pass invariant checker (CheckNoStateVariableReads),
// which needs the same test without constructing a full StorageAccessPass.
func IsStateVariable(ctx *ast.Context, declID ast.NodeID) bool {
	n, ok := ctx.Lookup(declID)
	if !ok {
		return false
	}
	decl, ok := n.(*ast.VariableDeclaration)
	return ok && decl.StateVariable
}

// VisitAssignment implements spec.md §4.F's three-way Assignment rule. The
// replacement call is built and spliced in first, adopting the operands it
// still needs (RHS, a mapping write's Index, and its resolved base value)
// as its own children; only then are those operands visited, so any
// further rewrite inside them (e.g. a nested storage read in the RHS)
// lands under the replacement's already-correct parent rather than the
// discarded Assignment/IndexAccess. A mapping write's Base is never passed
// through as-is: it names the mapping state variable itself, which is
// still a "state variable read" as far as CheckNoStateVariableReads and a
// second Run are concerned, so it is resolved to a clone of the mapping's
// own canonical base value first (mappingBaseValue), the same value a bare
// mapping read splices in.
func (p *StorageAccessPass) VisitAssignment(w *mapper.Walker, id ast.NodeID) error {
	ctx := w.Ctx
	assign := ctx.MustLookup(id).(*ast.Assignment)
	parent, hasParent := ctx.Parent(id)
	if !hasParent {
		return cerrors.NewAssertionFailure("assignment with no recorded parent", ctx.Describe(id))
	}

	if lhsIdent, ok := ctx.MustLookup(assign.LHS).(*ast.Identifier); ok {
		if _, isState := p.isStateVar(ctx, lhsIdent.ReferencedDeclaration); isState {
			rhs := assign.RHS
			slot, err := p.Table.Slot(ctx, lhsIdent.ReferencedDeclaration)
			if err != nil {
				return err
			}
			cairoType, err := p.Translator.Cairo(p.declType(lhsIdent.ReferencedDeclaration))
			if err != nil {
				return err
			}

			slotValue, slotHex := ast.SlotLiteralText(slot)
			slotID := ast.NewLiteral(ctx, ast.InvalidID, "", ast.LiteralNumber, slotValue, slotHex)
			replacement := p.Helpers.StorageWrite(ctx, parent, assign.Src(), slotID, rhs, cairoType)
			ctx.Replace(id, replacement, parent)
			return w.Visit(rhs)
		}
	}

	if idx, ok := ctx.MustLookup(assign.LHS).(*ast.IndexAccess); ok {
		baseType, mappingTypeOK := p.mappingTypeOf(ctx, idx.Base)
		if mappingTypeOK {
			if idx.Index == ast.InvalidID {
				return cerrors.NewAssertionFailure("mapping write with no index expression", ctx.Describe(idx.ID()))
			}
			index, rhs := idx.Index, assign.RHS
			keyType, err := p.Translator.Cairo(baseType.Key)
			if err != nil {
				return err
			}
			valueType, err := p.Translator.Cairo(baseType.Value)
			if err != nil {
				return err
			}
			baseValue, err := p.mappingBaseValue(ctx, parent, idx.Base)
			if err != nil {
				return err
			}
			replacement := p.Helpers.WriteMapping(ctx, parent, assign.Src(), baseValue, index, rhs, keyType, valueType)
			ctx.Replace(id, replacement, parent)
			if err := w.Visit(baseValue); err != nil {
				return err
			}
			if err := w.Visit(index); err != nil {
				return err
			}
			return w.Visit(rhs)
		}
		return cerrors.NewNotSupportedYet("write to non-mapping IndexAccess LHS: " + ctx.Describe(assign.LHS))
	}

	return w.CommonVisit(id)
}

// VisitIdentifier implements spec.md §4.F's read-site rewrite. Writes are
// fully handled by VisitAssignment, which never recurses back into a
// rewritten LHS, so any Identifier reaching this method is a read.
func (p *StorageAccessPass) VisitIdentifier(w *mapper.Walker, id ast.NodeID) error {
	ctx := w.Ctx
	ident := ctx.MustLookup(id).(*ast.Identifier)

	decl, isState := p.isStateVar(ctx, ident.ReferencedDeclaration)
	if !isState {
		return nil
	}

	parent, hasParent := ctx.Parent(id)
	if !hasParent {
		return cerrors.NewAssertionFailure("state variable read with no recorded parent", ctx.Describe(id))
	}

	declared := p.declType(ident.ReferencedDeclaration)
	if _, isMapping := unwrapPointer(declared).(types.Mapping); isMapping {
		if decl.Value == ast.InvalidID {
			return cerrors.NewAssertionFailure("mapping-typed state variable has no canonical base expression", ctx.Describe(ident.ReferencedDeclaration))
		}
		clone := cloneSubtree(ctx, decl.Value, parent)
		ctx.Replace(id, clone, parent)
		return w.Visit(clone)
	}

	slot, err := p.Table.Slot(ctx, ident.ReferencedDeclaration)
	if err != nil {
		return err
	}
	cairoType, err := p.Translator.Cairo(declared)
	if err != nil {
		return err
	}
	slotValue, slotHex := ast.SlotLiteralText(slot)
	slotID := ast.NewLiteral(ctx, ast.InvalidID, "", ast.LiteralNumber, slotValue, slotHex)
	replacement := p.Helpers.StorageRead(ctx, parent, ident.Src(), slotID, cairoType)
	ctx.Replace(id, replacement, parent)
	return nil
}

// VisitIndexAccess implements spec.md §4.F's read-site IndexAccess rule.
// A write-position IndexAccess never reaches here: VisitAssignment handles
// and replaces it before recursing. The replacement is spliced in before
// Index is visited, for the same reason as VisitAssignment's mapping-write
// case; Base is resolved to its mapping's canonical value first
// (mappingBaseValue) rather than passed through as a lingering reference
// to the mapping state variable.
func (p *StorageAccessPass) VisitIndexAccess(w *mapper.Walker, id ast.NodeID) error {
	ctx := w.Ctx
	idx := ctx.MustLookup(id).(*ast.IndexAccess)

	if idx.Index == ast.InvalidID {
		return cerrors.NewWillNotSupport("IndexAccess with an undefined index: " + ctx.Describe(id))
	}

	mappingType, ok := p.mappingTypeOf(ctx, idx.Base)
	if !ok {
		return cerrors.NewNotSupportedYet("IndexAccess over a non-mapping base: " + ctx.Describe(idx.Base))
	}

	parent, hasParent := ctx.Parent(id)
	if !hasParent {
		return cerrors.NewAssertionFailure("IndexAccess with no recorded parent", ctx.Describe(id))
	}

	index := idx.Index
	keyType, err := p.Translator.Cairo(mappingType.Key)
	if err != nil {
		return err
	}
	valueType, err := p.Translator.Cairo(mappingType.Value)
	if err != nil {
		return err
	}
	baseValue, err := p.mappingBaseValue(ctx, parent, idx.Base)
	if err != nil {
		return err
	}
	replacement := p.Helpers.ReadMapping(ctx, parent, idx.Src(), baseValue, index, keyType, valueType)
	ctx.Replace(id, replacement, parent)
	if err := w.Visit(baseValue); err != nil {
		return err
	}
	return w.Visit(index)
}

// mappingBaseValue resolves a mapping state variable's Identifier base
// expression to a fresh clone of its declared canonical value — the same
// value VisitIdentifier splices in for a bare mapping read. A
// readMapping/writeMapping call's base argument must be this resolved
// value rather than the mapping Identifier itself: leaving the Identifier
// in place would be a state-variable read the invariant checker and a
// second Run would both still have to rewrite.
func (p *StorageAccessPass) mappingBaseValue(ctx *ast.Context, parent, baseID ast.NodeID) (ast.NodeID, error) {
	ident, ok := ctx.MustLookup(baseID).(*ast.Identifier)
	if !ok {
		return ast.InvalidID, cerrors.NewAssertionFailure("mapping base is not a plain Identifier", ctx.Describe(baseID))
	}
	decl, ok := ctx.MustLookup(ident.ReferencedDeclaration).(*ast.VariableDeclaration)
	if !ok || decl.Value == ast.InvalidID {
		return ast.InvalidID, cerrors.NewAssertionFailure("mapping-typed state variable has no canonical base expression", ctx.Describe(ident.ReferencedDeclaration))
	}
	return cloneSubtree(ctx, decl.Value, parent), nil
}

// mappingTypeOf reports the Mapping type a Pointer-to-Mapping base
// expression names, resolving through the Identifier that names the
// mapping state variable.
func (p *StorageAccessPass) mappingTypeOf(ctx *ast.Context, baseID ast.NodeID) (types.Mapping, bool) {
	return mappingTypeOf(ctx, p.declType, baseID)
}

// mappingTypeOf is the declType-parameterized form shared by
// StorageAccessPass and the exported IsMappingBase invariant helper below.
func mappingTypeOf(ctx *ast.Context, declType func(ast.NodeID) types.Type, baseID ast.NodeID) (types.Mapping, bool) {
	ident, ok := ctx.MustLookup(baseID).(*ast.Identifier)
	if !ok {
		return types.Mapping{}, false
	}
	declared := declType(ident.ReferencedDeclaration)
	m, ok := unwrapPointer(declared).(types.Mapping)
	return m, ok
}

// IsMappingBase reports whether baseID is an Identifier naming a
// Pointer-to-Mapping state variable. Exported for the between-pass
// invariant checker (CheckNoStateVariableReads), which needs the same
// test without constructing a full StorageAccessPass.
func IsMappingBase(ctx *ast.Context, declType func(ast.NodeID) types.Type, baseID ast.NodeID) bool {
	_, ok := mappingTypeOf(ctx, declType, baseID)
	return ok
}

func unwrapPointer(t types.Type) types.Type {
	if ptr, ok := t.(types.Pointer); ok {
		return ptr.Pointee
	}
	return t
}

// cloneSubtree deep-copies the subtree rooted at id under newParent. It is
// used for the Mapping-typed read rewrite (spec.md §4.F), which splices a
// clone of the declaration's initializer in place of every read site
// rather than sharing one node across multiple positions in the tree.
func cloneSubtree(ctx *ast.Context, id, newParent ast.NodeID) ast.NodeID {
	if id == ast.InvalidID {
		return ast.InvalidID
	}
	n := ctx.MustLookup(id)

	switch v := n.(type) {
	case *ast.Identifier:
		return ast.NewIdentifier(ctx, newParent, v.Src(), v.Name, v.ReferencedDeclaration)
	case *ast.Literal:
		return ast.NewLiteral(ctx, newParent, v.Src(), v.LitKind, v.Value, v.Hex)
	case *ast.IndexAccess:
		newID := ast.NewIndexAccess(ctx, newParent, v.Src(), ast.InvalidID, ast.InvalidID)
		idx := ctx.MustLookup(newID).(*ast.IndexAccess)
		idx.Base = cloneSubtree(ctx, v.Base, newID)
		idx.Index = cloneSubtree(ctx, v.Index, newID)
		return newID
	case *ast.FunctionCall:
		args := make([]ast.NodeID, len(v.Arguments))
		newID := ast.NewFunctionCall(ctx, newParent, v.Src(), ast.InvalidID, nil)
		call := ctx.MustLookup(newID).(*ast.FunctionCall)
		call.Callee = cloneSubtree(ctx, v.Callee, newID)
		for i, arg := range v.Arguments {
			args[i] = cloneSubtree(ctx, arg, newID)
		}
		call.Arguments = args
		return newID
	default:
		// Every node form a canonical base expression can legally take is
		// handled above; anything else reaching here means an earlier pass
		// produced a base expression shape this core was never told about.
		panic("ast: cloneSubtree: unsupported node kind " + n.Kind().String())
	}
}
