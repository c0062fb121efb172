package ast

import "testing"

func TestNewAssignmentAccessors(t *testing.T) {
	ctx := NewContext()
	lhs := NewIdentifier(ctx, InvalidID, "a", "a", InvalidID)
	rhs := NewLiteral(ctx, InvalidID, "1", LiteralNumber, "int_const 1", "0x1")
	id := NewAssignment(ctx, InvalidID, "a = 1", lhs, "=", rhs)

	assign := ctx.MustLookup(id).(*Assignment)
	if assign.VLeftHandSide() != lhs {
		t.Errorf("VLeftHandSide() = %d, want %d", assign.VLeftHandSide(), lhs)
	}
	if assign.VRightHandSide() != rhs {
		t.Errorf("VRightHandSide() = %d, want %d", assign.VRightHandSide(), rhs)
	}
}

func TestNewMappingAccessors(t *testing.T) {
	ctx := NewContext()
	key := NewElementaryTypeName(ctx, InvalidID, "", "address")
	value := NewElementaryTypeName(ctx, InvalidID, "", "uint256")
	id := NewMapping(ctx, InvalidID, "mapping(address => uint256)", key, value)

	m := ctx.MustLookup(id).(*Mapping)
	if m.VKeyType() != key || m.VValueType() != value {
		t.Errorf("Mapping accessors = (%d, %d), want (%d, %d)", m.VKeyType(), m.VValueType(), key, value)
	}
}

func TestSlotLiteralText(t *testing.T) {
	value, hex := SlotLiteralText(31)
	if value != "int_const 31" {
		t.Errorf("value = %q, want %q", value, "int_const 31")
	}
	if hex != "0x1f" {
		t.Errorf("hex = %q, want %q", hex, "0x1f")
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	ctx := NewContext()
	id := NewIdentifier(ctx, InvalidID, "x", "x", InvalidID)
	n := ctx.MustLookup(id)

	base, ok := n.(*Identifier)
	if !ok {
		t.Fatalf("unexpected node type %T", n)
	}
	if _, ok := base.Metadata("slot"); ok {
		t.Fatalf("Metadata(slot) unexpectedly present before SetMetadata")
	}
	base.SetMetadata("slot", 7)
	v, ok := base.Metadata("slot")
	if !ok || v.(int) != 7 {
		t.Fatalf("Metadata(slot) = (%v, %v), want (7, true)", v, ok)
	}
}

func TestKindStringUnknown(t *testing.T) {
	if got := Kind(999).String(); got != "Unknown" {
		t.Errorf("Kind(999).String() = %q, want %q", got, "Unknown")
	}
}
