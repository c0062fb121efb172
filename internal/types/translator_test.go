package types

import (
	"math/big"
	"testing"

	cerrors "github.com/cwbudde/sol2cairo/internal/errors"
)

func TestCairoIntWidths(t *testing.T) {
	tr := NewTranslator()

	cases := []struct {
		t    Type
		want string
	}{
		{Int{Bits: 8, Signed: false}, "felt"},
		{Int{Bits: 251, Signed: false}, "felt"},
		{Int{Bits: 256, Signed: false}, "Uint256"},
		{Bool{}, "felt"},
		{Address{}, "felt"},
		{String{}, "felt"},
		{Bytes{}, "felt*"},
	}
	for _, c := range cases {
		got, err := tr.Cairo(c.t)
		if err != nil {
			t.Errorf("Cairo(%#v) error: %v", c.t, err)
			continue
		}
		if got != c.want {
			t.Errorf("Cairo(%#v) = %q, want %q", c.t, got, c.want)
		}
	}
}

func TestCairoArray(t *testing.T) {
	tr := NewTranslator()
	got, err := tr.Cairo(Array{Element: Int{Bits: 256, Signed: false}})
	if err != nil {
		t.Fatalf("Cairo(Array) error: %v", err)
	}
	if got != "Uint256*" {
		t.Errorf("Cairo(Array{Uint256}) = %q, want %q", got, "Uint256*")
	}
}

func TestCairoPointerErasesToPointee(t *testing.T) {
	tr := NewTranslator()
	got, err := tr.Cairo(Pointer{Pointee: Int{Bits: 8, Signed: false}, Location: LocationStorage})
	if err != nil {
		t.Fatalf("Cairo(Pointer) error: %v", err)
	}
	if got != "felt" {
		t.Errorf("Cairo(Pointer{felt}) = %q, want felt", got)
	}
}

func TestCairoTupleIsUnhandled(t *testing.T) {
	tr := NewTranslator()
	_, err := tr.Cairo(Tuple{Elements: []Type{Bool{}, Bool{}}})
	if !cerrors.Is(err, cerrors.KindUnhandledType) {
		t.Errorf("Cairo(Tuple) error = %v, want UnhandledType", err)
	}
}

func TestCairoUserDefinedMangled(t *testing.T) {
	tr := NewTranslator()
	got, err := tr.Cairo(UserDefined{Name: "My Struct", ReferencedDeclaration: 1})
	if err != nil {
		t.Fatalf("Cairo(UserDefined) error: %v", err)
	}
	if got != CanonicalMangle("My Struct") {
		t.Errorf("Cairo(UserDefined) = %q, want mangled form", got)
	}
}

func TestCairoArrayWithLength(t *testing.T) {
	tr := NewTranslator()
	got, err := tr.Cairo(Array{Element: Bool{}, Length: big.NewInt(4)})
	if err != nil {
		t.Fatalf("Cairo(Array) error: %v", err)
	}
	if got != "felt*" {
		t.Errorf("Cairo(fixed Array{felt}) = %q, want felt*", got)
	}
}
