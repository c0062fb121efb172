package types

import (
	"fmt"

	cerrors "github.com/cwbudde/sol2cairo/internal/errors"
)

// Translator maps structural Types to target-language type strings
// following the fixed table in spec.md §4.B. It is stateless and safe to
// share across compilations: canonicalMangle is a pure function of its
// input, nothing here is memoised (unlike internal/utilgen, which does
// memoise per compilation).
type Translator struct{}

// NewTranslator returns the (stateless) translator.
func NewTranslator() *Translator { return &Translator{} }

// maxFeltBits is the largest integer width spec.md §4.B maps to "felt"
// rather than "Uint256".
const maxFeltBits = 251

// Cairo maps t to its target-language type string, or UnhandledType for a
// variant the table does not cover.
func (tr *Translator) Cairo(t Type) (string, error) {
	if t == nil {
		return "", cerrors.NewUnhandledType("<nil type>")
	}

	switch v := t.(type) {
	case Int:
		if v.Bits <= maxFeltBits {
			return "felt", nil
		}
		return "Uint256", nil
	case Bool:
		return "felt", nil
	case Address:
		return "felt", nil
	case String:
		return "felt", nil
	case Bytes:
		return "felt*", nil
	case Array:
		elem, err := tr.Cairo(v.Element)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s*", elem), nil
	case Mapping:
		// Diagnostics only: writes to a Mapping are lowered to a helper
		// call by the storage-access pass, never rendered as this string.
		key, err := tr.Cairo(v.Key)
		if err != nil {
			return "", err
		}
		val, err := tr.Cairo(v.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s => %s", key, val), nil
	case Function:
		return "felt*", nil
	case Tuple:
		return "", cerrors.NewUnhandledType("Tuple has no single target type; lower via the declaration-splitter pass first")
	case Pointer:
		return tr.Cairo(v.Pointee)
	case UserDefined:
		return CanonicalMangle(v.Name), nil
	case Builtin:
		return CanonicalMangle(v.Name), nil
	case BuiltinStruct:
		return CanonicalMangle(v.Name), nil
	default:
		return "", cerrors.NewUnhandledType(fmt.Sprintf("%T", t))
	}
}
