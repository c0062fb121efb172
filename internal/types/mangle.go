package types

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// CanonicalMangle rewrites name into a legal target-language identifier:
// punctuation illegal in a Cairo identifier becomes '_'. Before that, the
// name is run through NFKD normalization and stripped of combining marks
// (the same golang.org/x/text/unicode/norm machinery the teacher uses for
// Unicode-aware string handling in internal/interp/string_helpers.go), so
// two input names differing only by an accent or compatibility form mangle
// to the same identifier (both "é" and "e" become "e"). If stripping leaves
// nothing, the original name is mangled instead; only an empty result falls
// back to "_" plus the hex byte length of name.
//
// CanonicalMangle is deterministic and total; it is NOT proven
// collision-free across arbitrary user-chosen names (spec.md §9, open
// question — recorded as a deliberate non-guarantee, see DESIGN.md).
func CanonicalMangle(name string) string {
	decomposed := norm.NFKD.String(name)

	var stripped strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		stripped.WriteRune(r)
	}
	normalized := stripped.String()
	if normalized == "" {
		normalized = name
	}

	var b strings.Builder
	for i, r := range normalized {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	out := b.String()
	if out == "" {
		return fmt.Sprintf("_%x", len(name))
	}
	return out
}
