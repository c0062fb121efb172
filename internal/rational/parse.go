package rational

import (
	"math/big"
	"strings"

	cerrors "github.com/cwbudde/sol2cairo/internal/errors"
)

// Parse implements the compile-time numeric literal grammar spec.md §4.C
// defines: digit separators are stripped first, then the literal is
// classified as hex, scientific notation, decimal, or plain integer.
func Parse(s string) (*Rational, error) {
	s = strings.ReplaceAll(s, "_", "")
	if s == "" {
		return nil, cerrors.NewTranspileFailed("empty numeric literal")
	}

	// A "num/den" string is only ever produced by (*Rational).String, never
	// written by a user — accepting it here is what makes spec.md §8's
	// round-trip property ("parse(s).toString()" reparses to an equal
	// value) hold for Rational's own canonical form, which the input
	// language's literal grammar never itself generates.
	if idx := strings.IndexByte(s, '/'); idx >= 0 {
		num, ok := new(big.Int).SetString(s[:idx], 10)
		if !ok {
			return nil, cerrors.NewTranspileFailed("malformed rational literal " + s)
		}
		den, ok := new(big.Int).SetString(s[idx+1:], 10)
		if !ok {
			return nil, cerrors.NewTranspileFailed("malformed rational literal " + s)
		}
		return New(num, den)
	}

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, ok := new(big.Int).SetString(s[2:], 16)
		if !ok {
			return nil, cerrors.NewTranspileFailed("malformed hex literal " + s)
		}
		return FromInt(0).addInt(v), nil
	}

	if idx := strings.IndexAny(s, "eE"); idx >= 0 {
		coefficient, exponentStr := s[:idx], s[idx+1:]
		exponent, ok := new(big.Int).SetString(exponentStr, 10)
		if !ok {
			return nil, cerrors.NewTranspileFailed("malformed exponent in literal " + s)
		}

		coeff, err := parseDecimalOrInt(coefficient)
		if err != nil {
			return nil, err
		}

		pow := new(big.Int).Exp(big.NewInt(10), new(big.Int).Abs(exponent), nil)
		factor := FromInt(0).addInt(pow)
		if exponent.Sign() < 0 {
			return coeff.Div(factor)
		}
		return coeff.Mul(factor), nil
	}

	if strings.Contains(s, ".") {
		return parseDecimal(s)
	}

	return parseDecimalOrInt(s)
}

func parseDecimalOrInt(s string) (*Rational, error) {
	if strings.Contains(s, ".") {
		return parseDecimal(s)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, cerrors.NewTranspileFailed("malformed integer literal " + s)
	}
	return FromInt(0).addInt(v), nil
}

// parseDecimal implements the "contains '.'" branch of spec.md §4.C:
// intPart without leading zeros, decimalPart without trailing zeros, value
// = intPart.decimalPart / 10^len(decimalPart); both parts empty is 0/1.
func parseDecimal(s string) (*Rational, error) {
	dot := strings.IndexByte(s, '.')
	intPart := strings.TrimLeft(s[:dot], "0")
	decimalPart := strings.TrimRight(s[dot+1:], "0")

	if intPart == "" && decimalPart == "" {
		return FromInt(0), nil
	}

	digits := intPart + decimalPart
	if digits == "" {
		digits = "0"
	}
	num, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, cerrors.NewTranspileFailed("malformed decimal literal " + s)
	}

	den := big.NewInt(1)
	ten := big.NewInt(10)
	for range decimalPart {
		den.Mul(den, ten)
	}

	return New(num, den)
}

// addInt folds an integer into r's value without allocating a throwaway
// Rational for the common "plain integer literal" path.
func (r *Rational) addInt(v *big.Int) *Rational {
	return r.Add(&Rational{num: v, den: big.NewInt(1)})
}
