package rational

import (
	"math/big"

	cerrors "github.com/cwbudde/sol2cairo/internal/errors"
)

// Exp implements spec.md §4.C's exponentiation rule. other must reduce to
// an exact integer (ToInteger non-null) or Exp fails with TranspileFailed —
// the rational engine has no notion of fractional exponents.
func (r *Rational) Exp(other *Rational) (*Rational, error) {
	k, ok := other.ToInteger()
	if !ok {
		return nil, cerrors.NewTranspileFailed("rational exponent must be an integer")
	}

	if k.Sign() == 0 {
		return FromInt(1), nil
	}

	if k.Sign() > 0 {
		if r.IsZero() {
			return FromInt(0), nil
		}
		exp := k.Uint64()
		num := new(big.Int).Exp(r.num, new(big.Int).SetUint64(exp), nil)
		den := new(big.Int).Exp(r.den, new(big.Int).SetUint64(exp), nil)
		return New(num, den)
	}

	// k < 0.
	if r.IsZero() {
		return nil, cerrors.NewDivisionByZero("zero base raised to a negative exponent")
	}

	base := r
	if r.num.Sign() < 0 {
		base = &Rational{num: new(big.Int).Neg(r.num), den: new(big.Int).Set(r.den)}
	}

	absExp := new(big.Int).Neg(k).Uint64()
	num := new(big.Int).Exp(base.den, new(big.Int).SetUint64(absExp), nil)
	den := new(big.Int).Exp(base.num, new(big.Int).SetUint64(absExp), nil)
	result, err := New(num, den)
	if err != nil {
		return nil, err
	}
	if r.num.Sign() < 0 && absExp%2 == 1 {
		result = result.Neg()
	}
	return result, nil
}
