// Package rational implements the exact-rational compile-time arithmetic
// spec.md §4.C specifies: arbitrary-precision numerator/denominator pairs
// with a positive-denominator normalization invariant, used to fold
// constant expressions the way the input language's compile-time evaluator
// does.
package rational

import (
	"math/big"

	cerrors "github.com/cwbudde/sol2cairo/internal/errors"
)

// Rational is an exact numerator/denominator pair. Denominator is always
// strictly positive after construction (spec.md §3).
type Rational struct {
	num *big.Int
	den *big.Int
}

// New builds a Rational, normalizing sign so Denominator() > 0. A zero
// denominator is a DivisionByZero (spec.md §3).
func New(num, den *big.Int) (*Rational, error) {
	if den.Sign() == 0 {
		return nil, cerrors.NewDivisionByZero("rational literal with zero denominator")
	}
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	return &Rational{num: n, den: d}, nil
}

// FromInt wraps an integer as a rational with denominator 1.
func FromInt(v int64) *Rational {
	return &Rational{num: big.NewInt(v), den: big.NewInt(1)}
}

// Numerator returns a copy of the numerator.
func (r *Rational) Numerator() *big.Int { return new(big.Int).Set(r.num) }

// Denominator returns a copy of the (always positive) denominator.
func (r *Rational) Denominator() *big.Int { return new(big.Int).Set(r.den) }

// IsZero reports whether the value is exactly zero.
func (r *Rational) IsZero() bool { return r.num.Sign() == 0 }

// Sign returns -1, 0, or 1 following the numerator's sign (denominator is
// always positive).
func (r *Rational) Sign() int { return r.num.Sign() }

// Add returns r + other, taking the common-denominator shortcuts spec.md
// §4.C calls for: equal denominators add numerators directly; a
// denominator dividing the other scales only the smaller side; otherwise
// the two sides are cross-multiplied.
func (r *Rational) Add(other *Rational) *Rational {
	if r.den.Cmp(other.den) == 0 {
		return &Rational{num: new(big.Int).Add(r.num, other.num), den: new(big.Int).Set(r.den)}
	}

	if rem := new(big.Int).Rem(other.den, r.den); rem.Sign() == 0 {
		scale := new(big.Int).Div(other.den, r.den)
		num := new(big.Int).Add(new(big.Int).Mul(r.num, scale), other.num)
		return &Rational{num: num, den: new(big.Int).Set(other.den)}
	}
	if rem := new(big.Int).Rem(r.den, other.den); rem.Sign() == 0 {
		scale := new(big.Int).Div(r.den, other.den)
		num := new(big.Int).Add(r.num, new(big.Int).Mul(other.num, scale))
		return &Rational{num: num, den: new(big.Int).Set(r.den)}
	}

	num := new(big.Int).Add(new(big.Int).Mul(r.num, other.den), new(big.Int).Mul(other.num, r.den))
	den := new(big.Int).Mul(r.den, other.den)
	return &Rational{num: num, den: den}
}

// Neg returns -r.
func (r *Rational) Neg() *Rational {
	return &Rational{num: new(big.Int).Neg(r.num), den: new(big.Int).Set(r.den)}
}

// Sub returns r - other, implemented as Add of the negation per spec.md
// §4.C.
func (r *Rational) Sub(other *Rational) *Rational {
	return r.Add(other.Neg())
}

// Mul returns r * other, component-wise, then renormalized through New so
// a zero-denominator product (impossible here, since both denominators are
// already positive) or sign flip is handled uniformly.
func (r *Rational) Mul(other *Rational) *Rational {
	num := new(big.Int).Mul(r.num, other.num)
	den := new(big.Int).Mul(r.den, other.den)
	res, err := New(num, den)
	if err != nil {
		// den is a product of two already-positive denominators; it cannot
		// be zero.
		panic(err)
	}
	return res
}

// Div returns r / other. Dividing by a rational whose numerator is zero is
// a DivisionByZero, propagated via the New constructor (spec.md §4.C).
func (r *Rational) Div(other *Rational) (*Rational, error) {
	num := new(big.Int).Mul(r.num, other.den)
	den := new(big.Int).Mul(r.den, other.num)
	return New(num, den)
}

// Mod implements `(n1*d2 mod n2*d1, d1*d2)` from spec.md §4.C. The
// numerator reduction uses big.Int's Euclidean Mod (always non-negative)
// rather than Go's truncated %; see DESIGN.md for why this is the chosen
// reading of the spec's deferred sign question, not a proven-correct
// match to the input language's own mod.
func (r *Rational) Mod(other *Rational) (*Rational, error) {
	lhs := new(big.Int).Mul(r.num, other.den)
	rhs := new(big.Int).Mul(other.num, r.den)
	if rhs.Sign() == 0 {
		return nil, cerrors.NewDivisionByZero("rational mod by a zero-valued operand")
	}
	num := new(big.Int).Mod(lhs, rhs)
	den := new(big.Int).Mul(r.den, other.den)
	return New(num, den)
}

// EqualValueOf reports whether r and other denote the same rational value,
// by cross-multiplication (spec.md §4.C); both denominators are positive,
// so equality of cross products is equality of value.
func (r *Rational) EqualValueOf(other *Rational) bool {
	lhs := new(big.Int).Mul(r.num, other.den)
	rhs := new(big.Int).Mul(other.num, r.den)
	return lhs.Cmp(rhs) == 0
}

// GreaterThan reports whether r > other, by cross-multiplication: since
// both denominators are positive, the sign of the cross-product difference
// is the sign of the comparison (spec.md §4.C).
func (r *Rational) GreaterThan(other *Rational) bool {
	lhs := new(big.Int).Mul(r.num, other.den)
	rhs := new(big.Int).Mul(other.num, r.den)
	return lhs.Cmp(rhs) > 0
}

// ToInteger returns the quotient and true iff division is exact, or
// (nil, false) otherwise (spec.md §4.C).
func (r *Rational) ToInteger() (*big.Int, bool) {
	q, rem := new(big.Int), new(big.Int)
	q.QuoRem(r.num, r.den, rem)
	if rem.Sign() != 0 {
		return nil, false
	}
	return q, true
}

// String renders "num/den", the canonical form spec.md §8's round-trip
// property checks against Parse.
func (r *Rational) String() string {
	return r.num.String() + "/" + r.den.String()
}
