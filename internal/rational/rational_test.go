package rational

import (
	"math/big"
	"testing"

	cerrors "github.com/cwbudde/sol2cairo/internal/errors"
)

func mustNew(t *testing.T, num, den int64) *Rational {
	t.Helper()
	r, err := New(big.NewInt(num), big.NewInt(den))
	if err != nil {
		t.Fatalf("New(%d, %d): %v", num, den, err)
	}
	return r
}

func TestNewNormalizesNegativeDenominator(t *testing.T) {
	r := mustNew(t, 3, -4)
	if r.Numerator().Int64() != -3 || r.Denominator().Int64() != 4 {
		t.Errorf("New(3, -4) = %s, want -3/4", r)
	}
	if r.Denominator().Sign() <= 0 {
		t.Errorf("Denominator() = %s, want strictly positive", r.Denominator())
	}
}

func TestNewZeroDenominatorIsDivisionByZero(t *testing.T) {
	_, err := New(big.NewInt(1), big.NewInt(0))
	if !cerrors.Is(err, cerrors.KindDivisionByZero) {
		t.Errorf("New(1, 0) error = %v, want DivisionByZero", err)
	}
}

// a.multiply(b).divideBy(b).equalValueOf(a) for non-zero a, b (spec.md §8).
func TestMultiplyDivideRoundTrip(t *testing.T) {
	cases := [][2][2]int64{
		{{3, 4}, {5, 7}},
		{{-2, 3}, {9, 11}},
		{{1, 1}, {-1, 2}},
	}
	for _, c := range cases {
		a := mustNew(t, c[0][0], c[0][1])
		b := mustNew(t, c[1][0], c[1][1])
		product := a.Mul(b)
		back, err := product.Div(b)
		if err != nil {
			t.Fatalf("Div: %v", err)
		}
		if !back.EqualValueOf(a) {
			t.Errorf("(%s * %s) / %s = %s, want %s", a, b, b, back, a)
		}
	}
}

// a.add(neg(a)).equalValueOf(0/1) for all a (spec.md §8).
func TestAddNegationIsZero(t *testing.T) {
	zero := FromInt(0)
	for _, c := range [][2]int64{{3, 4}, {-7, 9}, {0, 1}, {100, 1}} {
		a := mustNew(t, c[0], c[1])
		sum := a.Add(a.Neg())
		if !sum.EqualValueOf(zero) {
			t.Errorf("%s + neg(%s) = %s, want 0/1", a, a, sum)
		}
	}
}

func TestNormalizationDenominatorAlwaysPositive(t *testing.T) {
	for _, c := range [][2]int64{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}} {
		r := mustNew(t, c[0], c[1])
		if r.Denominator().Sign() <= 0 {
			t.Errorf("New(%d, %d).Denominator() = %s, want > 0", c[0], c[1], r.Denominator())
		}
	}
}

func TestExpZeroExponentIsOneForAnyBase(t *testing.T) {
	one := FromInt(1)
	for _, c := range [][2]int64{{0, 1}, {5, 2}, {-3, 7}} {
		base := mustNew(t, c[0], c[1])
		got, err := base.Exp(FromInt(0))
		if err != nil {
			t.Fatalf("Exp(0) on %s: %v", base, err)
		}
		if !got.EqualValueOf(one) {
			t.Errorf("(%s)^0 = %s, want 1/1", base, got)
		}
	}
}

func TestExpNegativeExponentNegativeBase(t *testing.T) {
	base := mustNew(t, -2, 1)
	got, err := base.Exp(mustNew(t, -3, 1))
	if err != nil {
		t.Fatalf("Exp(-3): %v", err)
	}
	want := mustNew(t, -1, 8)
	if !got.EqualValueOf(want) {
		t.Errorf("(-2)^-3 = %s, want %s", got, want)
	}
}

func TestExpZeroBaseNegativeExponentIsDivisionByZero(t *testing.T) {
	_, err := FromInt(0).Exp(FromInt(-1))
	if !cerrors.Is(err, cerrors.KindDivisionByZero) {
		t.Errorf("0^-1 error = %v, want DivisionByZero", err)
	}
}

func TestToIntegerExactAndInexact(t *testing.T) {
	exact := mustNew(t, 10, 2)
	q, ok := exact.ToInteger()
	if !ok || q.Int64() != 5 {
		t.Errorf("ToInteger(10/2) = (%v, %v), want (5, true)", q, ok)
	}

	inexact := mustNew(t, 10, 3)
	if _, ok := inexact.ToInteger(); ok {
		t.Errorf("ToInteger(10/3) unexpectedly exact")
	}
}

func TestGreaterThan(t *testing.T) {
	if !mustNew(t, 3, 4).GreaterThan(mustNew(t, 1, 2)) {
		t.Errorf("3/4 > 1/2 expected true")
	}
	if mustNew(t, 1, 2).GreaterThan(mustNew(t, 3, 4)) {
		t.Errorf("1/2 > 3/4 expected false")
	}
}

func TestModUsesEuclideanReduction(t *testing.T) {
	got, err := mustNew(t, -7, 1).Mod(mustNew(t, 3, 1))
	if err != nil {
		t.Fatalf("Mod: %v", err)
	}
	want := mustNew(t, 2, 1)
	if !got.EqualValueOf(want) {
		t.Errorf("-7 mod 3 = %s, want %s", got, want)
	}
}
