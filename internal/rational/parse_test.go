package rational

import "testing"

func TestParseIntegerAndSeparators(t *testing.T) {
	got, err := Parse("1_000_000")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !got.EqualValueOf(FromInt(1000000)) {
		t.Errorf("Parse(1_000_000) = %s, want 1000000/1", got)
	}
}

func TestParseHex(t *testing.T) {
	got, err := Parse("0x1F")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !got.EqualValueOf(FromInt(31)) {
		t.Errorf("Parse(0x1F) = %s, want 31/1", got)
	}
}

func TestParseDecimal(t *testing.T) {
	got, err := Parse("1.500")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := mustNew(t, 3, 2)
	if !got.EqualValueOf(want) {
		t.Errorf("Parse(1.500) = %s, want %s", got, want)
	}
}

func TestParseDecimalBothPartsEmptyIsZero(t *testing.T) {
	got, err := Parse(".")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !got.EqualValueOf(FromInt(0)) {
		t.Errorf("Parse(.) = %s, want 0/1", got)
	}
}

func TestParseScientificNotation(t *testing.T) {
	got, err := Parse("1.5e2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !got.EqualValueOf(FromInt(150)) {
		t.Errorf("Parse(1.5e2) = %s, want 150/1", got)
	}
}

func TestParseScientificNotationNegativeExponent(t *testing.T) {
	got, err := Parse("15e-2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := mustNew(t, 3, 20)
	if !got.EqualValueOf(want) {
		t.Errorf("Parse(15e-2) = %s, want %s", got, want)
	}
}

func TestParseRoundTripsThroughStringAndParse(t *testing.T) {
	for _, s := range []string{"31", "0x1F", "1.5", "15e-2"} {
		r, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		reparsed, err := Parse(r.String())
		if err != nil {
			t.Fatalf("Parse(%q) [round trip]: %v", r.String(), err)
		}
		if !reparsed.EqualValueOf(r) {
			t.Errorf("round trip of %q: %s != %s", s, reparsed, r)
		}
	}
}

func TestParseEmptyIsError(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Fatalf("Parse(\"\") expected an error")
	}
}
