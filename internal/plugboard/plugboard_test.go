package plugboard

import (
	"testing"

	"github.com/mdelacour/enigforce/internal/letter"
)

func TestNewIdentity(t *testing.T) {
	pb, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil) error: %v", err)
	}
	for _, l := range letter.All() {
		if pb.Map(l) != l {
			t.Errorf("Map(%v) = %v, want identity", l, pb.Map(l))
		}
	}
}

func TestNewPairs(t *testing.T) {
	pb, err := New([]Pair{{letter.A, letter.B}, {letter.C, letter.D}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if pb.Map(letter.A) != letter.B || pb.Map(letter.B) != letter.A {
		t.Errorf("A/B not reciprocally wired")
	}
	if pb.Map(letter.C) != letter.D || pb.Map(letter.D) != letter.C {
		t.Errorf("C/D not reciprocally wired")
	}
	if pb.Map(letter.E) != letter.E {
		t.Errorf("unwired letter E should map to itself")
	}
}

func TestNewRejectsDuplicateLetter(t *testing.T) {
	tests := []struct {
		name  string
		pairs []Pair
	}{
		{"reused in second pair", []Pair{{letter.A, letter.B}, {letter.A, letter.C}}},
		{"self pair", []Pair{{letter.A, letter.A}}},
		{"repeated pair", []Pair{{letter.A, letter.B}, {letter.B, letter.A}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.pairs); err == nil {
				t.Error("expected error, got none")
			}
		})
	}
}

func TestPairsRoundTrip(t *testing.T) {
	want := []Pair{{letter.A, letter.B}, {letter.C, letter.D}}
	pb, err := New(want)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	got := pb.Pairs()
	if len(got) != len(want) {
		t.Fatalf("Pairs() len = %d, want %d", len(got), len(want))
	}
}

func TestClone(t *testing.T) {
	pb, _ := New([]Pair{{letter.A, letter.B}})
	clone := pb.Clone()
	if clone.Map(letter.A) != letter.B {
		t.Errorf("clone should preserve mapping")
	}
	// Mutating the original's backing array shouldn't reach the clone.
	pb.mapping[letter.C] = letter.D
	if clone.Map(letter.C) != letter.C {
		t.Errorf("clone should be independent of original")
	}
}

func TestValid(t *testing.T) {
	if !Valid([]Pair{{letter.A, letter.B}, {letter.C, letter.D}}) {
		t.Error("expected valid")
	}
	if Valid([]Pair{{letter.A, letter.B}, {letter.A, letter.C}}) {
		t.Error("expected invalid (reused letter)")
	}
	if Valid([]Pair{{letter.A, letter.A}}) {
		t.Error("expected invalid (self pair)")
	}
}

func FuzzValid(f *testing.F) {
	f.Add(0, 1, 2, 3)
	f.Fuzz(func(t *testing.T, a, b, c, d int) {
		pairs := []Pair{
			{letter.Letter(mod26(a)), letter.Letter(mod26(b))},
			{letter.Letter(mod26(c)), letter.Letter(mod26(d))},
		}
		// Valid must never panic, regardless of input.
		if Valid(pairs) {
			if _, err := New(pairs); err != nil {
				t.Errorf("Valid(%v) = true but New() failed: %v", pairs, err)
			}
		}
	})
}

func mod26(n int) int {
	n %= letter.Count
	if n < 0 {
		n += letter.Count
	}
	return n
}
