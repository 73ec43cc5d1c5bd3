package cli

import (
	"testing"

	"github.com/mdelacour/enigforce/internal/letter"
	"github.com/mdelacour/enigforce/internal/plugboard"
	"github.com/mdelacour/enigforce/internal/reflector"
	"github.com/mdelacour/enigforce/internal/rotor"
	"github.com/mdelacour/enigforce/pkg/search"
)

func TestParseRotorSpecsFullyKnown(t *testing.T) {
	slots, err := parseRotorSpecs([]string{"I:A", "II:B", "III:C"})
	if err != nil {
		t.Fatalf("parseRotorSpecs error: %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(slots))
	}
	if *slots[0].ID != rotor.I || *slots[0].Start != letter.A {
		t.Errorf("slot 0 = %v:%v, want I:A", *slots[0].ID, *slots[0].Start)
	}
	if *slots[2].ID != rotor.III || *slots[2].Start != letter.C {
		t.Errorf("slot 2 = %v:%v, want III:C", *slots[2].ID, *slots[2].Start)
	}
}

func TestParseRotorSpecsUnknownMarkers(t *testing.T) {
	slots, err := parseRotorSpecs([]string{"!", "II:!", "!:C"})
	if err != nil {
		t.Fatalf("parseRotorSpecs error: %v", err)
	}
	if slots[0].ID != nil || slots[0].Start != nil {
		t.Errorf("slot 0 should be fully unknown, got %+v", slots[0])
	}
	if slots[1].ID == nil || *slots[1].ID != rotor.II || slots[1].Start != nil {
		t.Errorf("slot 1 should be II with unknown start, got %+v", slots[1])
	}
	if slots[2].ID != nil || slots[2].Start == nil || *slots[2].Start != letter.C {
		t.Errorf("slot 2 should be unknown id with start C, got %+v", slots[2])
	}
}

func TestParseRotorSpecsRejectsUnknownID(t *testing.T) {
	if _, err := parseRotorSpecs([]string{"VII:A"}); err == nil {
		t.Error("expected an error for an unknown rotor id")
	}
}

func TestParseRotorConfigsRejectsAnyUnknown(t *testing.T) {
	if _, err := parseRotorConfigs([]string{"I:A", "!", "III:C"}); err == nil {
		t.Error("expected an error: encipher cannot leave a rotor slot unknown")
	}
}

func TestParseRotorConfigsAllKnown(t *testing.T) {
	configs, err := parseRotorConfigs([]string{"I:A", "II:B", "III:C"})
	if err != nil {
		t.Fatalf("parseRotorConfigs error: %v", err)
	}
	if len(configs) != 3 || configs[0].ID != rotor.I || configs[0].Start != letter.A {
		t.Errorf("unexpected configs: %+v", configs)
	}
}

func TestParseReflectorSpec(t *testing.T) {
	id, err := parseReflectorSpec("B")
	if err != nil {
		t.Fatalf("parseReflectorSpec error: %v", err)
	}
	if id == nil || *id != reflector.B {
		t.Errorf("expected reflector B, got %v", id)
	}

	unknown, err := parseReflectorSpec("!")
	if err != nil {
		t.Fatalf("parseReflectorSpec error: %v", err)
	}
	if unknown != nil {
		t.Errorf("expected nil for unknown reflector, got %v", *unknown)
	}

	if _, err := parseReflectorSpec("Z"); err == nil {
		t.Error("expected an error for an unknown reflector id")
	}
}

func TestParsePlugPairs(t *testing.T) {
	pairs, err := parsePlugPairs("AB CD")
	if err != nil {
		t.Fatalf("parsePlugPairs error: %v", err)
	}
	want := []plugboard.Pair{{letter.A, letter.B}, {letter.C, letter.D}}
	if len(pairs) != len(want) || pairs[0] != want[0] || pairs[1] != want[1] {
		t.Errorf("parsePlugPairs = %v, want %v", pairs, want)
	}

	if _, err := parsePlugPairs("AB AC"); err == nil {
		t.Error("expected an error: letter A reused across pairs")
	}
}

func TestParsePlugSpecExplicitPairs(t *testing.T) {
	opts, err := parsePlugSpec("AB CD")
	if err != nil {
		t.Fatalf("parsePlugSpec error: %v", err)
	}
	known, ok := opts.(search.KnownPlugs)
	if !ok {
		t.Fatalf("expected search.KnownPlugs, got %T", opts)
	}
	if len(known.Pairs) != 2 {
		t.Errorf("expected 2 pairs, got %d", len(known.Pairs))
	}
}

func TestParsePlugSpecCount(t *testing.T) {
	opts, err := parsePlugSpec("4")
	if err != nil {
		t.Fatalf("parsePlugSpec error: %v", err)
	}
	inclusive, ok := opts.(search.PlugCountRangeInclusive)
	if !ok {
		t.Fatalf("expected search.PlugCountRangeInclusive, got %T", opts)
	}
	if inclusive.Min != 4 || inclusive.Max != 4 {
		t.Errorf("expected [4, 4], got [%d, %d]", inclusive.Min, inclusive.Max)
	}
}

func TestParsePlugSpecExclusiveRange(t *testing.T) {
	opts, err := parsePlugSpec("2..6")
	if err != nil {
		t.Fatalf("parsePlugSpec error: %v", err)
	}
	r, ok := opts.(search.PlugCountRange)
	if !ok {
		t.Fatalf("expected search.PlugCountRange, got %T", opts)
	}
	if r.Min != 2 || r.Max != 6 {
		t.Errorf("expected [2, 6), got [%d, %d)", r.Min, r.Max)
	}
}

func TestParsePlugSpecInclusiveRange(t *testing.T) {
	opts, err := parsePlugSpec("2..=6")
	if err != nil {
		t.Fatalf("parsePlugSpec error: %v", err)
	}
	r, ok := opts.(search.PlugCountRangeInclusive)
	if !ok {
		t.Fatalf("expected search.PlugCountRangeInclusive, got %T", opts)
	}
	if r.Min != 2 || r.Max != 6 {
		t.Errorf("expected [2, 6], got [%d, %d]", r.Min, r.Max)
	}
}

func TestParseCountRange(t *testing.T) {
	min, max, inclusive, err := parseCountRange("1..=5")
	if err != nil {
		t.Fatalf("parseCountRange error: %v", err)
	}
	if min != 1 || max != 5 || !inclusive {
		t.Errorf("parseCountRange(1..=5) = (%d, %d, %v), want (1, 5, true)", min, max, inclusive)
	}

	min, max, inclusive, err = parseCountRange("1..5")
	if err != nil {
		t.Fatalf("parseCountRange error: %v", err)
	}
	if min != 1 || max != 5 || inclusive {
		t.Errorf("parseCountRange(1..5) = (%d, %d, %v), want (1, 5, false)", min, max, inclusive)
	}
}
