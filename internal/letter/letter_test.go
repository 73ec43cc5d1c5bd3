package letter

import "testing"

func TestFromChar(t *testing.T) {
	tests := []struct {
		name      string
		ch        rune
		wantL     Letter
		wantUpper bool
		wantOK    bool
	}{
		{"lowercase a", 'a', A, false, true},
		{"uppercase A", 'A', A, true, true},
		{"uppercase Z", 'Z', Z, true, true},
		{"lowercase m", 'm', M, false, true},
		{"digit", '5', 0, false, false},
		{"space", ' ', 0, false, false},
		{"punctuation", '!', 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, upper, ok := FromChar(tt.ch)
			if ok != tt.wantOK {
				t.Fatalf("FromChar(%q) ok = %v, want %v", tt.ch, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if l != tt.wantL || upper != tt.wantUpper {
				t.Errorf("FromChar(%q) = (%v, %v), want (%v, %v)", tt.ch, l, upper, tt.wantL, tt.wantUpper)
			}
		})
	}
}

func TestToChar(t *testing.T) {
	if got := A.ToChar(true); got != 'A' {
		t.Errorf("A.ToChar(true) = %q, want 'A'", got)
	}
	if got := A.ToChar(false); got != 'a' {
		t.Errorf("A.ToChar(false) = %q, want 'a'", got)
	}
	if got := Z.ToChar(true); got != 'Z' {
		t.Errorf("Z.ToChar(true) = %q, want 'Z'", got)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, upper := range []bool{true, false} {
		for _, l := range All() {
			ch := l.ToChar(upper)
			got, gotUpper, ok := FromChar(ch)
			if !ok || got != l || gotUpper != upper {
				t.Errorf("round trip failed for %v upper=%v: got (%v, %v, %v)", l, upper, got, gotUpper, ok)
			}
		}
	}
}

func TestAddWrap(t *testing.T) {
	if Z.Add(1) != A {
		t.Errorf("Z+1 = %v, want A", Z.Add(1))
	}
	if A.Add(26) != A {
		t.Errorf("A+26 = %v, want A", A.Add(26))
	}
	if A.Add(27) != B {
		t.Errorf("A+27 = %v, want B", A.Add(27))
	}
}

func TestSubWrap(t *testing.T) {
	if A.Sub(1) != Z {
		t.Errorf("A-1 = %v, want Z", A.Sub(1))
	}
	if B.Sub(1) != A {
		t.Errorf("B-1 = %v, want A", B.Sub(1))
	}
}

func TestAddSubLetter(t *testing.T) {
	if A.AddLetter(B) != B {
		t.Errorf("A+B = %v, want B", A.AddLetter(B))
	}
	if C.SubLetter(B) != B {
		t.Errorf("C-B = %v, want B", C.SubLetter(B))
	}
}

func TestLess(t *testing.T) {
	if !A.Less(B) {
		t.Errorf("A should be less than B")
	}
	if Z.Less(A) {
		t.Errorf("Z should not be less than A")
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != Count {
		t.Fatalf("All() len = %d, want %d", len(all), Count)
	}
	for i, l := range all {
		if int(l) != i {
			t.Errorf("All()[%d] = %v, want %v", i, l, Letter(i))
		}
	}
}

func TestParse(t *testing.T) {
	l, err := Parse("Q")
	if err != nil || l != Q {
		t.Errorf("Parse(Q) = (%v, %v), want (Q, nil)", l, err)
	}

	if _, err := Parse("AB"); err == nil {
		t.Error("Parse(AB) expected error")
	}
	if _, err := Parse("1"); err == nil {
		t.Error("Parse(1) expected error")
	}
}

func TestString(t *testing.T) {
	if Q.String() != "Q" {
		t.Errorf("Q.String() = %q, want \"Q\"", Q.String())
	}
}
