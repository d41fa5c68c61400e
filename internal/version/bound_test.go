package version

import "testing"

func ptr(v Version) *Version {
	return &v
}

func TestLowerBound_Version(t *testing.T) {
	if got := (LowerBound{}).Version(); got != (Version{}) {
		t.Errorf("unbounded lower bound materialized to %v, want 0.0.0", got)
	}
	if got := LowerAt(New(1, 2, 3)).Version(); got != New(1, 2, 3) {
		t.Errorf("anchored lower bound materialized to %v, want 1.2.3", got)
	}
	if LowerFrom(nil).Bounded() {
		t.Error("LowerFrom(nil) should be unbounded")
	}
	if !LowerFrom(ptr(New(1, 0, 0))).Bounded() {
		t.Error("LowerFrom(non-nil) should be bounded")
	}
}

func TestLowerBound_AtMost(t *testing.T) {
	tests := []struct {
		name string
		a, b LowerBound
		want bool
	}{
		{"unbounded at most anything", LowerBound{}, LowerAt(New(1, 0, 0)), true},
		{"unbounded at most unbounded", LowerBound{}, LowerBound{}, true},
		{"anchored above unbounded", LowerAt(New(1, 0, 0)), LowerBound{}, false},
		{"zero anchor equals unbounded", LowerAt(Version{}), LowerBound{}, true},
		{"lower anchor", LowerAt(New(1, 0, 0)), LowerAt(New(2, 0, 0)), true},
		{"equal anchors", LowerAt(New(2, 0, 0)), LowerAt(New(2, 0, 0)), true},
		{"higher anchor", LowerAt(New(2, 0, 1)), LowerAt(New(2, 0, 0)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.AtMost(tt.b); got != tt.want {
				t.Errorf("AtMost = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpperBound_Exceeds(t *testing.T) {
	tests := []struct {
		name string
		a, b UpperBound
		want bool
	}{
		{"unbounded exceeds anchored", UpperBound{}, UpperAt(New(99, 0, 0)), true},
		{"unbounded exceeds unbounded", UpperBound{}, UpperBound{}, true},
		{"anchored never exceeds unbounded", UpperAt(New(99, 0, 0)), UpperBound{}, false},
		{"higher anchor exceeds", UpperAt(New(2, 0, 0)), UpperAt(New(1, 9, 9)), true},
		{"equal anchors do not exceed", UpperAt(New(2, 0, 0)), UpperAt(New(2, 0, 0)), false},
		{"lower anchor does not exceed", UpperAt(New(1, 0, 0)), UpperAt(New(2, 0, 0)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Exceeds(tt.b); got != tt.want {
				t.Errorf("Exceeds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpperBound_After(t *testing.T) {
	tests := []struct {
		name string
		b    UpperBound
		v    Version
		want bool
	}{
		{"unbounded after anything", UpperBound{}, New(99, 0, 0), true},
		{"anchored after lower version", UpperAt(New(2, 0, 0)), New(1, 0, 0), true},
		{"anchored not after itself", UpperAt(New(2, 0, 0)), New(2, 0, 0), false},
		{"anchored not after higher", UpperAt(New(2, 0, 0)), New(3, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.After(tt.v); got != tt.want {
				t.Errorf("After = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpperBound_OnOrAfter(t *testing.T) {
	tests := []struct {
		name string
		b    UpperBound
		v    Version
		want bool
	}{
		{"unbounded on or after anything", UpperBound{}, New(99, 0, 0), true},
		{"anchored on or after lower", UpperAt(New(2, 0, 0)), New(1, 0, 0), true},
		{"anchored on or after itself", UpperAt(New(2, 0, 0)), New(2, 0, 0), true},
		{"anchored below higher", UpperAt(New(2, 0, 0)), New(2, 0, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.OnOrAfter(tt.v); got != tt.want {
				t.Errorf("OnOrAfter = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpperBound_Bound(t *testing.T) {
	if _, ok := (UpperBound{}).Bound(); ok {
		t.Error("unbounded upper bound should report no anchor")
	}
	v, ok := UpperAt(New(13, 0, 0)).Bound()
	if !ok || v != New(13, 0, 0) {
		t.Errorf("Bound() = %v, %v, want 13.0, true", v, ok)
	}
}
