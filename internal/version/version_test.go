package version

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Version
		want int
	}{
		{"equal", New(1, 2, 3), New(1, 2, 3), 0},
		{"equal zero", Version{}, Version{}, 0},
		{"major decides", New(2, 0, 0), New(1, 9, 9), 1},
		{"major decides low", New(1, 9, 9), New(2, 0, 0), -1},
		{"minor decides", New(1, 2, 0), New(1, 1, 9), 1},
		{"minor decides low", New(1, 1, 9), New(1, 2, 0), -1},
		{"patch decides", New(1, 2, 4), New(1, 2, 3), 1},
		{"patch decides low", New(1, 2, 3), New(1, 2, 4), -1},
		{"zero below all", Version{}, New(0, 0, 1), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			// Function form agrees with method form.
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare func(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			// Antisymmetry.
			if got := tt.b.Compare(tt.a); got != -tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestCompare_TotalOrder(t *testing.T) {
	// Every distinct pair must order exactly one way; any ascending chain
	// must be transitive.
	chain := []Version{
		{},
		New(0, 0, 1),
		New(0, 1, 0),
		New(0, 1, 1),
		New(1, 0, 0),
		New(1, 0, 5),
		New(1, 2, 0),
		New(2, 0, 0),
		New(10, 15, 4),
	}

	for i, a := range chain {
		for j, b := range chain {
			got := a.Compare(b)
			switch {
			case i == j && got != 0:
				t.Errorf("Compare(%v, %v) = %d, want 0", a, b, got)
			case i < j && got != -1:
				t.Errorf("Compare(%v, %v) = %d, want -1", a, b, got)
			case i > j && got != 1:
				t.Errorf("Compare(%v, %v) = %d, want 1", a, b, got)
			}
		}
	}

	// Transitivity over every ascending triple in the chain.
	for i := 0; i < len(chain); i++ {
		for j := i + 1; j < len(chain); j++ {
			for k := j + 1; k < len(chain); k++ {
				if chain[i].Compare(chain[j]) < 0 && chain[j].Compare(chain[k]) < 0 &&
					chain[i].Compare(chain[k]) >= 0 {
					t.Errorf("transitivity violated for %v < %v < %v",
						chain[i], chain[j], chain[k])
				}
			}
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		v    Version
		want string
	}{
		{Version{}, "0.0"},
		{New(10, 15, 0), "10.15"},
		{New(10, 15, 4), "10.15.4"},
		{New(1, 0, 0), "1.0"},
		{New(0, 0, 1), "0.0.1"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String(%#v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
