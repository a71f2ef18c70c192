package match

import (
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"case", "case", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single edits
		{"a", "b", 1},
		{"implicit", "implicits", 1},
		{"context", "contxt", 1},

		// Multiple edits
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},

		// Runes, not bytes
		{"naïve", "naive", 1},

		// Case-sensitive
		{"ABC", "abc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			if reverse := Levenshtein(tt.b, tt.a); reverse != result {
				t.Errorf("Levenshtein is not symmetric for (%q, %q): %d vs %d", tt.a, tt.b, result, reverse)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		{"", "", 1.0},
		{"implicit-class", "implicitClass", 1.0},
		{"IMPLICIT_CLASS", "implicit-class", 1.0},
		{"abc", "xyz", 0.0},
		{"kitten", "sitting", 1.0 - 3.0/7.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Similarity(tt.a, tt.b)
			if diff := result - tt.expected; diff < -0.001 || diff > 0.001 {
				t.Errorf("Similarity(%q, %q) = %f, want %f", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"implicit-class", "implicitclass"},
		{"ImplicitClass", "implicitclass"},
		{"fmt.Stringer", "fmtstringer"},
		{"order_id", "orderid"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeIdent(tt.input); got != tt.expected {
			t.Errorf("NormalizeIdent(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func BenchmarkLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Levenshtein("implicit-class", "implicits")
	}
}
