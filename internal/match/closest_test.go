package match

import "testing"

func TestClosest(t *testing.T) {
	kinds := []string{"case", "context", "implicit-class", "implicit"}

	tests := []struct {
		word   string
		known  []string
		want   string
		wantOK bool
	}{
		{"implicits", kinds, "implicit", true},
		{"implicitclass", kinds, "implicit-class", true},
		{"contex", kinds, "context", true},
		{"cas", kinds, "case", true},
		{"implicit", kinds, "", false},
		{"zzz", kinds, "", false},
		{"anything", nil, "", false},
		{"nme", []string{"name", "implements"}, "name", true},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, ok := Closest(tt.word, tt.known)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Closest(%q) = %q, %v; want %q, %v", tt.word, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestHint(t *testing.T) {
	if got := Hint("loger", []string{"logger", "cfg"}); got != " (did you mean logger?)" {
		t.Errorf("Hint = %q", got)
	}

	if got := Hint("x", []string{"logger"}); got != "" {
		t.Errorf("Hint = %q, want empty", got)
	}
}
