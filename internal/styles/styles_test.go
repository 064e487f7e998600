package styles

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want Style
	}{
		{"visual", StyleVisual},
		{"text", StyleText},
		{"quiz", StyleQuiz},
		{"", StyleText},
		{"podcast", StyleText},
	}

	for _, tt := range tests {
		if got := Parse(tt.raw); got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestAll_TieBreakOrder(t *testing.T) {
	all := All()
	if len(all) != 3 {
		t.Fatalf("expected 3 styles, got %d", len(all))
	}
	if all[0] != StyleText || all[1] != StyleVisual || all[2] != StyleQuiz {
		t.Errorf("unexpected order: %v", all)
	}
}

func TestDisplayName(t *testing.T) {
	if got := StyleVisual.DisplayName(); got != "Visual" {
		t.Errorf("DisplayName() = %q", got)
	}
	if got := Style("hologram").DisplayName(); got != "hologram" {
		t.Errorf("unknown style DisplayName() = %q", got)
	}
}
