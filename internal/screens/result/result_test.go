package result

import (
	"strings"
	"testing"

	"github.com/arindam/tutorlens/internal/advisor"
	"github.com/arindam/tutorlens/internal/policy"
	"github.com/arindam/tutorlens/internal/styles"
)

func TestExportFilename(t *testing.T) {
	tests := []struct {
		sessionID string
		want      string
	}{
		{"3b1f9c2a-8d4e-4f6a-9b0c-1d2e3f4a5b6c", "tutorlens-advice-3b1f9c2a.txt"},
		{"plainid", "tutorlens-advice-plainid.txt"},
	}

	for _, tt := range tests {
		got := ExportFilename(tt.sessionID)
		if got != tt.want {
			t.Errorf("ExportFilename(%q) = %q, want %q", tt.sessionID, got, tt.want)
		}
	}
}

func TestExportTextSections(t *testing.T) {
	advice := advisor.Advise(advisor.ExplainInput{
		Topic:          "Algebra basics",
		PriorKnowledge: "Basic",
		Confidence:     3,
		Delta:          50,
		StartingStyle:  styles.StyleVisual,
	}, policy.Default())

	text := ExportText(advice)

	if !strings.Contains(text, advice.Decision) {
		t.Error("export missing decision title")
	}
	if !strings.Contains(text, "Next format: "+advice.NextStyle.DisplayName()) {
		t.Error("export missing next format line")
	}
	for i := range advice.Reasons {
		marker := "  " + string(rune('1'+i)) + ". "
		if !strings.Contains(text, marker) {
			t.Errorf("export missing reason %d marker", i+1)
		}
	}
	if !strings.Contains(text, "Trace: "+advice.Trace) {
		t.Error("export missing trace line")
	}
	if !strings.Contains(text, advice.TutorInsight) {
		t.Error("export missing tutor insight")
	}
}
