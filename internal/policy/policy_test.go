package policy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestDefault_Weights(t *testing.T) {
	w := Default().Weights
	if w.Delta != 0.45 || w.Confidence != 0.35 || w.Knowledge != 0.15 || w.StartBias != 0.05 {
		t.Errorf("unexpected default weights: %+v", w)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Policy)
		substr string
	}{
		{"empty version", func(p *Policy) { p.Version = "" }, "version"},
		{"weights off", func(p *Policy) { p.Weights.Delta = 0.5 }, "sum to 1.0"},
		{"zero saturation", func(p *Policy) { p.DeltaSaturation = 0 }, "saturation"},
		{"lopsided adjustment", func(p *Policy) { p.Overconfident.Quiz = -0.2 }, "net to zero"},
	}

	for _, tt := range tests {
		p := Default()
		tt.mutate(&p)
		err := p.Validate()
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.substr) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.substr)
		}
	}
}

func writePolicyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_OverridesVersionAndWeights(t *testing.T) {
	path := writePolicyFile(t, `{
		"version": "v2-experimental",
		"weights": {"delta": 0.40, "confidence": 0.40, "knowledge": 0.15, "start_bias": 0.05}
	}`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if p.Version != "v2-experimental" {
		t.Errorf("Version = %q", p.Version)
	}
	if p.Weights.Delta != 0.40 {
		t.Errorf("Weights.Delta = %v, want override applied", p.Weights.Delta)
	}
	if p.DeltaSaturation != 60 {
		t.Errorf("DeltaSaturation = %v, want default retained", p.DeltaSaturation)
	}
}

func TestLoad_RejectsBadShape(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `weights: lots`},
		{"missing version", `{"weights": {"delta": 0.45, "confidence": 0.35, "knowledge": 0.15, "start_bias": 0.05}}`},
		{"unknown field", `{"version": "v2", "weights": {"delta": 0.45, "confidence": 0.35, "knowledge": 0.15, "start_bias": 0.05}, "extra": 1}`},
		{"weight out of range", `{"version": "v2", "weights": {"delta": 1.45, "confidence": 0.35, "knowledge": 0.15, "start_bias": 0.05}}`},
		{"weights off sum", `{"version": "v2", "weights": {"delta": 0.45, "confidence": 0.45, "knowledge": 0.15, "start_bias": 0.05}}`},
	}

	for _, tt := range tests {
		path := writePolicyFile(t, tt.content)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: Load() succeeded, want error", tt.name)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
