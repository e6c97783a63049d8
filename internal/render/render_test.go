package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dshills/nyota/internal/schema"
)

func sampleReport() *schema.Report {
	return &schema.Report{
		Tool:    "nyota",
		Version: "1.0",
		Input: schema.Input{
			ResponsesFile: "reponse_per1.json",
			ResponsesHash: "sha256:abc",
			ResponseCount: 72,
			Instrument:    "nyota",
		},
		Summary: schema.Summary{Mean: 61.25, Strongest: "Coopération", Weakest: "Résilience & Stress"},
		Scores: schema.Result{
			{Axis: "Ouverture & Curiosité", Score: 62.5},
			{Axis: "Discipline & Fiabilité", Score: 50},
			{Axis: "Influence & Présence", Score: 71.43},
			{Axis: "Coopération", Score: 85.71},
			{Axis: "Résilience & Stress", Score: 42.86},
			{Axis: "Drive & Motivation", Score: 57.14},
			{Axis: "Style d'action", Score: 60.42},
			{Axis: "Alignement stratégique", Score: 60},
		},
	}
}

func TestNewRenderer_JSON(t *testing.T) {
	r, err := NewRenderer("json", false)
	if err != nil {
		t.Fatalf("NewRenderer json: %v", err)
	}
	out, err := r.Render(sampleReport())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	var decoded schema.Report
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, out)
	}
	if len(decoded.Scores) != 8 {
		t.Fatalf("scores = %d, want 8", len(decoded.Scores))
	}
	if decoded.Scores[4].Axis != "Résilience & Stress" || decoded.Scores[4].Score != 42.86 {
		t.Errorf("scores[4] = %+v", decoded.Scores[4])
	}
}

func TestNewRenderer_JSONKeepsAxisOrder(t *testing.T) {
	r, _ := NewRenderer("json", false)
	out, err := r.Render(sampleReport())
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	first := strings.Index(s, "Ouverture")
	last := strings.Index(s, "Alignement")
	if first < 0 || last < 0 || first > last {
		t.Errorf("axis order not preserved in JSON output:\n%s", s)
	}
}

func TestNewRenderer_Markdown(t *testing.T) {
	r, err := NewRenderer("md", false)
	if err != nil {
		t.Fatalf("NewRenderer md: %v", err)
	}
	out, err := r.Render(sampleReport())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "# NYOTA Personality Report") {
		t.Errorf("markdown missing header: %q", s)
	}
	if !strings.Contains(s, "| Résilience & Stress | 42.86 | ████████ |") {
		t.Errorf("markdown missing score row: %q", s)
	}
	if !strings.Contains(s, "sha256:abc") {
		t.Errorf("markdown missing hash: %q", s)
	}
}

func TestNewRenderer_Text(t *testing.T) {
	r, err := NewRenderer("text", false)
	if err != nil {
		t.Fatalf("NewRenderer text: %v", err)
	}
	out, err := r.Render(sampleReport())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "72 responses loaded") {
		t.Errorf("text missing response count: %q", s)
	}
	want := "Discipline & Fiabilité.................. " + " 50.00 " + "██████████\n"
	if !strings.Contains(s, want) {
		t.Errorf("text missing padded line %q in:\n%s", want, s)
	}
	if strings.Contains(s, "\x1b[") {
		t.Errorf("uncolored text contains escape codes: %q", s)
	}
}

func TestNewRenderer_TextColor(t *testing.T) {
	r, _ := NewRenderer("text", true)
	out, err := r.Render(sampleReport())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "\x1b[") {
		t.Error("colored text has no escape codes")
	}
}

func TestNewRenderer_DefaultIsText(t *testing.T) {
	r, err := NewRenderer("", false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.(*textRenderer); !ok {
		t.Errorf("default renderer is %T, want *textRenderer", r)
	}
}

func TestNewRenderer_UnknownFormat(t *testing.T) {
	_, err := NewRenderer("xml", false)
	if err == nil {
		t.Error("expected error for unknown format, got nil")
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{0, 0},
		{4.99, 0},
		{5, 1},
		{42.86, 8},
		{100, 20},
	}
	for _, tt := range tests {
		if got := len([]rune(Bar(tt.score))); got != tt.want {
			t.Errorf("Bar(%g) has %d blocks, want %d", tt.score, got, tt.want)
		}
	}
}

func TestPadDots(t *testing.T) {
	got := padDots("Coopération", 15)
	if got != "Coopération...." {
		t.Errorf("padDots = %q", got)
	}
	long := strings.Repeat("x", 50)
	if padDots(long, 40) != long {
		t.Error("padDots truncated a long label")
	}
}
