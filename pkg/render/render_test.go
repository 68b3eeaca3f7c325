package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dangsayz/spreadpress/pkg/spread"
)

func sampleDecorated() []spread.DecoratedSpread {
	images := []spread.ImageDescriptor{
		{ID: "a", URL: "https://cdn.example.com/a.jpg", Alt: "First look", Title: "First Look", FocalX: 30, FocalY: 60},
		{ID: "b", URL: "https://cdn.example.com/b.jpg"},
		{ID: "c", URL: "https://cdn.example.com/c.jpg"},
	}
	spreads := spread.Plan(images, []spread.Rule{{MinRemaining: 2, Kind: spread.KindSplit}})
	return spread.Decorate(spreads, nil)
}

func TestRenderDispatch(t *testing.T) {
	artifacts, err := Render(sampleDecorated(), Options{
		Title:   "Test Gallery",
		Formats: []string{FormatJSON, FormatHTML},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(artifacts) != 2 {
		t.Fatalf("expected 2 artifacts, got %d", len(artifacts))
	}
	if len(artifacts[FormatJSON]) == 0 || len(artifacts[FormatHTML]) == 0 {
		t.Error("artifacts should be non-empty")
	}
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	if _, err := Render(nil, Options{Formats: []string{"pdf"}}); err == nil {
		t.Error("expected error for unsupported format")
	}
	if err := ValidateFormat("webp"); err == nil {
		t.Error("expected error for unknown format")
	}
	if err := ValidateFormats([]string{FormatJSON, FormatHTML}); err != nil {
		t.Errorf("valid formats rejected: %v", err)
	}
}

func TestJSONDeterministic(t *testing.T) {
	decorated := sampleDecorated()

	first, err := JSON(decorated)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	again, _ := JSON(decorated)
	if !bytes.Equal(first, again) {
		t.Error("JSON output should be deterministic")
	}
}

func TestJSONShape(t *testing.T) {
	data, err := JSON(sampleDecorated())
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var doc struct {
		SpreadCount int `json:"spread_count"`
		ImageCount  int `json:"image_count"`
		Spreads     []struct {
			Spread struct {
				Kind string `json:"kind"`
			} `json:"spread"`
		} `json:"spreads"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal artifact: %v", err)
	}

	if doc.SpreadCount != 2 || doc.ImageCount != 3 {
		t.Errorf("counts = %d spreads / %d images, want 2 / 3", doc.SpreadCount, doc.ImageCount)
	}
	if doc.Spreads[0].Spread.Kind != "hero" {
		t.Errorf("first kind = %s, want hero", doc.Spreads[0].Spread.Kind)
	}
}

func TestJSONEmptyPlan(t *testing.T) {
	data, err := JSON(nil)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !strings.Contains(string(data), `"spreads": []`) {
		t.Errorf("empty plan should serialize spreads as [], got: %s", data)
	}
}

func TestHTMLStructure(t *testing.T) {
	data, err := HTML(sampleDecorated(), "Mallorca")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	page := string(data)

	for _, want := range []string{
		"<title>Mallorca</title>",
		`class="spread hero"`,
		`class="spread split"`,
		`data-image-id="a"`,
		`src="https://cdn.example.com/b.jpg"`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
}

func TestHTMLFocalPoint(t *testing.T) {
	data, err := HTML(sampleDecorated(), "")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	page := string(data)

	// Explicit focal point carries through; unset focal points center.
	if !strings.Contains(page, "object-position: 30% 60%") {
		t.Error("explicit focal point not rendered")
	}
	if !strings.Contains(page, "object-position: 50% 50%") {
		t.Error("default focal point not rendered")
	}
}

func TestHTMLEscapesUserContent(t *testing.T) {
	decorated := []spread.DecoratedSpread{
		{
			Spread: spread.Spread{
				Kind:   spread.KindHero,
				Images: []spread.ImageDescriptor{{ID: "x", Alt: `<script>alert(1)</script>`}},
			},
			Caption: spread.Caption{Style: spread.CaptionBelow, Text: "a <b> title", Lead: "a"},
		},
	}

	data, err := HTML(decorated, `G & <T>`)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	page := string(data)

	if strings.Contains(page, "<script>alert(1)</script>") {
		t.Error("alt text not escaped")
	}
	if strings.Contains(page, "a <b> title") {
		t.Error("caption text not escaped")
	}
}

func TestClampPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-10, 0},
		{0, 0},
		{42, 42},
		{100, 100},
		{180, 100},
	}
	for _, tt := range tests {
		if got := clampPercent(tt.in); got != tt.want {
			t.Errorf("clampPercent(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
