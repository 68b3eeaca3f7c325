package cli

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dangsayz/spreadpress/pkg/gallery"
	"github.com/dangsayz/spreadpress/pkg/spread"
)

func writeTestGallery(t *testing.T, n int) string {
	t.Helper()
	g := gallery.Gallery{ID: "cli-test", Title: "CLI Test"}
	for i := 0; i < n; i++ {
		g.Images = append(g.Images, spread.ImageDescriptor{
			ID:  string(rune('a' + i)),
			URL: "https://cdn.example.com/" + string(rune('a'+i)) + ".jpg",
		})
	}

	path := filepath.Join(t.TempDir(), "gallery.json")
	if err := gallery.WriteFile(g, path); err != nil {
		t.Fatalf("write gallery: %v", err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func TestPlanCommand(t *testing.T) {
	input := writeTestGallery(t, 7)
	output := filepath.Join(t.TempDir(), "plan.json")

	if err := runCommand(t, "plan", input, "--no-cache", "-o", output); err != nil {
		t.Fatalf("plan command: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read plan output: %v", err)
	}

	var doc struct {
		SpreadCount int `json:"spread_count"`
		ImageCount  int `json:"image_count"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal plan: %v", err)
	}
	if doc.ImageCount != 7 {
		t.Errorf("image_count = %d, want 7", doc.ImageCount)
	}
	if doc.SpreadCount == 0 {
		t.Error("spread_count should be positive")
	}
}

func TestPlanCommandDefaultOutput(t *testing.T) {
	input := writeTestGallery(t, 3)

	if err := runCommand(t, "plan", input, "--no-cache"); err != nil {
		t.Fatalf("plan command: %v", err)
	}

	want := strings.TrimSuffix(input, ".json") + ".plan.json"
	if _, err := os.Stat(want); err != nil {
		t.Errorf("default output %s not written: %v", want, err)
	}
}

func TestPlanCommandUnknownTheme(t *testing.T) {
	input := writeTestGallery(t, 3)
	if err := runCommand(t, "plan", input, "--no-cache", "-t", "brutalist"); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestRenderCommandMultipleFormats(t *testing.T) {
	input := writeTestGallery(t, 5)
	base := filepath.Join(t.TempDir(), "out")

	if err := runCommand(t, "render", input, "--no-cache", "-f", "json,html", "-o", base); err != nil {
		t.Fatalf("render command: %v", err)
	}

	page, err := os.ReadFile(base + ".html")
	if err != nil {
		t.Fatalf("read html artifact: %v", err)
	}
	if !strings.Contains(string(page), "<title>CLI Test</title>") {
		t.Error("html artifact should carry the gallery title")
	}
	if _, err := os.Stat(base + ".json"); err != nil {
		t.Errorf("json artifact not written: %v", err)
	}
}

func TestRenderCommandRejectsBadFormat(t *testing.T) {
	input := writeTestGallery(t, 2)
	if err := runCommand(t, "render", input, "--no-cache", "-f", "pdf"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestArtifactPath(t *testing.T) {
	tests := []struct {
		name        string
		output      string
		input       string
		format      string
		formatCount int
		want        string
	}{
		{"explicit single", "page.html", "g.json", "html", 1, "page.html"},
		{"derived from input", "", "shoot/g.json", "html", 1, "shoot/g.html"},
		{"base for multiple", "out", "g.json", "json", 2, "out.json"},
		{"strips format ext", "out.html", "g.json", "json", 2, "out.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := artifactPath(tt.output, tt.input, tt.format, tt.formatCount)
			if got != tt.want {
				t.Errorf("artifactPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
