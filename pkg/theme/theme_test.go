package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dangsayz/spreadpress/pkg/spread"
)

func TestBuiltinsValidate(t *testing.T) {
	for _, name := range Names() {
		th, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%s): %v", name, err)
		}
		if err := th.Validate(); err != nil {
			t.Errorf("builtin %s invalid: %v", name, err)
		}
		if len(th.Rules) == 0 {
			t.Errorf("builtin %s has no rules", name)
		}
	}
}

func TestGetDefault(t *testing.T) {
	th, err := Get("")
	if err != nil {
		t.Fatalf("Get(\"\"): %v", err)
	}
	if th.Name != DefaultName {
		t.Errorf("default theme = %s, want %s", th.Name, DefaultName)
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("brutalist"); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestBuiltinsPartition(t *testing.T) {
	// Every built-in must honor the partition invariant at every gallery
	// size, including sizes that strand a single trailing image.
	images := make([]spread.ImageDescriptor, 40)
	for i := range images {
		images[i] = spread.ImageDescriptor{ID: fmt.Sprintf("img-%02d", i)}
	}

	for _, name := range Names() {
		th, _ := Get(name)
		for n := 0; n <= len(images); n++ {
			spreads := th.Plan(images[:n])

			total := 0
			for _, s := range spreads {
				if len(s.Images) != s.Kind.Cardinality() {
					t.Fatalf("%s n=%d: kind %s holds %d images", name, n, s.Kind, len(s.Images))
				}
				total += len(s.Images)
			}
			if total != n {
				t.Fatalf("%s n=%d: partition covers %d images", name, n, total)
			}
			if n > 0 && spreads[0].Kind != spread.KindHero {
				t.Fatalf("%s n=%d: first spread is %s, not hero", name, n, spreads[0].Kind)
			}
		}
	}
}

func TestThemesDiffer(t *testing.T) {
	// The built-ins exist to look different; with a decent-sized gallery
	// they should produce different kind sequences.
	images := make([]spread.ImageDescriptor, 20)
	for i := range images {
		images[i] = spread.ImageDescriptor{ID: string(rune('a' + i))}
	}

	seen := map[string]string{}
	for _, name := range Names() {
		th, _ := Get(name)
		var kinds []string
		for _, s := range th.Plan(images) {
			kinds = append(kinds, string(s.Kind))
		}
		sig := strings.Join(kinds, ",")
		for other, otherSig := range seen {
			if sig == otherSig {
				t.Errorf("themes %s and %s plan identically: %s", name, other, sig)
			}
		}
		seen[name] = sig
	}
}

func TestLoadFile(t *testing.T) {
	src := `
name = "gallery-noir"
captions = ["overlay", "none"]

[[rules]]
kind = "trio"
min_remaining = 3
every = 3
offset = 1

[[rules]]
kind = "split"
min_remaining = 2
`
	path := filepath.Join(t.TempDir(), "noir.toml")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if th.Name != "gallery-noir" {
		t.Errorf("name = %s", th.Name)
	}
	if len(th.Rules) != 2 || th.Rules[0].Kind != spread.KindTrio {
		t.Errorf("rules = %+v", th.Rules)
	}
	if len(th.Captions) != 2 || th.Captions[0] != spread.CaptionOverlay {
		t.Errorf("captions = %v", th.Captions)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "unknown kind",
			src: `
name = "bad"
[[rules]]
kind = "ninegrid"
min_remaining = 9
`,
		},
		{
			name: "min below cardinality",
			src: `
name = "bad"
[[rules]]
kind = "quad"
min_remaining = 2
`,
		},
		{
			name: "missing name",
			src: `
[[rules]]
kind = "split"
min_remaining = 2
`,
		},
		{
			name: "unknown caption style",
			src: `
name = "bad"
captions = ["sideways"]
[[rules]]
kind = "split"
min_remaining = 2
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tt.src)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestResolve(t *testing.T) {
	// Built-in name wins.
	th, err := Resolve("mosaic")
	if err != nil || th.Name != "mosaic" {
		t.Errorf("Resolve(mosaic) = %v, %v", th.Name, err)
	}

	// Nonexistent name and path fails.
	if _, err := Resolve("does-not-exist"); err == nil {
		t.Error("expected error")
	}
}
