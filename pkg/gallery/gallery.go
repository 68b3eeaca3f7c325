// Package gallery defines the gallery model and its serialization format.
//
// A gallery is an ordered sequence of image descriptors in the
// photographer's intended display order, plus identifying metadata. The
// JSON format is the interchange between the data-fetching layer, the
// planner pipeline, and the HTTP API, and is designed for round-trip
// fidelity: import → plan → export → re-import preserves every descriptor
// byte for byte, including unknown dimensions.
package gallery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/dangsayz/spreadpress/pkg/spread"
)

// Gallery is the canonical gallery representation.
type Gallery struct {
	ID     string                   `json:"id" bson:"id"`
	Title  string                   `json:"title,omitempty" bson:"title,omitempty"`
	Images []spread.ImageDescriptor `json:"images" bson:"images"`
}

// NewID returns a fresh gallery identifier.
func NewID() string {
	return uuid.NewString()
}

// Validate checks structural requirements: a non-empty ID and unique,
// non-empty image IDs. An empty image list is valid (the planner returns
// an empty plan for it).
func (g Gallery) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("gallery has no id")
	}
	seen := make(map[string]bool, len(g.Images))
	for i, img := range g.Images {
		if img.ID == "" {
			return fmt.Errorf("image %d has no id", i)
		}
		if seen[img.ID] {
			return fmt.Errorf("duplicate image id: %s", img.ID)
		}
		seen[img.ID] = true
	}
	return nil
}

// =============================================================================
// Serialization API
// =============================================================================

// Marshal serializes a gallery to pretty-printed JSON bytes.
func Marshal(g Gallery) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal deserializes JSON bytes into a validated gallery.
func Unmarshal(data []byte) (Gallery, error) {
	return Read(bytes.NewReader(data))
}

// Write encodes a gallery as JSON to w.
func Write(g Gallery, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode gallery: %w", err)
	}
	return nil
}

// Read decodes a JSON gallery from r and validates it.
func Read(r io.Reader) (Gallery, error) {
	var g Gallery
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return Gallery{}, fmt.Errorf("decode gallery: %w", err)
	}
	if err := g.Validate(); err != nil {
		return Gallery{}, err
	}
	return g, nil
}

// WriteFile writes a gallery to a JSON file at path.
func WriteFile(g Gallery, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}

// ReadFile reads a gallery from a JSON file at path.
func ReadFile(path string) (Gallery, error) {
	f, err := os.Open(path)
	if err != nil {
		return Gallery{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
