// Package render turns planned spreads into output artifacts.
//
// Two formats are supported:
//   - json: the canonical spread serialization, consumed by web clients
//     that render their own templates
//   - html: a standalone page with a CSS grid template per layout kind,
//     for previews and static exports
//
// Rendering is pure: the same decorated plan always produces the same
// bytes, which is what makes artifact caching by content hash sound.
package render

import (
	"fmt"

	"github.com/dangsayz/spreadpress/pkg/spread"
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatHTML = "html"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatHTML: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: json, html)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options configures rendering.
type Options struct {
	// Title is the page title for HTML output.
	Title string

	// Formats lists the artifact formats to produce.
	Formats []string
}

// Render produces one artifact per requested format, keyed by format name.
func Render(spreads []spread.DecoratedSpread, opts Options) (map[string][]byte, error) {
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var (
			data []byte
			err  error
		)
		switch format {
		case FormatJSON:
			data, err = JSON(spreads)
		case FormatHTML:
			data, err = HTML(spreads, opts.Title)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
