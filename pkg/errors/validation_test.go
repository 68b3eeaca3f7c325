package errors

import (
	"strings"
	"testing"
)

func TestValidateGalleryID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "simple", id: "g-123"},
		{name: "uuid", id: "0d4b8a3e-7f4e-4a3f-9c2d-1a2b3c4d5e6f"},
		{name: "empty", id: "", wantErr: true},
		{name: "too long", id: strings.Repeat("a", 129), wantErr: true},
		{name: "control char", id: "g\x01", wantErr: true},
		{name: "null byte", id: "g\x00", wantErr: true},
		{name: "slash", id: "a/b", wantErr: true},
		{name: "backslash", id: "a\\b", wantErr: true},
		{name: "traversal", id: "..secret", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGalleryID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGalleryID(%q) = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidGallery) {
				t.Errorf("error should carry INVALID_GALLERY code: %v", err)
			}
		})
	}
}

func TestValidateThemeName(t *testing.T) {
	tests := []struct {
		name    string
		theme   string
		wantErr bool
	}{
		{name: "builtin", theme: "classic"},
		{name: "dashed", theme: "gallery-noir"},
		{name: "empty means default", theme: ""},
		{name: "toml path", theme: "themes/custom.toml"},
		{name: "uppercase", theme: "Classic", wantErr: true},
		{name: "spaces", theme: "my theme", wantErr: true},
		{name: "traversal toml", theme: "../../etc/passwd.toml", wantErr: true},
		{name: "null byte", theme: "bad\x00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateThemeName(tt.theme)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateThemeName(%q) = %v, wantErr %v", tt.theme, err, tt.wantErr)
			}
		})
	}
}
