package theme

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Load reads a theme definition from TOML.
//
// Expected shape:
//
//	name = "my-theme"
//	captions = ["below", "none"]
//
//	[[rules]]
//	kind = "trio"
//	min_remaining = 3
//	every = 4
//	offset = 1
//
//	[[rules]]
//	kind = "split"
//	min_remaining = 2
func Load(r io.Reader) (Theme, error) {
	var t Theme
	if _, err := toml.NewDecoder(r).Decode(&t); err != nil {
		return Theme{}, fmt.Errorf("decode theme: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadFile reads a theme definition from a TOML file at path.
func LoadFile(path string) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, fmt.Errorf("open theme %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Resolve returns a theme by name, or loads it from a TOML file when the
// name looks like a path. Built-in names win over files.
func Resolve(nameOrPath string) (Theme, error) {
	if t, err := Get(nameOrPath); err == nil {
		return t, nil
	}
	if _, err := os.Stat(nameOrPath); err == nil {
		return LoadFile(nameOrPath)
	}
	return Theme{}, fmt.Errorf("unknown theme: %q (built-in: %v, or a .toml path)", nameOrPath, Names())
}
