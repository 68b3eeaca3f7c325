// Package theme defines the layout policies that drive the spread planner.
//
// A theme is a data value: an ordered rule table plus a caption rotation.
// The same planner runs every theme, so adding a visual variant means
// adding a configuration value, not another planner implementation.
//
// Three themes ship built in:
//   - classic: balanced mix of trios, quads, and splits
//   - editorial: airy, single-image heavy with occasional collages
//   - mosaic: dense grids, favors quads and stacked pairs
//
// Custom themes load from TOML files via [LoadFile].
package theme

import (
	"fmt"
	"sort"

	"github.com/dangsayz/spreadpress/pkg/spread"
)

// Theme is a complete layout policy for the planner.
type Theme struct {
	Name     string                `json:"name" toml:"name"`
	Rules    []spread.Rule         `json:"rules" toml:"rules"`
	Captions []spread.CaptionStyle `json:"captions,omitempty" toml:"captions"`
}

// Validate checks the theme's rule table and caption styles.
func (t Theme) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("theme has no name")
	}
	if err := spread.ValidateRules(t.Rules); err != nil {
		return fmt.Errorf("theme %s: %w", t.Name, err)
	}
	for i, s := range t.Captions {
		switch s {
		case spread.CaptionNone, spread.CaptionOverlay, spread.CaptionBelow, spread.CaptionMarginNote:
		default:
			return fmt.Errorf("theme %s: caption %d: unknown style %q", t.Name, i, s)
		}
	}
	return nil
}

// Plan runs the spread planner with this theme's rule table.
func (t Theme) Plan(images []spread.ImageDescriptor) []spread.Spread {
	return spread.Plan(images, t.Rules)
}

// Decorate applies this theme's caption rotation to a finished plan.
func (t Theme) Decorate(spreads []spread.Spread) []spread.DecoratedSpread {
	return spread.Decorate(spreads, t.Captions)
}

// DefaultName is the theme used when none is specified.
const DefaultName = "classic"

// Classic is the balanced default: a trio every fourth spread, a quad every
// sixth, pairs in between.
func Classic() Theme {
	return Theme{
		Name: "classic",
		Rules: []spread.Rule{
			{MinRemaining: 4, Every: 6, Offset: 3, Kind: spread.KindQuad},
			{MinRemaining: 3, Every: 4, Offset: 1, Kind: spread.KindTrio},
			{MinRemaining: 2, Every: 2, Offset: 0, Kind: spread.KindSplit},
			{MinRemaining: 2, Every: 2, Offset: 1, Kind: spread.KindDuoStacked},
		},
		Captions: []spread.CaptionStyle{
			spread.CaptionBelow, spread.CaptionOverlay, spread.CaptionNone, spread.CaptionMarginNote,
		},
	}
}

// Editorial leans on full-bleed singles with an occasional collage, the
// magazine look for wedding and portrait galleries.
func Editorial() Theme {
	return Theme{
		Name: "editorial",
		Rules: []spread.Rule{
			{MinRemaining: 3, Every: 5, Offset: 2, Kind: spread.KindCollageLeft},
			{MinRemaining: 3, Every: 5, Offset: 4, Kind: spread.KindTrio},
			{MinRemaining: 2, Every: 3, Offset: 1, Kind: spread.KindSplit},
			{MinRemaining: 1, Every: 4, Offset: 0, Kind: spread.KindOffsetLeft},
		},
		Captions: []spread.CaptionStyle{
			spread.CaptionMarginNote, spread.CaptionNone, spread.CaptionBelow, spread.CaptionNone,
		},
	}
}

// Mosaic packs images tightly, for large event galleries where density
// beats breathing room.
func Mosaic() Theme {
	return Theme{
		Name: "mosaic",
		Rules: []spread.Rule{
			{MinRemaining: 4, Every: 3, Offset: 1, Kind: spread.KindQuad},
			{MinRemaining: 3, Every: 3, Offset: 2, Kind: spread.KindCollageRight},
			{MinRemaining: 3, Every: 3, Offset: 0, Kind: spread.KindTrio},
			{MinRemaining: 2, Kind: spread.KindDuoStacked},
		},
		Captions: []spread.CaptionStyle{
			spread.CaptionOverlay, spread.CaptionNone,
		},
	}
}

// builtins maps theme names to constructors. Constructors return fresh
// values so callers can't mutate a shared table.
var builtins = map[string]func() Theme{
	"classic":   Classic,
	"editorial": Editorial,
	"mosaic":    Mosaic,
}

// Get returns the built-in theme with the given name.
func Get(name string) (Theme, error) {
	if name == "" {
		name = DefaultName
	}
	ctor, ok := builtins[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme: %q (available: %v)", name, Names())
	}
	return ctor(), nil
}

// Names returns the built-in theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
