// Package spread plans editorial layout spreads for ordered photo galleries.
//
// A spread is one layout block in a rendered gallery: a named visual pattern
// (hero, split, trio, ...) plus the images it contains. The planner walks an
// ordered image sequence and partitions it into spreads using a data-driven
// rule table, so that every input image lands in exactly one spread, in
// order, with no gaps or duplicates.
//
// # Determinism
//
// Planning is a pure function of its inputs. The same gallery and rule table
// always produce the same spread sequence, which keeps server-rendered pages
// identical to client re-renders and makes snapshot testing reliable.
//
// # Usage
//
//	spreads := spread.Plan(images, theme.Classic().Rules)
//	for _, s := range spreads {
//	    fmt.Println(s.Kind, len(s.Images))
//	}
package spread

// Kind identifies a visual layout pattern. The set of kinds is closed and
// each kind consumes a fixed number of images.
type Kind string

// Layout kinds, ordered roughly by visual weight.
const (
	KindHero           Kind = "hero"
	KindSingleCentered Kind = "single-centered"
	KindOffsetLeft     Kind = "offset-left"
	KindOffsetRight    Kind = "offset-right"
	KindSplit          Kind = "split"
	KindDuoStacked     Kind = "duo-stacked"
	KindTrio           Kind = "trio"
	KindQuad           Kind = "quad"
	KindCollageLeft    Kind = "collage-left"
	KindCollageRight   Kind = "collage-right"
)

// cardinalities maps each kind to the number of images it consumes.
var cardinalities = map[Kind]int{
	KindHero:           1,
	KindSingleCentered: 1,
	KindOffsetLeft:     1,
	KindOffsetRight:    1,
	KindSplit:          2,
	KindDuoStacked:     2,
	KindTrio:           3,
	KindQuad:           4,
	KindCollageLeft:    3,
	KindCollageRight:   3,
}

// Cardinality returns the number of images the kind consumes.
// Unknown kinds return 0.
func (k Kind) Cardinality() int {
	return cardinalities[k]
}

// Valid returns true if k is one of the known layout kinds.
func (k Kind) Valid() bool {
	_, ok := cardinalities[k]
	return ok
}

// Kinds returns all known layout kinds in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindHero, KindSingleCentered, KindOffsetLeft, KindOffsetRight,
		KindSplit, KindDuoStacked, KindTrio, KindQuad,
		KindCollageLeft, KindCollageRight,
	}
}

// ImageDescriptor describes one photograph available for layout.
//
// The planner treats descriptors as immutable values: it never modifies,
// drops, or duplicates one. Width and Height are optional pixel dimensions;
// zero means unknown and is handled without error. Everything else is an
// opaque payload passed through to the rendering layer.
type ImageDescriptor struct {
	ID     string  `json:"id" bson:"id"`
	Width  int     `json:"width,omitempty" bson:"width,omitempty"`
	Height int     `json:"height,omitempty" bson:"height,omitempty"`
	URL    string  `json:"url,omitempty" bson:"url,omitempty"`
	Alt    string  `json:"alt,omitempty" bson:"alt,omitempty"`
	Title  string  `json:"title,omitempty" bson:"title,omitempty"`
	FocalX float64 `json:"focal_x,omitempty" bson:"focal_x,omitempty"` // 0–100 percent
	FocalY float64 `json:"focal_y,omitempty" bson:"focal_y,omitempty"` // 0–100 percent

	Meta map[string]any `json:"meta,omitempty" bson:"meta,omitempty"`
}

// defaultAspect is assumed when an image's dimensions are unknown.
const defaultAspect = 3.0 / 2.0

// Aspect returns the width/height ratio, falling back to a 3:2 assumption
// when either dimension is unknown. It never panics on zero dimensions.
func (d ImageDescriptor) Aspect() float64 {
	if d.Width <= 0 || d.Height <= 0 {
		return defaultAspect
	}
	return float64(d.Width) / float64(d.Height)
}

// Portrait returns true if the image is taller than wide.
// Images with unknown dimensions are treated as landscape.
func (d ImageDescriptor) Portrait() bool {
	return d.Aspect() < 1
}

// Spread is one layout block: a kind plus the images it consumes, in source
// order. Spreads are created once per planning pass and never mutated.
type Spread struct {
	Kind   Kind              `json:"kind" bson:"kind"`
	Images []ImageDescriptor `json:"images" bson:"images"`
}
