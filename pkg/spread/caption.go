package spread

import "strings"

// CaptionStyle names a typographic treatment for a spread's caption.
type CaptionStyle string

// Caption styles. StyleNone suppresses the caption entirely.
const (
	CaptionNone       CaptionStyle = "none"
	CaptionOverlay    CaptionStyle = "overlay"
	CaptionBelow      CaptionStyle = "below"
	CaptionMarginNote CaptionStyle = "margin-note"
)

// DefaultCaptionPattern is the rotation used when a theme doesn't specify
// its own. Every third spread goes uncaptioned to let the images breathe.
var DefaultCaptionPattern = []CaptionStyle{CaptionBelow, CaptionOverlay, CaptionNone, CaptionMarginNote}

// Caption is the decoration computed for one spread.
type Caption struct {
	Style CaptionStyle `json:"style" bson:"style"`
	Text  string       `json:"text,omitempty" bson:"text,omitempty"`
	// Lead is the first word of the text, rendered oversized by some
	// templates. Empty when the text is empty or the style is none.
	Lead string `json:"lead,omitempty" bson:"lead,omitempty"`
}

// DecoratedSpread pairs a spread with its caption decoration.
type DecoratedSpread struct {
	Spread  Spread  `json:"spread" bson:"spread"`
	Caption Caption `json:"caption" bson:"caption"`
}

// Decorate layers caption decoration over a finished plan. It is a pure
// lookup keyed by (spreadIndex mod len(pattern), kind) and has no bearing
// on the partition: the spreads themselves pass through untouched.
//
// Multi-image kinds only carry overlay captions; any other style degrades
// to none for them. A nil or empty pattern uses DefaultCaptionPattern.
func Decorate(spreads []Spread, pattern []CaptionStyle) []DecoratedSpread {
	if len(pattern) == 0 {
		pattern = DefaultCaptionPattern
	}

	out := make([]DecoratedSpread, len(spreads))
	for i, s := range spreads {
		out[i] = DecoratedSpread{
			Spread:  s,
			Caption: captionFor(s, pattern[i%len(pattern)]),
		}
	}
	return out
}

// captionFor computes the caption for a single spread.
func captionFor(s Spread, style CaptionStyle) Caption {
	if s.Kind.Cardinality() > 1 && style != CaptionOverlay {
		style = CaptionNone
	}
	if style == CaptionNone || len(s.Images) == 0 {
		return Caption{Style: CaptionNone}
	}

	text := s.Images[0].Title
	if text == "" {
		return Caption{Style: CaptionNone}
	}

	return Caption{
		Style: style,
		Text:  text,
		Lead:  firstWord(text),
	}
}

// firstWord returns the first whitespace-separated word of s.
func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
