package render

import (
	"encoding/json"

	"github.com/dangsayz/spreadpress/pkg/spread"
)

// jsonDoc is the top-level JSON artifact shape.
type jsonDoc struct {
	SpreadCount int                      `json:"spread_count"`
	ImageCount  int                      `json:"image_count"`
	Spreads     []spread.DecoratedSpread `json:"spreads"`
}

// JSON serializes a decorated plan to pretty-printed JSON bytes.
// Output is deterministic: field order is fixed by the struct definitions
// and spreads keep their planning order.
func JSON(spreads []spread.DecoratedSpread) ([]byte, error) {
	doc := jsonDoc{
		SpreadCount: len(spreads),
		Spreads:     spreads,
	}
	for _, s := range spreads {
		doc.ImageCount += len(s.Spread.Images)
	}
	if doc.Spreads == nil {
		doc.Spreads = []spread.DecoratedSpread{}
	}
	return json.MarshalIndent(doc, "", "  ")
}
