package spread_test

import (
	"fmt"

	"github.com/dangsayz/spreadpress/pkg/spread"
)

func ExamplePlan() {
	images := []spread.ImageDescriptor{
		{ID: "cover"},
		{ID: "beach-01"},
		{ID: "beach-02"},
		{ID: "beach-03"},
		{ID: "sunset"},
	}

	// Every second spread becomes a trio when enough images remain;
	// leftover pairs become splits.
	rules := []spread.Rule{
		{MinRemaining: 3, Every: 2, Offset: 1, Kind: spread.KindTrio},
		{MinRemaining: 2, Kind: spread.KindSplit},
	}

	for _, s := range spread.Plan(images, rules) {
		ids := make([]string, len(s.Images))
		for i, img := range s.Images {
			ids[i] = img.ID
		}
		fmt.Println(s.Kind, ids)
	}
	// Output:
	// hero [cover]
	// trio [beach-01 beach-02 beach-03]
	// offset-right [sunset]
}
