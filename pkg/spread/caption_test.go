package spread

import "testing"

func TestDecoratePreservesSpreads(t *testing.T) {
	images := makeImages(12)
	spreads := Plan(images, testRules)

	decorated := Decorate(spreads, nil)
	if len(decorated) != len(spreads) {
		t.Fatalf("decorated length = %d, want %d", len(decorated), len(spreads))
	}

	// Decoration must not disturb the partition.
	var flat []ImageDescriptor
	for _, d := range decorated {
		flat = append(flat, d.Spread.Images...)
	}
	for i := range images {
		if flat[i].ID != images[i].ID {
			t.Fatalf("decoration changed partition at %d", i)
		}
	}
}

func TestDecorateRotation(t *testing.T) {
	// Four single-image spreads against a two-style pattern: styles must
	// rotate by spread index.
	spreads := []Spread{
		{Kind: KindHero, Images: []ImageDescriptor{{ID: "a", Title: "Morning Light"}}},
		{Kind: KindSingleCentered, Images: []ImageDescriptor{{ID: "b", Title: "Dunes"}}},
		{Kind: KindOffsetLeft, Images: []ImageDescriptor{{ID: "c", Title: "Pier at Dusk"}}},
		{Kind: KindOffsetRight, Images: []ImageDescriptor{{ID: "d", Title: "Harbor"}}},
	}
	pattern := []CaptionStyle{CaptionBelow, CaptionOverlay}

	decorated := Decorate(spreads, pattern)
	wantStyles := []CaptionStyle{CaptionBelow, CaptionOverlay, CaptionBelow, CaptionOverlay}
	for i, d := range decorated {
		if d.Caption.Style != wantStyles[i] {
			t.Errorf("spread %d style = %s, want %s", i, d.Caption.Style, wantStyles[i])
		}
	}

	if decorated[2].Caption.Lead != "Pier" {
		t.Errorf("lead = %q, want %q", decorated[2].Caption.Lead, "Pier")
	}
}

func TestDecorateMultiImageOnlyOverlay(t *testing.T) {
	spreads := []Spread{
		{Kind: KindTrio, Images: makeImages(3)},
	}

	// A non-overlay style on a multi-image kind degrades to none.
	decorated := Decorate(spreads, []CaptionStyle{CaptionBelow})
	if got := decorated[0].Caption.Style; got != CaptionNone {
		t.Errorf("style = %s, want none", got)
	}

	decorated = Decorate(spreads, []CaptionStyle{CaptionOverlay})
	if got := decorated[0].Caption.Style; got != CaptionOverlay {
		t.Errorf("style = %s, want overlay", got)
	}
}

func TestDecorateUntitledImage(t *testing.T) {
	spreads := []Spread{
		{Kind: KindHero, Images: []ImageDescriptor{{ID: "a"}}},
	}

	decorated := Decorate(spreads, []CaptionStyle{CaptionBelow})
	if got := decorated[0].Caption.Style; got != CaptionNone {
		t.Errorf("untitled image should not be captioned, got %s", got)
	}
}

func TestFirstWord(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Morning Light", "Morning"},
		{"  padded  title ", "padded"},
		{"single", "single"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := firstWord(tt.in); got != tt.want {
			t.Errorf("firstWord(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
