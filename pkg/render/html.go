package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/dangsayz/spreadpress/pkg/spread"
)

// htmlPage is the template context for the HTML artifact.
type htmlPage struct {
	Title   string
	Spreads []htmlSpread
}

type htmlSpread struct {
	Kind    spread.Kind
	Images  []htmlImage
	Caption spread.Caption
}

type htmlImage struct {
	ID       string
	URL      string
	Alt      string
	Position string // CSS object-position
}

// HTML renders a decorated plan as a standalone HTML page. Each spread
// becomes a <section> whose class selects a CSS grid template for its
// layout kind; focal points map to object-position so crops stay centered
// on the subject.
func HTML(spreads []spread.DecoratedSpread, title string) ([]byte, error) {
	page := htmlPage{
		Title:   title,
		Spreads: make([]htmlSpread, len(spreads)),
	}
	if page.Title == "" {
		page.Title = "Gallery"
	}

	for i, d := range spreads {
		hs := htmlSpread{
			Kind:    d.Spread.Kind,
			Caption: d.Caption,
			Images:  make([]htmlImage, len(d.Spread.Images)),
		}
		for j, img := range d.Spread.Images {
			hs.Images[j] = htmlImage{
				ID:       img.ID,
				URL:      img.URL,
				Alt:      img.Alt,
				Position: objectPosition(img),
			}
		}
		page.Spreads[i] = hs
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// objectPosition converts focal percentages to a CSS object-position
// value. Unset focal points center the crop.
func objectPosition(img spread.ImageDescriptor) string {
	x, y := img.FocalX, img.FocalY
	if x == 0 && y == 0 {
		x, y = 50, 50
	}
	x = clampPercent(x)
	y = clampPercent(y)
	return fmt.Sprintf("%.0f%% %.0f%%", x, y)
}

// clampPercent clamps to the 0–100 range CSS expects.
func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { margin: 0; font-family: Georgia, serif; background: #fafafa; color: #1a1a1a; }
main { max-width: 1200px; margin: 0 auto; padding: 2rem 1rem; }
section.spread { display: grid; gap: 0.5rem; margin-bottom: 3rem; }
section.spread img { width: 100%; height: 100%; object-fit: cover; display: block; }
.hero, .single-centered { grid-template-columns: 1fr; }
.single-centered { padding: 0 10%; }
.offset-left { grid-template-columns: 2fr 1fr; }
.offset-left img { grid-column: 1; }
.offset-right { grid-template-columns: 1fr 2fr; }
.offset-right img { grid-column: 2; }
.split { grid-template-columns: 1fr 1fr; }
.duo-stacked { grid-template-columns: 1fr; }
.trio { grid-template-columns: repeat(3, 1fr); }
.quad { grid-template-columns: repeat(2, 1fr); }
.collage-left { grid-template-columns: 2fr 1fr; }
.collage-left img:first-child { grid-row: span 2; }
.collage-right { grid-template-columns: 1fr 2fr; }
.collage-right img:last-child { grid-row: span 2; grid-column: 2; grid-row-start: 1; }
figcaption { font-style: italic; color: #555; }
figcaption.overlay { position: absolute; bottom: 1rem; left: 1rem; color: #fff; text-shadow: 0 1px 3px rgba(0,0,0,.6); }
figcaption.margin-note { font-size: 0.85rem; text-align: right; }
figcaption .lead { font-size: 1.4em; font-style: normal; }
figure { position: relative; margin: 0; }
</style>
</head>
<body>
<main>
{{range .Spreads}}<figure>
<section class="spread {{.Kind}}">
{{range .Images}}<img src="{{.URL}}" alt="{{.Alt}}" data-image-id="{{.ID}}" style="object-position: {{.Position}}">
{{end}}</section>
{{if ne .Caption.Style "none"}}<figcaption class="{{.Caption.Style}}"><span class="lead">{{.Caption.Lead}}</span> {{.Caption.Text}}</figcaption>
{{end}}</figure>
{{end}}</main>
</body>
</html>
`))
