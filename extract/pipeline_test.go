package extract

import (
	"testing"
)

func mustParse(t *testing.T, html string) *Document {
	t.Helper()
	d, err := Parse(html, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return d
}

func newTestPipeline() *Pipeline {
	return NewPipeline(Options{})
}

func TestPipeline_StructuredDataWinsOverMeta(t *testing.T) {
	html := `<html><head>
		<meta property="og:title" content="OG Title">
		<meta property="og:image" content="https://example.com/og.jpg">
		<script type="application/ld+json">
		{"@type": "Product", "name": "Wireless Mouse",
		 "offers": {"price": "29.99"},
		 "image": "https://cdn.example.com/a.jpg?w=200",
		 "description": "A very good mouse."}
		</script>
		</head><body><h1>Heading Title</h1></body></html>`

	cand := newTestPipeline().Run(mustParse(t, html))

	if cand.Title != "Wireless Mouse" {
		t.Errorf("Title = %q, want %q", cand.Title, "Wireless Mouse")
	}
	if cand.Price != "29.99" {
		t.Errorf("Price = %q, want %q", cand.Price, "29.99")
	}
	if cand.Image != "https://cdn.example.com/a.jpg?w=200" {
		t.Errorf("Image = %q, want %q", cand.Image, "https://cdn.example.com/a.jpg?w=200")
	}
	if cand.Description != "A very good mouse." {
		t.Errorf("Description = %q, want %q", cand.Description, "A very good mouse.")
	}
}

func TestPipeline_GraphContainer(t *testing.T) {
	html := `<html><head><script type="application/ld+json">
		{"@graph": [
			{"@type": "WebSite", "name": "Example Store"},
			{"@type": "Product", "name": "Graph Gadget", "offers": {"lowPrice": 12.5}}
		]}
		</script></head><body></body></html>`

	cand := newTestPipeline().Run(mustParse(t, html))

	if cand.Title != "Graph Gadget" {
		t.Errorf("Title = %q, want %q", cand.Title, "Graph Gadget")
	}
	if cand.Price != "12.5" {
		t.Errorf("Price = %q, want %q", cand.Price, "12.5")
	}
}

func TestPipeline_MalformedJSONSkipped(t *testing.T) {
	html := `<html><head>
		<script type="application/ld+json">{not valid json</script>
		<script type="application/ld+json">{"@type": "Product", "name": "Survivor"}</script>
		</head><body></body></html>`

	cand := newTestPipeline().Run(mustParse(t, html))

	if cand.Title != "Survivor" {
		t.Errorf("Title = %q, want %q", cand.Title, "Survivor")
	}
}

func TestPipeline_OffersArray(t *testing.T) {
	html := `<html><head><script type="application/ld+json">
		{"@type": "Product", "name": "Multi Offer",
		 "offers": [{"price": "42.00"}, {"price": "99.00"}]}
		</script></head><body></body></html>`

	cand := newTestPipeline().Run(mustParse(t, html))

	if cand.Price != "42.00" {
		t.Errorf("Price = %q, want first offer %q", cand.Price, "42.00")
	}
}

func TestPipeline_ImageObjectAndArray(t *testing.T) {
	tests := []struct {
		name string
		ld   string
		want string
	}{
		{
			"array of strings",
			`{"@type": "Product", "name": "X", "image": ["https://a.example/1.jpg", "https://a.example/2.jpg"]}`,
			"https://a.example/1.jpg",
		},
		{
			"image object",
			`{"@type": "Product", "name": "X", "image": {"@type": "ImageObject", "url": "https://a.example/obj.jpg"}}`,
			"https://a.example/obj.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := `<html><head><script type="application/ld+json">` + tt.ld + `</script></head><body></body></html>`
			cand := newTestPipeline().Run(mustParse(t, html))
			if cand.Image != tt.want {
				t.Errorf("Image = %q, want %q", cand.Image, tt.want)
			}
		})
	}
}

func TestPipeline_MetaFallback(t *testing.T) {
	html := `<html><head>
		<meta property="og:title" content="Meta Gadget">
		<meta property="product:price:amount" content="15.00">
		<meta property="og:image" content="https://example.com/meta.jpg">
		<meta property="og:description" content="From the meta tags.">
		<title>Raw Title</title>
		</head><body></body></html>`

	cand := newTestPipeline().Run(mustParse(t, html))

	if cand.Title != "Meta Gadget" {
		t.Errorf("Title = %q, want %q", cand.Title, "Meta Gadget")
	}
	if cand.Price != "15.00" {
		t.Errorf("Price = %q, want %q", cand.Price, "15.00")
	}
	if cand.Image != "https://example.com/meta.jpg" {
		t.Errorf("Image = %q, want %q", cand.Image, "https://example.com/meta.jpg")
	}
	if cand.Description != "From the meta tags." {
		t.Errorf("Description = %q, want %q", cand.Description, "From the meta tags.")
	}
}

func TestPipeline_CSSSelectorFallback(t *testing.T) {
	html := `<html><head><title>Page Title | Store</title></head><body>
		<h1 class="product-title">Selector Gadget</h1>
		<span class="price">Now $1,299.00 (was $1,599.00)</span>
		</body></html>`

	cand := newTestPipeline().Run(mustParse(t, html))

	if cand.Title != "Selector Gadget" {
		t.Errorf("Title = %q, want %q", cand.Title, "Selector Gadget")
	}
	if cand.Price != "1,299.00" {
		t.Errorf("Price = %q, want %q", cand.Price, "1,299.00")
	}
}

func TestPipeline_RawTitleLastResort(t *testing.T) {
	html := `<html><head><title>Only The Title</title></head><body><p>no product markers</p></body></html>`

	cand := newTestPipeline().Run(mustParse(t, html))

	if cand.Title != "Only The Title" {
		t.Errorf("Title = %q, want %q", cand.Title, "Only The Title")
	}
}

func TestPipeline_CSSPriceOutOfBoundsSkipped(t *testing.T) {
	html := `<html><body><span class="price">$999999</span></body></html>`

	cand := newTestPipeline().Run(mustParse(t, html))

	if cand.Price != "" {
		t.Errorf("Price = %q, want no candidate for out-of-range value", cand.Price)
	}
}

func TestPipeline_DataPriceAttribute(t *testing.T) {
	html := `<html><body><div data-price="79.90">special offer</div></body></html>`

	cand := newTestPipeline().Run(mustParse(t, html))

	if cand.Price != "79.90" {
		t.Errorf("Price = %q, want %q", cand.Price, "79.90")
	}
}

func TestPipeline_EmptyDocument(t *testing.T) {
	cand := newTestPipeline().Run(mustParse(t, "<html><body></body></html>"))

	if cand.Title != "" || cand.Price != "" || cand.Image != "" || cand.Description != "" {
		t.Errorf("empty document produced candidates: %+v", cand)
	}
}

func TestPipeline_CustomSelectors(t *testing.T) {
	p := NewPipeline(Options{
		TitleSelectors: []string{`.custom-name`},
	})
	html := `<html><body>
		<h1 class="product-title">Default Pick</h1>
		<div class="custom-name">Custom Pick</div>
		</body></html>`

	cand := p.Run(mustParse(t, html))

	if cand.Title != "Custom Pick" {
		t.Errorf("Title = %q, want %q", cand.Title, "Custom Pick")
	}
}
