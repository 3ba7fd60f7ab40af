// Package extract runs ordered per-field extractor cascades over a parsed
// product page. Extractors are pure functions from document to candidate;
// the first non-empty candidate per field wins.
package extract

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ysmood/gson"
)

// Document wraps a permissively parsed HTML tree together with the raw
// markup and the page URL. It is scoped to a single extraction call.
type Document struct {
	doc     *goquery.Document
	raw     string
	pageURL *url.URL

	productsParsed bool
	products       []gson.JSON
}

// Parse builds a Document from raw HTML. pageURL may be nil when the source
// URL is unknown; extractors that need it simply produce no candidate.
// Malformed markup is tolerated, never fatal.
func Parse(rawHTML string, pageURL *url.URL) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc, raw: rawHTML, pageURL: pageURL}, nil
}

// Products returns the JSON-LD Product nodes found in the page, resolving
// @graph containers. Blocks that fail to parse are skipped silently. The
// result is computed once per document.
func (d *Document) Products() []gson.JSON {
	if d.productsParsed {
		return d.products
	}
	d.productsParsed = true

	d.doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var raw any
		if err := json.Unmarshal([]byte(s.Text()), &raw); err != nil {
			return
		}
		node := gson.New(raw)

		// A top-level @graph array may hold the Product among other
		// schema entities.
		if graph, ok := node.Get("@graph").Val().([]any); ok {
			for _, item := range graph {
				candidate := gson.New(item)
				if candidate.Get("@type").Str() == "Product" {
					node = candidate
					break
				}
			}
		}

		if node.Get("@type").Str() == "Product" {
			d.products = append(d.products, node)
		}
	})

	return d.products
}

// metaContent returns the first non-empty content attribute among the given
// meta selectors, in order.
func (d *Document) metaContent(selectors ...string) (string, bool) {
	for _, sel := range selectors {
		if v, ok := d.doc.Find(sel).First().Attr("content"); ok {
			if s := strings.TrimSpace(v); s != "" {
				return s, true
			}
		}
	}
	return "", false
}
