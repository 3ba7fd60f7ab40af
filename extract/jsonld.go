package extract

import (
	"strings"

	"github.com/ysmood/gson"
)

// Structured-data extractors. JSON-LD Product blocks are the most reliable
// source: the site itself declares the product fields for search engines.

func jsonldTitle(d *Document) (string, bool) {
	for _, p := range d.Products() {
		if v := p.Get("name"); !v.Nil() {
			if s := strings.TrimSpace(v.Str()); s != "" {
				return s, true
			}
		}
	}
	return "", false
}

// jsonldPrice reads Product.offers.price, falling back to lowPrice then
// highPrice. When offers is an array the first entry is used. The candidate
// is returned as text; the normalizer owns parsing and sanity bounds.
func jsonldPrice(d *Document) (string, bool) {
	for _, p := range d.Products() {
		offers := p.Get("offers")
		if offers.Nil() {
			continue
		}
		if arr, ok := offers.Val().([]any); ok {
			if len(arr) == 0 {
				continue
			}
			offers = gson.New(arr[0])
		}
		for _, key := range []string{"price", "lowPrice", "highPrice"} {
			if v := offers.Get(key); !v.Nil() {
				if s := strings.TrimSpace(v.Str()); s != "" {
					return s, true
				}
			}
		}
	}
	return "", false
}

// jsonldImage reads Product.image, which may be a bare URL string, an array
// of them, or an ImageObject with url/@id.
func jsonldImage(d *Document) (string, bool) {
	for _, p := range d.Products() {
		img := p.Get("image")
		if img.Nil() {
			continue
		}
		if arr, ok := img.Val().([]any); ok {
			if len(arr) == 0 {
				continue
			}
			img = gson.New(arr[0])
		}
		if _, ok := img.Val().(map[string]any); ok {
			for _, key := range []string{"url", "@id"} {
				if v := img.Get(key); !v.Nil() {
					if s := strings.TrimSpace(v.Str()); s != "" {
						return s, true
					}
				}
			}
			continue
		}
		if s := strings.TrimSpace(img.Str()); s != "" {
			return s, true
		}
	}
	return "", false
}

func jsonldDescription(d *Document) (string, bool) {
	for _, p := range d.Products() {
		if v := p.Get("description"); !v.Nil() {
			if s := strings.TrimSpace(v.Str()); s != "" {
				return s, true
			}
		}
	}
	return "", false
}
