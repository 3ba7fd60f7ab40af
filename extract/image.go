package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var defaultImageSelectors = []string{
	`[data-testid="product-image"] img`,
	`[data-automation="product-image"] img`,
	`.product-image img`,
	`.product__image img`,
	`#product-image img`,
	`#main-image`,
	`[itemprop="image"]`,
	`.pdp-image img`,
	`.gallery-image img`,
	`.primary-image`,
	`[class*="ProductImage"] img`,
	`[class*="product-image"] img`,
	`.slick-current img`,
	`[data-zoom-image]`,
	`img[class*="product"]`,
	`img[class*="Product"]`,
	`.product-gallery img`,
	`.product-single__photo img`,
	`.product-featured-img`,
	`[data-main-image]`,
	`.product-media img`,
	`.woocommerce-product-gallery__image img`,
	`.carousel-inner img`,
	`.swiper-slide-active img`,
	`.main-product-image img`,
}

// defaultImageBlocklist filters site chrome out of the last-resort image
// scan: anything whose source names one of these is not the product shot.
var defaultImageBlocklist = []string{"logo", "icon", "placeholder", "avatar", "banner"}

// srcAttrs are the attributes an image source hides behind, in priority
// order. Lazy-loading libraries each invented their own.
var srcAttrs = []string{
	"src",
	"data-src",
	"data-zoom-image",
	"data-large",
	"data-image-large",
	"data-lazy-src",
	"data-original",
}

// cssImage returns an extractor that walks the ranked image selectors
// reading the known source attributes, with a srcset fallback that picks
// the widest declared candidate.
func cssImage(matchers []goquery.Matcher) Extractor {
	return func(d *Document) (string, bool) {
		for _, m := range matchers {
			el := d.doc.FindMatcher(m).First()
			if el.Length() == 0 {
				continue
			}

			src := firstAttr(el, srcAttrs...)
			if src != "" && usableSource(src) {
				return src, true
			}

			srcset := firstAttr(el, "srcset", "data-srcset")
			if srcset != "" {
				if best := srcsetLargest(srcset); best != "" {
					return best, true
				}
			}
		}
		return "", false
	}
}

// imgScan is the last resort: walk every <img>, skip site chrome named by
// the blocklist, and prefer images declared at product size (≥200px) or
// with no declared size at all.
func imgScan(blocklist []string) Extractor {
	return func(d *Document) (string, bool) {
		var found string
		d.doc.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			src := firstAttr(s, "src", "data-src")
			if src == "" || !usableSource(src) {
				return true
			}
			lower := strings.ToLower(src)
			for _, kw := range blocklist {
				if strings.Contains(lower, kw) {
					return true
				}
			}
			w := leadingInt(s.AttrOr("width", ""))
			h := leadingInt(s.AttrOr("height", ""))
			if w >= 200 || h >= 200 || (w == 0 && h == 0) {
				found = src
				return false
			}
			return true
		})
		return found, found != ""
	}
}

// srcsetLargest parses a srcset candidate list and returns the entry with
// the largest declared width.
func srcsetLargest(srcset string) string {
	best := ""
	bestWidth := -1
	for _, part := range strings.Split(srcset, ",") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) == 0 || fields[0] == "" || strings.Contains(fields[0], "placeholder") {
			continue
		}
		width := 0
		if len(fields) > 1 {
			width = leadingInt(fields[1])
		}
		if width > bestWidth {
			bestWidth = width
			best = fields[0]
		}
	}
	return best
}

// usableSource rejects inline data URIs and loading-state placeholders.
func usableSource(src string) bool {
	if strings.HasPrefix(src, "data:") {
		return false
	}
	lower := strings.ToLower(src)
	return !strings.Contains(lower, "placeholder") &&
		!strings.Contains(lower, "loading") &&
		!strings.Contains(lower, "spinner")
}

// leadingInt parses the leading digits of a string ("200w" → 200).
func leadingInt(s string) int {
	n := 0
	seen := false
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		seen = true
	}
	if !seen {
		return 0
	}
	return n
}
