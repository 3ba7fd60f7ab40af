package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Ranked CSS selector lists, most specific first. Testid/automation
// attributes are stable author-intent markers; bare h1 and the
// class*=price catch-alls come last.

var defaultTitleSelectors = []string{
	`[data-testid="product-title"]`,
	`[data-automation="product-title"]`,
	`.product-title`,
	`.product-name`,
	`.product__title`,
	`#productTitle`,
	`[itemprop="name"]`,
	`h1.title`,
	`h1[class*="product"]`,
	`h1[class*="Product"]`,
	`.pdp-title`,
	`.item-title`,
	`h1`,
}

var defaultPriceSelectors = []string{
	`[data-testid="current-price"]`,
	`[data-automation="product-price"]`,
	`[data-price]`,
	`[data-product-price]`,
	`[itemprop="price"]`,
	`.price-current`,
	`.price--current`,
	`.current-price`,
	`.sale-price`,
	`.offer-price`,
	`.product-price`,
	`.product__price`,
	`.Price`,
	`.price`,
	`#priceblock_ourprice`,
	`#priceblock_dealprice`,
	`.a-price .a-offscreen`,
	`[class*="ProductPrice"]`,
	`[class*="product-price"]`,
	`[class*="currentPrice"]`,
	`[class*="sale-price"]`,
	`.pdp-price`,
	`.item-price`,
	`span[class*="price"]`,
	`div[class*="price"]`,
}

// priceRx matches price patterns like $99.99, 99.99, $1,299.00. The first
// match in an element's text wins, so "Now $1,299.00 (was $1,599.00)"
// yields the current price.
var priceRx = regexp.MustCompile(`\$?\s*([\d,]+\.?\d*)`)

// compileAll precompiles a selector list into goquery matchers so the
// per-document cascade does no selector parsing.
func compileAll(selectors []string) []goquery.Matcher {
	matchers := make([]goquery.Matcher, 0, len(selectors))
	for _, s := range selectors {
		matchers = append(matchers, cascadia.MustCompile(s))
	}
	return matchers
}

// cssTitle returns an extractor that takes the first selector with
// non-empty element text.
func cssTitle(matchers []goquery.Matcher) Extractor {
	return func(d *Document) (string, bool) {
		for _, m := range matchers {
			el := d.doc.FindMatcher(m).First()
			if el.Length() == 0 {
				continue
			}
			if s := strings.TrimSpace(el.Text()); s != "" {
				return s, true
			}
		}
		return "", false
	}
}

// cssPrice returns an extractor that walks the ranked price selectors and
// takes the first one whose content/data attribute or text contains an
// in-bounds numeric price. Out-of-range matches are treated as non-matches
// so the cascade can keep looking.
func cssPrice(matchers []goquery.Matcher, min, max float64) Extractor {
	return func(d *Document) (string, bool) {
		for _, m := range matchers {
			el := d.doc.FindMatcher(m).First()
			if el.Length() == 0 {
				continue
			}
			text := firstAttr(el, "content", "data-price", "data-product-price")
			if text == "" {
				text = el.Text()
			}
			match := priceRx.FindStringSubmatch(text)
			if match == nil {
				continue
			}
			v, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
			if err != nil || v <= min || v >= max {
				continue
			}
			return match[1], true
		}
		return "", false
	}
}

// firstAttr returns the first present, non-empty attribute among names.
func firstAttr(el *goquery.Selection, names ...string) string {
	for _, name := range names {
		if v, ok := el.Attr(name); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
