// Package normalize cleans and bounds extracted field candidates. Values
// that cannot be normalized are discarded, never clamped or passed through.
package normalize

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/wishloop/metascout/config"
)

// titleSeparators mark where a site-name suffix begins; the title is cut
// before the first occurrence of each, in order.
var titleSeparators = []string{"|", " - ", " – ", " — "}

// resizeParams are query parameters CDNs use to serve downscaled variants;
// stripping them usually yields the full-resolution image.
var resizeParams = []string{"w", "h", "width", "height", "size", "quality"}

var (
	priceRx      = regexp.MustCompile(`\$?\s*([\d,]+\.?\d*)`)
	whitespaceRx = regexp.MustCompile(`\s+`)
)

// Normalizer applies the configured field bounds. It is stateless and safe
// for concurrent use.
type Normalizer struct {
	cfg config.ExtractConfig
}

// New creates a Normalizer from extraction config.
func New(cfg config.ExtractConfig) *Normalizer {
	if cfg.TitleMaxLen <= 0 {
		cfg.TitleMaxLen = 255
	}
	if cfg.DescriptionMaxLen <= 0 {
		cfg.DescriptionMaxLen = 500
	}
	if cfg.PriceMax <= 0 {
		cfg.PriceMax = 100000
	}
	return &Normalizer{cfg: cfg}
}

// Title strips the site-name suffix, collapses whitespace, and truncates.
// Idempotent on its own output.
func (n *Normalizer) Title(s string) string {
	for _, sep := range titleSeparators {
		if i := strings.Index(s, sep); i >= 0 {
			s = s[:i]
		}
	}
	s = strings.TrimSpace(whitespaceRx.ReplaceAllString(s, " "))
	return truncate(s, n.cfg.TitleMaxLen)
}

// Price extracts the first numeric pattern from candidate text, strips
// thousands separators, and accepts the value only inside the configured
// exclusive bounds. Anything else is reported as "no candidate".
func (n *Normalizer) Price(text string) (float64, bool) {
	match := priceRx.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
	if err != nil {
		return 0, false
	}
	if v <= n.cfg.PriceMin || v >= n.cfg.PriceMax {
		return 0, false
	}
	return v, true
}

// ImageURL resolves a candidate against the page URL, requires an http(s)
// result, and strips resize parameters while preserving the rest of the
// query string. Unresolvable candidates are discarded.
func (n *Normalizer) ImageURL(candidate string, base *url.URL) (string, bool) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" || base == nil {
		return "", false
	}

	resolved, err := base.Parse(candidate)
	if err != nil {
		return "", false
	}
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return "", false
	}

	q := resolved.Query()
	for _, p := range resizeParams {
		q.Del(p)
	}
	resolved.RawQuery = q.Encode()

	return resolved.String(), true
}

// Description truncates to the configured length.
func (n *Normalizer) Description(s string) string {
	return truncate(strings.TrimSpace(s), n.cfg.DescriptionMaxLen)
}

// truncate cuts at a rune boundary and trims any whitespace the cut
// exposed, keeping the operation idempotent.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return strings.TrimSpace(string(r[:max]))
}
