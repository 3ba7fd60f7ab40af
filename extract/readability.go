package extract

import (
	"strings"

	readability "github.com/go-shiori/go-readability"
)

// readabilityDescription is the description's last resort: when a page
// carries neither structured data nor description meta tags, the Mozilla
// Readability excerpt of the main content is still a usable summary.
// Failures fall through to "no candidate"; the field simply stays absent.
func readabilityDescription(d *Document) (string, bool) {
	if d.pageURL == nil {
		return "", false
	}

	article, err := readability.FromReader(strings.NewReader(d.raw), d.pageURL)
	if err != nil {
		return "", false
	}

	excerpt := strings.TrimSpace(article.Excerpt)
	return excerpt, excerpt != ""
}
