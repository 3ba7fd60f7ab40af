package extract

import "strings"

// Meta-tag extractors: og/twitter tags are curated by the site for link
// previews, so they rank just below structured data.

func metaTitle(d *Document) (string, bool) {
	return d.metaContent(
		`meta[property="og:title"]`,
		`meta[name="twitter:title"]`,
		`meta[name="title"]`,
	)
}

func metaPrice(d *Document) (string, bool) {
	return d.metaContent(
		`meta[property="product:price:amount"]`,
		`meta[property="og:price:amount"]`,
		`meta[name="price"]`,
		`meta[itemprop="price"]`,
	)
}

func metaImage(d *Document) (string, bool) {
	return d.metaContent(
		`meta[property="og:image"]`,
		`meta[property="og:image:secure_url"]`,
		`meta[name="twitter:image"]`,
		`meta[name="twitter:image:src"]`,
		`meta[itemprop="image"]`,
	)
}

func metaDescription(d *Document) (string, bool) {
	return d.metaContent(
		`meta[property="og:description"]`,
		`meta[name="description"]`,
	)
}

// docTitle is the last-resort title source: the raw <title> element.
func docTitle(d *Document) (string, bool) {
	s := strings.TrimSpace(d.doc.Find("title").First().Text())
	return s, s != ""
}
