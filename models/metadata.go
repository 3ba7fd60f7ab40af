package models

// SourceStrategy identifies which fetch path produced the HTML a metadata
// record was extracted from.
type SourceStrategy string

const (
	// SourceDirect means the page was fetched with a plain HTTP request.
	SourceDirect SourceStrategy = "direct"

	// SourceRender means the page came from the remote rendering fallback.
	SourceRender SourceStrategy = "render"
)

// ProductMetadata is the best-effort structured record extracted from a
// product page. Every field except Domain and OriginalURL is optional:
// a field is either a normalized non-empty value or absent.
type ProductMetadata struct {
	// Title is the product name, at most 255 characters. May be empty.
	Title string `json:"title"`

	// Price is the extracted price. Nil when no candidate survived the
	// sanity bounds. When present, 0 < *Price < the configured maximum.
	Price *float64 `json:"price"`

	// Domain is the request URL's host with a leading "www." stripped.
	// Populated whenever the URL parses, even on total fetch failure.
	Domain string `json:"domain"`

	// ImageURL is the primary product image as an absolute URL with
	// resize/CDN query parameters removed. Empty when none was found.
	ImageURL string `json:"image_url"`

	// OriginalURL echoes the request URL.
	OriginalURL string `json:"original_url"`

	// Description is at most 500 characters. May be empty.
	Description string `json:"description"`

	// Source is the fetch path that produced the underlying HTML.
	// Empty when extraction failed before any HTML was obtained.
	Source SourceStrategy `json:"source,omitempty"`
}

// SetPrice stores a price value by pointer.
func (m *ProductMetadata) SetPrice(v float64) {
	m.Price = &v
}
