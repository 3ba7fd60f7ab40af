package models

// ExtractRequest is the payload for POST /api/v1/extract.
type ExtractRequest struct {
	// URL is the product page to extract metadata from. Required.
	URL string `json:"url" binding:"required,url"`

	// Timeout is the maximum duration in seconds the caller is willing
	// to wait before accepting a partial record. This is the interactive
	// ceiling, not the engine's internal fetch timeouts. Zero means the
	// configured default (5s). Max: 90.
	Timeout int `json:"timeout,omitempty" binding:"omitempty,min=1,max=90"`
}
