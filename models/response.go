package models

// ExtractResponse is the response for POST /api/v1/extract.
type ExtractResponse struct {
	// Success indicates whether a metadata record was produced. It is
	// true even for degraded records (domain only); extraction quality
	// is never an error.
	Success bool `json:"success"`

	// Metadata is the extracted record.
	Metadata *ProductMetadata `json:"metadata,omitempty"`

	// Timing provides duration breakdowns for the operation.
	Timing TimingInfo `json:"timing"`

	// Error is populated only when Success is false.
	Error *ErrorDetail `json:"error,omitempty"`
}

// TimingInfo reports the end-to-end duration of the operation.
type TimingInfo struct {
	// TotalMs is the end-to-end duration in milliseconds.
	TotalMs int64 `json:"total_ms"`
}

// HealthResponse is the response for GET /api/v1/health.
type HealthResponse struct {
	Status        string `json:"status"` // always "healthy"; the engine is stateless
	Uptime        string `json:"uptime"`
	RenderEnabled bool   `json:"render_enabled"`
	Version       string `json:"version"`
}
