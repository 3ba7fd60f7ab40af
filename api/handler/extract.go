package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wishloop/metascout/config"
	"github.com/wishloop/metascout/engine"
	"github.com/wishloop/metascout/models"
)

// Extract returns a handler for POST /api/v1/extract.
//
// The handler owns the interactive deadline: the engine races the caller's
// ceiling via context, and when the deadline expires mid-fetch the engine
// comes back with whatever degraded record it has. The response is still a
// 200 — partial data is the contract, not an error.
func Extract(eng *engine.Engine, cfg config.ExtractConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var req models.ExtractRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ExtractResponse{
				Success: false,
				Error: &models.ErrorDetail{
					Code:    models.ErrCodeInvalidInput,
					Message: err.Error(),
				},
			})
			return
		}

		timeout := cfg.InteractiveTimeout
		if req.Timeout > 0 {
			timeout = time.Duration(req.Timeout) * time.Second
			if timeout > cfg.MaxTimeout {
				timeout = cfg.MaxTimeout
			}
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		meta, err := eng.Extract(ctx, req.URL)
		if err != nil {
			respondError(c, err, start)
			return
		}

		c.JSON(http.StatusOK, models.ExtractResponse{
			Success:  true,
			Metadata: meta,
			Timing:   models.TimingInfo{TotalMs: time.Since(start).Milliseconds()},
		})
	}
}

// respondError maps an ExtractError to the correct HTTP status code and
// writes a structured JSON error response.
func respondError(c *gin.Context, err error, start time.Time) {
	var extractErr *models.ExtractError
	if !errors.As(err, &extractErr) {
		extractErr = models.NewExtractError(models.ErrCodeInternal, err.Error(), err)
	}

	c.JSON(mapErrorToStatus(extractErr), models.ExtractResponse{
		Success: false,
		Error:   extractErr.ToDetail(),
		Timing:  models.TimingInfo{TotalMs: time.Since(start).Milliseconds()},
	})
}

// mapErrorToStatus translates error codes to HTTP status codes.
func mapErrorToStatus(e *models.ExtractError) int {
	switch e.Code {
	case models.ErrCodeInvalidURL, models.ErrCodeInvalidInput:
		return http.StatusBadRequest // 400
	case models.ErrCodeRateLimited:
		return http.StatusTooManyRequests // 429
	case models.ErrCodeUnauthorized:
		return http.StatusUnauthorized // 401
	default:
		return http.StatusInternalServerError // 500
	}
}
