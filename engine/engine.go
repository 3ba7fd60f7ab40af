// Package engine orchestrates a single extraction call: direct fetch,
// remote-render fallback, parse, per-field extraction, normalization.
// The engine is stateless; one instance serves any number of concurrent
// callers, and nothing is cached between calls.
package engine

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/wishloop/metascout/config"
	"github.com/wishloop/metascout/extract"
	"github.com/wishloop/metascout/fetch"
	"github.com/wishloop/metascout/models"
	"github.com/wishloop/metascout/normalize"
	"github.com/wishloop/metascout/render"
)

// Engine is the product-metadata extraction engine.
type Engine struct {
	fetcher  *fetch.Fetcher
	renderer *render.Client
	pipeline *extract.Pipeline
	norm     *normalize.Normalizer
}

// New builds an Engine from config with the default profile and selector
// sets.
func New(cfg *config.Config) *Engine {
	return &Engine{
		fetcher:  fetch.New(cfg.Fetch, nil),
		renderer: render.NewClient(cfg.Render),
		pipeline: extract.NewPipeline(extract.Options{
			PriceMin: cfg.Extract.PriceMin,
			PriceMax: cfg.Extract.PriceMax,
		}),
		norm: normalize.New(cfg.Extract),
	}
}

// RenderEnabled reports whether the remote rendering fallback is configured.
func (e *Engine) RenderEnabled() bool {
	return e.renderer.Enabled()
}

// Extract produces a best-effort metadata record for a product URL.
//
// It never fails for extraction-quality reasons: unreachable pages and
// per-field misses degrade to a record with absent fields (domain is always
// populated). The only error path is a URL that does not parse as absolute
// http(s), since no domain can be derived from it.
func (e *Engine) Extract(ctx context.Context, rawURL string) (*models.ProductMetadata, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil || (pageURL.Scheme != "http" && pageURL.Scheme != "https") || pageURL.Hostname() == "" {
		return nil, models.NewExtractError(models.ErrCodeInvalidURL,
			"url must be an absolute http(s) URL", err)
	}

	meta := &models.ProductMetadata{
		Domain:      Domain(pageURL),
		OriginalURL: rawURL,
	}

	html, source := e.retrieve(ctx, rawURL)
	if html == "" {
		// Total unreachability: the degraded record still carries the
		// domain so the caller can pre-fill what it can.
		slog.Info("extraction degraded to domain-only record", "url", rawURL)
		return meta, nil
	}

	doc, err := extract.Parse(html, pageURL)
	if err != nil {
		slog.Warn("html parse failed", "url", rawURL, "error", err)
		return meta, nil
	}
	meta.Source = source

	cand := e.pipeline.Run(doc)
	meta.Title = e.norm.Title(cand.Title)
	if price, ok := e.norm.Price(cand.Price); ok {
		meta.SetPrice(price)
	}
	if img, ok := e.norm.ImageURL(cand.Image, pageURL); ok {
		meta.ImageURL = img
	}
	meta.Description = e.norm.Description(cand.Description)

	slog.Debug("extraction complete",
		"url", rawURL,
		"source", source,
		"title", meta.Title != "",
		"price", meta.Price != nil,
		"image", meta.ImageURL != "",
	)
	return meta, nil
}

// retrieve obtains HTML for the URL: direct fetch first, then the remote
// rendering fallback. Fallback failures are swallowed; an empty result
// means the page is unreachable by every strategy.
func (e *Engine) retrieve(ctx context.Context, rawURL string) (string, models.SourceStrategy) {
	res, err := e.fetcher.Fetch(ctx, rawURL)
	if err == nil {
		return res.HTML, models.SourceDirect
	}
	slog.Info("direct fetch failed", "url", rawURL, "error", err)

	if !e.renderer.Enabled() {
		slog.Debug("render fallback not configured", "url", rawURL)
		return "", ""
	}

	html, err := e.renderer.Render(ctx, rawURL)
	if err != nil {
		slog.Warn("render fallback failed", "url", rawURL, "error", err)
		return "", ""
	}
	return html, models.SourceRender
}

// Domain derives the record domain from a parsed URL: the host with a
// leading "www." stripped. Pure; independent of fetch outcome.
func Domain(u *url.URL) string {
	return strings.TrimPrefix(u.Hostname(), "www.")
}
