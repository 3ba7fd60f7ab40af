// Package fetch retrieves raw HTML for a product URL by trying a prioritized
// list of client identity profiles over a Chrome-fingerprinted TLS transport.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	tls "github.com/refraction-networking/utls"

	"github.com/wishloop/metascout/config"
)

// Result is the output of a successful fetch.
type Result struct {
	HTML       string
	StatusCode int
}

// Fetcher performs direct HTTP retrieval with browser-like client identities.
// Profiles are attempted strictly in order; the first 200 wins. A non-200
// response below 500 means the site answered and deliberately refused, so
// further identities are not tried. Network errors and 5xx responses are
// assumed to be blocking and escalate to the next profile, without backoff.
type Fetcher struct {
	client   *http.Client
	profiles []Profile
	cfg      config.FetchConfig
}

// chromeH1Spec is a Chrome-like TLS ClientHello with ALPN forced to http/1.1
// only. Computed once at init time and reused for every connection.
var chromeH1Spec tls.ClientHelloSpec

func init() {
	spec, err := tls.UTLSIdToSpec(tls.HelloChrome_Auto)
	if err != nil {
		// Fallback: if spec generation fails, use HelloChrome_Auto as-is.
		// (Should never happen with a valid utls version.)
		return
	}
	// Replace h2 with http/1.1 only in the ALPN extension so the server
	// never negotiates HTTP/2 (which Go's http.Transport cannot handle
	// over a utls connection).
	for i, ext := range spec.Extensions {
		if alpn, ok := ext.(*tls.ALPNExtension); ok {
			alpn.AlpnProtocols = []string{"http/1.1"}
			spec.Extensions[i] = alpn
			break
		}
	}
	chromeH1Spec = spec
}

// New creates a Fetcher with the given profile list. An empty list falls
// back to DefaultProfiles.
func New(cfg config.FetchConfig, profiles []Profile) *Fetcher {
	if len(profiles) == 0 {
		profiles = DefaultProfiles()
	}

	transport := &http.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			dialer := &net.Dialer{}
			conn, err := dialer.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			host, _, _ := net.SplitHostPort(addr)
			tlsConn := tls.UClient(conn, &tls.Config{ServerName: host}, tls.HelloCustom)
			if err := tlsConn.ApplyPreset(&chromeH1Spec); err != nil {
				conn.Close()
				return nil, fmt.Errorf("fetch: apply tls spec: %w", err)
			}
			if err := tlsConn.HandshakeContext(ctx); err != nil {
				conn.Close()
				return nil, err
			}
			return tlsConn, nil
		},
		ForceAttemptHTTP2: false,
	}

	maxRedirects := cfg.MaxRedirects
	return &Fetcher{
		client: &http.Client{
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		profiles: profiles,
		cfg:      cfg,
	}
}

// Fetch tries each profile in order until one yields a 200.
func (f *Fetcher) Fetch(ctx context.Context, targetURL string) (*Result, error) {
	var lastErr error

	for _, p := range f.profiles {
		res, err := f.attempt(ctx, targetURL, p)
		if err != nil {
			slog.Debug("fetch attempt failed", "profile", p.Name, "url", targetURL, "error", err)
			lastErr = err
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}

		switch {
		case res.StatusCode == http.StatusOK:
			slog.Debug("fetch succeeded", "profile", p.Name, "url", targetURL)
			return res, nil
		case res.StatusCode >= 500:
			// Server-side failure; another identity may get through.
			lastErr = fmt.Errorf("fetch: HTTP %d from %s", res.StatusCode, targetURL)
			continue
		default:
			// The site answered and refused (403, 404, ...). Retrying
			// with another identity consumes the same request slot for
			// the same answer.
			return nil, fmt.Errorf("fetch: blocked with HTTP %d from %s", res.StatusCode, targetURL)
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("fetch: no profiles configured")
	}
	return nil, lastErr
}

// attempt performs a single profile-identified request under the per-attempt
// timeout. A non-nil Result means the server produced a response, whatever
// its status.
func (f *Fetcher) attempt(ctx context.Context, targetURL string, p Profile) (*Result, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, f.cfg.AttemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: build request: %w", err)
	}
	req.Header.Set("User-Agent", p.UserAgent)
	for k, v := range p.Headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := decodeBody(resp, f.cfg.MaxBodyBytes)
	if err != nil {
		return nil, fmt.Errorf("fetch: read body: %w", err)
	}

	return &Result{HTML: body, StatusCode: resp.StatusCode}, nil
}
