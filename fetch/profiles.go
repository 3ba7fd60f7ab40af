package fetch

// Profile is a client identity: a User-Agent plus a consistent set of
// browser-like headers. Profiles are tried in order by the Fetcher; the
// list is data, not control flow, so new identities can be added without
// touching the fetch loop.
type Profile struct {
	Name      string
	UserAgent string
	Headers   map[string]string
}

// DefaultProfiles returns the built-in identity list, highest-success-rate
// first. Blocking vendors key on the UA most often, so the UAs differ while
// the surrounding header shape stays browser-consistent.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			Name:      "chrome-macos",
			UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			Headers:   desktopHeaders(),
		},
		{
			Name:      "chrome-windows",
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			Headers:   desktopHeaders(),
		},
		{
			Name:      "safari-ios",
			UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Mobile/15E148 Safari/604.1",
			Headers:   mobileHeaders(),
		},
	}
}

func desktopHeaders() map[string]string {
	return map[string]string{
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,image/apng,*/*;q=0.8",
		"Accept-Language":           "en-US,en;q=0.9",
		"Accept-Encoding":           "gzip, deflate, br",
		"Cache-Control":             "no-cache",
		"Pragma":                    "no-cache",
		"Sec-Fetch-Dest":            "document",
		"Sec-Fetch-Mode":            "navigate",
		"Sec-Fetch-Site":            "none",
		"Sec-Fetch-User":            "?1",
		"Upgrade-Insecure-Requests": "1",
	}
}

func mobileHeaders() map[string]string {
	return map[string]string{
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language":           "en-US,en;q=0.9",
		"Accept-Encoding":           "gzip, deflate, br",
		"Sec-Fetch-Dest":            "document",
		"Sec-Fetch-Mode":            "navigate",
		"Sec-Fetch-Site":            "none",
		"Upgrade-Insecure-Requests": "1",
	}
}
