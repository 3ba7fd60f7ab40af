package fetch

import (
	"compress/flate"
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"golang.org/x/net/html/charset"
)

// decodeBody reads a response body, undoing the Content-Encoding we asked
// for in the profile headers and converting legacy charsets to UTF-8.
// The size cap applies to the decompressed stream.
func decodeBody(resp *http.Response, maxBytes int64) (string, error) {
	var reader io.Reader = resp.Body

	switch strings.ToLower(resp.Header.Get("Content-Encoding")) {
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return "", err
		}
		defer gz.Close()
		reader = gz
	case "br":
		reader = brotli.NewReader(resp.Body)
	case "deflate":
		fl := flate.NewReader(resp.Body)
		defer fl.Close()
		reader = fl
	}

	// Charset sniffing never fails hard; on unknown encodings it falls
	// back to passing bytes through unchanged.
	utf8Reader, err := charset.NewReader(reader, resp.Header.Get("Content-Type"))
	if err != nil {
		utf8Reader = reader
	}

	body, err := io.ReadAll(io.LimitReader(utf8Reader, maxBytes))
	if err != nil {
		return "", err
	}
	return string(body), nil
}
