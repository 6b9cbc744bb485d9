package scraper

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	crerr "github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var errResponseTooLarge = crerr.New("response too large")

// readBody reads at most limit decoded bytes, honouring Content-Encoding. A
// body past the limit is an error rather than a truncated payload.
// Accept-Encoding is set by hand, so the transport leaves bodies compressed.
func readBody(resp *http.Response, limit int64) ([]byte, error) {
	enc := strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding")))
	switch {
	case enc == "":
		return readLimited(resp.Body, limit)
	case strings.Contains(enc, "br"):
		return readLimited(brotli.NewReader(resp.Body), limit)
	case strings.Contains(enc, "zstd"):
		r, err := zstd.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		defer r.Close()
		return readLimited(r, limit)
	case strings.Contains(enc, "gzip"):
		r, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		defer r.Close()
		b, err := readLimited(r, limit)
		if err != nil {
			return nil, fmt.Errorf("read gzip body: %w", err)
		}
		return b, nil
	default:
		return readLimited(resp.Body, limit)
	}
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, crerr.Wrapf(errResponseTooLarge, "body exceeds %d bytes", limit)
	}
	return b, nil
}
