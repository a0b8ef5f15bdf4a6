package http

import (
	"compress/flate"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-caesar-cipher/internal/app"
)

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip inflates request bodies sent with "Content-Encoding: gzip" and
// compresses responses for clients that accept gzip. A body whose gzip
// header is invalid is rejected with 400. When maxBodyBytes is positive the
// inflated body is capped at that size as well.
func withGZip(maxBodyBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if hasGzipEncoding(r.Header.Get("Content-Encoding")) && r.Body != nil {
				body, err := newGzipBody(r.Body)
				if err != nil {
					writeErrorMessage(w, app.MsgInvalidGzipData, http.StatusBadRequest)
					return
				}

				r.Body = body
				if maxBodyBytes > 0 {
					r.Body = http.MaxBytesReader(w, body, maxBodyBytes)
				}
				r.Header.Del("Content-Encoding")
				r.ContentLength = -1
			}

			w.Header().Add("Vary", "Accept-Encoding")
			if !acceptsGzip(r.Header.Get("Accept-Encoding")) {
				next.ServeHTTP(w, r)
				return
			}

			gw := &gzipResponseWriter{ResponseWriter: w}
			defer gw.finish()
			next.ServeHTTP(gw, r)
		})
	}
}

func hasGzipEncoding(header string) bool {
	for _, coding := range strings.Split(header, ",") {
		if name, _ := parseCoding(coding); name == "gzip" || name == "x-gzip" {
			return true
		}
	}
	return false
}

// acceptsGzip reports whether an Accept-Encoding header allows gzip. An
// explicit gzip entry takes precedence over "*"; q=0 refuses the coding.
func acceptsGzip(header string) bool {
	gzipQ, starQ := -1.0, -1.0
	for _, coding := range strings.Split(header, ",") {
		name, q := parseCoding(coding)
		switch name {
		case "gzip", "x-gzip":
			gzipQ = max(gzipQ, q)
		case "*":
			starQ = max(starQ, q)
		}
	}

	if gzipQ >= 0 {
		return gzipQ > 0
	}
	return starQ > 0
}

// parseCoding splits one "name;q=value" list element. A missing or
// malformed q-value counts as 1.
func parseCoding(coding string) (name string, q float64) {
	name, params, _ := strings.Cut(coding, ";")
	name = strings.ToLower(strings.TrimSpace(name))
	q = 1

	for _, param := range strings.Split(params, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "q") {
			continue
		}
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			q = parsed
		}
	}
	return name, q
}

// gzipBody returns its reader to the pool on Close. Stream corruption found
// while reading is reported as ErrInvalidGzipData.
type gzipBody struct {
	*gzip.Reader
	src io.ReadCloser
}

func newGzipBody(src io.ReadCloser) (*gzipBody, error) {
	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(src); err != nil {
		gzipReaders.Put(zr)
		return nil, err
	}
	return &gzipBody{Reader: zr, src: src}, nil
}

func (b *gzipBody) Read(p []byte) (int, error) {
	n, err := b.Reader.Read(p)
	if isCorruptGzip(err) {
		return n, fmt.Errorf("%w: %w", ErrInvalidGzipData, err)
	}
	return n, err
}

func isCorruptGzip(err error) bool {
	var corrupt flate.CorruptInputError
	return errors.Is(err, gzip.ErrHeader) ||
		errors.Is(err, gzip.ErrChecksum) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.As(err, &corrupt)
}

func (b *gzipBody) Close() error {
	if b.Reader != nil {
		gzipReaders.Put(b.Reader)
		b.Reader = nil
	}
	return b.src.Close()
}

// gzipResponseWriter takes a pooled gzip.Writer on the first header write.
type gzipResponseWriter struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.zw != nil {
		return
	}
	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")

	w.zw = gzipWriters.Get().(*gzip.Writer)
	w.zw.Reset(w.ResponseWriter)
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if w.zw == nil {
		w.WriteHeader(http.StatusOK)
	}
	return w.zw.Write(data)
}

// finish flushes the gzip trailer. Nothing is written when the handler
// produced no response at all.
func (w *gzipResponseWriter) finish() {
	if w.zw == nil {
		return
	}
	_ = w.zw.Close()
	gzipWriters.Put(w.zw)
	w.zw = nil
}
