package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// echoHandler writes back the (possibly inflated) request body.
var echoHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(append([]byte("echo: "), body...))
})

func TestGZip(t *testing.T) {
	tests := []struct {
		name            string
		acceptEncoding  string
		compressRequest bool
		body            string
		wantGzipped     bool
		wantBody        string
	}{
		{name: "plain in, plain out", body: "abc", wantBody: "echo: abc"},
		{name: "plain in, gzip out", acceptEncoding: "gzip", body: "abc", wantGzipped: true, wantBody: "echo: abc"},
		{name: "gzip among several encodings", acceptEncoding: "deflate, gzip;q=1.0, br", body: "abc", wantGzipped: true, wantBody: "echo: abc"},
		{name: "gzip in, plain out", compressRequest: true, body: "abc", wantBody: "echo: abc"},
		{name: "gzip in, gzip out", acceptEncoding: "gzip", compressRequest: true, body: "abc", wantGzipped: true, wantBody: "echo: abc"},
		{name: "gzip refused with q=0", acceptEncoding: "gzip;q=0", body: "abc", wantBody: "echo: abc"},
		{name: "wildcard", acceptEncoding: "*", body: "abc", wantGzipped: true, wantBody: "echo: abc"},
		{name: "wildcard with gzip refused", acceptEncoding: "*, gzip;q=0", body: "abc", wantBody: "echo: abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := []byte(tt.body)
			if tt.compressRequest {
				body = gzipBytes(t, body)
			}
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
			if tt.compressRequest {
				req.Header.Set("Content-Encoding", "gzip")
			}
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rr := httptest.NewRecorder()

			withGZip(0)(echoHandler).ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Header().Values("Vary"), "Accept-Encoding")

			got := rr.Body.Bytes()
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				zr, err := gzip.NewReader(bytes.NewReader(got))
				require.NoError(t, err)
				got, err = io.ReadAll(zr)
				require.NoError(t, err)
			} else {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
			}
			assert.Equal(t, tt.wantBody, string(got))
		})
	}
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	valid := gzipBytes(t, []byte(`{"text":"Hello, World!","shift":3}`))

	corrupt := bytes.Clone(valid)
	corrupt[len(corrupt)-5] ^= 0xff

	tests := []struct {
		name string
		body []byte
	}{
		{name: "not gzip at all", body: []byte("definitely not gzip")},
		{name: "truncated stream", body: valid[:len(valid)/2]},
		{name: "corrupt checksum", body: corrupt},
	}

	router := newTestRouter(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/encrypt", bytes.NewReader(tt.body))
			req.Header.Set("Content-Encoding", "gzip")
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, `{"error":"Invalid gzip data"}`, rr.Body.String())
		})
	}
}

func TestGZip_InflatedBodyLimit(t *testing.T) {
	var readErr error
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, bytes.Repeat([]byte("a"), 4096))))
	req.Header.Set("Content-Encoding", "gzip")

	withGZip(1024)(next).ServeHTTP(httptest.NewRecorder(), req)

	var maxBytesErr *http.MaxBytesError
	require.ErrorAs(t, readErr, &maxBytesErr)
	assert.Equal(t, int64(1024), maxBytesErr.Limit)
}

func TestGzipBody_TruncatedStreamIsInvalidGzip(t *testing.T) {
	valid := gzipBytes(t, []byte(strings.Repeat("payload ", 32)))

	body, err := newGzipBody(io.NopCloser(bytes.NewReader(valid[:len(valid)-4])))
	require.NoError(t, err)

	_, err = io.ReadAll(body)
	assert.ErrorIs(t, err, ErrInvalidGzipData)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestAcceptsGzip(t *testing.T) {
	tests := []struct {
		header string
		want   bool
	}{
		{header: "", want: false},
		{header: "gzip", want: true},
		{header: "GZIP", want: true},
		{header: "deflate, br", want: false},
		{header: "br;q=1.0, gzip;q=0.5", want: true},
		{header: "gzip;q=0", want: false},
		{header: "gzip; q=0.0", want: false},
		{header: "gzip;q=nonsense", want: true},
		{header: "*", want: true},
		{header: "*;q=0", want: false},
		{header: "*, gzip;q=0", want: false},
		{header: "gzip;q=0, *", want: false},
		{header: "x-gzip", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, acceptsGzip(tt.header))
		})
	}
}

func TestHasGzipEncoding(t *testing.T) {
	assert.True(t, hasGzipEncoding("gzip"))
	assert.True(t, hasGzipEncoding(" GZip "))
	assert.False(t, hasGzipEncoding(""))
	assert.False(t, hasGzipEncoding("identity"))
	assert.False(t, hasGzipEncoding("gzipped"))
}

func TestGZip_PoolReuse(t *testing.T) {
	handler := withGZip(0)(echoHandler)

	for i := range 10 {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, []byte("payload"))))
		req.Header.Set("Content-Encoding", "gzip")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, "echo: payload", rr.Body.String(), "iteration %d", i)
	}
}

func TestGzipBody_Close(t *testing.T) {
	src := io.NopCloser(bytes.NewReader(gzipBytes(t, []byte("x"))))
	body, err := newGzipBody(src)
	require.NoError(t, err)

	require.NoError(t, body.Close())
	assert.Nil(t, body.Reader)
	assert.NoError(t, body.Close())
}

func TestGZip_HandlerWithoutWriteHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("implicit"))
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(0)(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	got, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "implicit", string(got))
}
