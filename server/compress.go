package server

import (
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const (
	CONTENT_ENCODING = "content-encoding"
	CONTENT_LENGTH   = "content-length"
)

// preferred first
var supportedEncodings = []string{"br", "zstd", "gzip"}

type compressWriter struct {
	gin.ResponseWriter
	w io.WriteCloser
}

func (c *compressWriter) Write(data []byte) (int, error) {
	return c.w.Write(data)
}

func (c *compressWriter) WriteString(s string) (int, error) {
	return c.w.Write([]byte(s))
}

// negotiateEncoding picks the first supported encoding the client accepts
// with a non-zero quality.
func negotiateEncoding(acceptEncoding string) string {
	accepted := make(map[string]bool)
	for _, part := range strings.Split(acceptEncoding, ",") {
		fields := strings.Split(part, ";")
		name := strings.ToLower(strings.TrimSpace(fields[0]))
		if name == "" {
			continue
		}
		ok := true
		for _, param := range fields[1:] {
			param = strings.ReplaceAll(param, " ", "")
			if param == "q=0" || strings.HasPrefix(param, "q=0.") && strings.Trim(param[4:], "0") == "" {
				ok = false
			}
		}
		accepted[name] = ok
	}
	for _, encoding := range supportedEncodings {
		if accepted[encoding] {
			return encoding
		}
	}
	return ""
}

func newEncoder(encoding string, w io.Writer) (io.WriteCloser, error) {
	switch encoding {
	case "br":
		return brotli.NewWriterLevel(w, brotli.DefaultCompression), nil
	case "zstd":
		return zstd.NewWriter(w, zstd.WithEncoderConcurrency(1))
	default:
		return gzip.NewWriter(w), nil
	}
}

// CompressionMiddleware encodes response bodies with brotli, zstd or gzip
// depending on Accept-Encoding.
func CompressionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		encoding := negotiateEncoding(c.GetHeader("Accept-Encoding"))
		if encoding == "" {
			c.Next()
			return
		}

		encoder, err := newEncoder(encoding, c.Writer)
		if err != nil {
			c.Next()
			return
		}

		c.Header(CONTENT_ENCODING, encoding)
		c.Writer.Header().Add(VARY, "Accept-Encoding")
		c.Writer.Header().Del(CONTENT_LENGTH)
		c.Writer = &compressWriter{ResponseWriter: c.Writer, w: encoder}
		defer encoder.Close()

		c.Next()
	}
}
