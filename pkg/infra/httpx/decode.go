package httpx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// MaxDecodedBodySize caps decompressed payloads.
const MaxDecodedBodySize = 2 * 1024 * 1024

var ErrBodyTooLarge = errors.New("decoded body exceeds limit")

// DecodeBody undoes a Content-Encoding chain such as "gzip, br", last
// encoding first. It reports whether the body changed.
func DecodeBody(contentEncoding string, body []byte) ([]byte, bool, error) {
	if contentEncoding == "" {
		return body, false, nil
	}
	encodings := strings.Split(contentEncoding, ",")
	changed := false
	for i := len(encodings) - 1; i >= 0; i-- {
		var (
			r   io.Reader
			err error
		)
		switch strings.TrimSpace(strings.ToLower(encodings[i])) {
		case "br":
			r = brotli.NewReader(bytes.NewReader(body))
		case "gzip":
			var gr *gzip.Reader
			gr, err = gzip.NewReader(bytes.NewReader(body))
			if err == nil {
				defer gr.Close()
				r = gr
			}
		case "zstd":
			var dec *zstd.Decoder
			dec, err = zstd.NewReader(bytes.NewReader(body))
			if err == nil {
				defer dec.Close()
				r = dec
			}
		case "deflate":
			var zr io.ReadCloser
			zr, err = zlib.NewReader(bytes.NewReader(body))
			if err == nil {
				defer zr.Close()
				r = zr
			}
		case "identity", "":
			continue
		default:
			return nil, false, fmt.Errorf("unsupported content-encoding: %q", encodings[i])
		}
		if err != nil {
			return nil, false, err
		}
		body, err = readLimited(r)
		if err != nil {
			return nil, false, err
		}
		changed = true
	}
	return body, changed, nil
}

func readLimited(r io.Reader) ([]byte, error) {
	out, err := io.ReadAll(io.LimitReader(r, MaxDecodedBodySize+1))
	if err != nil {
		return nil, err
	}
	if len(out) > MaxDecodedBodySize {
		return nil, ErrBodyTooLarge
	}
	return out, nil
}
