package httpx

import (
	"bytes"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipCompress(data []byte) []byte {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write(data)
	_ = gz.Close()
	return buf.Bytes()
}

func brCompress(data []byte) []byte {
	var buf bytes.Buffer
	br := brotli.NewWriter(&buf)
	_, _ = br.Write(data)
	_ = br.Close()
	return buf.Bytes()
}

func zstdCompress(data []byte) []byte {
	var buf bytes.Buffer
	zw, _ := zstd.NewWriter(&buf)
	_, _ = zw.Write(data)
	_ = zw.Close()
	return buf.Bytes()
}

func TestDecodeBody(t *testing.T) {
	payload := []byte(`{"sessionId":"abc","canvas":"data:image/png;base64,AAAA"}`)

	tests := []struct {
		name     string
		encoding string
		body     []byte
	}{
		{"gzip", "gzip", gzipCompress(payload)},
		{"brotli", "br", brCompress(payload)},
		{"zstd", "zstd", zstdCompress(payload)},
		{"chain", "gzip, br", brCompress(gzipCompress(payload))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, changed, err := DecodeBody(tt.encoding, tt.body)
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, payload, out)
		})
	}
}

func TestDecodeBody_Passthrough(t *testing.T) {
	out, changed, err := DecodeBody("", []byte("plain"))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, []byte("plain"), out)

	out, changed, err = DecodeBody("identity", []byte("plain"))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, []byte("plain"), out)
}

func TestDecodeBody_Unsupported(t *testing.T) {
	_, _, err := DecodeBody("lzma", []byte("x"))
	assert.Error(t, err)
}

func TestDecodeBody_TooLarge(t *testing.T) {
	big := bytes.Repeat([]byte("a"), MaxDecodedBodySize+10)
	_, _, err := DecodeBody("gzip", gzipCompress(big))
	assert.ErrorIs(t, err, ErrBodyTooLarge)
}
