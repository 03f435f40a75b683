package subsidy

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// cumulative coins per height 0..800000, one per line
//
//go:embed data/sats.txt.zst
var embeddedDataset []byte

type Codec string

const (
	CodecZstd   Codec = "zstd"
	CodecBrotli Codec = "brotli"
	CodecPlain  Codec = "plain"
)

func CodecFromPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return CodecZstd
	case ".br":
		return CodecBrotli
	default:
		return CodecPlain
	}
}

// Decompress wraps r with the decoder for codec. Closing the result
// releases the decoder, never r.
func Decompress(codec Codec, r io.Reader) (io.ReadCloser, error) {
	switch codec {
	case CodecZstd:
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, errors.Wrap(err, "zstd.NewReader")
		}
		return dec.IOReadCloser(), nil
	case CodecBrotli:
		return io.NopCloser(brotli.NewReader(r)), nil
	case CodecPlain:
		return io.NopCloser(r), nil
	}
	return nil, errors.Errorf("unsupported dataset codec %q", codec)
}

func LoadTable(codec Codec, r io.Reader) (*Table, error) {
	rc, err := Decompress(codec, r)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	t, err := ParseTable(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s dataset", codec)
	}
	return t, nil
}

func LoadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open dataset %s", path)
	}
	defer f.Close()

	t, err := LoadTable(CodecFromPath(path), f)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset %s", path)
	}
	return t, nil
}

// LoadEmbedded parses the dataset compiled into the binary.
func LoadEmbedded() (*Table, error) {
	return LoadTable(CodecZstd, bytes.NewReader(embeddedDataset))
}
