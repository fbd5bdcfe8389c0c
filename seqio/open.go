package seqio

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

type readCloser struct {
	io.Reader
	close func() error
}

func (rc *readCloser) Close() error { return rc.close() }

// Open opens path for reading, transparently decompressing gzip or zstd
// input detected by magic bytes. "-" or "" reads stdin.
func Open(path string) (io.ReadCloser, error) {
	var (
		base      io.Reader
		closeBase func() error
	)
	if path == "" || path == "-" {
		base = os.Stdin
		closeBase = func() error { return nil }
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open input: %w", err)
		}
		base = f
		closeBase = f.Close
	}

	br := bufio.NewReaderSize(base, 1<<20)
	head, err := br.Peek(4)
	if err != nil && !errors.Is(err, io.EOF) {
		_ = closeBase()
		return nil, fmt.Errorf("cannot inspect input: %w", err)
	}

	switch {
	case hasMagic(head, gzipMagic):
		gz, err := gzip.NewReader(br)
		if err != nil {
			_ = closeBase()
			return nil, fmt.Errorf("cannot open gzip input: %w", err)
		}
		return &readCloser{Reader: gz, close: func() error {
			_ = gz.Close()
			return closeBase()
		}}, nil
	case hasMagic(head, zstdMagic):
		dec, err := zstd.NewReader(br)
		if err != nil {
			_ = closeBase()
			return nil, fmt.Errorf("cannot open zstd input: %w", err)
		}
		return &readCloser{Reader: dec, close: func() error {
			dec.Close()
			return closeBase()
		}}, nil
	default:
		return &readCloser{Reader: br, close: closeBase}, nil
	}
}

func hasMagic(head, magic []byte) bool {
	return len(head) >= len(magic) && bytes.Equal(head[:len(magic)], magic)
}
