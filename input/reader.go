// Package input acquires the bytes of a Matrix Market file from a file or an
// in-memory buffer, optionally decompressing them on the way.
package input

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/pierrec/lz4/v4"
	"go.uber.org/multierr"
)

const DefaultBufferSize = 65536

var ErrUnsupportedCompression = errors.New("unsupported compression")

type Compression int

const (
	None Compression = iota
	Gzip
	Zlib
	LZ4
	Auto
)

var compressionNames = []string{"none", "gzip", "zlib", "lz4", "auto"}

func (c Compression) String() string {
	if c >= 0 && int(c) < len(compressionNames) {
		return compressionNames[c]
	}
	return fmt.Sprintf("Compression(%d)", int(c))
}

func (c Compression) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Compression) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	for i, name := range compressionNames {
		if s == name {
			*c = Compression(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedCompression, text)
}

// RFC 1952, RFC 1950 and the lz4 frame format.
const (
	gzipID1 = 0x1f
	gzipID2 = 0x8b
)

var lz4Magic = []byte{0x04, 0x22, 0x4d, 0x18}

// Detect guesses the compression of a stream from its first bytes. Anything
// that is neither gzip, zlib nor lz4 is reported as None.
func Detect(magic []byte) Compression {
	if len(magic) >= 2 && magic[0] == gzipID1 && magic[1] == gzipID2 {
		return Gzip
	}
	if len(magic) >= 4 && bytes.Equal(magic[:4], lz4Magic) {
		return LZ4
	}
	if len(magic) >= 2 {
		cmf, flg := magic[0], magic[1]
		if cmf&0x0f == 8 && cmf>>4 <= 7 && (uint16(cmf)<<8|uint16(flg))%31 == 0 {
			return Zlib
		}
	}
	return None
}

// NewReader wraps r with the decompressor for c. Auto peeks at the first
// bytes of r to pick one.
func NewReader(r io.Reader, c Compression, bufferSize int) (io.ReadCloser, error) {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	switch c {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return zr, nil
	case Zlib:
		zr, err := zlib.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zlib: %w", err)
		}
		return zr, nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case Auto:
		br := bufio.NewReaderSize(r, bufferSize)
		magic, err := br.Peek(len(lz4Magic))
		if err != nil && err != io.EOF {
			return nil, err
		}
		return NewReader(br, Detect(magic), bufferSize)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedCompression, c)
}

type fileReader struct {
	io.ReadCloser
	f *os.File
}

func (r fileReader) Close() error {
	return multierr.Append(r.ReadCloser.Close(), r.f.Close())
}

// OpenFile opens the file at path for reading through the decompressor
// for c.
func OpenFile(path string, c Compression, bufferSize int) (io.ReadCloser, error) {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	if c < None || c > Auto {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedCompression, c)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(bufio.NewReaderSize(f, bufferSize), c, bufferSize)
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("%v: %w", path, err), f.Close())
	}
	return fileReader{ReadCloser: r, f: f}, nil
}

// FromBuffer reads an in-memory file through the decompressor for c.
func FromBuffer(buf []byte, c Compression, bufferSize int) (io.ReadCloser, error) {
	return NewReader(bytes.NewReader(buf), c, bufferSize)
}
