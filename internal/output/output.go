// Package output opens the sink rendered records are written to.
//
// Output goes to standard output or a file and may be compressed with
// gzip or zstd. The returned writer must be closed to flush compressed
// streams.
package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Output errors.
var (
	ErrUnknownCompression = errors.New("output: unknown compression")
	ErrOpenFailed         = errors.New("output: cannot open output")
)

// Compression selects the compression applied to the output stream.
type Compression int

const (
	// None writes plain text.
	None Compression = iota
	// Gzip writes a gzip stream.
	Gzip
	// Zstd writes a zstandard stream.
	Zstd
)

// String returns the string representation of the compression.
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// ParseCompression parses a compression name. "auto" and "" pick the
// compression from the extension of path (.gz, .zst); standard output is
// never compressed automatically.
func ParseCompression(name, path string) (Compression, error) {
	switch strings.ToLower(name) {
	case "none":
		return None, nil
	case "gzip", "gz":
		return Gzip, nil
	case "zstd", "zst":
		return Zstd, nil
	case "", "auto":
		switch strings.ToLower(filepath.Ext(path)) {
		case ".gz":
			return Gzip, nil
		case ".zst":
			return Zstd, nil
		default:
			return None, nil
		}
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
	}
}

// Open opens path for writing ("-" is standard output) and wraps it with
// the requested compression.
func Open(path string, c Compression) (io.WriteCloser, error) {
	if path == "-" || path == "" {
		return Wrap(NopCloser(os.Stdout), c)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}

	w, err := Wrap(f, c)
	if err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

// Wrap layers compression c over w. Closing the result closes w.
func Wrap(w io.WriteCloser, c Compression) (io.WriteCloser, error) {
	switch c {
	case None:
		return w, nil
	case Gzip:
		return &stackedWriter{Writer: gzip.NewWriter(w), inner: w}, nil
	case Zstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOpenFailed, err)
		}
		return &stackedWriter{Writer: enc, inner: w}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, int(c))
	}
}

// stackedWriter closes the compressor before the underlying writer.
type stackedWriter struct {
	io.Writer
	inner io.Closer
}

func (s *stackedWriter) Close() error {
	var errs []error
	if c, ok := s.Writer.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	errs = append(errs, s.inner.Close())
	return errors.Join(errs...)
}

// NopCloser returns w with a Close method that does nothing, for sinks the
// caller does not own such as standard output.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
