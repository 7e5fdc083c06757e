// Package codec provides stream compression for PGN archives.
package codec

import (
	"io"
	"strings"
)

// Codec provides compression and decompression functionality.
type Codec interface {
	// Reader wraps r to decompress data read from it.
	Reader(r io.Reader) (io.ReadCloser, error)
	// Writer wraps w to compress data written to it.
	Writer(w io.Writer) (io.WriteCloser, error)
	// Extension returns the file extension without dot (e.g., "zst", "gz").
	// Returns empty string for no compression.
	Extension() string
}

// registry maps file extensions to codec constructors. Populated by the
// codec subpackages from their init functions.
var registry = map[string]func() Codec{}

// Register associates a constructor with the extension its codec reports.
func Register(ext string, newCodec func() Codec) {
	registry[ext] = newCodec
}

// ForPath returns the codec matching the path's extension, so callers can
// read plain, gzip-compressed or zstd-compressed PGN files transparently.
// Unknown extensions get the no-op codec registered under "".
func ForPath(path string) Codec {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		if newCodec, ok := registry[path[i+1:]]; ok {
			return newCodec()
		}
	}
	return registry[""]()
}
