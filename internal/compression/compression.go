// Package compression shrinks cached forecast payloads before they are
// handed to a cache backend.
package compression

import (
	"fmt"

	"github.com/golang/snappy"
)

// Compressor compresses and decompresses byte slices.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// SnappyCompressor implements Compressor using the Snappy block format.
// Forecast responses are repetitive JSON, which Snappy handles well at
// negligible CPU cost.
type SnappyCompressor struct{}

// NewSnappyCompressor creates a new Snappy compressor.
func NewSnappyCompressor() *SnappyCompressor {
	return &SnappyCompressor{}
}

// Compress encodes data; empty input passes through untouched.
func (s *SnappyCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return data, nil
	}
	return snappy.Encode(nil, data), nil
}

// Decompress decodes a Snappy block; empty input passes through untouched.
func (s *SnappyCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return data, nil
	}

	decompressed, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("snappy decompress failed: %w", err)
	}
	return decompressed, nil
}
