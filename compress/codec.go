package compress

import (
	"fmt"
	"time"

	"github.com/arloliu/dosecurve/errs"
	"github.com/arloliu/dosecurve/format"
)

// Compressor packs a whole results file into a self-describing container.
type Compressor interface {
	// Compress returns a new slice; data is left untouched. The no-op codec
	// returns data itself.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a results file packed by the matching Compressor or
// by the algorithm's command-line tool. Implementations are safe for
// concurrent use.
type Decompressor interface {
	// Decompress fails on truncated input and on containers of another algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec packs and unpacks results files with one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one packed results file.
type CompressionStats struct {
	Algorithm      format.CompressionType
	OriginalSize   int64
	CompressedSize int64
	// Elapsed covers the compression only, not the file I/O.
	Elapsed time.Duration
}

// CompressionRatio returns CompressedSize / OriginalSize, or 0 for an empty file.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved share of the original size in percent.
func (s CompressionStats) SpaceSavings() float64 {
	return (1 - s.CompressionRatio()) * 100
}

// String returns a one-line summary of the run.
func (s CompressionStats) String() string {
	return fmt.Sprintf("%s: %d -> %d bytes (ratio %.3f, saved %.1f%%)",
		s.Algorithm, s.OriginalSize, s.CompressedSize, s.CompressionRatio(), s.SpaceSavings())
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the codec of a container type.
func GetCodec(ct format.CompressionType) (Codec, error) {
	codec, ok := builtinCodecs[ct]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, ct)
	}

	return codec, nil
}
