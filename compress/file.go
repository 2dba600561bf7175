package compress

import (
	"fmt"
	"os"
	"time"

	"github.com/arloliu/dosecurve/errs"
	"github.com/arloliu/dosecurve/format"
)

// ReadFile reads a results file and decompresses it according to its extension.
func ReadFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	ct := format.FromPath(path)
	codec, err := GetCodec(ct)
	if err != nil {
		return nil, err
	}

	data, err := codec.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}

// WriteFile compresses data with the given algorithm and writes it to path.
func WriteFile(path string, data []byte, ct format.CompressionType) (CompressionStats, error) {
	stats := CompressionStats{Algorithm: ct, OriginalSize: int64(len(data))}

	codec, err := GetCodec(ct)
	if err != nil {
		return stats, err
	}

	start := time.Now()
	compressed, err := codec.Compress(data)
	if err != nil {
		return stats, fmt.Errorf("compress %s: %w", path, err)
	}
	stats.Elapsed = time.Since(start)
	stats.CompressedSize = int64(len(compressed))

	if err := os.WriteFile(path, compressed, 0o644); err != nil {
		return stats, err
	}

	return stats, nil
}

// PackFile compresses the file at src into src plus the algorithm's extension
// and returns the written path.
func PackFile(src string, ct format.CompressionType) (string, CompressionStats, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return "", CompressionStats{}, err
	}

	dst := src + ct.Extension()
	if dst == src {
		return "", CompressionStats{}, fmt.Errorf("%w: %s would overwrite %s", errs.ErrUnsupportedCompression, ct, src)
	}

	stats, err := WriteFile(dst, data, ct)

	return dst, stats, err
}
