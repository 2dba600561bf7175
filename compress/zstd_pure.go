//go:build !cgo

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdCoders holds the process-wide zstd encoder and decoder. EncodeAll and
// DecodeAll may be called concurrently on a single instance.
type zstdCoders struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
	err error
}

var sharedZstd = sync.OnceValue(func() zstdCoders {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderCRC(true),
	)
	if err != nil {
		return zstdCoders{err: fmt.Errorf("zstd encoder: %w", err)}
	}

	// Decoders refuse frames that would expand beyond maxDecodedSize.
	dec, err := zstd.NewReader(nil,
		zstd.WithDecoderMaxMemory(maxDecodedSize),
	)
	if err != nil {
		return zstdCoders{err: fmt.Errorf("zstd decoder: %w", err)}
	}

	return zstdCoders{enc: enc, dec: dec}
})

// Compress packs data into a single zstd frame.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	z := sharedZstd()
	if z.err != nil {
		return nil, z.err
	}

	return z.enc.EncodeAll(data, nil), nil
}

// Decompress unpacks one or more concatenated zstd frames.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	z := sharedZstd()
	if z.err != nil {
		return nil, z.err
	}

	out, err := z.dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}
