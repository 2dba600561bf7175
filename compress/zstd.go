package compress

// ZstdCompressor provides Zstandard compression for archived results files.
//
// The output is a standard Zstandard frame, so packed files can also be
// inspected with the zstd command-line tool. With cgo enabled the codec uses
// the reference C library through gozstd; otherwise it uses the pure-Go
// klauspost implementation. Both produce interchangeable frames.
type ZstdCompressor struct{}

// maxDecodedSize bounds the decoded size of a results file. Results tables
// are a few MiB at most; anything larger is treated as corrupt input.
const maxDecodedSize = 256 << 20

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
