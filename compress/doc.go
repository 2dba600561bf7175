// Package compress provides the codecs used to store results files compactly.
//
// A results file may be kept plain (test_eval__CIR__2024-09-07.csv) or
// compressed, in which case the algorithm is implied by an extra extension:
//
//	.zst  Zstandard frame (gozstd with cgo, klauspost/compress/zstd without)
//	.s2   S2 stream (klauspost/compress/s2)
//	.lz4  LZ4 frame (pierrec/lz4/v4)
//
// Every codec writes the self-describing container of its reference tool, so a
// packed file can be produced or inspected outside this program.
//
// # Usage
//
//	data, err := compress.ReadFile("results/test_eval__ISF__2024-09-07.csv.zst")
//
//	stats, err := compress.WriteFile("out.csv.lz4", data, format.CompressionLZ4)
//	fmt.Println(stats)
//
// Codecs are stateless values; pooled encoders and decoders make them safe
// for concurrent use.
package compress
