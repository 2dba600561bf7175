package compress

import (
	"testing"
)

func BenchmarkCodecs(b *testing.B) {
	data := sampleCSV(10000)

	for ct, codec := range getAllCodecs() {
		compressed, err := codec.Compress(data)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(ct.String()+"/Compress", func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = codec.Compress(data)
			}
		})

		b.Run(ct.String()+"/Decompress", func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = codec.Decompress(compressed)
			}
		})
	}
}
