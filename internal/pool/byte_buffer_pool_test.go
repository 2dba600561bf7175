package pool

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 1024, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	_, _ = bb.Write([]byte(", world"))
	assert.Equal(t, []byte("hello, world"), bb.Bytes())

	capBefore := cap(bb.B)
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, cap(bb.B), "reset should retain capacity")
}

type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte(`{"title":"CIR"}`))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(15), n)
	assert.Equal(t, `{"title":"CIR"}`, out.String())

	_, err = bb.WriteTo(errorWriter{})
	require.EqualError(t, err, "disk full")
}

func TestByteBufferPool_GetReturnsEmptyBuffer(t *testing.T) {
	p := NewByteBufferPool(128, 0)

	bb := p.Get()
	require.NotNil(t, bb)
	_, _ = bb.Write([]byte("stale figure"))
	p.Put(bb)

	bb = p.Get()
	assert.Equal(t, 0, bb.Len(), "pooled buffers must come back empty")
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(1024, 4096)

	bb := p.Get()
	_, _ = bb.Write(make([]byte, 10000))
	require.Greater(t, cap(bb.B), 4096)
	p.Put(bb)

	bb2 := p.Get()
	assert.LessOrEqual(t, cap(bb2.B), 4096, "buffers beyond the threshold must not be reused")
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(128, 0)
	assert.NotPanics(t, func() { p.Put(nil) })
	assert.NotPanics(t, func() { PutFigureBuffer(nil) })
}

func TestFigureBuffer_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			bb := GetFigureBuffer()
			defer PutFigureBuffer(bb)

			payload := bytes.Repeat([]byte{byte(i)}, 256)
			_, _ = bb.Write(payload)
			assert.Equal(t, payload, bb.Bytes())
		}(i)
	}
	wg.Wait()
}

func BenchmarkFigureBuffer_GetWritePut(b *testing.B) {
	payload := make([]byte, 200*1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		bb := GetFigureBuffer()
		_, _ = bb.Write(payload)
		PutFigureBuffer(bb)
	}
}
