package pool

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb.B)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 1024, bb.Cap())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(ReadBufferDefaultSize)
	bb.B = append(bb.B, "TDSm"...)
	originalCap := bb.Cap()

	bb.Reset()

	require.Equal(t, 0, bb.Len())
	require.Equal(t, originalCap, bb.Cap())
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(2)

	n, err := bb.Write([]byte("TDSm"))
	require.NoError(t, err)
	require.Equal(t, 4, n)

	_, err = bb.Write([]byte{0x0E})
	require.NoError(t, err)
	require.Equal(t, []byte{'T', 'D', 'S', 'm', 0x0E}, bb.Bytes())
}

func TestByteBuffer_Grow(t *testing.T) {
	tests := []struct {
		name     string
		initCap  int
		initLen  int
		required int
		wantCap  int
	}{
		{"sufficient capacity", 100, 10, 50, 100},
		{"small buffer", 100, 100, 10, 100 + ReadBufferDefaultSize},
		{"large buffer", 8 * ReadBufferDefaultSize, 8 * ReadBufferDefaultSize, 10, 10 * ReadBufferDefaultSize},
		{"more than default growth", 0, 0, 2 * ReadBufferDefaultSize, 2 * ReadBufferDefaultSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bb := NewByteBuffer(tt.initCap)
			bb.B = bb.B[:tt.initLen]
			for i := range bb.B {
				bb.B[i] = byte(i)
			}
			before := bytes.Clone(bb.B)

			bb.Grow(tt.required)

			require.Equal(t, tt.wantCap, bb.Cap())
			require.Equal(t, before, bb.B, "grow keeps contents")
		})
	}
}

func TestByteBuffer_ReadFrom(t *testing.T) {
	data := bytes.Repeat([]byte("TDSm segment "), 20_000)

	t.Run("Whole reader", func(t *testing.T) {
		bb := NewByteBuffer(16)
		n, err := bb.ReadFrom(bytes.NewReader(data))
		require.NoError(t, err)
		require.Equal(t, int64(len(data)), n)
		require.Equal(t, data, bb.Bytes())
	})

	t.Run("One byte at a time", func(t *testing.T) {
		bb := NewByteBuffer(0)
		_, err := bb.ReadFrom(iotest.OneByteReader(bytes.NewReader(data[:100])))
		require.NoError(t, err)
		require.Equal(t, data[:100], bb.Bytes())
	})

	t.Run("Data with EOF", func(t *testing.T) {
		bb := NewByteBuffer(0)
		_, err := bb.ReadFrom(iotest.DataErrReader(bytes.NewReader(data[:100])))
		require.NoError(t, err)
		require.Equal(t, data[:100], bb.Bytes())
	})

	t.Run("Error", func(t *testing.T) {
		boom := errors.New("boom")
		bb := NewByteBuffer(0)
		r := io.MultiReader(bytes.NewReader(data[:10]), iotest.ErrReader(boom))

		n, err := bb.ReadFrom(r)
		require.ErrorIs(t, err, boom)
		require.Equal(t, int64(10), n)
	})
}

func TestByteBufferPool(t *testing.T) {
	t.Run("Reuse resets", func(t *testing.T) {
		p := NewByteBufferPool(64, 1024)

		bb := p.Get()
		require.Equal(t, 64, bb.Cap())
		bb.B = append(bb.B, "data"...)
		p.Put(bb)

		again := p.Get()
		require.Equal(t, 0, again.Len())
	})

	t.Run("Nil buffer", func(t *testing.T) {
		p := NewByteBufferPool(64, 1024)
		require.NotPanics(t, func() { p.Put(nil) })
	})

	t.Run("Discards oversized buffers", func(t *testing.T) {
		p := NewByteBufferPool(64, 1024)

		bb := p.Get()
		bb.Grow(4096)
		bb.B = append(bb.B, "big"...)
		p.Put(bb)

		// the oversized buffer was dropped, so Put did not reset it
		require.Equal(t, 3, bb.Len())
	})

	t.Run("Zero threshold keeps everything", func(t *testing.T) {
		p := NewByteBufferPool(64, 0)

		bb := p.Get()
		bb.Grow(1 << 20)
		bb.B = append(bb.B, "big"...)
		p.Put(bb)

		require.Equal(t, 0, bb.Len())
	})
}

func TestReadBuffer_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			bb := GetReadBuffer()
			defer PutReadBuffer(bb)

			payload := bytes.Repeat([]byte{byte(i)}, 1000)
			_, _ = bb.Write(payload)
			if !bytes.Equal(payload, bb.Bytes()) {
				t.Errorf("buffer %d shared between goroutines", i)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkReadBuffer_ReadFrom(b *testing.B) {
	data := bytes.Repeat([]byte("TDSm"), 256*1024)

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()

	for b.Loop() {
		bb := GetReadBuffer()
		if _, err := bb.ReadFrom(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
		PutReadBuffer(bb)
	}
}
