package encoding

import (
	"math"
	"testing"

	"github.com/arloliu/tdms/endian"
	"github.com/arloliu/tdms/errs"
	"github.com/arloliu/tdms/format"
	"github.com/stretchr/testify/require"
)

func TestDecodeArray_Fixed(t *testing.T) {
	t.Run("Int32 little endian", func(t *testing.T) {
		engine := endian.GetLittleEndianEngine()
		var data []byte
		for _, v := range []uint32{1, 2, 0xFFFFFFFF} {
			data = engine.AppendUint32(data, v)
		}

		values, n, err := DecodeArray(format.TypeI32, 3, data, engine)
		require.NoError(t, err)
		require.Equal(t, 12, n)
		require.Equal(t, []any{int32(1), int32(2), int32(-1)}, values)
	})

	t.Run("Double big endian", func(t *testing.T) {
		engine := endian.GetBigEndianEngine()
		var data []byte
		for _, v := range []float64{0.5, -1, math.Inf(1)} {
			data = engine.AppendUint64(data, math.Float64bits(v))
		}
		data = append(data, 0xFF, 0xFF) // next object's data

		values, n, err := DecodeArray(format.TypeDoubleFloat, 3, data, engine)
		require.NoError(t, err)
		require.Equal(t, 24, n)
		require.Equal(t, []any{0.5, -1.0, math.Inf(1)}, values)
	})

	t.Run("Zero count", func(t *testing.T) {
		values, n, err := DecodeArray(format.TypeU16, 0, nil, endian.GetLittleEndianEngine())
		require.NoError(t, err)
		require.Zero(t, n)
		require.Empty(t, values)
	})

	t.Run("Void", func(t *testing.T) {
		values, n, err := DecodeArray(format.TypeVoid, 5, []byte{1, 2}, endian.GetLittleEndianEngine())
		require.NoError(t, err)
		require.Zero(t, n)
		require.Empty(t, values)
	})

	t.Run("Truncated", func(t *testing.T) {
		_, _, err := DecodeArray(format.TypeI64, 2, make([]byte, 15), endian.GetLittleEndianEngine())
		require.ErrorIs(t, err, errs.ErrTruncated)
	})

	t.Run("Huge count", func(t *testing.T) {
		_, _, err := DecodeArray(format.TypeU8, math.MaxUint64, make([]byte, 8), endian.GetLittleEndianEngine())
		require.ErrorIs(t, err, errs.ErrTruncated)
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, _, err := DecodeArray(format.TypeComplexSingleFloat, 1, make([]byte, 8), endian.GetLittleEndianEngine())
		require.ErrorIs(t, err, errs.ErrUnsupportedDataType)
	})
}

func TestDecodeStringArray(t *testing.T) {
	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		var data []byte
		for _, n := range []uint32{5, 3, 4} {
			data = engine.AppendUint32(data, n)
		}
		data = append(data, "helloabcWXYZ"...)

		values, n, err := DecodeArray(format.TypeString, 3, data, engine)
		require.NoError(t, err)
		require.Equal(t, len(data), n)
		require.Equal(t, []any{"hello", "abc", "WXYZ"}, values)
	}
}

func TestDecodeStringArray_Errors(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	t.Run("Truncated lengths", func(t *testing.T) {
		data := engine.AppendUint32(nil, 1)
		_, _, err := DecodeStringArray(2, data, engine)
		require.ErrorIs(t, err, errs.ErrTruncated)
	})

	t.Run("Truncated bytes", func(t *testing.T) {
		data := engine.AppendUint32(nil, 2)
		data = engine.AppendUint32(data, 4)
		data = append(data, "abcd"...)
		_, _, err := DecodeStringArray(2, data, engine)
		require.ErrorIs(t, err, errs.ErrTruncated)
	})

	t.Run("Invalid UTF-8", func(t *testing.T) {
		data := engine.AppendUint32(nil, 1)
		data = append(data, 0xFF)
		_, _, err := DecodeStringArray(1, data, engine)
		require.ErrorIs(t, err, errs.ErrInvalidUTF8)
	})
}
