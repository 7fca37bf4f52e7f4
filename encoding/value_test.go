package encoding

import (
	"math"
	"testing"
	"time"

	"github.com/arloliu/tdms/endian"
	"github.com/arloliu/tdms/errs"
	"github.com/arloliu/tdms/format"
	"github.com/stretchr/testify/require"
)

func TestDecodeValue_Scalars(t *testing.T) {
	le := endian.GetLittleEndianEngine()
	be := endian.GetBigEndianEngine()

	tests := []struct {
		name     string
		dt       format.DataType
		engine   endian.EndianEngine
		data     []byte
		expected any
		size     int
	}{
		{"I8", format.TypeI8, le, []byte{0xFF}, int8(-1), 1},
		{"I16 LE", format.TypeI16, le, []byte{0xFE, 0xFF}, int16(-2), 2},
		{"I16 BE", format.TypeI16, be, []byte{0xFF, 0xFE}, int16(-2), 2},
		{"I32", format.TypeI32, le, le.AppendUint32(nil, 0x80000000), int32(math.MinInt32), 4},
		{"I64", format.TypeI64, be, be.AppendUint64(nil, 42), int64(42), 8},
		{"U8", format.TypeU8, le, []byte{0xFF}, uint8(255), 1},
		{"U16", format.TypeU16, be, []byte{0x12, 0x34}, uint16(0x1234), 2},
		{"U32", format.TypeU32, le, []byte{0x78, 0x56, 0x34, 0x12}, uint32(0x12345678), 4},
		{"U64", format.TypeU64, le, le.AppendUint64(nil, math.MaxUint64), uint64(math.MaxUint64), 8},
		{"SingleFloat", format.TypeSingleFloat, le, le.AppendUint32(nil, math.Float32bits(1.5)), float32(1.5), 4},
		{"SingleFloatWithUnit", format.TypeSingleFloatWithUnit, be, be.AppendUint32(nil, math.Float32bits(-2.25)), float32(-2.25), 4},
		{"DoubleFloat", format.TypeDoubleFloat, be, be.AppendUint64(nil, math.Float64bits(math.Pi)), math.Pi, 8},
		{"DoubleFloatWithUnit", format.TypeDoubleFloatWithUnit, le, le.AppendUint64(nil, math.Float64bits(1e-9)), 1e-9, 8},
		{"Boolean true", format.TypeBoolean, le, []byte{0x02}, true, 1},
		{"Boolean false", format.TypeBoolean, le, []byte{0x00}, false, 1},
		{"Void", format.TypeVoid, le, nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// trailing bytes must not be consumed
			data := append(append([]byte{}, tt.data...), 0xAA, 0xBB)

			v, n, err := DecodeValue(tt.dt, data, tt.engine)
			require.NoError(t, err)
			require.Equal(t, tt.expected, v)
			require.Equal(t, tt.size, n)
		})
	}
}

func TestDecodeValue_Timestamp(t *testing.T) {
	le := endian.GetLittleEndianEngine()
	data := encodeTimestamp(le, 3_000_000_000, 1<<63)

	v, n, err := DecodeValue(format.TypeTimeStamp, data, le)
	require.NoError(t, err)
	require.Equal(t, TimestampSize, n)

	ts, ok := v.(time.Time)
	require.True(t, ok)
	require.Equal(t, Epoch.Add(3_000_000_000*time.Second+500*time.Millisecond), ts)
}

func TestDecodeValue_String(t *testing.T) {
	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		data := engine.AppendUint32(nil, 6)
		data = append(data, "grüß"...)
		data = append(data, 0xFF) // trailing

		v, n, err := DecodeValue(format.TypeString, data, engine)
		require.NoError(t, err)
		require.Equal(t, "grüß", v)
		require.Equal(t, 10, n)
	}

	t.Run("Empty", func(t *testing.T) {
		v, n, err := DecodeValue(format.TypeString, []byte{0, 0, 0, 0}, endian.GetLittleEndianEngine())
		require.NoError(t, err)
		require.Equal(t, "", v)
		require.Equal(t, 4, n)
	})
}

func TestDecodeValue_Errors(t *testing.T) {
	le := endian.GetLittleEndianEngine()

	t.Run("Truncated scalar", func(t *testing.T) {
		_, _, err := DecodeValue(format.TypeI32, []byte{1, 2}, le)
		require.ErrorIs(t, err, errs.ErrTruncated)
		require.ErrorIs(t, err, errs.ErrFormat)
	})

	t.Run("Truncated string prefix", func(t *testing.T) {
		_, _, err := DecodeValue(format.TypeString, []byte{1, 0}, le)
		require.ErrorIs(t, err, errs.ErrTruncated)
	})

	t.Run("Truncated string body", func(t *testing.T) {
		data := append(le.AppendUint32(nil, 10), "abc"...)
		_, _, err := DecodeValue(format.TypeString, data, le)
		require.ErrorIs(t, err, errs.ErrTruncated)
	})

	t.Run("Invalid UTF-8", func(t *testing.T) {
		data := append(le.AppendUint32(nil, 2), 0xC3, 0x28)
		_, _, err := DecodeValue(format.TypeString, data, le)
		require.ErrorIs(t, err, errs.ErrInvalidUTF8)
		require.ErrorIs(t, err, errs.ErrFormat)
	})

	for _, dt := range []format.DataType{
		format.TypeExtendedFloat,
		format.TypeExtendedFloatWithUnit,
		format.TypeFixedPoint,
		format.TypeComplexSingleFloat,
		format.TypeComplexDoubleFloat,
		format.TypeDAQmxRawData,
	} {
		t.Run("Unsupported "+dt.String(), func(t *testing.T) {
			_, _, err := DecodeValue(dt, make([]byte, 32), le)
			require.ErrorIs(t, err, errs.ErrUnsupportedDataType)
			require.ErrorIs(t, err, errs.ErrUnsupported)
		})
	}
}
