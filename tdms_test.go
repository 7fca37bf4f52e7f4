package tdms

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arloliu/tdms/compress"
	"github.com/arloliu/tdms/encoding"
	"github.com/arloliu/tdms/endian"
	"github.com/arloliu/tdms/errs"
	"github.com/arloliu/tdms/format"
	"github.com/arloliu/tdms/internal/testutil"
	"github.com/arloliu/tdms/section"
	"github.com/arloliu/tdms/tree"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const tocAll = section.TOC(section.MetaDataMask | section.NewObjectListMask | section.RawDataMask)

var le = endian.GetLittleEndianEngine()

func TestKey(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/'Measured Data'/'Ch 1'", "Measured_Data-Ch_1"},
		{"/'Root Group'", "Root_Group"},
		{"/", ""},
		{"", ""},
		{"/'a/b'/'c'", "a_b-c"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, Key(tt.path))
		})
	}
}

func TestLoad_Timestamps(t *testing.T) {
	var raw []byte
	raw = testutil.AppendTimestampParts(raw, le, 3_000_000_000, 0)
	raw = testutil.AppendTimestampParts(raw, le, 0, 1<<63)

	data := testutil.NewBuilder().Add(testutil.Segment{
		TOC:     tocAll,
		Objects: []testutil.Object{{Path: "/'G'/'T'", Index: testutil.Full, Type: format.TypeTimeStamp, Count: 2}},
		Raw:     raw,
	}).Bytes()

	f, err := Load(data)
	require.NoError(t, err)

	ch, ok := f.Root.ChannelByID(ID("G-T"))
	require.True(t, ok)

	times, ok := tree.ValuesAs[time.Time](ch)
	require.True(t, ok)
	require.Equal(t, encoding.Epoch.Add(3_000_000_000*time.Second), times[0])
	require.Equal(t, time.Date(1999, time.January, 24, 5, 20, 0, 0, time.UTC), times[0])
	require.Equal(t, time.Date(1904, time.January, 1, 0, 0, 0, 500_000_000, time.UTC), times[1])
}

func TestLoad_StringArray(t *testing.T) {
	raw := le.AppendUint32(nil, 5)
	raw = le.AppendUint32(raw, 3)
	raw = le.AppendUint32(raw, 4)
	raw = append(raw, "helloabcWXYZ"...)

	data := testutil.NewBuilder().Add(testutil.Segment{
		TOC:     tocAll,
		Objects: []testutil.Object{{Path: "/'G'/'S'", Index: testutil.Full, Type: format.TypeString, Count: 3, TotalSize: uint64(len(raw))}},
		Raw:     raw,
	}).Bytes()

	f, err := Load(data)
	require.NoError(t, err)

	g, ok := f.Root.Group("G")
	require.True(t, ok)
	ch, ok := g.Channel("S")
	require.True(t, ok)
	require.Equal(t, []any{"hello", "abc", "WXYZ"}, ch.Values())
}

func TestLoad_Properties(t *testing.T) {
	at := time.Date(2020, 5, 17, 8, 30, 15, 123_456_789, time.UTC)

	data := testutil.NewBuilder().Add(testutil.Segment{
		TOC: section.MetaDataMask | section.NewObjectListMask,
		Objects: []testutil.Object{{
			Path: "/'G'",
			Properties: []testutil.Property{
				{Name: "i8", Type: format.TypeI8, Value: int8(-8)},
				{Name: "u64", Type: format.TypeU64, Value: uint64(1 << 40)},
				{Name: "f32", Type: format.TypeSingleFloat, Value: float32(1.5)},
				{Name: "f64u", Type: format.TypeDoubleFloatWithUnit, Value: 9.81},
				{Name: "flag", Type: format.TypeBoolean, Value: true},
				{Name: "text", Type: format.TypeString, Value: "Grüße"},
				{Name: "when", Type: format.TypeTimeStamp, Value: at},
			},
		}},
	}).Bytes()

	f, err := Load(data)
	require.NoError(t, err)

	g, ok := f.Root.Group("G")
	require.True(t, ok)
	props := g.Properties()

	i8, ok := props.Int64("i8")
	require.True(t, ok)
	require.Equal(t, int64(-8), i8)

	u64, ok := props.Int64("u64")
	require.True(t, ok)
	require.Equal(t, int64(1<<40), u64)

	f32, ok := props.Float64("f32")
	require.True(t, ok)
	require.InDelta(t, 1.5, f32, 0)

	f64, ok := props.Float64("f64u")
	require.True(t, ok)
	require.InDelta(t, 9.81, f64, 0)
	require.Equal(t, format.TypeDoubleFloatWithUnit, props["f64u"].Type)

	flag, ok := props.Bool("flag")
	require.True(t, ok)
	require.True(t, flag)

	text, ok := props.String("text")
	require.True(t, ok)
	require.Equal(t, "Grüße", text)

	when, ok := props.Time("when")
	require.True(t, ok)
	require.Equal(t, at, when)

	_, ok = props.String("missing")
	require.False(t, ok)
	_, ok = props.Bool("text")
	require.False(t, ok)
}

func TestLoad_NoPartialResult(t *testing.T) {
	good := testutil.NewBuilder().Add(testutil.Segment{
		TOC:     tocAll,
		Objects: []testutil.Object{{Path: "/'G'/'C'", Index: testutil.Full, Type: format.TypeU16, Count: 1}},
		Raw:     testutil.Values(le, format.TypeU16, uint16(1)),
	}).Bytes()
	bad := testutil.NewBuilder().Add(testutil.Segment{
		TOC:     tocAll,
		Objects: []testutil.Object{{Path: "/'G'/'D'", Index: testutil.Reuse}},
		Raw:     testutil.Values(le, format.TypeU16, uint16(2)),
	}).Bytes()

	f, err := Load(append(bytes.Clone(good), bad...), WithLogger(zaptest.NewLogger(t)))
	require.Nil(t, f)
	require.ErrorIs(t, err, errs.ErrUndefinedTemplate)

	var segErr *errs.SegmentError
	require.True(t, errors.As(err, &segErr))
	require.Equal(t, 1, segErr.Index)
	require.Equal(t, int64(len(good)), segErr.Offset)
}

func TestOpenRead(t *testing.T) {
	data := testutil.NewBuilder().Add(testutil.Segment{
		TOC:     tocAll,
		Objects: []testutil.Object{{Path: "/'G'/'C'", Index: testutil.Full, Type: format.TypeI64, Count: 3}},
		Raw:     testutil.Values(le, format.TypeI64, int64(-1), int64(0), int64(1)),
	}).Bytes()

	archived, err := compress.NewLZ4Compressor().Compress(data)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "run.tdms.lz4")
	require.NoError(t, os.WriteFile(path, archived, 0o600))

	f, err := Open(path, WithStrictPaths(true), WithMaxSegments(1))
	require.NoError(t, err)

	ch, ok := f.Root.ChannelByKey("G-C")
	require.True(t, ok)
	values, ok := tree.ValuesAs[int64](ch)
	require.True(t, ok)
	require.Equal(t, []int64{-1, 0, 1}, values)

	f, err = Read(bytes.NewReader(archived), WithCompression(format.CompressionLZ4))
	require.NoError(t, err)
	require.Len(t, f.Segments, 1)
}
