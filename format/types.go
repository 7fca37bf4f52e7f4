package format

import (
	"fmt"

	"github.com/arloliu/tdms/errs"
)

type (
	// DataType is a TDMS data type code as stored in property and raw data descriptors.
	DataType uint32

	// Kind groups data types by the Go value they decode to.
	Kind uint8

	CompressionType uint8
)

const (
	TypeVoid                  DataType = 0x00000000
	TypeI8                    DataType = 0x00000001
	TypeI16                   DataType = 0x00000002
	TypeI32                   DataType = 0x00000003
	TypeI64                   DataType = 0x00000004
	TypeU8                    DataType = 0x00000005
	TypeU16                   DataType = 0x00000006
	TypeU32                   DataType = 0x00000007
	TypeU64                   DataType = 0x00000008
	TypeSingleFloat           DataType = 0x00000009
	TypeDoubleFloat           DataType = 0x0000000A
	TypeExtendedFloat         DataType = 0x0000000B
	TypeSingleFloatWithUnit   DataType = 0x00000019
	TypeDoubleFloatWithUnit   DataType = 0x0000001A
	TypeExtendedFloatWithUnit DataType = 0x0000001B
	TypeString                DataType = 0x00000020
	TypeBoolean               DataType = 0x00000021
	TypeTimeStamp             DataType = 0x00000044
	TypeFixedPoint            DataType = 0x0000004F
	TypeComplexSingleFloat    DataType = 0x0008000C
	TypeComplexDoubleFloat    DataType = 0x0010000D
	TypeDAQmxRawData          DataType = 0xFFFFFFFF
)

const (
	KindUnsupported Kind = iota // recognized code without a decoder
	KindVoid
	KindInt
	KindUint
	KindFloat
	KindBool
	KindString
	KindTimestamp
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

type typeInfo struct {
	name string
	kind Kind
	size int // encoded width in bytes, 0 for variable-size or undecodable types
}

// dataTypes is the complete set of data types. A code missing from this table
// is not a TDMS data type.
var dataTypes = map[DataType]typeInfo{
	TypeVoid:                  {"Void", KindVoid, 0},
	TypeI8:                    {"I8", KindInt, 1},
	TypeI16:                   {"I16", KindInt, 2},
	TypeI32:                   {"I32", KindInt, 4},
	TypeI64:                   {"I64", KindInt, 8},
	TypeU8:                    {"U8", KindUint, 1},
	TypeU16:                   {"U16", KindUint, 2},
	TypeU32:                   {"U32", KindUint, 4},
	TypeU64:                   {"U64", KindUint, 8},
	TypeSingleFloat:           {"SingleFloat", KindFloat, 4},
	TypeDoubleFloat:           {"DoubleFloat", KindFloat, 8},
	TypeExtendedFloat:         {"ExtendedFloat", KindUnsupported, 0},
	TypeSingleFloatWithUnit:   {"SingleFloatWithUnit", KindFloat, 4},
	TypeDoubleFloatWithUnit:   {"DoubleFloatWithUnit", KindFloat, 8},
	TypeExtendedFloatWithUnit: {"ExtendedFloatWithUnit", KindUnsupported, 0},
	TypeString:                {"String", KindString, 0},
	TypeBoolean:               {"Boolean", KindBool, 1},
	TypeTimeStamp:             {"TimeStamp", KindTimestamp, 16},
	TypeFixedPoint:            {"FixedPoint", KindUnsupported, 0},
	TypeComplexSingleFloat:    {"ComplexSingleFloat", KindUnsupported, 0},
	TypeComplexDoubleFloat:    {"ComplexDoubleFloat", KindUnsupported, 0},
	TypeDAQmxRawData:          {"DAQmxRawData", KindUnsupported, 0},
}

// ParseDataType maps a raw type code to a DataType.
//
// Returns errs.ErrUnknownDataType if the code is not part of the type table.
func ParseDataType(code uint32) (DataType, error) {
	t := DataType(code)
	if _, ok := dataTypes[t]; !ok {
		return 0, fmt.Errorf("%w: 0x%08X", errs.ErrUnknownDataType, code)
	}

	return t, nil
}

// Kind returns the decode kind of the data type.
func (t DataType) Kind() Kind {
	return dataTypes[t].kind
}

// Size returns the fixed encoded width of a value, or 0 for strings, void and
// types without a decoder.
func (t DataType) Size() int {
	return dataTypes[t].size
}

// IsVariableSize reports whether descriptors of this type carry a total byte size.
func (t DataType) IsVariableSize() bool {
	return t == TypeString
}

// IsSupported reports whether values of this type can be decoded.
func (t DataType) IsSupported() bool {
	info, ok := dataTypes[t]
	return ok && info.kind != KindUnsupported
}

func (t DataType) String() string {
	if info, ok := dataTypes[t]; ok {
		return info.name
	}

	return fmt.Sprintf("Unknown(0x%08X)", uint32(t))
}

func (k Kind) String() string {
	switch k {
	case KindUnsupported:
		return "Unsupported"
	case KindVoid:
		return "Void"
	case KindInt:
		return "Int"
	case KindUint:
		return "Uint"
	case KindFloat:
		return "Float"
	case KindBool:
		return "Bool"
	case KindString:
		return "String"
	case KindTimestamp:
		return "Timestamp"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
