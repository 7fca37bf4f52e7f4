package compress

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arloliu/tdms/format"
)

// Compressor compresses a complete TDMS file image.
type Compressor interface {
	// Compress compresses data and returns the result.
	//
	// The returned slice is owned by the caller; data is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a TDMS file image from its compressed form.
//
// Example:
//
//	decompressor := NewZstdCompressor()
//	data, err := decompressor.Decompress(archived)
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
//
// Thread Safety: All decompressors in this package are safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses data and returns the original bytes.
	//
	// Returns an error if data is corrupted or was produced by another algorithm.
	// The returned slice is owned by the caller; data is not modified.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var extensions = map[string]format.CompressionType{
	".zst":  format.CompressionZstd,
	".zstd": format.CompressionZstd,
	".s2":   format.CompressionS2,
	".lz4":  format.CompressionLZ4,
}

// TypeFromPath infers the compression of a file from its extension, e.g.
// run.tdms.zst is Zstd. Unknown extensions are CompressionNone.
func TypeFromPath(path string) format.CompressionType {
	if t, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return t
	}

	return format.CompressionNone
}
