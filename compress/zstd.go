package compress

// ZstdCompressor provides Zstandard compression, the usual choice for
// archiving measurement files.
//
// Two implementations exist: the pure Go klauspost/compress decoder (default)
// and the cgo valyala/gozstd binding, selected with the gozstd build tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	data, err := compressor.Decompress(archived)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
