// Package compress provides the codecs used to read archived TDMS files.
//
// Measurement files are often archived compressed: run.tdms.zst, run.tdms.s2,
// run.tdms.lz4. The loader decompresses such files into memory before parsing.
// The codec is picked from the file extension with TypeFromPath, or set
// explicitly with a format.CompressionType:
//
//	codec, err := compress.CreateCodec(compress.TypeFromPath(path), "archive")
//	if err != nil {
//	    return err
//	}
//	data, err := codec.Decompress(archived)
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): plain files, data is passed through
//   - Zstd (format.CompressionZstd): zstd frames; pure Go by default, cgo
//     gozstd with the gozstd build tag
//   - S2 (format.CompressionS2): S2 stream format
//   - LZ4 (format.CompressionLZ4): LZ4 frame format
//
// Compress exists on every codec so archives can be produced, mostly for tests.
//
// # Thread Safety
//
// All codec implementations are thread-safe and can be shared across goroutines.
package compress
