// Package tdms decodes National Instruments TDMS measurement files into an
// in-memory root/group/channel tree.
//
// A TDMS file is a sequence of segments. Each segment starts with a 28-byte
// lead-in, optionally followed by object metadata (paths, raw data
// descriptors, properties) and raw channel data. Later segments may reuse the
// descriptors and object lists of earlier ones, so a file is always decoded
// front to back.
//
// # Core Features
//
//   - All numeric, boolean, string and timestamp data types
//   - Little- and big-endian segments, mixed within one file
//   - Descriptor reuse and object list carry-over across segments
//   - Repeated raw data chunks within a segment
//   - Memory-mapped plain files, zstd/S2/LZ4 compressed archives
//   - Typed errors for malformed, inconsistent and unsupported input
//
// Interleaved raw data, DAQmx raw data and the extended float, fixed-point
// and complex types are recognized and rejected with errs.ErrUnsupported.
//
// # Basic Usage
//
//	f, err := tdms.Open("run.tdms")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, g := range f.Root.Groups() {
//	    for _, ch := range g.Channels() {
//	        fmt.Printf("%s: %d values of %s\n", ch.Key(), ch.Len(), ch.DataType())
//	    }
//	}
//
//	ch, ok := f.Root.ChannelByKey(tdms.Key("/'Measured Data'/'Ch 1'"))
//	if ok {
//	    samples, _ := tree.ValuesAs[float64](ch)
//	    _ = samples
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the loader
// package. The tree package holds the result types, the errs package the
// error values, and the section, segment and encoding packages the
// lower-level decoders.
package tdms

import (
	"io"

	"github.com/arloliu/tdms/format"
	"github.com/arloliu/tdms/internal/hash"
	"github.com/arloliu/tdms/internal/pathkey"
	"github.com/arloliu/tdms/loader"
	"go.uber.org/zap"
)

// File is a loaded TDMS file.
type File = loader.File

// Option configures a load.
type Option = loader.Option

// Load parses a TDMS file held in memory.
//
// Parameters:
//   - data: The file contents
//   - opts: Optional configuration (see Option constructors below)
//
// Returns:
//   - *File: The loaded file
//   - error: An *errs.SegmentError for decoding failures; no partial result is returned
//
// Example:
//
//	data, _ := os.ReadFile("run.tdms")
//	f, err := tdms.Load(data)
func Load(data []byte, opts ...Option) (*File, error) {
	return loader.Load(data, opts...)
}

// Read parses a TDMS file from r.
func Read(r io.Reader, opts ...Option) (*File, error) {
	return loader.Read(r, opts...)
}

// Open parses the TDMS file at path. Plain files are memory mapped; .zst,
// .zstd, .s2 and .lz4 files are decompressed first.
func Open(path string, opts ...Option) (*File, error) {
	return loader.Open(path, opts...)
}

// WithLogger sets the logger used while loading.
func WithLogger(logger *zap.Logger) Option {
	return loader.WithLogger(logger)
}

// WithStrictPaths rejects files in which distinct object paths normalize to the same key.
func WithStrictPaths(strict bool) Option {
	return loader.WithStrictPaths(strict)
}

// WithCompression sets the compression of the input.
func WithCompression(comp format.CompressionType) Option {
	return loader.WithCompression(comp)
}

// WithMaxSegments limits the number of segments; 0 means no limit.
func WithMaxSegments(n int) Option {
	return loader.WithMaxSegments(n)
}

// Key converts a raw object path such as /'Measured Data'/'Ch 1' to the
// normalized key used by the tree, here Measured_Data-Ch_1.
//
// Each quoted name keeps its letters and digits; every run of other
// characters becomes a single '_'. Levels are joined with '-'.
func Key(path string) string {
	return pathkey.Normalize(path)
}

// ID converts a normalized key to the 64-bit xxHash64 identifier returned by
// Group.ID and Channel.ID and accepted by Root.ChannelByID.
func ID(key string) uint64 {
	return hash.ID(key)
}
