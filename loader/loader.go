package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/arloliu/tdms/compress"
	"github.com/arloliu/tdms/errs"
	"github.com/arloliu/tdms/format"
	"github.com/arloliu/tdms/internal/options"
	"github.com/arloliu/tdms/internal/pool"
	"github.com/arloliu/tdms/segment"
	"github.com/arloliu/tdms/tree"
	"github.com/edsrzf/mmap-go"
	"go.uber.org/zap"
)

// File is a loaded TDMS file.
type File struct {
	// Root is the object tree.
	Root *tree.Root
	// Segments summarizes the segments in file order.
	Segments []segment.Info
}

// Load parses a TDMS file held in memory.
//
// Segments are decoded in order from offset 0 until the end of data. Decoded
// values do not reference data, so the caller may reuse it once Load returns.
//
// Parameters:
//   - data: The file contents, compressed if WithCompression is given
//   - opts: Load options
//
// Returns:
//   - *File: The loaded file; nil on error, there are no partial results
//   - error: An *errs.SegmentError wrapping the cause for decoding failures
func Load(data []byte, opts ...Option) (*File, error) {
	cfg := NewConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return loadCompressed(data, cfg)
}

// Read parses a TDMS file from r. The whole stream is buffered before parsing.
func Read(r io.Reader, opts ...Option) (*File, error) {
	cfg := NewConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	bb := pool.GetReadBuffer()
	defer pool.PutReadBuffer(bb)

	if _, err := bb.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return loadCompressed(bb.Bytes(), cfg)
}

// Open parses the TDMS file at path.
//
// Plain files are memory mapped. Files ending in .zst, .zstd, .s2 or .lz4 are
// decompressed into memory first, unless WithCompression says otherwise.
func Open(path string, opts ...Option) (*File, error) {
	cfg := NewConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if !cfg.compressionSet {
		if err := cfg.setCompression(compress.TypeFromPath(path)); err != nil {
			return nil, err
		}
	}

	if cfg.compression != format.CompressionNone {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		return loadCompressed(data, cfg)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}

	// zero-length regions cannot be mapped
	if st.Size() == 0 {
		return load(nil, cfg)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	defer func() {
		if err := m.Unmap(); err != nil {
			cfg.logger.Warn("unmap failed", zap.String("path", path), zap.Error(err))
		}
	}()

	cfg.logger.Debug("mapped file", zap.String("path", path), zap.Int64("size", st.Size()))

	return load(m, cfg)
}

func loadCompressed(data []byte, cfg *Config) (*File, error) {
	if cfg.compression == format.CompressionNone {
		return load(data, cfg)
	}

	plain, err := cfg.codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("decompress %s input: %w", cfg.compression, err)
	}

	cfg.logger.Debug("decompressed input",
		zap.Stringer("compression", cfg.compression),
		zap.Int("compressed", len(data)),
		zap.Int("size", len(plain)),
	)

	return load(plain, cfg)
}

// load decodes every segment of data into a new tree.
func load(data []byte, cfg *Config) (*File, error) {
	dec := segment.NewDecoder()
	asm := tree.NewAssembler(cfg.logger, cfg.strictPaths)
	file := &File{}

	size := int64(len(data))
	for offset, index := int64(0), 0; offset < size; index++ {
		if cfg.maxSegments > 0 && index >= cfg.maxSegments {
			return nil, &errs.SegmentError{
				Index:  index,
				Offset: offset,
				Err:    fmt.Errorf("%w: limit is %d", errs.ErrTooManySegments, cfg.maxSegments),
			}
		}

		seg, err := dec.Decode(data, offset)
		if err != nil {
			return nil, &errs.SegmentError{Index: index, Offset: offset, Err: err}
		}

		if err := asm.Add(seg); err != nil {
			return nil, &errs.SegmentError{Index: index, Offset: offset, Err: err}
		}

		info := seg.Info()
		file.Segments = append(file.Segments, info)

		cfg.logger.Debug("decoded segment",
			zap.Int("index", index),
			zap.Int64("offset", info.Start),
			zap.Int64("end", info.End),
			zap.Uint32("version", info.Version),
			zap.Stringer("toc", info.TOC),
			zap.Int("objects", info.Objects),
			zap.Int("chunks", info.Chunks),
		)

		offset = info.End
	}

	file.Root = asm.Root()

	cfg.logger.Debug("loaded file",
		zap.Int("segments", len(file.Segments)),
		zap.Int("groups", len(file.Root.GroupNames())),
		zap.Int("templates", dec.Registry().Len()),
		zap.Int("keys", asm.Keys()),
		zap.Int("collisions", asm.Collisions()),
	)

	return file, nil
}
