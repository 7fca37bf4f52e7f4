package loader

import (
	"fmt"

	"github.com/arloliu/tdms/compress"
	"github.com/arloliu/tdms/format"
	"github.com/arloliu/tdms/internal/options"
	"go.uber.org/zap"
)

// Config holds the settings of one load.
type Config struct {
	logger         *zap.Logger
	strictPaths    bool
	compression    format.CompressionType
	compressionSet bool
	codec          compress.Codec
	maxSegments    int
}

// NewConfig creates a Config with the defaults: no logging, colliding paths
// merged, uncompressed input and no segment limit.
func NewConfig() *Config {
	return &Config{
		logger:      zap.NewNop(),
		compression: format.CompressionNone,
	}
}

func (c *Config) setCompression(comp format.CompressionType) error {
	codec, err := compress.CreateCodec(comp, "input")
	if err != nil {
		return err
	}

	c.compression = comp
	c.compressionSet = true
	c.codec = codec

	return nil
}

func (c *Config) setMaxSegments(n int) error {
	if n < 0 {
		return fmt.Errorf("invalid segment limit: %d", n)
	}

	c.maxSegments = n

	return nil
}

// Option represents a functional option for configuring a load.
type Option = options.Option[*Config]

// WithLogger sets the logger. Segments are logged at debug level, merged
// object paths at warn level. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	})
}

// WithStrictPaths makes distinct object paths with the same normalized key,
// such as /'a b' and /'a_b', fail the load with errs.ErrPathCollision instead
// of being merged into one object.
func WithStrictPaths(strict bool) Option {
	return options.NoError(func(c *Config) {
		c.strictPaths = strict
	})
}

// WithCompression sets the compression of the input. By default Load and Read
// expect plain TDMS data and Open infers the compression from the file extension.
func WithCompression(comp format.CompressionType) Option {
	return options.New(func(c *Config) error {
		return c.setCompression(comp)
	})
}

// WithMaxSegments limits the number of segments; 0 means no limit.
func WithMaxSegments(n int) Option {
	return options.New(func(c *Config) error {
		return c.setMaxSegments(n)
	})
}
