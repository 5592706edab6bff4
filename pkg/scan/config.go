package scan

// Config holds scanner configuration.
type Config struct {
	// Extensions are the recognized log file extensions used when
	// collecting files from directories. Gzip-compressed variants
	// (e.g. ".txt.gz") are recognized transparently.
	Extensions []string

	// BufferSize is the size of the read buffer in bytes.
	BufferSize int

	// Workers is the number of files scanned concurrently. 1 means fully
	// sequential processing.
	Workers int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Extensions: []string{".txt", ".log"},
		BufferSize: 64 * 1024,
		Workers:    4,
	}
}

// normalized returns a copy with zero values replaced by defaults.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if len(c.Extensions) == 0 {
		c.Extensions = def.Extensions
	}
	if c.BufferSize <= 0 {
		c.BufferSize = def.BufferSize
	}
	if c.Workers <= 0 {
		c.Workers = def.Workers
	}
	return c
}
