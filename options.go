package ovba

import "github.com/sirupsen/logrus"

// Options configures Decompress.
type Options struct {
	// Strict enables MS-OVBA header and back-reference checks that the plain algorithm skips:
	// chunk signature bits must be 0b011, a raw chunk's size field must be 4095,
	// copy tokens may not reach into a previous chunk and a chunk may not decode past 4096 bytes.
	Strict bool
	// MaxOutputSize limits the decompressed size (0 = no limit).
	MaxOutputSize int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
	// Logger receives one debug record per chunk. Nil disables logging.
	Logger logrus.FieldLogger
}

// DefaultOptions returns options for the plain algorithm: lenient headers, no limits, no logging.
func DefaultOptions() *Options {
	return &Options{}
}

// StrictOptions returns options with MS-OVBA header validation enabled.
func StrictOptions() *Options {
	return &Options{Strict: true}
}
