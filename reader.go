package ovba

import "fmt"

// decoder carries the cursor state shared by the chunk and token decoders for one Decompress call.
// Invariant: decompressedCurrent == len(dst).
type decoder struct {
	src  []byte   // Compressed container; never written.
	dst  []byte   // Decompressed buffer, append-only.
	opts *Options // Never nil.

	compressedRecordEnd    int // len(src).
	compressedCurrent      int // Next input byte to read.
	compressedChunkStart   int // Input offset of the current chunk header.
	decompressedCurrent    int // Next output byte to write.
	decompressedChunkStart int // Output offset of the current chunk's first byte.

	chunkCount int
	chunks     []ChunkInfo // Filled only when track is set.
	track      bool
}

// newDecoder returns a decoder positioned just after the signature byte.
func newDecoder(src []byte, opts *Options) *decoder {
	if opts == nil {
		opts = DefaultOptions()
	}

	capHint := len(src)
	if opts.MaxOutputSize > 0 && opts.MaxOutputSize < capHint {
		capHint = opts.MaxOutputSize
	}

	return &decoder{
		src:                 src,
		dst:                 make([]byte, 0, capHint),
		opts:                opts,
		compressedRecordEnd: len(src),
		compressedCurrent:   1,
	}
}

// readByte reads one input byte that must lie before end.
func (d *decoder) readByte(end int) (byte, error) {
	if d.compressedCurrent >= end {
		return 0, fmt.Errorf("%w: byte at %d, bound %d", ErrInputOverrun, d.compressedCurrent, end)
	}

	b := d.src[d.compressedCurrent]
	d.compressedCurrent++

	return b, nil
}

// readUint16 reads a little-endian 16-bit value whose both bytes must lie before end.
func (d *decoder) readUint16(end int) (uint16, error) {
	if d.compressedCurrent+2 > end {
		return 0, fmt.Errorf("%w: 16-bit token at %d, bound %d", ErrInputOverrun, d.compressedCurrent, end)
	}

	v := uint16(d.src[d.compressedCurrent]) | uint16(d.src[d.compressedCurrent+1])<<8
	d.compressedCurrent += 2

	return v, nil
}

// reserve checks that n more output bytes fit the configured limits.
func (d *decoder) reserve(n int) error {
	if d.opts.MaxOutputSize > 0 && d.decompressedCurrent+n > d.opts.MaxOutputSize {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrOutputTooLarge, d.decompressedCurrent+n, d.opts.MaxOutputSize)
	}
	if d.opts.Strict && d.decompressedCurrent-d.decompressedChunkStart+n > ChunkDecompressedSize {
		return fmt.Errorf("%w: chunk at input offset %d", ErrChunkOverflow, d.compressedChunkStart)
	}

	return nil
}

// appendByte writes one output byte.
func (d *decoder) appendByte(b byte) error {
	if err := d.reserve(1); err != nil {
		return err
	}

	d.dst = append(d.dst, b)
	d.decompressedCurrent++

	return nil
}
