package ovba

import "fmt"

// ChunkHeader is a CompressedChunkHeader: bits 0-11 hold size-3,
// bits 12-14 the chunk signature and bit 15 the compressed flag.
type ChunkHeader uint16

// Size returns the chunk length in bytes including the 2-byte header.
func (h ChunkHeader) Size() int {
	return int(h&0x0FFF) + 3
}

// IsCompressed reports whether the chunk holds token sequences (true) or 4096 raw bytes (false).
func (h ChunkHeader) IsCompressed() bool {
	return (h&0x8000)>>15 == 1
}

// Signature returns header bits 12-14.
func (h ChunkHeader) Signature() uint16 {
	return uint16(h&0x7000) >> 12
}

// validate applies the strict MS-OVBA header rules.
func (h ChunkHeader) validate() error {
	if h.Signature() != ChunkSignature {
		return fmt.Errorf("%w: signature bits 0b%03b, want 0b011", ErrInvalidChunkHeader, h.Signature())
	}
	if !h.IsCompressed() && h.Size()-3 != RawChunkSizeField {
		return fmt.Errorf("%w: raw chunk size field %d, want %d", ErrInvalidChunkHeader, h.Size()-3, RawChunkSizeField)
	}

	return nil
}

// readChunkHeader reads the little-endian header at pos.
func readChunkHeader(src []byte, pos int) (ChunkHeader, error) {
	if pos < 0 || pos+ChunkHeaderSize > len(src) {
		return 0, fmt.Errorf("%w: chunk header at %d, input length %d", ErrInputOverrun, pos, len(src))
	}

	return ChunkHeader(uint16(src[pos]) | uint16(src[pos+1])<<8), nil
}
