package ovba

import (
	"fmt"
	"math/bits"
)

// CopyToken is an unpacked back-reference: Offset is the 1-based distance back from
// the current output position, Length the number of bytes to copy.
type CopyToken struct {
	Offset int
	Length int
}

// CopyTokenHelp holds the bit split of a copy token for one decompressed position.
// The split is not stored in the stream; it follows from how many bytes of the
// current chunk have been decompressed so far.
type CopyTokenHelp struct {
	BitCount      uint16 // Width of the offset field (high bits), 4..12.
	LengthMask    uint16 // Mask of the length field (low bits).
	OffsetMask    uint16 // Mask of the offset field.
	MaximumLength uint16 // Largest length the token can encode.
}

// NewCopyTokenHelp computes the bit split for difference decompressed bytes into the chunk.
// BitCount is max(4, ceil(log2(difference))).
func NewCopyTokenHelp(difference int) (CopyTokenHelp, error) {
	if difference < 1 {
		return CopyTokenHelp{}, ErrCopyTokenAtChunkStart
	}
	if difference > ChunkDecompressedSize {
		return CopyTokenHelp{}, fmt.Errorf("%w: %d bytes decompressed in chunk", ErrChunkOverflow, difference)
	}

	bitCount := uint16(bits.Len(uint(difference - 1)))
	if bitCount < MinBitCount {
		bitCount = MinBitCount
	}
	lengthMask := uint16(0xFFFF) >> bitCount

	return CopyTokenHelp{
		BitCount:      bitCount,
		LengthMask:    lengthMask,
		OffsetMask:    ^lengthMask,
		MaximumLength: lengthMask + 3,
	}, nil
}

// Unpack splits token into offset and length.
func (h CopyTokenHelp) Unpack(token uint16) CopyToken {
	return CopyToken{
		Offset: int((token&h.OffsetMask)>>(16-h.BitCount)) + 1,
		Length: int(token&h.LengthMask) + MinCopyLength,
	}
}

// Pack is the inverse of Unpack.
func (h CopyTokenHelp) Pack(ct CopyToken) (uint16, error) {
	if ct.Offset < 1 || ct.Offset > 1<<h.BitCount {
		return 0, fmt.Errorf("%w: offset %d with %d offset bits", ErrCopyTokenRange, ct.Offset, h.BitCount)
	}
	if ct.Length < MinCopyLength || ct.Length > int(h.MaximumLength) {
		return 0, fmt.Errorf("%w: length %d, maximum %d", ErrCopyTokenRange, ct.Length, h.MaximumLength)
	}

	// #nosec G115 -- offset and length are range checked above
	return uint16(ct.Offset-1)<<(16-h.BitCount) | uint16(ct.Length-MinCopyLength), nil
}
