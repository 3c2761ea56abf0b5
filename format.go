package ovba

// MS-OVBA compressed container constants.
const (
	SignatureByte         = 0x01  // First byte of every CompressedContainer.
	ChunkHeaderSize       = 2     // CompressedChunkHeader, little-endian.
	ChunkDecompressedSize = 4096  // Maximum decompressed bytes per chunk; raw chunk payload size.
	FlagBits              = 8     // Tokens per flag byte (bit 0 = literal, bit 1 = copy token).
	MinCopyLength         = 3     // Copy token length field is stored minus 3.
	MinBitCount           = 4     // Smallest offset field width of a copy token.
	MaxBitCount           = 12    // Largest offset field width of a copy token.
	ChunkSignature        = 0b011 // Expected value of header bits 12-14.
	RawChunkSizeField     = 4095  // Size field required for a raw chunk.
)
