/*
Package ovba implements decompression of MS-OVBA compressed containers,
the format used for VBA project streams inside compound document files.

Format: a signature byte 0x01 followed by chunks. Each chunk starts with a
16-bit little-endian header: bits 0-11 = chunk size minus 3 (header included),
bits 12-14 = 0b011, bit 15 = compressed flag.
A raw chunk (flag 0) carries 4096 bytes verbatim.
A compressed chunk holds token sequences: one flag byte per 8 tokens,
bit 0 = literal (1 byte), bit 1 = copy token (2 bytes).
Copy token: 16-bit little-endian, high BitCount bits = offset-1, low bits = length-3.
BitCount is not stored; it is max(4, ceil(log2(n))) where n is the number of
bytes already decompressed in the current chunk, so it grows from 4 to 12 as the chunk fills.

Use Decompress(src, opts) with nil for default (lenient headers, no limits).
Use DecompressChunks(src, opts) to also get per-chunk offsets and sizes.
Use DecompressFromReader(r, opts) to read a whole stream first, bounded by Options.MaxInputSize.
Use StrictOptions() to reject headers and back-references that break MS-OVBA rules.

# Examples

Decompress with default options:

	out, err := ovba.Decompress(stream, nil)
	if err != nil {
		return err
	}

Decompress strictly with an output limit and chunk tracing:

	opts := ovba.StrictOptions()
	opts.MaxOutputSize = 16 << 20
	opts.Logger = logrus.StandardLogger()
	out, err := ovba.Decompress(stream, opts)

List chunk layout:

	chunks, out, err := ovba.DecompressChunks(stream, nil)
	if err != nil {
		return err
	}
	for _, c := range chunks {
		fmt.Println(c.CompressedStart, c.CompressedSize, c.DecompressedSize)
	}

Inspect a copy token:

	help, _ := ovba.NewCopyTokenHelp(17) // 17 bytes decompressed in chunk: BitCount 5
	ct := help.Unpack(0x3801)            // Offset 8, Length 4
*/
package ovba
