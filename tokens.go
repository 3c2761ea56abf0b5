package ovba

import "fmt"

// decodeTokenSequence decodes one flag byte and up to FlagBits tokens that follow it.
// It stops early when compressedCurrent reaches compressedEnd.
func (d *decoder) decodeTokenSequence(compressedEnd int) error {
	flagByte, err := d.readByte(compressedEnd)
	if err != nil {
		return err
	}

	for bit := 0; bit < FlagBits && d.compressedCurrent < compressedEnd; bit++ {
		// Bit 0 is a literal token, bit 1 a copy token.
		if (flagByte>>bit)&1 == 0 {
			b, err := d.readByte(compressedEnd)
			if err != nil {
				return err
			}
			if err := d.appendByte(b); err != nil {
				return err
			}

			continue
		}

		if err := d.decodeCopyToken(compressedEnd); err != nil {
			return err
		}
	}

	return nil
}

// decodeCopyToken reads a copy token and appends the bytes it refers to.
func (d *decoder) decodeCopyToken(compressedEnd int) error {
	tokenPos := d.compressedCurrent
	token, err := d.readUint16(compressedEnd)
	if err != nil {
		return err
	}

	help, err := NewCopyTokenHelp(d.decompressedCurrent - d.decompressedChunkStart)
	if err != nil {
		return fmt.Errorf("copy token at %d: %w", tokenPos, err)
	}
	ct := help.Unpack(token)

	copySource := d.decompressedCurrent - ct.Offset
	if copySource < 0 || (d.opts.Strict && copySource < d.decompressedChunkStart) {
		return fmt.Errorf("%w: copy token at %d, offset %d from output position %d",
			ErrLookBehindUnderrun, tokenPos, ct.Offset, d.decompressedCurrent)
	}
	if err := d.reserve(ct.Length); err != nil {
		return err
	}

	// Source and destination may overlap (Offset < Length): copy one byte at a time
	// so each written byte is visible to the following reads.
	for i := 0; i < ct.Length; i++ {
		d.dst = append(d.dst, d.dst[copySource+i])
	}
	d.decompressedCurrent += ct.Length

	return nil
}
