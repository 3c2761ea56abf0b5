package ovba

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ChunkInfo describes one decoded chunk.
type ChunkInfo struct {
	CompressedStart   int  // Input offset of the chunk header.
	CompressedSize    int  // Input bytes consumed, header included.
	DecompressedStart int  // Output offset of the chunk's first byte.
	DecompressedSize  int  // Output bytes produced.
	Compressed        bool // Header compressed flag.
}

// decodeChunk decodes the chunk at compressedChunkStart and leaves compressedCurrent at the next chunk.
func (d *decoder) decodeChunk() error {
	header, err := readChunkHeader(d.src, d.compressedChunkStart)
	if err != nil {
		return err
	}
	if d.opts.Strict {
		if err := header.validate(); err != nil {
			return fmt.Errorf("chunk at %d: %w", d.compressedChunkStart, err)
		}
	}

	d.decompressedChunkStart = d.decompressedCurrent
	// A header may claim more bytes than remain in the record.
	compressedEnd := min(d.compressedRecordEnd, d.compressedChunkStart+header.Size())
	d.compressedCurrent = d.compressedChunkStart + ChunkHeaderSize

	if header.IsCompressed() {
		for d.compressedCurrent < compressedEnd {
			if err := d.decodeTokenSequence(compressedEnd); err != nil {
				return err
			}
		}
	} else if err := d.decodeRawChunk(); err != nil {
		return err
	}

	info := ChunkInfo{
		CompressedStart:   d.compressedChunkStart,
		CompressedSize:    d.compressedCurrent - d.compressedChunkStart,
		DecompressedStart: d.decompressedChunkStart,
		DecompressedSize:  d.decompressedCurrent - d.decompressedChunkStart,
		Compressed:        header.IsCompressed(),
	}
	d.chunkCount++
	if d.track {
		d.chunks = append(d.chunks, info)
	}
	if d.opts.Logger != nil {
		d.opts.Logger.WithFields(logrus.Fields{
			"chunk":      d.chunkCount,
			"compressed": info.Compressed,
			"offset":     info.CompressedStart,
			"size":       info.CompressedSize,
			"out":        info.DecompressedSize,
		}).Debug("decoded chunk")
	}

	return nil
}

// decodeRawChunk copies ChunkDecompressedSize bytes verbatim; the header size field is not consulted.
func (d *decoder) decodeRawChunk() error {
	if d.compressedCurrent+ChunkDecompressedSize > d.compressedRecordEnd {
		return fmt.Errorf("%w: raw chunk at %d needs %d bytes, %d remain", ErrInputOverrun,
			d.compressedChunkStart, ChunkDecompressedSize, d.compressedRecordEnd-d.compressedCurrent)
	}
	if err := d.reserve(ChunkDecompressedSize); err != nil {
		return err
	}

	d.dst = append(d.dst, d.src[d.compressedCurrent:d.compressedCurrent+ChunkDecompressedSize]...)
	d.compressedCurrent += ChunkDecompressedSize
	d.decompressedCurrent += ChunkDecompressedSize

	return nil
}
