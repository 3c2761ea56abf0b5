package ovba

import (
	"fmt"
	"io"
	"math"
)

// Decompress decodes an MS-OVBA CompressedContainer: a signature byte followed by chunks.
// Options nil means DefaultOptions. On error no output is returned.
func Decompress(src []byte, opts *Options) ([]byte, error) {
	d, err := run(src, opts, false)
	if err != nil {
		return nil, err
	}

	return d.dst, nil
}

// DecompressChunks is Decompress that also reports the layout of every decoded chunk.
func DecompressChunks(src []byte, opts *Options) ([]ChunkInfo, []byte, error) {
	d, err := run(src, opts, true)
	if err != nil {
		return nil, nil, err
	}

	return d.chunks, d.dst, nil
}

// DecompressFromReader reads the full stream then calls Decompress. No decoding logic of its own.
// If opts.MaxInputSize > 0 and more bytes are available, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	src, err := ReadContainer(r, opts.MaxInputSize)
	if err != nil {
		return nil, err
	}

	return Decompress(src, opts)
}

// ReadContainer reads r to EOF. With maxInputSize > 0 it stops after maxInputSize+1 bytes
// and returns ErrInputTooLarge if the stream is longer than the limit.
func ReadContainer(r io.Reader, maxInputSize int) ([]byte, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	if maxInputSize > 0 {
		// One extra byte tells "exactly at the limit" from "over it".
		limit := int64(maxInputSize)
		if limit < math.MaxInt64 {
			limit++
		}
		r = io.LimitReader(r, limit)
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if maxInputSize > 0 && len(src) > maxInputSize {
		return nil, fmt.Errorf("%w: limit %d", ErrInputTooLarge, maxInputSize)
	}

	return src, nil
}

// run checks the signature and decodes chunks until the input is exhausted.
func run(src []byte, opts *Options, track bool) (*decoder, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}
	if src[0] != SignatureByte {
		return nil, fmt.Errorf("%w: got 0x%02x", ErrInvalidSignature, src[0])
	}

	d := newDecoder(src, opts)
	d.track = track
	for d.compressedCurrent < d.compressedRecordEnd {
		d.compressedChunkStart = d.compressedCurrent
		if err := d.decodeChunk(); err != nil {
			return nil, err
		}
	}

	return d, nil
}
