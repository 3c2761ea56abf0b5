// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/ovba

package ovba

import "errors"

// Sentinel errors. Every decode error is fatal; match with errors.Is.
var (
	// ErrEmptyInput is returned when there is no signature byte to read.
	ErrEmptyInput = errors.New("input is empty")
	// ErrInvalidSignature is returned when the first byte is not SignatureByte.
	ErrInvalidSignature = errors.New("invalid compressed container signature")
	// ErrInputOverrun is returned when a header, token or raw chunk runs past the end of its input bound.
	ErrInputOverrun = errors.New("input overrun")
	// ErrLookBehindUnderrun is returned when a copy token points before the start of the output
	// (or, in strict mode, before the start of the current chunk).
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrCopyTokenAtChunkStart is returned when a copy token is the first token of a chunk.
	ErrCopyTokenAtChunkStart = errors.New("copy token before any decompressed byte in chunk")
	// ErrChunkOverflow is returned when a chunk decompresses past ChunkDecompressedSize.
	ErrChunkOverflow = errors.New("chunk decompressed size exceeds 4096 bytes")
	// ErrCopyTokenRange is returned by CopyTokenHelp.Pack for an offset or length the token cannot hold.
	ErrCopyTokenRange = errors.New("copy token offset or length out of range")
	// ErrInvalidChunkHeader is returned in strict mode for a header that breaks MS-OVBA rules.
	ErrInvalidChunkHeader = errors.New("invalid chunk header")
	// ErrOutputTooLarge is returned when output would exceed Options.MaxOutputSize.
	ErrOutputTooLarge = errors.New("output exceeds MaxOutputSize")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than Options.MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
	// ErrNilReader is returned when DecompressFromReader gets a nil reader.
	ErrNilReader = errors.New("reader is nil")
)
