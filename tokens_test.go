package ovba

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// newTestDecoder fabricates cursor state: src is the input, dst the output decoded so far,
// chunkStart the output offset where the current chunk began.
func newTestDecoder(src, dst []byte, chunkStart int) *decoder {
	return &decoder{
		src:                    src,
		dst:                    append([]byte{}, dst...),
		opts:                   DefaultOptions(),
		compressedRecordEnd:    len(src),
		decompressedCurrent:    len(dst),
		decompressedChunkStart: chunkStart,
	}
}

func TestDecodeCopyToken_SelfOverlap(t *testing.T) {
	help, err := NewCopyTokenHelp(3)
	if err != nil {
		t.Fatal(err)
	}
	token, err := help.Pack(CopyToken{Offset: 1, Length: 5})
	if err != nil {
		t.Fatal(err)
	}

	d := newTestDecoder([]byte{byte(token), byte(token >> 8)}, []byte("abX"), 0)
	if err := d.decodeCopyToken(len(d.src)); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]byte("abXXXXXX"), d.dst); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	if d.compressedCurrent != 2 || d.decompressedCurrent != 8 {
		t.Errorf("cursors: compressed=%d decompressed=%d", d.compressedCurrent, d.decompressedCurrent)
	}
}

func TestDecodeCopyToken_ChunkRelativeBitCount(t *testing.T) {
	// 20 bytes of output, 17 of them in the current chunk: BitCount 5, so 0x3801 is offset 8 length 4.
	prefix := []byte("0123456789ABCDEFGHIJ")
	d := newTestDecoder([]byte{0x01, 0x38}, prefix, 3)
	if err := d.decodeCopyToken(2); err != nil {
		t.Fatal(err)
	}

	if got := string(d.dst[len(prefix):]); got != "CDEF" {
		t.Fatalf("copied %q, want %q", got, "CDEF")
	}
}

func TestDecodeTokenSequence_StopsAtBound(t *testing.T) {
	d := newTestDecoder([]byte{0x00, 'a', 'b', 'c'}, nil, 0)
	if err := d.decodeTokenSequence(2); err != nil {
		t.Fatal(err)
	}

	if string(d.dst) != "a" || d.compressedCurrent != 2 {
		t.Fatalf("dst=%q compressedCurrent=%d", d.dst, d.compressedCurrent)
	}
}

func TestDecodeTokenSequence_EightTokens(t *testing.T) {
	src := []byte{0x00, '1', '2', '3', '4', '5', '6', '7', '8', '9'}
	d := newTestDecoder(src, nil, 0)
	if err := d.decodeTokenSequence(len(src)); err != nil {
		t.Fatal(err)
	}

	// The ninth byte belongs to the next group.
	if string(d.dst) != "12345678" || d.compressedCurrent != 9 {
		t.Fatalf("dst=%q compressedCurrent=%d", d.dst, d.compressedCurrent)
	}
}

func TestDecodeTokenSequence_FlagPastBound(t *testing.T) {
	d := newTestDecoder([]byte{0x00}, nil, 0)
	if err := d.decodeTokenSequence(0); !errors.Is(err, ErrInputOverrun) {
		t.Fatalf("want ErrInputOverrun, got %v", err)
	}
}
