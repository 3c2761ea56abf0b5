package ovba

import (
	"errors"
	"testing"
)

func TestChunkHeader_Fields(t *testing.T) {
	tests := []struct {
		header     ChunkHeader
		size       int
		compressed bool
		signature  uint16
	}{
		{header: 0xB02F, size: 50, compressed: true, signature: 3},
		{header: 0x3FFF, size: 4098, compressed: false, signature: 3},
		{header: 0xBFFF, size: 4098, compressed: true, signature: 3},
		{header: 0x0000, size: 3, compressed: false, signature: 0},
		{header: 0x8001, size: 4, compressed: true, signature: 0},
	}
	for _, tt := range tests {
		if got := tt.header.Size(); got != tt.size {
			t.Errorf("0x%04x Size() = %d, want %d", uint16(tt.header), got, tt.size)
		}
		if got := tt.header.IsCompressed(); got != tt.compressed {
			t.Errorf("0x%04x IsCompressed() = %v, want %v", uint16(tt.header), got, tt.compressed)
		}
		if got := tt.header.Signature(); got != tt.signature {
			t.Errorf("0x%04x Signature() = %d, want %d", uint16(tt.header), got, tt.signature)
		}
	}
}

func TestChunkHeader_Validate(t *testing.T) {
	for _, h := range []ChunkHeader{0xB000, 0xBFFF, 0x3FFF} {
		if err := h.validate(); err != nil {
			t.Errorf("0x%04x: unexpected error %v", uint16(h), err)
		}
	}
	for _, h := range []ChunkHeader{0x8001, 0xF001, 0x3000, 0x0FFF} {
		if err := h.validate(); !errors.Is(err, ErrInvalidChunkHeader) {
			t.Errorf("0x%04x: want ErrInvalidChunkHeader, got %v", uint16(h), err)
		}
	}
}

func TestReadChunkHeader(t *testing.T) {
	h, err := readChunkHeader([]byte{0x01, 0x19, 0xB0}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if h != 0xB019 {
		t.Fatalf("got 0x%04x, want 0xb019", uint16(h))
	}

	if _, err := readChunkHeader([]byte{0x01, 0x19}, 1); !errors.Is(err, ErrInputOverrun) {
		t.Fatalf("want ErrInputOverrun, got %v", err)
	}
}
