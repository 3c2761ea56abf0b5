// Package output writes decompressed streams to disk as raw bytes or hex text.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteRaw appends data to the file at path, creating it if needed.
func WriteRaw(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return f.Close()
}

// WriteHex writes data to path as hex text, truncating any existing file.
func WriteHex(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := FormatHex(f, data); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return f.Close()
}

// FormatHex writes every byte as "0xNN " (lowercase) to w.
func FormatHex(w io.Writer, data []byte) error {
	const hexDigits = "0123456789abcdef"

	bw := bufio.NewWriter(w)
	cell := []byte("0x00 ")
	for _, b := range data {
		cell[2] = hexDigits[b>>4]
		cell[3] = hexDigits[b&0x0F]
		if _, err := bw.Write(cell); err != nil {
			return err
		}
	}

	return bw.Flush()
}
