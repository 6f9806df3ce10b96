package bom

import (
	"bytes"
	"io"

	"github.com/spf13/afero"
)

// Marker is the UTF-8 byte-order mark.
var Marker = []byte{0xEF, 0xBB, 0xBF}

// textProbeSize is how many leading bytes the binary heuristic inspects.
const textProbeSize = 1024

// HasBOM reports whether the file at path starts with the UTF-8 BOM.
// Files shorter than the marker, and any open or read failure, report false:
// this is a best-effort probe, not an assertion.
func HasBOM(fs afero.Fs, path string) bool {
	f, err := fs.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, len(Marker))
	if _, err := io.ReadFull(f, buf); err != nil {
		return false
	}
	return bytes.Equal(buf, Marker)
}

// IsText reports whether the file at path looks like text, meaning no zero
// byte occurs in its first 1024 bytes. This is a heuristic screen for obvious
// binary content, not an encoding check. Any open or read failure reports
// false so callers skip the file.
func IsText(fs afero.Fs, path string) bool {
	f, err := fs.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, textProbeSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false
	}
	return bytes.IndexByte(buf[:n], 0) < 0
}
