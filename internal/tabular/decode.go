// Package tabular reads and writes the CSV sheets used to bulk load and
// export catalog and wishlist records.
package tabular

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffSize = 4096

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// charsets maps chardet names to decoders for the encodings spreadsheet
// tools commonly save CSV in.
var charsets = map[string]encoding.Encoding{
	"UTF-16LE":     unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"UTF-16BE":     unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"ISO-8859-1":   charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"ISO-8859-15":  charmap.ISO8859_15,
}

// utf8Reader returns r decoded to UTF-8 with any byte order mark removed.
// Files that are not valid UTF-8 and have no BOM are classified by chardet,
// falling back to Windows-1252.
func utf8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReaderSize(r, sniffSize)

	head, err := br.Peek(sniffSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("peek: %w", err)
	}

	enc, skip := detect(head)
	if skip > 0 {
		if _, err := br.Discard(skip); err != nil {
			return nil, fmt.Errorf("discard bom: %w", err)
		}
	}

	if enc == nil {
		return br, nil
	}

	return transform.NewReader(br, enc.NewDecoder()), nil
}

// detect returns the decoder for head, nil meaning UTF-8, and how many BOM
// bytes to drop.
func detect(head []byte) (encoding.Encoding, int) {
	switch {
	case bytes.HasPrefix(head, bomUTF8):
		return nil, len(bomUTF8)
	case bytes.HasPrefix(head, []byte{0xFF, 0xFE}):
		return charsets["UTF-16LE"], 2
	case bytes.HasPrefix(head, []byte{0xFE, 0xFF}):
		return charsets["UTF-16BE"], 2
	}

	if utf8.Valid(trimPartialRune(head)) {
		return nil, 0
	}

	if res, err := chardet.NewTextDetector().DetectBest(head); err == nil {
		if enc, ok := charsets[res.Charset]; ok {
			return enc, 0
		}
	}

	return charmap.Windows1252, 0
}

// trimPartialRune drops an incomplete multi-byte sequence cut off by the
// peek window.
func trimPartialRune(b []byte) []byte {
	for i := 1; i <= utf8.UTFMax && i <= len(b); i++ {
		if utf8.RuneStart(b[len(b)-i]) {
			if !utf8.FullRune(b[len(b)-i:]) {
				return b[:len(b)-i]
			}

			break
		}
	}

	return b
}
