// Package codeunit converts encoded text into the fixed-width code unit
// buffers searched by package fastsearch.
package codeunit

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/segmentio/asm/ascii"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"github.com/mhr3/widesearch/utf8"
)

var (
	// ErrUnknownEncoding is returned for names that match no encoding and
	// for Encoding values outside the supported set.
	ErrUnknownEncoding = errors.New("codeunit: unknown encoding")
	// ErrOddLength is returned when raw input does not split into whole
	// code units.
	ErrOddLength = errors.New("codeunit: length is not a multiple of the unit width")
	// ErrInvalidASCII is returned for ASCII text containing bytes above 0x7f.
	ErrInvalidASCII = errors.New("codeunit: invalid ASCII")
	// ErrInvalidUTF8 is returned for malformed UTF-8 text.
	ErrInvalidUTF8 = errors.New("codeunit: invalid UTF-8")
	// ErrInvalidUTF32 is returned for UTF-32 units that are surrogates or
	// lie above U+10FFFF.
	ErrInvalidUTF32 = errors.New("codeunit: invalid UTF-32 code point")
)

// Encoding identifies a text encoding and with it the width of its code
// units.
type Encoding uint8

const (
	ASCII Encoding = iota
	UTF8
	Latin1
	Windows1252
	UTF16LE
	UTF16BE
	UTF32LE
	UTF32BE
)

type encodingInfo struct {
	name    string
	aliases []string
	width   int
	order   binary.ByteOrder
	text    encoding.Encoding
}

var encodings = [...]encodingInfo{
	ASCII:       {name: "ascii", aliases: []string{"us-ascii"}, width: 1},
	UTF8:        {name: "utf-8", aliases: []string{"utf8"}, width: 1},
	Latin1:      {name: "latin-1", aliases: []string{"latin1", "iso-8859-1", "iso8859-1"}, width: 1, text: charmap.ISO8859_1},
	Windows1252: {name: "windows-1252", aliases: []string{"cp1252"}, width: 1, text: charmap.Windows1252},
	UTF16LE:     {name: "utf-16le", aliases: []string{"utf16le", "utf-16", "ucs-2"}, width: 2, order: binary.LittleEndian, text: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)},
	UTF16BE:     {name: "utf-16be", aliases: []string{"utf16be"}, width: 2, order: binary.BigEndian, text: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)},
	UTF32LE:     {name: "utf-32le", aliases: []string{"utf32le", "utf-32", "ucs-4"}, width: 4, order: binary.LittleEndian, text: utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)},
	UTF32BE:     {name: "utf-32be", aliases: []string{"utf32be"}, width: 4, order: binary.BigEndian, text: utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)},
}

// Encodings lists every supported encoding.
func Encodings() []Encoding {
	out := make([]Encoding, len(encodings))
	for i := range out {
		out[i] = Encoding(i)
	}
	return out
}

// Lookup returns the encoding with the given name or alias. Matching is case
// insensitive and treats '_' like '-'.
func Lookup(name string) (Encoding, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, info := range encodings {
		if info.name == key {
			return Encoding(i), nil
		}
		for _, alias := range info.aliases {
			if alias == key {
				return Encoding(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

func (e Encoding) info() encodingInfo {
	if int(e) < len(encodings) {
		return encodings[e]
	}
	return encodingInfo{name: fmt.Sprintf("Encoding(%d)", uint8(e))}
}

// Name returns the canonical name of e.
func (e Encoding) Name() string { return e.info().name }

func (e Encoding) String() string { return e.Name() }

// Width returns the size of one code unit in bytes.
func (e Encoding) Width() int { return e.info().width }

// Encode converts the UTF-8 string s to e. Characters e cannot represent are
// an error.
func (e Encoding) Encode(s string) ([]byte, error) {
	info := e.info()
	switch {
	case info.width == 0:
		return nil, ErrUnknownEncoding
	case e == ASCII:
		if !ascii.ValidString(s) {
			return nil, ErrInvalidASCII
		}
		return []byte(s), nil
	case e == UTF8:
		if !utf8.ValidString(s) {
			return nil, ErrInvalidUTF8
		}
		return []byte(s), nil
	}
	out, err := info.text.NewEncoder().String(s)
	if err != nil {
		return nil, fmt.Errorf("codeunit: encode %s: %w", info.name, err)
	}
	return []byte(out), nil
}

// DecodeString converts raw text in e to a UTF-8 string. Units that cannot
// be decoded become U+FFFD.
func (e Encoding) DecodeString(raw []byte) (string, error) {
	info := e.info()
	if info.width == 0 {
		return "", ErrUnknownEncoding
	}
	if info.text == nil {
		return string(raw), nil
	}
	out, err := info.text.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("codeunit: decode %s: %w", info.name, err)
	}
	return string(out), nil
}
