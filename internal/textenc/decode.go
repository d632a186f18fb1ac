// Package textenc decodes binary log content into text.
package textenc

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

var (
	// ErrUnknownEncoding is returned for encoding names that cannot be resolved
	ErrUnknownEncoding = errors.New("unknown encoding")
	// ErrInvalidContent is returned when content is not valid in the encoding
	ErrInvalidContent = errors.New("invalid byte sequence")
)

// Decode converts data to a string using the named encoding
func Decode(data []byte, name string) (string, error) {
	switch normalize(name) {
	case "utf8sig":
		data = bytes.TrimPrefix(data, utf8BOM)
		fallthrough
	case "utf8":
		if !utf8.Valid(data) {
			return "", fmt.Errorf("decode %s at byte %d: %w", name, invalidUTF8Offset(data), ErrInvalidContent)
		}
		return string(data), nil
	case "ascii", "usascii":
		for i, b := range data {
			if b >= utf8.RuneSelf {
				return "", fmt.Errorf("decode %s at byte %d: %w", name, i, ErrInvalidContent)
			}
		}
		return string(data), nil
	}

	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w: %v", name, ErrInvalidContent, err)
	}
	// x/text decoders substitute invalid input instead of failing
	if i := strings.IndexRune(string(out), utf8.RuneError); i >= 0 {
		return "", fmt.Errorf("decode %s: %w", name, ErrInvalidContent)
	}
	return string(out), nil
}

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// aliases maps normalized names that neither index knows
var aliases = map[string]encoding.Encoding{
	"latin1":  charmap.ISO8859_1,
	"l1":      charmap.ISO8859_1,
	"utf16":   unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf16le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf16be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
}

// Lookup resolves an IANA name, WHATWG label or common alias ("latin_1",
// "utf-16-le") to an encoding
func Lookup(name string) (encoding.Encoding, error) {
	if enc, ok := aliases[normalize(name)]; ok {
		return enc, nil
	}
	for _, candidate := range []string{name, strings.ReplaceAll(name, "_", "-")} {
		if enc := lookupIndex(candidate); enc != nil {
			return enc, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

func lookupIndex(name string) encoding.Encoding {
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc
	}
	if enc, err := htmlindex.Get(name); err == nil && enc != nil {
		return enc
	}
	return nil
}

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
}

func invalidUTF8Offset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(data)
}
