// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package clean

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/adrg/frontmatter"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// ErrInvalidUTF8 is returned for utf-8 input that does not decode.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

var utf8BOM = []byte("\xef\xbb\xbf")

// legacy maps supported single-byte encodings to their decoders. Greek
// scans are frequently delivered as ISO-8859-7 or Windows-1253.
var legacy = map[string]encoding.Encoding{
	"iso-8859-7":   charmap.ISO8859_7,
	"windows-1253": charmap.Windows1253,
	"windows-1252": charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
}

func normalizeEncoding(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "", "utf8":
		return "utf-8"
	case "cp1253":
		return "windows-1253"
	case "cp1252":
		return "windows-1252"
	case "latin1":
		return "iso-8859-1"
	}
	return n
}

// CheckEncoding reports whether name is a supported input encoding.
func CheckEncoding(name string) error {
	n := normalizeEncoding(name)
	if n == "utf-8" {
		return nil
	}
	if _, ok := legacy[n]; ok {
		return nil
	}
	return fmt.Errorf("unsupported input encoding %q (supported: %s)", name, strings.Join(Encodings(), ", "))
}

// Encodings lists the supported input encodings.
func Encodings() []string {
	out := []string{"utf-8"}
	for n := range legacy {
		out = append(out, n)
	}
	sort.Strings(out[1:])
	return out
}

// decode converts raw file bytes to UTF-8 text. A leading UTF-8 byte order
// mark is dropped.
func decode(raw []byte, name string) (string, error) {
	n := normalizeEncoding(name)
	if n == "utf-8" {
		raw = bytes.TrimPrefix(raw, utf8BOM)
		if !utf8.Valid(raw) {
			return "", ErrInvalidUTF8
		}
		return string(raw), nil
	}
	enc, ok := legacy[n]
	if !ok {
		return "", CheckEncoding(name)
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", n, err)
	}
	return string(out), nil
}

var yamlFrontmatter = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// splitFrontmatter separates a leading YAML frontmatter block from the
// body. Text without a parseable block is returned whole as the body.
func splitFrontmatter(text string) (prefix, body string) {
	if !strings.HasPrefix(text, "---") {
		return "", text
	}
	var meta map[string]any
	rest, err := frontmatter.Parse(strings.NewReader(text), &meta, yamlFrontmatter)
	if err != nil || len(rest) == len(text) || !strings.HasSuffix(text, string(rest)) {
		return "", text
	}
	cut := len(text) - len(rest)
	return text[:cut], text[cut:]
}
