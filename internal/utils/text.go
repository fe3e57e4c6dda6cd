package utils

import (
	"strings"
	"unicode/utf8"
)

const newlineCharacters = "\n"

// SplitContentLines splits decoded file content into the lines rendered
// inside its code fence. Trailing newlines are trimmed first, so trailing
// blank lines never render; empty content still yields a single empty line.
func SplitContentLines(content string) []string {
	return strings.Split(strings.TrimRight(content, newlineCharacters), newlineCharacters)
}

// ContentLineCount returns the number of lines SplitContentLines produces.
func ContentLineCount(content string) int {
	return strings.Count(strings.TrimRight(content, newlineCharacters), newlineCharacters) + 1
}

// DecodeTextWithReplacement decodes raw bytes as UTF-8, substituting the
// Unicode replacement character for every byte that is not part of a valid
// sequence. Valid input is returned unchanged.
func DecodeTextWithReplacement(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	var decoded strings.Builder
	decoded.Grow(len(raw))
	for byteOffset := 0; byteOffset < len(raw); {
		decodedRune, runeSize := utf8.DecodeRune(raw[byteOffset:])
		if decodedRune == utf8.RuneError && runeSize == 1 {
			decoded.WriteRune(utf8.RuneError)
		} else {
			decoded.Write(raw[byteOffset : byteOffset+runeSize])
		}
		byteOffset += runeSize
	}
	return decoded.String()
}
