package cssdoc

import "unicode/utf8"

// lineStart records where one line begins, in both encodings. lines[0] is
// always {0, 0}; lines[i] for i>0 is the position immediately after the
// i-th line break.
type lineStart struct {
	utf8Offset  int32
	utf16Offset int32
}

// isLineBreak is the line-break set spec §4.8 and CSS Syntax Level 3 use: LF,
// VT, FF, CR, NEL, LS, PS. `\r\n` is handled specially by computeLines so it
// collapses to one line break rather than two.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\v', '\f', '\r', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

func utf16Len(r rune) int32 {
	if r > 0xFFFF {
		return 2
	}
	return 1
}

// computeLines builds the full line index for text in one pass (spec §4.8
// "on open: build line index in one pass").
//
// The Rust original (source.rs's Line::lines_from) computes the UTF-16
// offset of a `\r\n` break as utf16_offset (already including `\r`) plus
// `'\r'.len_utf16() + '\n'.len_utf16()`, double-counting `\r`'s own length —
// every line start after a CRLF break ends up one UTF-16 code unit too far
// right. This port tracks the offset *before* each rune is consumed instead
// of after, so a CRLF pair advances the UTF-16 offset by exactly 2 (one per
// code unit), matching "`\r\n` must collapse to a single line break".
func computeLines(text string) []lineStart {
	lines := []lineStart{{0, 0}}
	utf8Off, utf16Off := int32(0), int32(0)

	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		nextUTF8 := utf8Off + int32(size)
		nextUTF16 := utf16Off + utf16Len(r)

		if r == '\r' {
			if i+size < len(text) {
				if r2, size2 := utf8.DecodeRuneInString(text[i+size:]); r2 == '\n' {
					nextUTF8 += int32(size2)
					nextUTF16 += utf16Len(r2)
					lines = append(lines, lineStart{nextUTF8, nextUTF16})
					utf8Off, utf16Off = nextUTF8, nextUTF16
					i += size + size2
					continue
				}
			}
			lines = append(lines, lineStart{nextUTF8, nextUTF16})
		} else if isLineBreak(r) {
			lines = append(lines, lineStart{nextUTF8, nextUTF16})
		}

		utf8Off, utf16Off = nextUTF8, nextUTF16
		i += size
	}

	return lines
}

// linesFrom is computeLines, but for a suffix of a larger text that starts
// at byteOffset/utf16Offset — used to rebuild the line index's tail after an
// edit (spec §4.8 "rebuild the line index from the first edited line
// downward").
func linesFrom(byteOffset, utf16Offset int32, suffix string) []lineStart {
	tail := computeLines(suffix)
	out := make([]lineStart, 0, len(tail)-1)
	for _, l := range tail[1:] {
		out = append(out, lineStart{byteOffset + l.utf8Offset, utf16Offset + l.utf16Offset})
	}
	return out
}
