package pystring

import "strings"

// normalizeEscapes rewrites escape-sequence hex digits to their
// canonical casing. The scan consumes backslash pairs explicitly, which
// is what keeps parity straight: in `\\x1B` the double backslash is one
// escaped backslash, so the following "x1B" is ordinary text and must
// not be touched.
//
// Returns ok=false when the body contains an escape the upstream scanner
// should have rejected; the caller then passes the literal through
// unchanged.
func normalizeEscapes(body string, isBytes bool, policy Policy) (string, bool) {
	if !strings.ContainsRune(body, '\\') {
		return body, true
	}

	var out strings.Builder
	out.Grow(len(body))

	i := 0
	for i < len(body) {
		c := body[i]
		if c != '\\' {
			out.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(body) {
			// Dangling backslash cannot appear in a scanned literal.
			return "", false
		}

		next := body[i+1]
		switch next {
		case 'x':
			if i+4 > len(body) || !isHex(body[i+2]) || !isHex(body[i+3]) {
				return "", false
			}
			out.WriteString(`\x`)
			out.WriteString(strings.ToUpper(body[i+2 : i+4]))
			i += 4

		case 'u':
			if isBytes {
				// Not an escape in bytes literals; backslash stays literal.
				out.WriteString(`\u`)
				i += 2
				continue
			}
			if !hexRun(body, i+2, 4) {
				return "", false
			}
			out.WriteString(`\u`)
			out.WriteString(caseHex(body[i+2:i+6], policy))
			i += 6

		case 'U':
			if isBytes {
				out.WriteString(`\U`)
				i += 2
				continue
			}
			if !hexRun(body, i+2, 8) {
				return "", false
			}
			out.WriteString(`\U`)
			out.WriteString(caseHex(body[i+2:i+10], policy))
			i += 10

		case 'N':
			if isBytes {
				out.WriteString(`\N`)
				i += 2
				continue
			}
			end := namedEscapeEnd(body, i)
			if end < 0 {
				return "", false
			}
			name := body[i+3 : end]
			if policy == PolicyStrict {
				name = strings.ToUpper(name)
			}
			out.WriteString(`\N{`)
			out.WriteString(name)
			out.WriteByte('}')
			i = end + 1

		default:
			// Everything else, including `\\`, simple escapes and octal
			// digits, is copied verbatim as a two-byte unit.
			out.WriteByte('\\')
			out.WriteByte(next)
			i += 2
		}
	}
	return out.String(), true
}

// normalizeInterpolated applies escape normalization to the literal
// text of an interpolated (f-prefixed) body while copying placeholder
// regions byte for byte. Doubled braces are literal text. A body whose
// placeholders cannot be delimited reports ok=false and the caller
// passes the whole literal through.
func normalizeInterpolated(body string, policy Policy) (string, bool) {
	var out strings.Builder
	out.Grow(len(body))

	i := 0
	for i < len(body) {
		switch {
		case body[i] == '{' && i+1 < len(body) && body[i+1] == '{':
			out.WriteString("{{")
			i += 2

		case body[i] == '}' && i+1 < len(body) && body[i+1] == '}':
			out.WriteString("}}")
			i += 2

		case body[i] == '{':
			end := placeholderEnd(body, i)
			if end < 0 {
				return "", false
			}
			out.WriteString(body[i : end+1])
			i = end + 1

		default:
			j := i
			for j < len(body) && body[j] != '{' && body[j] != '}' {
				if body[j] == '\\' {
					j += 2
					continue
				}
				j++
			}
			j = min(j, len(body))
			if j == i {
				// Stray closing brace, kept as written.
				out.WriteByte(body[i])
				i++
				continue
			}
			seg, ok := normalizeEscapes(body[i:j], false, policy)
			if !ok {
				return "", false
			}
			out.WriteString(seg)
			i = j
		}
	}
	return out.String(), true
}

// placeholderEnd returns the index of the brace closing the placeholder
// opened at open, or -1 when no unambiguous close exists. Nested braces
// (format-spec replacement fields, dict displays) and quoted strings
// inside the expression are tracked.
func placeholderEnd(body string, open int) int {
	depth := 0
	var quote byte
	for i := open; i < len(body); i++ {
		c := body[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// caseHex applies the configured policy to \u/\U hex digits.
func caseHex(digits string, policy Policy) string {
	if policy == PolicyStrict {
		return strings.ToUpper(digits)
	}
	return digits
}

func hexRun(s string, start, n int) bool {
	if start+n > len(s) {
		return false
	}
	for i := start; i < start+n; i++ {
		if !isHex(s[i]) {
			return false
		}
	}
	return true
}

// namedEscapeEnd returns the index of the closing brace of a \N{...}
// escape starting at the backslash, or -1 when malformed.
func namedEscapeEnd(s string, backslash int) int {
	if backslash+2 >= len(s) || s[backslash+2] != '{' {
		return -1
	}
	end := strings.IndexByte(s[backslash+3:], '}')
	if end < 0 {
		return -1
	}
	return backslash + 3 + end
}

func isHex(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'f':
		return true
	case b >= 'A' && b <= 'F':
		return true
	}
	return false
}
