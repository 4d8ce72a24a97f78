// Package pystring canonicalizes string and bytes literal tokens.
//
// Normalization only changes the surface spelling of a literal (quote
// character, escape-sequence hex casing) and never the value the
// literal decodes to. Literals the scanner should have rejected are
// passed through untouched: a formatter must never refuse to emit
// output for syntactically-accepted source.
package pystring

import "strings"

// Quote is a literal quote character.
type Quote byte

const (
	// QuoteDouble is the preferred quote character.
	QuoteDouble Quote = '"'
	// QuoteSingle is kept when switching to double quotes would add escapes.
	QuoteSingle Quote = '\''
)

// Policy selects the escape-casing behavior.
type Policy uint8

const (
	// PolicyPreserve upper-cases \xNN hex digits but leaves \u/\U digit
	// casing and \N{...} identifiers exactly as written. This is a
	// deliberate compatibility divergence from stricter normalizers,
	// not an omission.
	PolicyPreserve Policy = iota
	// PolicyStrict additionally upper-cases \u/\U hex digits and
	// \N{...} identifiers.
	PolicyStrict
)

// Options configures normalization.
type Options struct {
	Preferred Quote
	Policy    Policy
}

func (o Options) withDefaults() Options {
	if o.Preferred == 0 {
		o.Preferred = QuoteDouble
	}
	return o
}

type prefixInfo struct {
	raw   bool
	bytes bool
	fstr  bool
}

// Normalize rewrites a complete literal token (prefix, quotes and body)
// into its canonical spelling. Tokens that do not scan as a literal are
// returned unchanged.
func Normalize(literal string, opts Options) string {
	opts = opts.withDefaults()

	prefix, quote, body, triple, ok := splitLiteral(literal)
	if !ok {
		return literal
	}
	info := parsePrefix(prefix)

	if !info.raw {
		var normalized string
		var escOK bool
		if info.fstr {
			normalized, escOK = normalizeInterpolated(body, opts.Policy)
		} else {
			normalized, escOK = normalizeEscapes(body, info.bytes, opts.Policy)
		}
		if !escOK {
			return literal
		}
		body = normalized
	}

	// Triple-quoted bodies keep their quotes: embedded quote runs make
	// re-quoting unsafe without value-level analysis. Interpolated
	// bodies with braces keep theirs too: placeholder text is code, and
	// rewriting a quote or inserting a backslash there changes the
	// program.
	if !triple && !(info.fstr && strings.ContainsAny(body, "{}")) {
		quote, body = preferQuote(body, quote, opts.Preferred, info.raw)
	}

	q := string(rune(quote))
	if triple {
		q = strings.Repeat(q, 3)
	}
	return prefix + q + body + q
}

// splitLiteral separates a token into prefix, quote character, body and
// whether the literal is triple-quoted.
func splitLiteral(literal string) (prefix string, quote Quote, body string, triple, ok bool) {
	i := 0
	for i < len(literal) && isPrefixLetter(literal[i]) {
		i++
	}
	prefix = literal[:i]
	rest := literal[i:]
	if len(rest) < 2 {
		return "", 0, "", false, false
	}
	q := rest[0]
	if q != '"' && q != '\'' {
		return "", 0, "", false, false
	}
	if len(rest) >= 6 && rest[1] == q && rest[2] == q {
		if !strings.HasSuffix(rest[3:], strings.Repeat(string(q), 3)) {
			return "", 0, "", false, false
		}
		return prefix, Quote(q), rest[3 : len(rest)-3], true, true
	}
	if rest[len(rest)-1] != q || len(rest) < 2 {
		return "", 0, "", false, false
	}
	return prefix, Quote(q), rest[1 : len(rest)-1], false, true
}

func parsePrefix(prefix string) prefixInfo {
	var info prefixInfo
	for i := 0; i < len(prefix); i++ {
		switch prefix[i] {
		case 'r', 'R':
			info.raw = true
		case 'b', 'B':
			info.bytes = true
		case 'f', 'F':
			info.fstr = true
		}
	}
	return info
}

func isPrefixLetter(b byte) bool {
	switch b {
	case 'r', 'R', 'b', 'B', 'u', 'U', 'f', 'F':
		return true
	}
	return false
}

// preferQuote picks the canonical quote character for a single-quoted
// (non-triple) body and rewrites quote escapes accordingly.
//
// Double quote wins unless the content holds more double quotes than
// single quotes, in which case single quote minimizes escaping. Raw
// bodies cannot re-escape, so they only switch when the target quote
// does not occur at all.
func preferQuote(body string, current, preferred Quote, raw bool) (Quote, string) {
	if current == preferred {
		if !raw {
			body = dropRedundantQuoteEscape(body, other(preferred))
		}
		return current, body
	}

	if raw {
		if strings.ContainsRune(body, rune(preferred)) {
			return current, body
		}
		return preferred, body
	}

	rewritten, newEscapes, oldEscapes := requote(body, current, preferred)
	if newEscapes > oldEscapes {
		return current, body
	}
	return preferred, rewritten
}

// requote unescapes the old quote and escapes the new one, counting both
// so the caller can keep the original spelling when switching would add
// escapes.
func requote(body string, oldQ, newQ Quote) (string, int, int) {
	var out strings.Builder
	out.Grow(len(body))
	newEscapes, oldEscapes := 0, 0

	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' && i+1 < len(body) {
			next := body[i+1]
			if next == byte(oldQ) {
				out.WriteByte(byte(oldQ))
				oldEscapes++
				i++
				continue
			}
			out.WriteByte(c)
			out.WriteByte(next)
			i++
			continue
		}
		if c == byte(newQ) {
			out.WriteByte('\\')
			out.WriteByte(c)
			newEscapes++
			continue
		}
		out.WriteByte(c)
	}
	return out.String(), newEscapes, oldEscapes
}

// dropRedundantQuoteEscape removes backslashes before a quote character
// that needs no escaping under the current quoting.
func dropRedundantQuoteEscape(body string, q Quote) string {
	if !strings.Contains(body, `\`+string(rune(q))) {
		return body
	}
	var out strings.Builder
	out.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' && i+1 < len(body) {
			next := body[i+1]
			if next == byte(q) {
				out.WriteByte(next)
				i++
				continue
			}
			out.WriteByte(c)
			out.WriteByte(next)
			i++
			continue
		}
		out.WriteByte(c)
	}
	return out.String()
}

func other(q Quote) Quote {
	if q == QuoteDouble {
		return QuoteSingle
	}
	return QuoteDouble
}
