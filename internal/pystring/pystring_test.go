package pystring

import (
	"strconv"
	"strings"
	"testing"
)

func TestNormalizeQuotePreference(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single to double", `'abc'`, `"abc"`},
		{"double stays", `"abc"`, `"abc"`},
		{"empty", `''`, `""`},
		{"content double quote keeps single", `'say "hi"'`, `'say "hi"'`},
		{"single quote in content escapes", `'it\'s'`, `"it's"`},
		{"more doubles than singles keeps single", `'"a" "b" \''`, `'"a" "b" \''`},
		{"equal counts prefers double", `'\'a\' "b"'`, `"'a' \"b\""`},
		{"redundant single escape dropped", `"don\'t"`, `"don't"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in, Options{})
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeRawStrings(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"raw requotes when safe", `r'abc'`, `r"abc"`},
		{"raw keeps quote when target present", `r'say "hi"'`, `r'say "hi"'`},
		{"raw never rewrites escapes", `r'\x1f'`, `r"\x1f"`},
		{"uppercase prefix kept", `R'abc'`, `R"abc"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in, Options{})
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeTripleQuoted(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"triple single kept", `'''abc'''`, `'''abc'''`},
		{"triple double kept", `"""abc"""`, `"""abc"""`},
		{"triple escapes still normalized", `'''\x1f'''`, `'''\x1F'''`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in, Options{})
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeEscapeCasing(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"hex upper-cased", `"\x1f"`, `"\x1F"`},
		{"hex already upper", `"\x1F"`, `"\x1F"`},
		{"escaped backslash shields hex", `"\\x1b"`, `"\\x1b"`},
		{"unicode short untouched", `"龜"`, `"龜"`},
		{"unicode long untouched", `"\U0001f600"`, `"\U0001f600"`},
		{"named untouched", `"\N{ox}"`, `"\N{ox}"`},
		{"simple escapes verbatim", `"\n\t\0"`, `"\n\t\0"`},
		{"mixed", `"\x0a龜\x1b"`, `"\x0A龜\x1B"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in, Options{})
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeStrictPolicy(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"unicode short upper-cased", `"龜"`, `"龜"`},
		{"unicode long upper-cased", `"\U0001f600"`, `"\U0001F600"`},
		{"named upper-cased", `"\N{ox}"`, `"\N{OX}"`},
		{"hex still upper-cased", `"\x1f"`, `"\x1F"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in, Options{Policy: PolicyStrict})
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeBytesLiterals(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"hex upper-cased", `b'\x1f'`, `b"\x1F"`},
		{"unicode is not an escape", `b'ሴ'`, `b"ሴ"`},
		{"named is not an escape", `b'\N{ox}'`, `b"\N{ox}"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in, Options{})
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeInterpolatedLiterals(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no placeholders requotes", `f'hello'`, `f"hello"`},
		{"placeholders keep quote", `f'{x} and {y}'`, `f'{x} and {y}'`},
		{"quote in format spec untouched", `f'it\'s {x:"<5}'`, `f'it\'s {x:"<5}'`},
		{"literal text escapes normalized", `f"{x}\x1b"`, `f"{x}\x1B"`},
		{"placeholder escapes untouched", `f"{'\x1b'}"`, `f"{'\x1b'}"`},
		{"doubled braces keep quote", `f'a {{b}} c'`, `f'a {{b}} c'`},
		{"nested format spec", `f"{v:{w}}"`, `f"{v:{w}}"`},
		{"raw interpolated with placeholder", `rf'{x}\d'`, `rf'{x}\d'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in, Options{})
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeMalformedPassthrough(t *testing.T) {
	tests := []string{
		`"\x1"`,    // truncated hex escape
		`"\xzz"`,   // non-hex digits
		`"\u12"`,   // short unicode run
		`"\N{ox"`,  // unterminated name
		`"\Nox}"`,  // missing brace
		`not a literal`,
	}
	for _, in := range tests {
		if got := Normalize(in, Options{}); got != in {
			t.Fatalf("Normalize(%q) = %q, want passthrough", in, got)
		}
	}
}

func TestNormalizeSingleQuotePreferred(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"abc"`, `'abc'`},
		{`'abc'`, `'abc'`},
		{`"it's"`, `"it's"`},
	}
	for _, tt := range tests {
		got := Normalize(tt.in, Options{Preferred: QuoteSingle})
		if got != tt.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// decodeBody resolves the escapes normalization may touch, so that the
// value-preservation property can be asserted directly.
func decodeBody(t *testing.T, literal string) string {
	t.Helper()
	_, _, body, _, ok := splitLiteral(literal)
	if !ok {
		t.Fatalf("splitLiteral(%q) failed", literal)
	}
	var out strings.Builder
	for i := 0; i < len(body); i++ {
		if body[i] != '\\' {
			out.WriteByte(body[i])
			continue
		}
		if i+1 >= len(body) {
			t.Fatalf("dangling backslash in %q", literal)
		}
		switch next := body[i+1]; next {
		case 'x':
			v, err := strconv.ParseUint(body[i+2:i+4], 16, 8)
			if err != nil {
				t.Fatalf("bad hex escape in %q: %v", literal, err)
			}
			out.WriteByte(byte(v))
			i += 3
		case 'u':
			v, err := strconv.ParseUint(body[i+2:i+6], 16, 32)
			if err != nil {
				t.Fatalf("bad unicode escape in %q: %v", literal, err)
			}
			out.WriteRune(rune(v))
			i += 5
		case '\'', '"':
			out.WriteByte(next)
			i++
		case '\\':
			out.WriteByte('\\')
			i++
		default:
			out.WriteByte('\\')
			out.WriteByte(next)
			i++
		}
	}
	return out.String()
}

func TestNormalizePreservesValue(t *testing.T) {
	literals := []string{
		`'abc'`,
		`'it\'s'`,
		`"say \"hi\""`,
		`'say "hi"'`,
		`"\x1f\x0a"`,
		`"龜"`,
		`'mixed \x1b and \'quotes\''`,
		`"\\x1b"`,
	}
	for _, lit := range literals {
		got := Normalize(lit, Options{})
		if decodeBody(t, got) != decodeBody(t, lit) {
			t.Fatalf("Normalize(%q) = %q changed the decoded value", lit, got)
		}
	}
}
