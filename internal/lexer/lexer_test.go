package lexer

import (
	"testing"

	"github.com/jgberry/ruff/internal/source"
	"github.com/jgberry/ruff/internal/token"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	sf := fs.Get(fs.Add("test.py", []byte(src), 0))
	toks, err := New(sf).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", src, err)
	}
	return toks
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func expectKinds(t *testing.T, src string, want []token.Kind) {
	t.Helper()
	got := kinds(tokenize(t, src))
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q) kinds = %v, want %v", src, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("Tokenize(%q) kind[%d] = %v, want %v", src, i, got[i], want[i])
		}
	}
}

func TestTokenizeSimpleAssign(t *testing.T) {
	expectKinds(t, "x = 1\n", []token.Kind{
		token.Ident, token.Assign, token.Number, token.Newline, token.EOF,
	})
}

func TestTokenizeDefHeader(t *testing.T) {
	expectKinds(t, "def f(a, b):\n    pass\n", []token.Kind{
		token.KwDef, token.Ident, token.LParen, token.Ident, token.Comma,
		token.Ident, token.RParen, token.Colon, token.Newline,
		token.Indent, token.KwPass, token.Newline, token.Dedent, token.EOF,
	})
}

func TestTokenizeNestedIndent(t *testing.T) {
	src := "def f():\n    with g():\n        pass\n"
	expectKinds(t, src, []token.Kind{
		token.KwDef, token.Ident, token.LParen, token.RParen, token.Colon, token.Newline,
		token.Indent, token.KwWith, token.Ident, token.LParen, token.RParen, token.Colon, token.Newline,
		token.Indent, token.KwPass, token.Newline,
		token.Dedent, token.Dedent, token.EOF,
	})
}

func TestTokenizeNewlineSuppressedInBrackets(t *testing.T) {
	expectKinds(t, "f(a,\n  b)\n", []token.Kind{
		token.Ident, token.LParen, token.Ident, token.Comma,
		token.Ident, token.RParen, token.Newline, token.EOF,
	})
}

func TestTokenizeBackslashContinuation(t *testing.T) {
	expectKinds(t, "x = 1 + \\\n    2\n", []token.Kind{
		token.Ident, token.Assign, token.Number, token.Plus, token.Number,
		token.Newline, token.EOF,
	})
}

func TestTokenizeBlankBeforeCounts(t *testing.T) {
	toks := tokenize(t, "x = 1\n\n\ny = 2\n")
	var yTok *token.Token
	for i := range toks {
		if toks[i].Kind == token.Ident && toks[i].Text == "y" {
			yTok = &toks[i]
		}
	}
	if yTok == nil {
		t.Fatal("token y not found")
	}
	if yTok.BlankBefore != 2 {
		t.Fatalf("BlankBefore = %d, want 2", yTok.BlankBefore)
	}
}

func TestTokenizeBlankRunCapped(t *testing.T) {
	toks := tokenize(t, "x = 1\n\n\n\n\n\ny = 2\n")
	for i := range toks {
		if toks[i].Kind == token.Ident && toks[i].Text == "y" {
			if toks[i].BlankBefore != 2 {
				t.Fatalf("BlankBefore = %d, want cap of 2", toks[i].BlankBefore)
			}
			return
		}
	}
	t.Fatal("token y not found")
}

func TestTokenizeComments(t *testing.T) {
	// A comment-only line carries no Newline token of its own; a
	// trailing comment precedes the statement's Newline.
	expectKinds(t, "# standalone\nx = 1  # trailing\n", []token.Kind{
		token.Comment,
		token.Ident, token.Assign, token.Number, token.Comment, token.Newline,
		token.EOF,
	})
}

func TestTokenizeStringForms(t *testing.T) {
	tests := []struct {
		src  string
		text string
	}{
		{`x = 'a'` + "\n", `'a'`},
		{`x = "a"` + "\n", `"a"`},
		{`x = r'\d+'` + "\n", `r'\d+'`},
		{`x = b'bytes'` + "\n", `b'bytes'`},
		{`x = '''multi
line'''` + "\n", "'''multi\nline'''"},
		{`x = 'esc\'aped'` + "\n", `'esc\'aped'`},
	}
	for _, tt := range tests {
		toks := tokenize(t, tt.src)
		var str *token.Token
		for i := range toks {
			if toks[i].Kind == token.String {
				str = &toks[i]
			}
		}
		if str == nil {
			t.Fatalf("no string token in %q", tt.src)
		}
		if str.Text != tt.text {
			t.Fatalf("string token = %q, want %q", str.Text, tt.text)
		}
	}
}

func TestTokenizeOperators(t *testing.T) {
	expectKinds(t, "x = a // b ** c != d\n", []token.Kind{
		token.Ident, token.Assign, token.Ident, token.DoubleSlash,
		token.Ident, token.DoubleStar, token.Ident, token.BangEq,
		token.Ident, token.Newline, token.EOF,
	})
}

func TestTokenizeArrow(t *testing.T) {
	expectKinds(t, "def f() -> int:\n    pass\n", []token.Kind{
		token.KwDef, token.Ident, token.LParen, token.RParen, token.Arrow,
		token.Ident, token.Colon, token.Newline,
		token.Indent, token.KwPass, token.Newline, token.Dedent, token.EOF,
	})
}

func TestTokenizeInconsistentIndentFails(t *testing.T) {
	fs := source.NewFileSet()
	sf := fs.Get(fs.Add("test.py", []byte("def f():\n    x = 1\n  y = 2\n"), 0))
	if _, err := New(sf).Tokenize(); err == nil {
		t.Fatal("Tokenize accepted inconsistent indentation")
	}
}

func TestTokenizeCommentOnlyLineKeepsIndentStack(t *testing.T) {
	// The comment at column zero must not close the suite.
	src := "def f():\n    x = 1\n# note\n    y = 2\n"
	toks := tokenize(t, src)
	dedents := 0
	for _, tok := range toks {
		if tok.Kind == token.Dedent {
			dedents++
		}
	}
	if dedents != 1 {
		t.Fatalf("dedent count = %d, want 1", dedents)
	}
}
