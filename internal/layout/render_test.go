package layout

import (
	"strings"
	"testing"

	"github.com/jgberry/ruff/internal/doc"
)

// callDoc builds the canonical bracketed-call shape the formatter emits:
// a group whose elements indent one level when broken and gain a
// trailing comma.
func callDoc(name string, args ...string) *doc.Doc {
	elems := make([]*doc.Doc, 0, 2*len(args))
	for i, a := range args {
		if i > 0 {
			elems = append(elems, doc.Text(","), doc.Space())
		}
		elems = append(elems, doc.Text(a))
	}
	return doc.Group(
		doc.Text(name+"("),
		doc.Indent(doc.SoftLine(), doc.Seq(elems...), doc.IfBreak(doc.Text(","), nil)),
		doc.SoftLine(),
		doc.Text(")"),
	)
}

func TestRenderPlainText(t *testing.T) {
	got := Render(doc.Seq(doc.Text("a"), doc.Space(), doc.Text("b")), Options{MaxWidth: 20})
	// The root is broken, so the space renders as a line break.
	want := "a\nb"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestGroupFitsStaysFlat(t *testing.T) {
	got := Render(callDoc("f", "a", "b"), Options{MaxWidth: 20})
	want := "f(a, b)"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestGroupTooWideBreaks(t *testing.T) {
	got := Render(callDoc("f", "aaaa", "bbbb"), Options{MaxWidth: 10, IndentWidth: 4})
	want := "f(\n    aaaa,\n    bbbb,\n)"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestExactWidthStillFits(t *testing.T) {
	// Seven characters at width seven: the budget is inclusive.
	got := Render(callDoc("f", "a", "b"), Options{MaxWidth: 7})
	want := "f(a, b)"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestBreakAlwaysIgnoresWidth(t *testing.T) {
	g := doc.GroupBreak(doc.BreakAlways,
		doc.Text("f("),
		doc.Indent(doc.SoftLine(), doc.Text("a"), doc.IfBreak(doc.Text(","), nil)),
		doc.SoftLine(),
		doc.Text(")"),
	)
	got := Render(g, Options{MaxWidth: 88, IndentWidth: 4})
	want := "f(\n    a,\n)"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestHardLineForcesEnclosingGroupBroken(t *testing.T) {
	g := doc.Group(
		doc.Text("x"),
		doc.SoftLine(),
		doc.HardLine(),
		doc.Text("y"),
	)
	got := Render(g, Options{MaxWidth: 88})
	// The soft line realizes as a break too: the group cannot be flat.
	want := "x\n\ny"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestBlankLineEmitsEmptyLine(t *testing.T) {
	got := Render(doc.Seq(doc.Text("a"), doc.BlankLine(), doc.Text("b")), Options{MaxWidth: 88})
	want := "a\n\nb"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestIfBreakFollowsGroupMode(t *testing.T) {
	build := func() *doc.Doc {
		return doc.Group(
			doc.IfBreak(doc.Text("("), nil),
			doc.Indent(doc.SoftLine(), doc.Text("value")),
			doc.SoftLine(),
			doc.IfBreak(doc.Text(")"), nil),
		)
	}
	if got := Render(build(), Options{MaxWidth: 88}); got != "value" {
		t.Fatalf("flat Render = %q, want %q", got, "value")
	}
	if got := Render(build(), Options{MaxWidth: 3, IndentWidth: 4}); got != "(\n    value\n)" {
		t.Fatalf("broken Render = %q, want %q", got, "(\n    value\n)")
	}
}

func TestNestedGroupDecisionsAreIndependent(t *testing.T) {
	// Inner fits on its own line after the outer breaks.
	inner := callDoc("g", "aaaa")
	outer := doc.Group(
		doc.Text("fffff("),
		doc.Indent(doc.SoftLine(), inner, doc.IfBreak(doc.Text(","), nil)),
		doc.SoftLine(),
		doc.Text(")"),
	)
	got := Render(outer, Options{MaxWidth: 13, IndentWidth: 4})
	want := "fffff(\n    g(aaaa),\n)"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestSiblingGroupsDecideSeparately(t *testing.T) {
	// The first group fits because the second group's break ends the
	// line; only the second group splits.
	params := callDoc("f", "a")
	annotation := doc.Group(
		doc.Text("Tuple["),
		doc.Indent(doc.SoftLine(), doc.Text("AAAAAAAA,"), doc.Space(), doc.Text("BBBBBBBB")),
		doc.SoftLine(),
		doc.Text("]"),
	)
	tree := doc.Seq(params, doc.Text(" -> "), annotation, doc.Text(":"))
	got := Render(tree, Options{MaxWidth: 24, IndentWidth: 4})
	want := "f(a) -> Tuple[\n    AAAAAAAA,\n    BBBBBBBB\n]:"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestBreakIfNestedPropagatesUpward(t *testing.T) {
	inner := doc.GroupBreak(doc.BreakAlways,
		doc.Text("["),
		doc.Indent(doc.SoftLine(), doc.Text("x"), doc.IfBreak(doc.Text(","), nil)),
		doc.SoftLine(),
		doc.Text("]"),
	)
	outer := doc.GroupBreak(doc.BreakIfNested,
		doc.IfBreak(doc.Text("("), nil),
		doc.Indent(doc.SoftLine(), inner),
		doc.SoftLine(),
		doc.IfBreak(doc.Text(")"), nil),
	)
	got := Render(outer, Options{MaxWidth: 88, IndentWidth: 4})
	want := "(\n    [\n        x,\n    ]\n)"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestBreakIfNestedStaysFlatWithoutNestedBreak(t *testing.T) {
	outer := doc.GroupBreak(doc.BreakIfNested,
		doc.IfBreak(doc.Text("("), nil),
		doc.Indent(doc.SoftLine(), doc.Text("short")),
		doc.SoftLine(),
		doc.IfBreak(doc.Text(")"), nil),
	)
	got := Render(outer, Options{MaxWidth: 88})
	want := "short"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestFillWrapsLikeProse(t *testing.T) {
	words := []string{"aaa", "bbb", "ccc", "ddd"}
	items := make([]*doc.Doc, len(words))
	for i, w := range words {
		items[i] = doc.Text(w)
	}
	seps := []*doc.Doc{doc.Space(), doc.Space(), doc.Space()}
	got := Render(doc.Fill(items, seps), Options{MaxWidth: 7})
	want := "aaa bbb\nccc ddd"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestFillSingleItem(t *testing.T) {
	got := Render(doc.Fill([]*doc.Doc{doc.Text("only")}, nil), Options{MaxWidth: 88})
	if got != "only" {
		t.Fatalf("Render = %q, want %q", got, "only")
	}
}

func TestIndentUsesTabsWhenConfigured(t *testing.T) {
	got := Render(callDoc("f", "aaaa", "bbbb"), Options{MaxWidth: 10, IndentWidth: 4, UseTabs: true})
	want := "f(\n\taaaa,\n\tbbbb,\n)"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestTrailingWhitespaceTrimmed(t *testing.T) {
	got := Render(doc.Seq(doc.Text("a "), doc.HardLine(), doc.Text("b")), Options{MaxWidth: 88})
	want := "a\nb"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
	if strings.Contains(got, " \n") {
		t.Fatalf("Render left trailing whitespace: %q", got)
	}
}

func TestWideRunesCountByDisplayWidth(t *testing.T) {
	// Four double-width runes plus the call shell exceed eight columns.
	got := Render(callDoc("f", "日本語字"), Options{MaxWidth: 8, IndentWidth: 4})
	want := "f(\n    日本語字,\n)"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}
