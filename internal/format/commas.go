package format

import "github.com/jgberry/ruff/internal/doc"

// bracketed builds the canonical group for a comma-separated,
// bracket-delimited construct: soft breaks around the elements, a
// trailing comma that only appears in broken mode, and the magic
// trailing comma forcing the group broken when the source had one.
func bracketed(open, close string, elems []*doc.Doc, trailingComma, magic bool) *doc.Doc {
	if len(elems) == 0 {
		return doc.Text(open + close)
	}

	inner := []*doc.Doc{doc.SoftLine()}
	inner = append(inner, joinComma(elems)...)
	if trailingComma {
		inner = append(inner, doc.IfBreak(doc.Text(","), nil))
	}

	children := []*doc.Doc{
		doc.Text(open),
		doc.Indent(inner...),
		doc.SoftLine(),
		doc.Text(close),
	}
	if magic {
		return doc.GroupBreak(doc.BreakAlways, children...)
	}
	return doc.Group(children...)
}

// joinComma interleaves elems with `,` plus a space-or-newline break.
func joinComma(elems []*doc.Doc) []*doc.Doc {
	out := make([]*doc.Doc, 0, len(elems)*3)
	for i, e := range elems {
		if i > 0 {
			out = append(out, doc.Text(","), doc.Space())
		}
		out = append(out, e)
	}
	return out
}

// optionalParens wraps inner so that the flat form is bare and the
// broken form gains parentheses. Statement-level chains (boolean ops,
// concatenation, annotations) use this: breaking without brackets would
// change program meaning.
func optionalParens(inner *doc.Doc, magic bool) *doc.Doc {
	mode := doc.BreakAuto
	if magic {
		mode = doc.BreakAlways
	}
	return doc.GroupBreak(mode,
		doc.IfBreak(doc.Text("("), nil),
		doc.Indent(doc.SoftLine(), inner),
		doc.SoftLine(),
		doc.IfBreak(doc.Text(")"), nil),
	)
}
