// Package layout renders a doc tree into final text under a width budget.
//
// The engine is the single consumer of the document model: it walks the
// tree with an explicit work stack, decides each group's mode exactly
// once via the fits-on-line probe, and emits text. Rendering is a pure
// function of (tree, options); malformed trees are builder bugs and
// abort the render with a panic rather than producing corrupt output.
package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jgberry/ruff/internal/doc"
)

// Mode is the decided rendering mode of a group.
type Mode uint8

const (
	// Flat suppresses soft breaks inside the group.
	Flat Mode = iota
	// Broken realizes soft breaks as newline+indent.
	Broken
)

// Options configures one render call.
type Options struct {
	MaxWidth    int
	IndentWidth int
	UseTabs     bool
}

func (o Options) withDefaults() Options {
	if o.MaxWidth == 0 {
		o.MaxWidth = 88
	}
	if o.IndentWidth == 0 {
		o.IndentWidth = 4
	}
	return o
}

type command struct {
	d      *doc.Doc
	mode   Mode
	indent int
}

type renderer struct {
	opts  Options
	buf   []byte
	col   int
	modes map[*doc.Doc]Mode
}

// Render lays out d within opts.MaxWidth columns and returns the text.
// The root behaves as an always-broken group.
func Render(d *doc.Doc, opts Options) string {
	r := &renderer{
		opts:  opts.withDefaults(),
		buf:   make([]byte, 0, 256),
		modes: make(map[*doc.Doc]Mode),
	}
	r.run([]command{{d: d, mode: Broken}})
	return string(r.buf)
}

func (r *renderer) run(stack []command) {
	for len(stack) > 0 {
		cmd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cmd.d == nil {
			continue
		}

		switch cmd.d.Kind {
		case doc.KindText:
			r.text(cmd.d.Str)

		case doc.KindLine:
			r.line(cmd.d.Line, cmd.mode, cmd.indent)

		case doc.KindSeq:
			for i := len(cmd.d.Children) - 1; i >= 0; i-- {
				stack = append(stack, command{d: cmd.d.Children[i], mode: cmd.mode, indent: cmd.indent})
			}

		case doc.KindIndent:
			stack = append(stack, command{d: cmd.d.Child, mode: cmd.mode, indent: cmd.indent + 1})

		case doc.KindGroup:
			mode := r.decideGroup(cmd, stack)
			r.modes[cmd.d] = mode
			stack = append(stack, command{d: cmd.d.Child, mode: mode, indent: cmd.indent})

		case doc.KindFill:
			r.fill(cmd.d, cmd.indent)

		case doc.KindIfBreak:
			branch := cmd.d.Flat
			if cmd.mode == Broken {
				branch = cmd.d.Broken
			}
			if branch != nil {
				stack = append(stack, command{d: branch, mode: cmd.mode, indent: cmd.indent})
			}

		default:
			panic("layout: unknown doc kind")
		}
	}
}

// decideGroup resolves a group's mode before its children are rendered.
func (r *renderer) decideGroup(cmd command, rest []command) Mode {
	g := cmd.d
	switch g.Break {
	case doc.BreakAlways:
		return Broken

	case doc.BreakIfNested:
		// Post-order propagation: trial-render the subtree in isolation,
		// record which descendant groups chose to break, then decide.
		trial := &renderer{
			opts:  r.opts,
			buf:   make([]byte, 0, 64),
			col:   r.col,
			modes: make(map[*doc.Doc]Mode),
		}
		trial.run([]command{{d: g.Child, mode: Flat, indent: cmd.indent}})
		for _, m := range trial.modes {
			if m == Broken {
				return Broken
			}
		}
		if !r.fits(command{d: g.Child, mode: Flat, indent: cmd.indent}, rest) {
			return Broken
		}
		return Flat

	default:
		if r.fits(command{d: g.Child, mode: Flat, indent: cmd.indent}, rest) {
			return Flat
		}
		return Broken
	}
}

// fill walks items left to right; each separator's mode is decided
// independently by probing whether the next item still fits.
func (r *renderer) fill(f *doc.Doc, indent int) {
	items, seps := f.Children, f.Seps
	if len(items) == 0 {
		return
	}
	if len(seps) != len(items)-1 {
		panic("layout: fill item/separator count mismatch")
	}

	for i, item := range items {
		if i > 0 {
			sep := seps[i-1]
			sepMode := Broken
			if r.fits(command{d: doc.Seq(sep, item), mode: Flat, indent: indent}, nil) {
				sepMode = Flat
			}
			r.run([]command{{d: sep, mode: sepMode, indent: indent}})
		}
		itemMode := Broken
		if r.fits(command{d: item, mode: Flat, indent: indent}, nil) {
			itemMode = Flat
		}
		r.run([]command{{d: item, mode: itemMode, indent: indent}})
	}
}

func (r *renderer) text(s string) {
	r.buf = append(r.buf, s...)
	r.col += runewidth.StringWidth(s)
}

func (r *renderer) line(kind doc.LineKind, mode Mode, indent int) {
	if mode == Flat {
		switch kind {
		case doc.LineSoft:
			return
		case doc.LineSpace:
			r.buf = append(r.buf, ' ')
			r.col++
			return
		}
		// Hard and Blank force a break even when flat was requested.
	}
	if kind == doc.LineBlank {
		r.trimTrailing()
		r.buf = append(r.buf, '\n')
	}
	r.newline(indent)
}

func (r *renderer) newline(indent int) {
	r.trimTrailing()
	r.buf = append(r.buf, '\n')
	if r.opts.UseTabs {
		for i := 0; i < indent; i++ {
			r.buf = append(r.buf, '\t')
		}
		r.col = indent * r.opts.IndentWidth
		return
	}
	pad := indent * r.opts.IndentWidth
	r.buf = append(r.buf, strings.Repeat(" ", pad)...)
	r.col = pad
}

func (r *renderer) trimTrailing() {
	for len(r.buf) > 0 {
		last := r.buf[len(r.buf)-1]
		if last != ' ' && last != '\t' {
			break
		}
		r.buf = r.buf[:len(r.buf)-1]
	}
}
