package layout

import (
	"github.com/mattn/go-runewidth"

	"github.com/jgberry/ruff/internal/doc"
)

type probeCmd struct {
	d       *doc.Doc
	mode    Mode
	subtree bool
}

// fits simulates flat rendering of first starting at the current column,
// consuming the remaining work stack up to the next hard break or end of
// output. It fails when the line would exceed the width budget or when a
// forced-broken marker (never-flat group, hard or blank line) occurs
// inside the probed subtree itself.
func (r *renderer) fits(first command, rest []command) bool {
	width := r.opts.MaxWidth - r.col
	if width < 0 {
		return false
	}

	stack := []probeCmd{{d: first.d, mode: first.mode, subtree: true}}
	restIdx := len(rest) - 1

	for {
		if len(stack) == 0 {
			if restIdx < 0 {
				return true
			}
			next := rest[restIdx]
			restIdx--
			stack = append(stack, probeCmd{d: next.d, mode: next.mode})
			continue
		}

		cmd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cmd.d == nil {
			continue
		}

		switch cmd.d.Kind {
		case doc.KindText:
			width -= runewidth.StringWidth(cmd.d.Str)
			if width < 0 {
				return false
			}

		case doc.KindLine:
			if cmd.mode == Broken {
				// The line ends here; everything so far fit.
				return true
			}
			switch cmd.d.Line {
			case doc.LineSoft:
			case doc.LineSpace:
				width--
				if width < 0 {
					return false
				}
			case doc.LineHard, doc.LineBlank:
				if cmd.subtree {
					return false
				}
				return true
			}

		case doc.KindSeq:
			for i := len(cmd.d.Children) - 1; i >= 0; i-- {
				stack = append(stack, probeCmd{d: cmd.d.Children[i], mode: cmd.mode, subtree: cmd.subtree})
			}

		case doc.KindIndent:
			stack = append(stack, probeCmd{d: cmd.d.Child, mode: cmd.mode, subtree: cmd.subtree})

		case doc.KindGroup:
			if cmd.d.Break == doc.BreakAlways {
				if cmd.subtree {
					return false
				}
				stack = append(stack, probeCmd{d: cmd.d.Child, mode: Broken})
				continue
			}
			mode := cmd.mode
			if cmd.subtree {
				// Nested groups are assumed flat while probing.
				mode = Flat
			} else if decided, ok := r.modes[cmd.d]; ok {
				mode = decided
			}
			stack = append(stack, probeCmd{d: cmd.d.Child, mode: mode, subtree: cmd.subtree})

		case doc.KindFill:
			items, seps := cmd.d.Children, cmd.d.Seps
			for i := len(items) - 1; i >= 0; i-- {
				if i > 0 {
					stack = append(stack, probeCmd{d: items[i], mode: cmd.mode, subtree: cmd.subtree})
					stack = append(stack, probeCmd{d: seps[i-1], mode: cmd.mode, subtree: cmd.subtree})
				} else {
					stack = append(stack, probeCmd{d: items[i], mode: cmd.mode, subtree: cmd.subtree})
				}
			}

		case doc.KindIfBreak:
			branch := cmd.d.Flat
			if cmd.mode == Broken {
				branch = cmd.d.Broken
			}
			if branch != nil {
				stack = append(stack, probeCmd{d: branch, mode: cmd.mode, subtree: cmd.subtree})
			}

		default:
			panic("layout: unknown doc kind")
		}
	}
}
