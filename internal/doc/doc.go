// Package doc defines the layout algebra the formatter renders from.
//
// A Doc tree is pure data: builders compose Text, Line, Indent, Group,
// Fill and IfBreak nodes, and only the layout engine ever looks at
// widths or columns. Trees are immutable once built and are consumed
// exactly once by a render call.
package doc

// Kind discriminates the Doc union.
type Kind uint8

const (
	// KindText is an opaque chunk of output that must not be split.
	KindText Kind = iota
	// KindLine is a potential or mandatory line break.
	KindLine
	// KindSeq is an ordered sequence of children.
	KindSeq
	// KindIndent raises the indentation of breaks inside its child.
	KindIndent
	// KindGroup is the unit of flat-vs-broken decisions.
	KindGroup
	// KindFill alternates items and separators with per-separator decisions.
	KindFill
	// KindIfBreak selects content based on the enclosing group's mode.
	KindIfBreak
)

// LineKind selects how a Line node renders in each mode.
type LineKind uint8

const (
	// LineSoft renders as nothing when flat and as newline+indent when broken.
	LineSoft LineKind = iota
	// LineHard always renders as newline+indent.
	LineHard
	// LineBlank renders as an empty line followed by newline+indent, in
	// both modes. Statement separation relies on this.
	LineBlank
	// LineSpace renders as a single space when flat and as newline+indent
	// when broken.
	LineSpace
)

// BreakMode configures how a group decides its mode.
type BreakMode uint8

const (
	// BreakAuto lets the fits-on-line probe decide.
	BreakAuto BreakMode = iota
	// BreakAlways forces the group to render broken without probing.
	BreakAlways
	// BreakIfNested forces the group broken whenever any descendant
	// group renders broken; otherwise the probe decides. Propagation is
	// upward only: a flat child never flattens its ancestor.
	BreakIfNested
)

// Doc is one node of the layout tree. Fields are populated according to
// Kind; treat every Doc as immutable after construction.
type Doc struct {
	Kind     Kind
	Str      string   // KindText
	Line     LineKind // KindLine
	Children []*Doc   // KindSeq, KindFill (items)
	Child    *Doc     // KindIndent, KindGroup
	Break    BreakMode
	Seps     []*Doc // KindFill separators, len == len(Children)-1
	Broken   *Doc   // KindIfBreak
	Flat     *Doc   // KindIfBreak
}

// Text returns an unsplittable text leaf.
func Text(s string) *Doc {
	return &Doc{Kind: KindText, Str: s}
}

// SoftLine returns a break that disappears in flat mode.
func SoftLine() *Doc {
	return &Doc{Kind: KindLine, Line: LineSoft}
}

// HardLine returns an unconditional line break.
func HardLine() *Doc {
	return &Doc{Kind: KindLine, Line: LineHard}
}

// BlankLine returns a forced blank line.
func BlankLine() *Doc {
	return &Doc{Kind: KindLine, Line: LineBlank}
}

// Space returns a break that renders as one space in flat mode.
func Space() *Doc {
	return &Doc{Kind: KindLine, Line: LineSpace}
}

// Seq concatenates children in order.
func Seq(children ...*Doc) *Doc {
	return &Doc{Kind: KindSeq, Children: children}
}

// Indent raises by one unit the indentation applied to breaks inside child.
func Indent(children ...*Doc) *Doc {
	return &Doc{Kind: KindIndent, Child: wrap(children)}
}

// Group wraps children into a probe-decided group.
func Group(children ...*Doc) *Doc {
	return &Doc{Kind: KindGroup, Break: BreakAuto, Child: wrap(children)}
}

// GroupBreak wraps children into a group with an explicit break mode.
func GroupBreak(mode BreakMode, children ...*Doc) *Doc {
	return &Doc{Kind: KindGroup, Break: mode, Child: wrap(children)}
}

// Fill interleaves items with separators whose modes are decided
// independently by the layout engine. len(seps) must be len(items)-1
// (or both empty); anything else is a builder bug.
func Fill(items []*Doc, seps []*Doc) *Doc {
	if len(items) == 0 && len(seps) == 0 {
		return &Doc{Kind: KindFill}
	}
	if len(seps) != len(items)-1 {
		panic("doc: fill item/separator count mismatch")
	}
	return &Doc{Kind: KindFill, Children: items, Seps: seps}
}

// IfBreak renders whenBroken when the nearest enclosing group is broken
// and whenFlat otherwise. Either branch may be nil for "nothing".
func IfBreak(whenBroken, whenFlat *Doc) *Doc {
	return &Doc{Kind: KindIfBreak, Broken: whenBroken, Flat: whenFlat}
}

func wrap(children []*Doc) *Doc {
	if len(children) == 1 {
		return children[0]
	}
	return &Doc{Kind: KindSeq, Children: children}
}
