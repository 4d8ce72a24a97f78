package doc

import "testing"

func TestSingleChildNotRewrapped(t *testing.T) {
	leaf := Text("x")
	if got := Indent(leaf); got.Child != leaf {
		t.Fatalf("Indent(single).Child = %+v, want the child itself", got.Child)
	}
	if got := Group(leaf); got.Child != leaf {
		t.Fatalf("Group(single).Child = %+v, want the child itself", got.Child)
	}
}

func TestGroupDefaultsToAuto(t *testing.T) {
	g := Group(Text("x"))
	if g.Kind != KindGroup {
		t.Fatalf("Group Kind = %v, want KindGroup", g.Kind)
	}
	if g.Break != BreakAuto {
		t.Fatalf("Group Break = %v, want BreakAuto", g.Break)
	}
}

func TestFillCountMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Fill with mismatched separators did not panic")
		}
	}()
	Fill([]*Doc{Text("a"), Text("b")}, nil)
}

func TestIfBreakBranches(t *testing.T) {
	d := IfBreak(Text(","), nil)
	if d.Kind != KindIfBreak {
		t.Fatalf("Kind = %v, want KindIfBreak", d.Kind)
	}
	if d.Broken == nil || d.Broken.Str != "," {
		t.Fatalf("Broken branch = %+v, want Text(\",\")", d.Broken)
	}
	if d.Flat != nil {
		t.Fatalf("Flat branch = %+v, want nil", d.Flat)
	}
}
