package kilo

import "testing"

func goSyntax() *Syntax {
	for i := range syntaxDB {
		if syntaxDB[i].Name == "go" {
			return &syntaxDB[i]
		}
	}
	return nil
}

func TestHighlightRowSingleLineComment(t *testing.T) {
	hl, openOut := highlightRow([]byte("x // comment"), goSyntax(), false)
	if openOut {
		t.Errorf("openOut = true, want false")
	}
	for i := 2; i < len(hl); i++ {
		if hl[i] != HLComment {
			t.Errorf("hl[%d] = %d, want HLComment", i, hl[i])
		}
	}
	if hl[0] != HLNormal {
		t.Errorf("hl[0] = %d, want HLNormal", hl[0])
	}
}

func TestHighlightRowKeywordAndNumber(t *testing.T) {
	hl, _ := highlightRow([]byte("return 42"), goSyntax(), false)
	for i := 0; i < len("return"); i++ {
		if hl[i] != HLKeyword1 {
			t.Errorf("hl[%d] = %d, want HLKeyword1", i, hl[i])
		}
	}
	for i := len("return "); i < len("return 42"); i++ {
		if hl[i] != HLNumber {
			t.Errorf("hl[%d] = %d, want HLNumber", i, hl[i])
		}
	}
}

func TestHighlightRowString(t *testing.T) {
	hl, _ := highlightRow([]byte(`s := "hi"`), goSyntax(), false)
	for i := len(`s := `); i < len(`s := "hi"`); i++ {
		if hl[i] != HLString {
			t.Errorf("hl[%d] = %d, want HLString", i, hl[i])
		}
	}
}

// TestMultiLineCommentPropagation matches the load scenario where row 0
// opens a block comment, row 1 sits entirely inside it, and row 2 closes
// it partway through.
func TestMultiLineCommentPropagation(t *testing.T) {
	b := &Buffer{syntax: goSyntax()}
	b.InsertRow(0, []byte("/* a"))
	b.InsertRow(1, []byte("b"))
	b.InsertRow(2, []byte("*/ c"))

	if !b.Row(0).openComment {
		t.Errorf("rows[0].openComment = false, want true")
	}
	if !b.Row(1).openComment {
		t.Errorf("rows[1].openComment = false, want true")
	}
	if b.Row(2).openComment {
		t.Errorf("rows[2].openComment = true, want false")
	}

	// Closing the comment on row 0 should clear its own flag and
	// propagate the clear forward into row 1, but row 2 (already closed
	// independently) stops the walk.
	row0 := b.Row(0)
	row0.chars = append(row0.chars, []byte(" */")...)
	b.updateRow(0)

	if b.Row(0).openComment {
		t.Errorf("rows[0].openComment = true after closing, want false")
	}
	if b.Row(1).openComment {
		t.Errorf("rows[1].openComment = true after propagation, want false")
	}
	if b.Row(2).openComment {
		t.Errorf("rows[2].openComment = true, want false")
	}
}

func TestHighlightRowNoSyntaxIsAllNormal(t *testing.T) {
	hl, openOut := highlightRow([]byte("anything at all"), nil, true)
	if openOut {
		t.Errorf("openOut = true, want false for nil syntax")
	}
	for i, h := range hl {
		if h != HLNormal {
			t.Errorf("hl[%d] = %d, want HLNormal", i, h)
		}
	}
}

func TestSelectSyntaxByExtension(t *testing.T) {
	if s := selectSyntax("main.go"); s == nil || s.Name != "go" {
		t.Errorf("selectSyntax(main.go) = %v, want go", s)
	}
	if s := selectSyntax("script.py"); s == nil || s.Name != "python" {
		t.Errorf("selectSyntax(script.py) = %v, want python", s)
	}
	if s := selectSyntax("README"); s != nil {
		t.Errorf("selectSyntax(README) = %v, want nil", s)
	}
}

func TestPythonHasNoMultiLineComment(t *testing.T) {
	for i := range syntaxDB {
		if syntaxDB[i].Name == "python" {
			if syntaxDB[i].MLCommStart != "" || syntaxDB[i].MLCommEnd != "" {
				t.Errorf("python syntax has multi-line comment markers, want none")
			}
			return
		}
	}
	t.Fatal("python syntax entry not found")
}
