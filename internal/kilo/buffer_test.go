package kilo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInsertRowMaintainsIndexInvariant(t *testing.T) {
	b := &Buffer{}
	b.InsertRow(0, []byte("first"))
	b.InsertRow(1, []byte("third"))
	b.InsertRow(1, []byte("second"))

	for i := 0; i < b.NumRows(); i++ {
		if b.Row(i).index != i {
			t.Errorf("rows[%d].index = %d, want %d", i, b.Row(i).index, i)
		}
	}

	want := []string{"first", "second", "third"}
	for i, w := range want {
		if got := string(b.Row(i).chars); got != w {
			t.Errorf("rows[%d] = %q, want %q", i, got, w)
		}
	}
}

func TestDeleteRowMaintainsIndexInvariant(t *testing.T) {
	b := &Buffer{}
	b.InsertRow(0, []byte("a"))
	b.InsertRow(1, []byte("b"))
	b.InsertRow(2, []byte("c"))

	b.DeleteRow(1)

	if b.NumRows() != 2 {
		t.Fatalf("NumRows() = %d, want 2", b.NumRows())
	}
	for i := 0; i < b.NumRows(); i++ {
		if b.Row(i).index != i {
			t.Errorf("rows[%d].index = %d, want %d", i, b.Row(i).index, i)
		}
	}
	if string(b.Row(0).chars) != "a" || string(b.Row(1).chars) != "c" {
		t.Errorf("unexpected rows after delete: %q %q", b.Row(0).chars, b.Row(1).chars)
	}
}

func TestDeleteRowOutOfRangeIsNoop(t *testing.T) {
	b := &Buffer{}
	b.InsertRow(0, []byte("only"))
	b.DeleteRow(5)
	b.DeleteRow(-1)

	if b.NumRows() != 1 {
		t.Errorf("NumRows() = %d, want 1", b.NumRows())
	}
}

func TestInsertRowOutOfRangeIsNoop(t *testing.T) {
	b := &Buffer{}
	b.InsertRow(5, []byte("nope"))
	if b.NumRows() != 0 {
		t.Errorf("NumRows() = %d, want 0", b.NumRows())
	}
}

func TestDirtyIncrementsOnMutation(t *testing.T) {
	b := &Buffer{}
	if b.Dirty() != 0 {
		t.Fatalf("Dirty() = %d, want 0", b.Dirty())
	}
	b.InsertRow(0, []byte("x"))
	if b.Dirty() == 0 {
		t.Errorf("Dirty() should be non-zero after InsertRow")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.txt")

	if err := os.WriteFile(path, []byte("hello\nworld\n"), 0644); err != nil {
		t.Fatal(err)
	}

	b := &Buffer{}
	if err := b.Load(path); err != nil {
		t.Fatal(err)
	}
	if b.Dirty() != 0 {
		t.Errorf("Dirty() after Load = %d, want 0", b.Dirty())
	}

	out := filepath.Join(dir, "out.txt")
	b.SetFilename(out)
	n, err := b.Save()
	if err != nil {
		t.Fatal(err)
	}
	if n != len("hello\nworld\n") {
		t.Errorf("Save() wrote %d bytes, want %d", n, len("hello\nworld\n"))
	}
	if b.Dirty() != 0 {
		t.Errorf("Dirty() after Save = %d, want 0", b.Dirty())
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello\nworld\n" {
		t.Errorf("round trip = %q, want %q", got, "hello\nworld\n")
	}
}

func TestSaveAddsTrailingNewlineWhenMissing(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "nolf.txt")
	if err := os.WriteFile(src, []byte("abc"), 0644); err != nil {
		t.Fatal(err)
	}

	b := &Buffer{}
	if err := b.Load(src); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out.txt")
	b.SetFilename(out)
	if _, err := b.Save(); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "abc\n" {
		t.Errorf("saved = %q, want %q", got, "abc\n")
	}

	// Idempotent: saving again produces the same bytes.
	if _, err := b.Save(); err != nil {
		t.Fatal(err)
	}
	got2, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got2) != string(got) {
		t.Errorf("second save = %q, want %q", got2, got)
	}
}

func TestSaveFailureLeavesDirtyUnchanged(t *testing.T) {
	b := &Buffer{}
	b.InsertRow(0, []byte("x"))
	dirtyBefore := b.Dirty()

	// A filename pointing at a path whose parent does not exist fails to
	// open, surfacing as a transient error rather than touching dirty.
	b.SetFilename(filepath.Join(t.TempDir(), "missing-dir", "f.txt"))
	if _, err := b.Save(); err == nil {
		t.Fatal("expected Save to fail for a nonexistent parent directory")
	}
	if b.Dirty() != dirtyBefore {
		t.Errorf("Dirty() = %d, want unchanged %d", b.Dirty(), dirtyBefore)
	}
}
