package terminal

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

// fileWith writes content to a temp file and opens it for reading. Regular
// files exercise the non-TTY path; the raw-mode path needs a real terminal.
func fileWith(t *testing.T, content string) *os.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestReadRune(t *testing.T) {
	r := NewReader(fileWith(t, "ab"))

	c, size, err := r.ReadRune()
	if err != nil || c != 'a' || size != 1 {
		t.Fatalf("ReadRune = %q/%d/%v, expected a/1/nil", c, size, err)
	}
	c, _, err = r.ReadRune()
	if err != nil || c != 'b' {
		t.Fatalf("ReadRune = %q/%v, expected b/nil", c, err)
	}
	if _, _, err := r.ReadRune(); err != io.EOF {
		t.Fatalf("ReadRune at end = %v, expected EOF", err)
	}
}

func TestReadRuneMultibyte(t *testing.T) {
	r := NewReader(fileWith(t, "π€"))

	c, size, err := r.ReadRune()
	if err != nil || c != 'π' || size != 2 {
		t.Fatalf("ReadRune = %q/%d/%v, expected π/2/nil", c, size, err)
	}
	c, size, err = r.ReadRune()
	if err != nil || c != '€' || size != 3 {
		t.Fatalf("ReadRune = %q/%d/%v, expected €/3/nil", c, size, err)
	}
}

func TestUnreadRune(t *testing.T) {
	r := NewReader(fileWith(t, "xy"))

	if err := r.UnreadRune(); err == nil {
		t.Error("UnreadRune before any read should fail")
	}

	c, _, _ := r.ReadRune()
	if c != 'x' {
		t.Fatalf("read %q, expected x", c)
	}
	if err := r.UnreadRune(); err != nil {
		t.Fatalf("UnreadRune: %v", err)
	}
	c, _, _ = r.ReadRune()
	if c != 'x' {
		t.Fatalf("reread %q, expected x", c)
	}
	c, _, _ = r.ReadRune()
	if c != 'y' {
		t.Fatalf("next %q, expected y", c)
	}

	// Double unread of one read is not supported.
	if err := r.UnreadRune(); err != nil {
		t.Fatalf("UnreadRune: %v", err)
	}
	if err := r.UnreadRune(); err == nil {
		t.Error("second UnreadRune without a read should fail")
	}
}
