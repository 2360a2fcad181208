package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kailas-cloud/reasoner/internal/domain"
)

func TestNew_AssignsIndexes(t *testing.T) {
	c := New([]string{"a", "b", "c"})
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	for i, d := range c.Documents() {
		if d.Index() != i {
			t.Errorf("doc %d has index %d", i, d.Index())
		}
	}
	if c.At(1).Text() != "b" {
		t.Errorf("At(1) = %q, want b", c.At(1).Text())
	}
}

func TestNew_CopiesInput(t *testing.T) {
	texts := []string{"original"}
	c := New(texts)
	texts[0] = "changed"
	if c.At(0).Text() != "original" {
		t.Error("corpus must not alias caller slice")
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	if c.Len() != 12 {
		t.Fatalf("default corpus has %d docs, want 12", c.Len())
	}
	if c.At(10).Text() != "Blockchain technology ensures security through decentralized and immutable records" {
		t.Errorf("unexpected doc 10: %q", c.At(10).Text())
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.yaml")
	content := "documents:\n  - \"first doc\"\n  - \"second doc\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := c.Texts(); len(got) != 2 || got[0] != "first doc" || got[1] != "second doc" {
		t.Errorf("Texts() = %q", got)
	}
}

func TestLoadFile_EmptyListIsValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("documents: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("documents: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{filepath.Join(dir, "missing.yaml"), bad} {
		_, err := LoadFile(path)
		if !errors.Is(err, domain.ErrCorpusInvalid) {
			t.Errorf("LoadFile(%s) error = %v, want ErrCorpusInvalid", path, err)
		}
	}
}
