// Package corpus holds the fixed, ordered document set the engine ranks against.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/reasoner/internal/domain"
)

// Document is an immutable corpus entry with its ordinal position.
type Document struct {
	index int
	text  string
}

// Index returns the position of the document in its corpus.
func (d Document) Index() int { return d.index }

// Text returns the document text.
func (d Document) Text() string { return d.text }

// Corpus is an ordered, read-only sequence of documents.
type Corpus struct {
	docs []Document
}

// New builds a corpus from texts, assigning indexes in input order.
func New(texts []string) Corpus {
	docs := make([]Document, len(texts))
	for i, t := range texts {
		docs[i] = Document{index: i, text: t}
	}
	return Corpus{docs: docs}
}

// Len returns the number of documents.
func (c Corpus) Len() int { return len(c.docs) }

// At returns the document at position i.
func (c Corpus) At(i int) Document { return c.docs[i] }

// Documents returns a copy of the documents in corpus order.
func (c Corpus) Documents() []Document {
	out := make([]Document, len(c.docs))
	copy(out, c.docs)
	return out
}

// Texts returns the document texts in corpus order.
func (c Corpus) Texts() []string {
	out := make([]string, len(c.docs))
	for i, d := range c.docs {
		out[i] = d.text
	}
	return out
}

// fileFormat is the on-disk YAML layout of a corpus file.
type fileFormat struct {
	Documents []string `yaml:"documents"`
}

// LoadFile reads a YAML corpus file of the form:
//
//	documents:
//	  - "first document"
//	  - "second document"
func LoadFile(path string) (Corpus, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Corpus{}, fmt.Errorf("%w: read %s: %w", domain.ErrCorpusInvalid, path, err)
	}

	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Corpus{}, fmt.Errorf("%w: parse %s: %w", domain.ErrCorpusInvalid, path, err)
	}

	return New(f.Documents), nil
}
