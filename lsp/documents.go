package lsp

import (
	"strings"
	"sync"

	"github.com/orcatools/orcals/orca"
)

// document is one open editor buffer plus the model parsed from it.
// Every update re-parses the whole text; there is no incremental state.
type document struct {
	uri    string
	text   string
	lines  []string
	result *orca.ParseResult
}

// line returns the 0-based document line, without its newline.
func (d *document) line(n int) (string, bool) {
	if n < 0 || n >= len(d.lines) {
		return "", false
	}
	return d.lines[n], true
}

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

func newDocumentStore() *documentStore {
	return &documentStore{
		docs: make(map[string]*document),
	}
}

func (s *documentStore) update(uri, text string) *document {
	doc := &document{
		uri:    uri,
		text:   text,
		lines:  strings.Split(text, "\n"),
		result: orca.Parse(text),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = doc
	return doc
}

func (s *documentStore) get(uri string) *document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri]
}

func (s *documentStore) remove(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}
