// Package assist produces completion and hover content for ORCA input
// lines. It works on single lines plus a cursor column, so callers can
// use it from an LSP server or any other editor integration without
// parsing the whole document first.
package assist

import (
	"regexp"
	"sort"
	"strings"

	"github.com/orcatools/orcals/keywords"
)

// Kind says what a suggestion is, so callers can map it onto whatever
// item-kind scheme their protocol uses.
type Kind int

const (
	KindBlock Kind = iota
	KindValue
	KindProperty
	KindFunctional
	KindWavefunction
	KindBasisSet
	KindJobType
	KindElement
)

// Suggestion is one completion candidate. Insert is the text to place at
// the cursor; when empty the label itself is inserted.
type Suggestion struct {
	Label  string
	Kind   Kind
	Detail string
	Doc    string
	Insert string
}

// Matches lines that look like the start of an atom entry inside a
// geometry section: an element symbol followed by the first coordinate.
var atomLineRe = regexp.MustCompile(`^[A-Z][a-z]?\s+[-\d.]`)

// Complete suggests candidates for the given cursor position. The text
// left of the cursor decides the context: "%" offers block names (plus
// value snippets once a known block name is typed out), "!" offers the
// full keyword table, and a line that already looks like an atom entry
// offers element symbols. Anywhere else there is nothing to suggest.
func Complete(line string, column int) []Suggestion {
	prefix := strings.TrimSpace(prefixAt(line, column))

	switch {
	case strings.HasPrefix(prefix, "%"):
		return blockSuggestions(prefix)
	case strings.HasPrefix(prefix, "!"):
		return keywordSuggestions()
	case atomLineRe.MatchString(strings.TrimSpace(line)):
		return elementSuggestions()
	}
	return nil
}

// prefixAt returns the text left of the cursor. Columns are rune
// offsets; out-of-range values clamp to the line bounds.
func prefixAt(line string, column int) string {
	runes := []rune(line)
	if column < 0 {
		column = 0
	}
	if column > len(runes) {
		column = len(runes)
	}
	return string(runes[:column])
}

func blockSuggestions(prefix string) []Suggestion {
	var out []Suggestion
	for _, b := range keywords.Blocks() {
		out = append(out, Suggestion{
			Label:  b.Name,
			Kind:   KindBlock,
			Detail: b.Description,
			Doc:    "Example: " + b.Example,
			Insert: b.Name + " ",
		})
	}

	// Once a full block name is present, add its value snippets too.
	lower := strings.ToLower(prefix)
	for _, b := range keywords.Blocks() {
		if !strings.Contains(lower, "%"+b.Name) {
			continue
		}
		for _, v := range b.Values {
			kind := KindValue
			if v.Property {
				kind = KindProperty
			}
			out = append(out, Suggestion{
				Label:  v.Label,
				Kind:   kind,
				Insert: v.Insert,
			})
		}
	}
	return out
}

func keywordSuggestions() []Suggestion {
	var out []Suggestion
	for _, k := range keywords.All() {
		s := Suggestion{Label: k.Name, Doc: k.Description}
		switch k.Category {
		case keywords.DFTFunctional:
			s.Kind = KindFunctional
			s.Detail = "DFT: " + k.Type
		case keywords.WavefunctionMethod:
			s.Kind = KindWavefunction
			s.Detail = "Wavefunction method"
		case keywords.BasisSet:
			s.Kind = KindBasisSet
			s.Detail = k.Type
		case keywords.JobType:
			s.Kind = KindJobType
			s.Detail = "Job type"
		}
		out = append(out, s)
	}
	return out
}

func elementSuggestions() []Suggestion {
	symbols := make([]string, len(keywords.Elements))
	copy(symbols, keywords.Elements)
	sort.Strings(symbols)

	out := make([]Suggestion, 0, len(symbols))
	for _, sym := range symbols {
		out = append(out, Suggestion{
			Label:  sym,
			Kind:   KindElement,
			Detail: "Element " + sym,
		})
	}
	return out
}
