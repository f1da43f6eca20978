package orca

import "github.com/orcatools/orcals/keywords"

// SimpleInput is the parsed "!" line. Token lists hold the registry's
// canonical spellings, in the order the tokens appeared; Other collects
// tokens the registry does not know.
type SimpleInput struct {
	Methods   []string `json:"methods,omitempty" yaml:"methods,omitempty"`
	BasisSets []string `json:"basis_sets,omitempty" yaml:"basis_sets,omitempty"`
	JobTypes  []string `json:"job_types,omitempty" yaml:"job_types,omitempty"`
	Other     []string `json:"other,omitempty" yaml:"other,omitempty"`
	Line      int      `json:"line" yaml:"line"`
}

// Valid reports whether the line names at least one method or basis set.
func (s *SimpleInput) Valid() bool {
	return len(s.Methods) > 0 || len(s.BasisSets) > 0
}

// Block is one parsed "%name ... end" settings block. Params holds the
// values extracted for the block names the parser understands; for all
// other names it stays empty and Raw is the only record of the content.
type Block struct {
	Name      string         `json:"name" yaml:"name"`
	Params    map[string]any `json:"params,omitempty" yaml:"params,omitempty"`
	Raw       string         `json:"raw" yaml:"raw"`
	LineStart int            `json:"line_start" yaml:"line_start"`
	LineEnd   int            `json:"line_end" yaml:"line_end"`
}

// Atom is one geometry line: element symbol as written plus Cartesian
// coordinates.
type Atom struct {
	Element string  `json:"element" yaml:"element"`
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Z       float64 `json:"z" yaml:"z"`
	Line    int     `json:"line" yaml:"line"`
}

// Valid reports whether the element symbol is a known periodic-table symbol.
func (a Atom) Valid() bool {
	return keywords.IsElement(a.Element)
}

// Geometry is the parsed "* format charge multiplicity ... *" section.
type Geometry struct {
	Charge       int    `json:"charge" yaml:"charge"`
	Multiplicity int    `json:"multiplicity" yaml:"multiplicity"`
	Format       string `json:"format" yaml:"format"`
	Atoms        []Atom `json:"atoms,omitempty" yaml:"atoms,omitempty"`
	LineStart    int    `json:"line_start" yaml:"line_start"`
	LineEnd      int    `json:"line_end" yaml:"line_end"`
}

// Valid reports whether the section has at least one atom and every atom is
// valid.
func (g *Geometry) Valid() bool {
	if len(g.Atoms) == 0 {
		return false
	}
	for _, a := range g.Atoms {
		if !a.Valid() {
			return false
		}
	}
	return true
}

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one diagnostic. Line is 0-based; document-level findings use
// line 0 as a placeholder.
type Finding struct {
	Message  string   `json:"message" yaml:"message"`
	Line     int      `json:"line" yaml:"line"`
	Severity Severity `json:"severity" yaml:"severity"`
}

// ParseResult is the document model for one parse call. It is rebuilt from
// scratch on every call; nothing carries over between parses.
type ParseResult struct {
	SimpleInput *SimpleInput `json:"simple_input,omitempty" yaml:"simple_input,omitempty"`
	Blocks      []Block      `json:"blocks,omitempty" yaml:"blocks,omitempty"`
	Geometry    *Geometry    `json:"geometry,omitempty" yaml:"geometry,omitempty"`
	Errors      []Finding    `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings    []Finding    `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Findings returns errors followed by warnings, the order they are
// reported in.
func (r *ParseResult) Findings() []Finding {
	out := make([]Finding, 0, len(r.Errors)+len(r.Warnings))
	out = append(out, r.Errors...)
	out = append(out, r.Warnings...)
	return out
}
