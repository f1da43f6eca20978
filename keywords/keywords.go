// Package keywords holds the static ORCA keyword tables: methods, basis
// sets, job types, %-block names, and the periodic-table element symbols.
// The tables are loaded once at process start and never mutated.
package keywords

import "strings"

// Category tags the namespace a keyword belongs to. A keyword belongs to
// exactly one category; %-block names live in their own namespace (see Block).
type Category int

const (
	DFTFunctional Category = iota
	WavefunctionMethod
	BasisSet
	JobType
)

func (c Category) String() string {
	switch c {
	case DFTFunctional:
		return "dft-functional"
	case WavefunctionMethod:
		return "wavefunction-method"
	case BasisSet:
		return "basis-set"
	case JobType:
		return "job-type"
	}
	return "unknown"
}

// Keyword is one entry of the simple-input keyword tables. Name is the
// canonical spelling; Type carries the functional family or basis-set size
// tier and is empty for wavefunction methods and job types.
type Keyword struct {
	Name        string   `json:"name" yaml:"name"`
	Category    Category `json:"-" yaml:"-"`
	Type        string   `json:"type,omitempty" yaml:"type,omitempty"`
	Description string   `json:"description" yaml:"description"`
}

// BlockValue is one fixed completion suggestion for a %-block body.
// Property marks parameter-name suggestions, as opposed to plain values.
type BlockValue struct {
	Label    string
	Insert   string
	Property bool
}

// Block describes one %-block name (lowercase) with its documentation and
// the fixed suggestion set offered inside the block. Values is empty for
// blocks without bespoke suggestions.
type Block struct {
	Name        string
	Description string
	Example     string
	Values      []BlockValue
}

var (
	all     []Keyword
	byName  map[string]Keyword
	byUpper map[string]Keyword
	byBlock map[string]Block
)

func init() {
	stamp := func(table []Keyword, c Category) {
		for i := range table {
			table[i].Category = c
		}
	}
	stamp(dftFunctionals, DFTFunctional)
	stamp(wavefunctionMethods, WavefunctionMethod)
	stamp(basisSets, BasisSet)
	stamp(jobTypes, JobType)

	all = make([]Keyword, 0, len(dftFunctionals)+len(wavefunctionMethods)+len(basisSets)+len(jobTypes))
	all = append(all, dftFunctionals...)
	all = append(all, wavefunctionMethods...)
	all = append(all, basisSets...)
	all = append(all, jobTypes...)

	byName = make(map[string]Keyword, len(all))
	byUpper = make(map[string]Keyword, len(all))
	for _, k := range all {
		byName[k.Name] = k
		// First entry wins so that lookup precedence follows table order:
		// functionals, wavefunction methods, basis sets, job types.
		u := strings.ToUpper(k.Name)
		if _, ok := byUpper[u]; !ok {
			byUpper[u] = k
		}
	}

	byBlock = make(map[string]Block, len(blocks))
	for _, b := range blocks {
		byBlock[b.Name] = b
	}

	elementSet = make(map[string]struct{}, len(Elements))
	for _, e := range Elements {
		elementSet[e] = struct{}{}
	}
}

// Lookup finds a keyword by its exact canonical spelling.
func Lookup(name string) (Keyword, bool) {
	k, ok := byName[name]
	return k, ok
}

// Classify finds a keyword case-insensitively and returns the canonical
// entry. Callers that need exact matching use Lookup instead.
func Classify(token string) (Keyword, bool) {
	k, ok := byUpper[strings.ToUpper(token)]
	return k, ok
}

// All returns every simple-input keyword in table order: DFT functionals,
// wavefunction methods, basis sets, job types. The returned slice is shared;
// callers must not modify it.
func All() []Keyword {
	return all
}

// LookupBlock finds a %-block description by its lowercase name.
func LookupBlock(name string) (Block, bool) {
	b, ok := byBlock[name]
	return b, ok
}

// Blocks returns all %-block descriptions in table order. The returned slice
// is shared; callers must not modify it.
func Blocks() []Block {
	return blocks
}
