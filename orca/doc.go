// Package orca parses ORCA quantum-chemistry input files into a structured
// document model and validates that model.
//
// # Input format
//
// An ORCA input file is line-oriented. Four line shapes matter:
//
//	! B3LYP def2-TZVP OPT          simple input: method, basis set, job type
//	%pal nprocs 4 end              settings block, single line
//	%scf                           settings block, multi line,
//	  maxiter 100                  closed by a bare "end"
//	end
//	* xyz 0 1                      geometry header: format, charge, multiplicity
//	C 0.0 0.0 0.0                  one atom per line
//	*                              geometry terminator
//
// Blank lines are ignored, and lines starting with "#" are treated as
// comments even though ORCA itself has no comment syntax.
//
// # Parsing model
//
// Parse makes a single forward scan over the document's physical lines and
// dispatches on the first non-blank character. The resulting ParseResult
// holds at most one SimpleInput (the first "!" line wins, later ones are
// ignored), the settings blocks in document order, and at most one Geometry
// (the last "*" section wins). Each call builds a fresh model; there is no
// state shared between calls and no incremental re-parse.
//
// # Error policy
//
// Parse never fails and never panics. Structural problems are reported as
// Finding values on the ParseResult, split into Errors and Warnings in a
// fixed order so output is deterministic. Malformed fragments inside a
// section degrade silently instead of producing findings: an unparseable
// charge keeps its default, an atom line with too few fields or non-numeric
// coordinates is dropped, a block or geometry section cut off by the end of
// the document is emitted with the lines it had. The worst case, parsing an
// empty document, yields a model with no sections and the two
// structural-absence errors.
package orca
