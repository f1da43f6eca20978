package orca

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/orcatools/orcals/keywords"
)

var (
	blockNameRe = regexp.MustCompile(`^%\s*(\w+)`)
	nprocsRe    = regexp.MustCompile(`(?i)nprocs\s+(\d+)`)
	maxiterRe   = regexp.MustCompile(`maxiter\s+(\d+)`)
)

// Parse scans text line by line, builds the document model, and runs the
// diagnostics over it. It cannot fail; see the package documentation for the
// degradation rules.
func Parse(text string) *ParseResult {
	result := &ParseResult{}
	lines := strings.Split(text, "\n")

	for i := 0; i < len(lines); {
		stripped := strings.TrimSpace(lines[i])

		switch {
		case stripped == "" || strings.HasPrefix(stripped, "#"):
			i++

		case strings.HasPrefix(stripped, "!"):
			// Only the first simple input line counts.
			if result.SimpleInput == nil {
				result.SimpleInput = parseSimpleInput(stripped, i)
			}
			i++

		case strings.HasPrefix(stripped, "%"):
			block, end := parseBlock(lines, i)
			if block != nil {
				result.Blocks = append(result.Blocks, *block)
			}
			i = end + 1

		case strings.HasPrefix(stripped, "*"):
			// A later geometry section replaces an earlier one.
			geom, end := parseGeometry(lines, i)
			if geom != nil {
				result.Geometry = geom
			}
			i = end + 1

		default:
			i++
		}
	}

	diagnose(result)
	return result
}

// parseSimpleInput tokenizes a "!" line and sorts each token into one of the
// directive's lists. Tokens match the registry case-insensitively and the
// registry's canonical spelling is what gets recorded.
func parseSimpleInput(line string, lineNumber int) *SimpleInput {
	in := &SimpleInput{Line: lineNumber}

	for _, token := range strings.Fields(line[1:]) {
		k, ok := keywords.Classify(token)
		if !ok {
			in.Other = append(in.Other, token)
			continue
		}
		switch k.Category {
		case keywords.DFTFunctional, keywords.WavefunctionMethod:
			in.Methods = append(in.Methods, k.Name)
		case keywords.BasisSet:
			in.BasisSets = append(in.BasisSets, k.Name)
		case keywords.JobType:
			in.JobTypes = append(in.JobTypes, k.Name)
		}
	}
	return in
}

// parseBlock reads a "%" settings block starting at start and returns it
// together with the index of its last line. A "%" line without an
// extractable name yields (nil, start) so the caller advances one line. An
// opener containing "end" is a complete single-line block; anything else
// consumes lines until a bare "end" or the end of the document, whichever
// comes first, and is emitted either way.
func parseBlock(lines []string, start int) (*Block, int) {
	first := strings.TrimSpace(lines[start])

	m := blockNameRe.FindStringSubmatch(first)
	if m == nil {
		return nil, start
	}
	block := &Block{
		Name:      strings.ToLower(m[1]),
		Params:    map[string]any{},
		LineStart: start,
	}

	if strings.Contains(strings.ToLower(first), "end") {
		block.Raw = first
		block.LineEnd = start
		extractParams(block, first)
		return block, start
	}

	content := []string{first}
	i := start + 1
	for ; i < len(lines); i++ {
		content = append(content, lines[i])
		if strings.ToLower(strings.TrimSpace(lines[i])) == "end" {
			break
		}
	}
	// i sits on the "end" line, or at len(lines) when the document ran out.
	block.Raw = strings.Join(content, "\n")
	block.LineEnd = i
	extractParams(block, block.Raw)
	return block, i
}

// extractParams pulls the typed parameters out of a block's raw text. Only a
// handful of block names have extraction rules; every other block keeps an
// empty parameter map. Values that fail to parse are dropped without a
// finding.
func extractParams(block *Block, content string) {
	lines := strings.Split(content, "\n")

	switch block.Name {
	case "maxcore":
		for _, line := range lines {
			parts := strings.Fields(line)
			if len(parts) >= 2 && strings.ToLower(parts[0]) == "%maxcore" {
				if mem, err := strconv.Atoi(parts[1]); err == nil {
					block.Params["memory"] = mem
				}
			}
		}

	case "pal":
		for _, line := range lines {
			if m := nprocsRe.FindStringSubmatch(line); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil {
					block.Params["nprocs"] = n
				}
			}
		}

	case "method":
		for _, line := range lines {
			s := strings.ToLower(strings.TrimSpace(line))
			// "d3" is a substring of "d3bj", so d3bj must win first.
			switch {
			case strings.Contains(s, "d3bj"):
				block.Params["dispersion"] = "D3BJ"
			case strings.Contains(s, "d3"):
				block.Params["dispersion"] = "D3"
			case strings.Contains(s, "d4"):
				block.Params["dispersion"] = "D4"
			}
		}

	case "scf":
		for _, line := range lines {
			s := strings.ToLower(strings.TrimSpace(line))
			if m := maxiterRe.FindStringSubmatch(s); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil {
					block.Params["maxiter"] = n
				}
			}
		}
	}
}

// parseGeometry reads a "*" geometry section starting at start and returns
// it with the index of its last line. A header with fewer than two tokens
// abandons the section. Atom lines need an element token plus three numeric
// coordinates; anything else is skipped. A bare "*" closes the section, the
// end of the document truncates it silently.
func parseGeometry(lines []string, start int) (*Geometry, int) {
	parts := strings.Fields(strings.TrimSpace(lines[start]))
	if len(parts) < 2 {
		return nil, start
	}

	geom := &Geometry{
		Multiplicity: 1,
		Format:       strings.ToLower(parts[1]),
		LineStart:    start,
	}
	if len(parts) >= 4 {
		// Multiplicity is read only after the charge parsed; a bad charge
		// keeps both defaults, a bad multiplicity keeps the parsed charge.
		if charge, err := strconv.Atoi(parts[2]); err == nil {
			geom.Charge = charge
			if mult, err := strconv.Atoi(parts[3]); err == nil {
				geom.Multiplicity = mult
			}
		}
	}

	end := -1
	i := start + 1
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "*" {
			end = i
			break
		}

		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		x, errX := strconv.ParseFloat(fields[1], 64)
		y, errY := strconv.ParseFloat(fields[2], 64)
		z, errZ := strconv.ParseFloat(fields[3], 64)
		if errX != nil || errY != nil || errZ != nil {
			continue
		}
		geom.Atoms = append(geom.Atoms, Atom{
			Element: fields[0],
			X:       x,
			Y:       y,
			Z:       z,
			Line:    i,
		})
	}
	if end < 0 {
		end = len(lines)
	}
	geom.LineEnd = end
	return geom, end
}
