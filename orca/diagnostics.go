package orca

// Diagnostic message texts. Editors match on these (the maxcore quick fix
// triggers on its message), so they are fixed strings, not format templates.
const (
	msgMissingSimpleInput = "Missing simple input line (!) with method and basis set"
	msgNoMethod           = "No method specified in simple input (e.g., B3LYP, HF, MP2)"
	msgNoBasisSet         = "No basis set specified in simple input (e.g., def2-TZVP, 6-31G*)"
	msgMissingGeometry    = "Missing geometry section (* xyz charge multiplicity ...)"
	msgMissingMaxcore     = "Missing %maxcore setting. Recommended: %maxcore 2000-4000 (MB per core)"
)

// diagnose fills the findings lists from the structural model. The order is
// fixed: simple-input errors, geometry errors, then warnings. Document-level
// findings sit on line 0.
func diagnose(result *ParseResult) {
	if result.SimpleInput == nil {
		result.Errors = append(result.Errors, Finding{
			Message:  msgMissingSimpleInput,
			Line:     0,
			Severity: SeverityError,
		})
	} else {
		if len(result.SimpleInput.Methods) == 0 {
			result.Errors = append(result.Errors, Finding{
				Message:  msgNoMethod,
				Line:     result.SimpleInput.Line,
				Severity: SeverityError,
			})
		}
		if len(result.SimpleInput.BasisSets) == 0 {
			result.Errors = append(result.Errors, Finding{
				Message:  msgNoBasisSet,
				Line:     result.SimpleInput.Line,
				Severity: SeverityError,
			})
		}
	}

	if result.Geometry == nil {
		result.Errors = append(result.Errors, Finding{
			Message:  msgMissingGeometry,
			Line:     0,
			Severity: SeverityError,
		})
	} else {
		for _, atom := range result.Geometry.Atoms {
			if !atom.Valid() {
				result.Errors = append(result.Errors, Finding{
					Message:  "Invalid element symbol: " + atom.Element,
					Line:     atom.Line,
					Severity: SeverityError,
				})
			}
		}
	}

	hasMaxcore := false
	for _, b := range result.Blocks {
		if b.Name == "maxcore" {
			hasMaxcore = true
			break
		}
	}
	if !hasMaxcore {
		result.Warnings = append(result.Warnings, Finding{
			Message:  msgMissingMaxcore,
			Line:     0,
			Severity: SeverityWarning,
		})
	}
}
