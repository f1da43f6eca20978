package orca

import (
	"strings"
	"testing"
)

func TestDiagnoseEmptyDocument(t *testing.T) {
	result := Parse("")

	if result.SimpleInput != nil {
		t.Errorf("SimpleInput = %+v, want nil", result.SimpleInput)
	}
	if result.Geometry != nil {
		t.Errorf("Geometry = %+v, want nil", result.Geometry)
	}
	if len(result.Blocks) != 0 {
		t.Errorf("len(Blocks) = %d, want 0", len(result.Blocks))
	}

	if len(result.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2: %+v", len(result.Errors), result.Errors)
	}
	if result.Errors[0].Message != "Missing simple input line (!) with method and basis set" {
		t.Errorf("Errors[0] = %q", result.Errors[0].Message)
	}
	if result.Errors[1].Message != "Missing geometry section (* xyz charge multiplicity ...)" {
		t.Errorf("Errors[1] = %q", result.Errors[1].Message)
	}
	for _, e := range result.Errors {
		if e.Line != 0 {
			t.Errorf("error %q on line %d, want 0", e.Message, e.Line)
		}
		if e.Severity != SeverityError {
			t.Errorf("error %q severity = %q", e.Message, e.Severity)
		}
	}

	if len(result.Warnings) != 1 {
		t.Fatalf("len(Warnings) = %d, want 1: %+v", len(result.Warnings), result.Warnings)
	}
	w := result.Warnings[0]
	if w.Message != "Missing %maxcore setting. Recommended: %maxcore 2000-4000 (MB per core)" {
		t.Errorf("Warnings[0] = %q", w.Message)
	}
	if w.Severity != SeverityWarning {
		t.Errorf("warning severity = %q", w.Severity)
	}
}

func TestDiagnoseMissingMethod(t *testing.T) {
	result := Parse("# setup\n\n! def2-SVP\n* xyz 0 1\nH 0 0 0\n*")

	if len(result.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1: %+v", len(result.Errors), result.Errors)
	}
	e := result.Errors[0]
	if e.Message != "No method specified in simple input (e.g., B3LYP, HF, MP2)" {
		t.Errorf("message = %q", e.Message)
	}
	if e.Line != 2 {
		t.Errorf("Line = %d, want 2 (the directive line)", e.Line)
	}
}

func TestDiagnoseMissingBasisSet(t *testing.T) {
	result := Parse("! B3LYP\n* xyz 0 1\nH 0 0 0\n*")

	if len(result.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1: %+v", len(result.Errors), result.Errors)
	}
	e := result.Errors[0]
	if e.Message != "No basis set specified in simple input (e.g., def2-TZVP, 6-31G*)" {
		t.Errorf("message = %q", e.Message)
	}
	if e.Line != 0 {
		t.Errorf("Line = %d, want 0", e.Line)
	}
}

func TestDiagnoseInvalidElements(t *testing.T) {
	result := Parse("! B3LYP def2-SVP\n* xyz 0 1\nXx 0 0 0\nC 0 0 0\nYy 1 2 3\n*")

	if len(result.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2: %+v", len(result.Errors), result.Errors)
	}
	if result.Errors[0].Message != "Invalid element symbol: Xx" {
		t.Errorf("Errors[0] = %q", result.Errors[0].Message)
	}
	if result.Errors[0].Line != 2 {
		t.Errorf("Errors[0].Line = %d, want 2", result.Errors[0].Line)
	}
	if result.Errors[1].Message != "Invalid element symbol: Yy" {
		t.Errorf("Errors[1] = %q", result.Errors[1].Message)
	}
	if result.Errors[1].Line != 4 {
		t.Errorf("Errors[1].Line = %d, want 4", result.Errors[1].Line)
	}

	if result.Geometry.Valid() {
		t.Error("geometry Valid() = true with invalid atoms")
	}
}

func TestDiagnoseElementCaseSensitive(t *testing.T) {
	result := Parse("! B3LYP def2-SVP\n* xyz 0 1\nFE 0 0 0\n*")

	found := false
	for _, e := range result.Errors {
		if strings.Contains(e.Message, "Invalid element symbol: FE") {
			found = true
		}
	}
	if !found {
		t.Errorf("no invalid-element error for FE: %+v", result.Errors)
	}
}

func TestDiagnoseFindingOrder(t *testing.T) {
	// No method, no basis set, one bad atom, no maxcore: the findings come
	// out in that order, errors before warnings.
	result := Parse("! TightSCF\n* xyz 0 1\nXx 0 0 0\n*")

	findings := result.Findings()
	wantPrefixes := []string{
		"No method specified",
		"No basis set specified",
		"Invalid element symbol: Xx",
		"Missing %maxcore",
	}
	if len(findings) != len(wantPrefixes) {
		t.Fatalf("len(Findings()) = %d, want %d: %+v", len(findings), len(wantPrefixes), findings)
	}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(findings[i].Message, prefix) {
			t.Errorf("findings[%d] = %q, want prefix %q", i, findings[i].Message, prefix)
		}
	}
	for i, f := range findings {
		want := SeverityError
		if i == len(findings)-1 {
			want = SeverityWarning
		}
		if f.Severity != want {
			t.Errorf("findings[%d] severity = %q, want %q", i, f.Severity, want)
		}
	}
}

func TestDiagnoseMaxcoreWarning(t *testing.T) {
	t.Run("absent block warns", func(t *testing.T) {
		result := Parse("! B3LYP def2-SVP\n* xyz 0 1\nH 0 0 0\n*")

		if len(result.Errors) != 0 {
			t.Errorf("Errors = %+v, want none", result.Errors)
		}
		if len(result.Warnings) != 1 {
			t.Fatalf("len(Warnings) = %d, want 1", len(result.Warnings))
		}
		if !strings.Contains(result.Warnings[0].Message, "Missing %maxcore") {
			t.Errorf("warning = %q", result.Warnings[0].Message)
		}
	})

	t.Run("present block silences", func(t *testing.T) {
		result := Parse("! B3LYP def2-SVP\n* xyz 0 1\nH 0 0 0\n*\n%maxcore 4000")

		if len(result.Warnings) != 0 {
			t.Errorf("Warnings = %+v, want none", result.Warnings)
		}
	})

	t.Run("block with unparseable value still counts", func(t *testing.T) {
		// The warning keys on the block's presence, not on its value.
		result := Parse("! B3LYP def2-SVP\n* xyz 0 1\nH 0 0 0\n*\n%maxcore lots")

		if len(result.Warnings) != 0 {
			t.Errorf("Warnings = %+v, want none", result.Warnings)
		}
	})
}

func TestDiagnoseGeometryHeaderAlone(t *testing.T) {
	// A header with no atoms is still a captured geometry section, so the
	// missing-geometry error stays away even though the section is invalid.
	result := Parse("* xyz 0 1")

	if result.Geometry == nil {
		t.Fatal("Geometry = nil")
	}
	if result.Geometry.Valid() {
		t.Error("Valid() = true for empty geometry")
	}
	for _, e := range result.Errors {
		if strings.Contains(e.Message, "Missing geometry") {
			t.Errorf("unexpected missing-geometry error: %+v", result.Errors)
		}
	}
}

func TestFindings(t *testing.T) {
	result := Parse("")

	findings := result.Findings()
	if len(findings) != len(result.Errors)+len(result.Warnings) {
		t.Fatalf("len(Findings()) = %d, want %d", len(findings), len(result.Errors)+len(result.Warnings))
	}
	if findings[len(findings)-1].Severity != SeverityWarning {
		t.Error("warnings must come after errors")
	}
}
