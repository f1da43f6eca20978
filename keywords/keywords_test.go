package keywords

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		found    bool
		category Category
	}{
		{"B3LYP", true, DFTFunctional},
		{"PBE0", true, DFTFunctional},
		{"revPBE", true, DFTFunctional},
		{"HF", true, WavefunctionMethod},
		{"CCSD(T)", true, WavefunctionMethod},
		{"def2-TZVP", true, BasisSet},
		{"6-311++G**", true, BasisSet},
		{"OPT", true, JobType},
		{"OPT FREQ", true, JobType},

		// Lookup is exact: canonical casing only.
		{"b3lyp", false, 0},
		{"DEF2-TZVP", false, 0},
		{"Opt", false, 0},
		{"XTB2", false, 0},
		{"", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ok := Lookup(tt.name)
			if ok != tt.found {
				t.Fatalf("Lookup(%q) found = %v, want %v", tt.name, ok, tt.found)
			}
			if !ok {
				return
			}
			if k.Name != tt.name {
				t.Errorf("Name = %q, want %q", k.Name, tt.name)
			}
			if k.Category != tt.category {
				t.Errorf("Category = %v, want %v", k.Category, tt.category)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		token    string
		name     string
		category Category
	}{
		{"b3lyp", "B3LYP", DFTFunctional},
		{"B3LYP", "B3LYP", DFTFunctional},
		{"revpbe", "revPBE", DFTFunctional},
		{"REVPBE", "revPBE", DFTFunctional},
		{"hf", "HF", WavefunctionMethod},
		{"ccsd(t)", "CCSD(T)", WavefunctionMethod},
		{"def2-tzvp", "def2-TZVP", BasisSet},
		{"DEF2-TZVP", "def2-TZVP", BasisSet},
		{"cc-pvtz", "cc-pVTZ", BasisSet},
		{"opt", "OPT", JobType},
		{"Freq", "FREQ", JobType},
		{"md", "MD", JobType},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			k, ok := Classify(tt.token)
			if !ok {
				t.Fatalf("Classify(%q) not found", tt.token)
			}
			if k.Name != tt.name {
				t.Errorf("Name = %q, want %q", k.Name, tt.name)
			}
			if k.Category != tt.category {
				t.Errorf("Category = %v, want %v", k.Category, tt.category)
			}
		})
	}
}

func TestClassifyUnknown(t *testing.T) {
	tests := []string{"", "XTB2", "TightSCF", "D3BJ", "maxcore", "H"}

	for _, token := range tests {
		t.Run(token, func(t *testing.T) {
			if k, ok := Classify(token); ok {
				t.Errorf("Classify(%q) = %q, want not found", token, k.Name)
			}
		})
	}
}

func TestClassifyRoundTrip(t *testing.T) {
	// Every canonical name classifies back to itself; no two table entries
	// collide after case folding.
	for _, want := range All() {
		k, ok := Classify(want.Name)
		if !ok {
			t.Errorf("Classify(%q) not found", want.Name)
			continue
		}
		if k.Name != want.Name {
			t.Errorf("Classify(%q) = %q, want %q", want.Name, k.Name, want.Name)
		}
		if k.Category != want.Category {
			t.Errorf("Classify(%q) category = %v, want %v", want.Name, k.Category, want.Category)
		}
	}
}

func TestAllTableOrder(t *testing.T) {
	all := All()

	counts := map[Category]int{}
	for _, k := range all {
		counts[k.Category]++
	}

	if got, want := counts[DFTFunctional], 21; got != want {
		t.Errorf("DFT functionals = %d, want %d", got, want)
	}
	if got, want := counts[WavefunctionMethod], 16; got != want {
		t.Errorf("wavefunction methods = %d, want %d", got, want)
	}
	if got, want := counts[BasisSet], 29; got != want {
		t.Errorf("basis sets = %d, want %d", got, want)
	}
	if got, want := counts[JobType], 10; got != want {
		t.Errorf("job types = %d, want %d", got, want)
	}
	if got, want := len(all), 76; got != want {
		t.Errorf("len(All()) = %d, want %d", got, want)
	}

	if all[0].Name != "B3LYP" {
		t.Errorf("All()[0] = %q, want %q", all[0].Name, "B3LYP")
	}
	if all[len(all)-1].Name != "MOLECULAR DYNAMICS" {
		t.Errorf("All() last = %q, want %q", all[len(all)-1].Name, "MOLECULAR DYNAMICS")
	}

	// Categories appear as contiguous runs in table order.
	wantOrder := []Category{DFTFunctional, WavefunctionMethod, BasisSet, JobType}
	idx := 0
	for _, k := range all {
		for idx < len(wantOrder) && k.Category != wantOrder[idx] {
			idx++
		}
		if idx == len(wantOrder) {
			t.Fatalf("category %v of %q out of table order", k.Category, k.Name)
		}
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{DFTFunctional, "dft-functional"},
		{WavefunctionMethod, "wavefunction-method"},
		{BasisSet, "basis-set"},
		{JobType, "job-type"},
		{Category(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.category.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", int(tt.category), got, tt.want)
		}
	}
}

func TestLookupBlock(t *testing.T) {
	tests := []struct {
		name   string
		found  bool
		values int
	}{
		{"maxcore", true, 5},
		{"pal", true, 1},
		{"method", true, 3},
		{"scf", true, 3},
		{"basis", true, 0},
		{"coords", true, 0},

		// Block names are a lowercase namespace.
		{"MAXCORE", false, 0},
		{"Pal", false, 0},
		{"tddft", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := LookupBlock(tt.name)
			if ok != tt.found {
				t.Fatalf("LookupBlock(%q) found = %v, want %v", tt.name, ok, tt.found)
			}
			if !ok {
				return
			}
			if b.Name != tt.name {
				t.Errorf("Name = %q, want %q", b.Name, tt.name)
			}
			if len(b.Values) != tt.values {
				t.Errorf("len(Values) = %d, want %d", len(b.Values), tt.values)
			}
			if b.Description == "" {
				t.Error("Description is empty")
			}
			if !strings.HasPrefix(b.Example, "%"+tt.name) {
				t.Errorf("Example = %q, want %%%s prefix", b.Example, tt.name)
			}
		})
	}
}

func TestBlockValues(t *testing.T) {
	scf, ok := LookupBlock("scf")
	if !ok {
		t.Fatal("LookupBlock(scf) not found")
	}
	for _, v := range scf.Values {
		if !v.Property {
			t.Errorf("scf value %q Property = false, want true", v.Label)
		}
		if v.Insert != v.Label+" " {
			t.Errorf("scf value %q Insert = %q, want %q", v.Label, v.Insert, v.Label+" ")
		}
	}

	maxcore, ok := LookupBlock("maxcore")
	if !ok {
		t.Fatal("LookupBlock(maxcore) not found")
	}
	for _, v := range maxcore.Values {
		if v.Property {
			t.Errorf("maxcore value %q Property = true, want false", v.Label)
		}
		if !strings.HasSuffix(v.Label, " MB") {
			t.Errorf("maxcore value label = %q, want MB suffix", v.Label)
		}
		if v.Insert+" MB" != v.Label {
			t.Errorf("maxcore value insert = %q, label %q", v.Insert, v.Label)
		}
	}

	method, ok := LookupBlock("method")
	if !ok {
		t.Fatal("LookupBlock(method) not found")
	}
	want := []string{"D3", "D3BJ", "D4"}
	if len(method.Values) != len(want) {
		t.Fatalf("method values = %d, want %d", len(method.Values), len(want))
	}
	for i, v := range method.Values {
		if v.Label != want[i] {
			t.Errorf("method value %d = %q, want %q", i, v.Label, want[i])
		}
		if v.Insert != "" && v.Insert != v.Label {
			t.Errorf("method value %q Insert = %q", v.Label, v.Insert)
		}
	}
}

func TestBlocksOrder(t *testing.T) {
	names := []string{
		"maxcore", "pal", "method", "basis", "scf", "geom", "freq",
		"md", "loc", "plots", "cp", "elprop", "coords",
	}

	blocks := Blocks()
	if len(blocks) != len(names) {
		t.Fatalf("len(Blocks()) = %d, want %d", len(blocks), len(names))
	}
	for i, want := range names {
		if blocks[i].Name != want {
			t.Errorf("Blocks()[%d] = %q, want %q", i, blocks[i].Name, want)
		}
	}
}

func TestIsElement(t *testing.T) {
	tests := []struct {
		symbol string
		want   bool
	}{
		{"H", true},
		{"He", true},
		{"C", true},
		{"Fe", true},
		{"W", true},
		{"Rn", true},

		// Case-sensitive membership.
		{"h", false},
		{"FE", false},
		{"fe", false},

		{"Xx", false},
		{"Uue", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			if got := IsElement(tt.symbol); got != tt.want {
				t.Errorf("IsElement(%q) = %v, want %v", tt.symbol, got, tt.want)
			}
		})
	}

	if len(Elements) != 86 {
		t.Errorf("len(Elements) = %d, want 86", len(Elements))
	}
	for _, e := range Elements {
		if !IsElement(e) {
			t.Errorf("IsElement(%q) = false for listed element", e)
		}
	}
}
