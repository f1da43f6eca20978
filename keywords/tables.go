package keywords

// Keyword tables for the ORCA simple input line. Name casing follows the
// ORCA manual; Classify matches case-insensitively but always reports these
// spellings.

var dftFunctionals = []Keyword{
	// Hybrid functionals
	{Name: "B3LYP", Type: "hybrid", Description: "B3LYP hybrid functional (20% HF exchange)"},
	{Name: "PBE0", Type: "hybrid", Description: "PBE0 hybrid functional (25% HF exchange)"},
	{Name: "TPSS0", Type: "hybrid", Description: "TPSS0 hybrid functional"},
	{Name: "M06", Type: "hybrid", Description: "M06 hybrid meta-GGA functional"},
	{Name: "M06-2X", Type: "hybrid", Description: "M06-2X hybrid meta-GGA functional (54% HF exchange)"},
	{Name: "M06L", Type: "meta-gga", Description: "M06L meta-GGA functional"},
	{Name: "M06-HF", Type: "hybrid", Description: "M06-HF high-HF exchange functional (100% HF)"},
	{Name: "ωB97X-D", Type: "hybrid", Description: "ωB97X-D range-separated hybrid functional with dispersion"},
	{Name: "ωB97X-V", Type: "hybrid", Description: "ωB97X-V range-separated hybrid functional"},
	{Name: "B97-D", Type: "gga", Description: "B97-D GGA functional with dispersion"},
	{Name: "B97-D3", Type: "gga", Description: "B97-D3 GGA functional with D3 dispersion"},
	{Name: "B2PLYP", Type: "double-hybrid", Description: "B2PLYP double-hybrid functional"},
	{Name: "DSD-BLYP", Type: "double-hybrid", Description: "DSD-BLYP double-hybrid functional"},

	// GGA functionals
	{Name: "PBE", Type: "gga", Description: "PBE GGA functional"},
	{Name: "BP86", Type: "gga", Description: "Becke-Perdew 86 GGA functional"},
	{Name: "BLYP", Type: "gga", Description: "Becke-Lee-Yang-Parr GGA functional"},
	{Name: "TPSS", Type: "meta-gga", Description: "TPSS meta-GGA functional"},
	{Name: "B97", Type: "gga", Description: "B97 GGA functional"},
	{Name: "revPBE", Type: "gga", Description: "Revised PBE GGA functional"},
	{Name: "RPBE", Type: "gga", Description: "RPBE GGA functional"},
	{Name: "OLYP", Type: "gga", Description: "Handy-Cohen optimized LYP functional"},
}

var wavefunctionMethods = []Keyword{
	{Name: "HF", Description: "Hartree-Fock method"},
	{Name: "RHF", Description: "Restricted Hartree-Fock"},
	{Name: "UHF", Description: "Unrestricted Hartree-Fock"},
	{Name: "ROHF", Description: "Restricted Open-shell Hartree-Fock"},
	{Name: "MP2", Description: "Møller-Plesset second-order perturbation theory"},
	{Name: "RI-MP2", Description: "Resolution-of-Identity MP2"},
	{Name: "SCS-MP2", Description: "Spin-component scaled MP2"},
	{Name: "MP3", Description: "Møller-Plesset third-order perturbation theory"},
	{Name: "CCSD", Description: "Coupled Cluster Singles and Doubles"},
	{Name: "CCSD(T)", Description: "CCSD with perturbative triples (gold standard)"},
	{Name: "DLPNO-CCSD", Description: "Domain-based Local Pair Natural Orbital CCSD"},
	{Name: "DLPNO-CCSD(T)", Description: "DLPNO-CCSD with perturbative triples"},
	{Name: "CASSCF", Description: "Complete Active Space SCF"},
	{Name: "NEVPT2", Description: "N-electron valence state PT2"},
	{Name: "CASPT2", Description: "Complete Active Space PT2"},
	{Name: "MRPT", Description: "Multireference perturbation theory"},
}

var basisSets = []Keyword{
	// Pople basis sets
	{Name: "STO-3G", Type: "minimal", Description: "Minimal basis set (Slater-type orbitals with 3 Gaussians)"},
	{Name: "3-21G", Type: "small", Description: "Small split-valence basis set"},
	{Name: "6-31G", Type: "medium", Description: "Split-valence basis set with 6 Gaussians for core"},
	{Name: "6-31G*", Type: "medium-polarized", Description: "6-31G with d polarization on non-hydrogen atoms"},
	{Name: "6-31G**", Type: "medium-polarized", Description: "6-31G with d polarization on non-H and p on H"},
	{Name: "6-31+G*", Type: "medium-diffuse", Description: "6-31G* with diffuse functions on non-H"},
	{Name: "6-311G", Type: "large", Description: "Triple-zeta split-valence basis"},
	{Name: "6-311G*", Type: "large-polarized", Description: "6-311G with d polarization"},
	{Name: "6-311G**", Type: "large-polarized", Description: "6-311G with d on non-H and p on H"},
	{Name: "6-311+G*", Type: "large-diffuse", Description: "6-311G* with diffuse functions"},
	{Name: "6-311++G**", Type: "large-diffuse", Description: "6-311G** with diffuse on all atoms"},

	// Karlsruhe basis sets (def2)
	{Name: "def2-SVP", Type: "medium", Description: "Karlsruhe split-valence polarized basis"},
	{Name: "def2-TZVP", Type: "large", Description: "Karlsruhe triple-zeta valence polarized basis"},
	{Name: "def2-TZVPP", Type: "large", Description: "Karlsruhe triple-zeta with more polarization"},
	{Name: "def2-QZVP", Type: "very-large", Description: "Karlsruhe quadruple-zeta valence polarized"},
	{Name: "def2-QZVPP", Type: "very-large", Description: "Karlsruhe quadruple-zeta with more polarization"},
	{Name: "def2-SVPD", Type: "medium-diffuse", Description: "def2-SVP with diffuse functions"},
	{Name: "def2-TZVPD", Type: "large-diffuse", Description: "def2-TZVP with diffuse functions"},

	// Dunning correlation-consistent basis sets
	{Name: "cc-pVDZ", Type: "medium", Description: "Correlation-consistent polarized valence double-zeta"},
	{Name: "cc-pVTZ", Type: "large", Description: "Correlation-consistent polarized valence triple-zeta"},
	{Name: "cc-pVQZ", Type: "very-large", Description: "Correlation-consistent polarized valence quadruple-zeta"},
	{Name: "cc-pV5Z", Type: "huge", Description: "Correlation-consistent polarized valence quintuple-zeta"},
	{Name: "aug-cc-pVDZ", Type: "medium-diffuse", Description: "cc-pVDZ with diffuse functions"},
	{Name: "aug-cc-pVTZ", Type: "large-diffuse", Description: "cc-pVTZ with diffuse functions"},
	{Name: "aug-cc-pVQZ", Type: "very-large-diffuse", Description: "cc-pVQZ with diffuse functions"},

	// Auxiliary basis sets
	{Name: "def2/J", Type: "auxiliary", Description: "Karlsruhe auxiliary basis for Coulomb fitting"},
	{Name: "def2-TZVP/C", Type: "auxiliary", Description: "Karlsruhe auxiliary basis for correlation (TZVP)"},
	{Name: "def2-QZVP/C", Type: "auxiliary", Description: "Karlsruhe auxiliary basis for correlation (QZVP)"},
	{Name: "cc-pVTZ-f12-optri", Type: "auxiliary", Description: "Optimal RI auxiliary basis for F12 methods"},
}

var jobTypes = []Keyword{
	{Name: "SP", Description: "Single point energy calculation"},
	{Name: "OPT", Description: "Geometry optimization"},
	{Name: "FREQ", Description: "Frequency calculation (analytical or numerical)"},
	{Name: "NUMFREQ", Description: "Numerical frequency calculation"},
	{Name: "OPT FREQ", Description: "Geometry optimization followed by frequency"},
	{Name: "TS", Description: "Transition state optimization"},
	{Name: "IRC", Description: "Intrinsic reaction coordinate calculation"},
	{Name: "SCAN", Description: "Potential energy surface scan"},
	{Name: "MD", Description: "Molecular dynamics simulation"},
	{Name: "MOLECULAR DYNAMICS", Description: "Molecular dynamics simulation"},
}

var blocks = []Block{
	{
		Name:        "maxcore",
		Description: "Set memory per core in MB",
		Example:     "%maxcore 4000",
		Values: []BlockValue{
			{Label: "1000 MB", Insert: "1000"},
			{Label: "2000 MB", Insert: "2000"},
			{Label: "4000 MB", Insert: "4000"},
			{Label: "8000 MB", Insert: "8000"},
			{Label: "16000 MB", Insert: "16000"},
		},
	},
	{
		Name:        "pal",
		Description: "Parallelization settings",
		Example:     "%pal nprocs 4 end",
		Values: []BlockValue{
			{Label: "nprocs", Insert: "nprocs ", Property: true},
		},
	},
	{
		Name:        "method",
		Description: "Method-specific settings",
		Example:     "%method D3BJ end",
		Values: []BlockValue{
			{Label: "D3"},
			{Label: "D3BJ"},
			{Label: "D4"},
		},
	},
	{
		Name:        "basis",
		Description: "Basis set settings",
		Example:     `%basis newGTO H "cc-pVTZ" end`,
	},
	{
		Name:        "scf",
		Description: "SCF convergence settings",
		Example:     "%scf maxiter 100 end",
		Values: []BlockValue{
			{Label: "maxiter", Insert: "maxiter ", Property: true},
			{Label: "convergence", Insert: "convergence ", Property: true},
			{Label: "NRMaxIt", Insert: "NRMaxIt ", Property: true},
		},
	},
	{
		Name:        "geom",
		Description: "Geometry optimization settings",
		Example:     "%geom maxiter 50 end",
	},
	{
		Name:        "freq",
		Description: "Frequency calculation settings",
		Example:     "%freq temp 298.15 end",
	},
	{
		Name:        "md",
		Description: "Molecular dynamics settings",
		Example:     "%md timestep 0.5 end",
	},
	{
		Name:        "loc",
		Description: "Orbital localization settings",
		Example:     "%loc LocMet IBO end",
	},
	{
		Name:        "plots",
		Description: "Plot generation settings",
		Example:     "%plots format cube end",
	},
	{
		Name:        "cp",
		Description: "Counterpoise correction settings",
		Example:     "%cp fragments 2 end",
	},
	{
		Name:        "elprop",
		Description: "Electronic properties settings",
		Example:     "%elprop dipole true end",
	},
	{
		Name:        "coords",
		Description: "Coordinate system settings",
		Example:     "%coords internals on end",
	},
}
