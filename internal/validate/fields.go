package validate

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/variantlab/varcheck/internal/refdata"
)

// validChromosomes is the accepted set for field-level chromosome checks.
// "M" appears alongside "MT" because inputs are checked before the
// M-to-MT normalization step.
var validChromosomes = map[string]struct{}{
	"1": {}, "2": {}, "3": {}, "4": {}, "5": {}, "6": {}, "7": {},
	"8": {}, "9": {}, "10": {}, "11": {}, "12": {}, "13": {}, "14": {},
	"15": {}, "16": {}, "17": {}, "18": {}, "19": {}, "20": {}, "21": {},
	"22": {}, "X": {}, "Y": {}, "M": {}, "MT": {},
}

// Validator checks variant fields and records against a reference catalog.
type Validator struct {
	catalog *refdata.Catalog
	logger  *zap.Logger
}

// New returns a Validator backed by the default reference catalog.
func New() *Validator {
	return &Validator{
		catalog: refdata.Default(),
		logger:  zap.NewNop(),
	}
}

// NewWithCatalog returns a Validator backed by the given catalog.
func NewWithCatalog(c *refdata.Catalog) *Validator {
	return &Validator{
		catalog: c,
		logger:  zap.NewNop(),
	}
}

// SetLogger sets the logger used to report rejections during batch runs.
func (v *Validator) SetLogger(l *zap.Logger) {
	v.logger = l
}

// Assembly reports whether name is a recognized reference assembly.
// Matching is case-insensitive; the empty string is invalid.
func (v *Validator) Assembly(name string) bool {
	return refdata.KnownAssembly(name)
}

// Chromosome reports whether chrom is a valid chromosome name.
// The input must match exactly: leading or trailing whitespace is
// rejected rather than trimmed. Any "CHR" substring is stripped before
// the membership test.
func (v *Validator) Chromosome(chrom string) bool {
	if chrom == "" {
		return false
	}
	if strings.TrimSpace(chrom) != chrom {
		return false
	}
	key := stripChr(chrom)
	_, ok := validChromosomes[key]
	return ok
}

// stripChr uppercases chrom and removes every "CHR" substring.
func stripChr(chrom string) string {
	return strings.ReplaceAll(strings.ToUpper(chrom), "CHR", "")
}

// Coordinates reports whether the start/end pair is a valid region on
// chrom. Both coordinates arrive as text and must parse as integers, be
// at least 1, satisfy end >= start, and fit within the catalog bound for
// the chromosome. Chromosomes missing from the catalog fall back to the
// permissive default bound rather than failing.
func (v *Validator) Coordinates(chrom, start, end string) bool {
	if !v.Chromosome(chrom) {
		return false
	}

	s, err := strconv.ParseInt(strings.TrimSpace(start), 10, 64)
	if err != nil {
		return false
	}
	e, err := strconv.ParseInt(strings.TrimSpace(end), 10, 64)
	if err != nil {
		return false
	}

	if s < 1 || e < 1 {
		return false
	}
	if e < s {
		return false
	}

	max := v.catalog.MaxPosition(stripChr(chrom))
	return s <= max && e <= max
}

// ReferenceAllele reports whether allele is a valid reference allele:
// non-empty after trimming, no embedded spaces, and either the "-"
// deletion/insertion placeholder or a string of A/C/G/T bases. Ambiguous
// bases ("N") are rejected.
func (v *Validator) ReferenceAllele(allele string) bool {
	return validAllele(allele)
}

// AlternateAllele applies the same rules as ReferenceAllele.
func (v *Validator) AlternateAllele(allele string) bool {
	return validAllele(allele)
}

func validAllele(allele string) bool {
	allele = strings.TrimSpace(allele)
	if allele == "" {
		return false
	}
	if strings.Contains(allele, " ") {
		return false
	}

	allele = strings.ToUpper(allele)
	if allele == "-" {
		return true
	}

	for _, c := range allele {
		switch c {
		case 'A', 'C', 'G', 'T':
		default:
			return false
		}
	}
	return true
}
