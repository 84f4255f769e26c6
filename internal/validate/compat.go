package validate

import (
	"fmt"

	"github.com/variantlab/varcheck/internal/variant"
)

// Compatibility wrappers for callers that expect (ok, reason) pairs
// instead of booleans or errors. Each wrapper delegates to the
// corresponding check; none reimplements a rule, so the two surfaces
// cannot drift apart.

// Explain validates a full record and returns the failure reason when it
// is rejected. The reason is empty for accepted records.
func (v *Validator) Explain(r *variant.Record) (bool, string) {
	if err := v.checkRecord(r); err != nil {
		return false, err.Message
	}
	return true, ""
}

// ExplainChromosome wraps Chromosome with a reason string.
func (v *Validator) ExplainChromosome(chrom string) (bool, string) {
	if !v.Chromosome(chrom) {
		return false, fmt.Sprintf("invalid chromosome: %q", chrom)
	}
	return true, ""
}

// ExplainAssembly wraps Assembly with a reason string.
func (v *Validator) ExplainAssembly(name string) (bool, string) {
	if !v.Assembly(name) {
		return false, fmt.Sprintf("unrecognized assembly: %q", name)
	}
	return true, ""
}

// ExplainCoordinates wraps Coordinates with a reason string.
func (v *Validator) ExplainCoordinates(chrom, start, end string) (bool, string) {
	if !v.Coordinates(chrom, start, end) {
		return false, fmt.Sprintf("invalid coordinates %s:%s-%s", chrom, start, end)
	}
	return true, ""
}

// ExplainReferenceAllele wraps ReferenceAllele with a reason string.
func (v *Validator) ExplainReferenceAllele(allele string) (bool, string) {
	if !v.ReferenceAllele(allele) {
		return false, fmt.Sprintf("invalid reference allele: %q", allele)
	}
	return true, ""
}

// ExplainAlternateAllele wraps AlternateAllele with a reason string.
func (v *Validator) ExplainAlternateAllele(allele string) (bool, string) {
	if !v.AlternateAllele(allele) {
		return false, fmt.Sprintf("invalid alternate allele: %q", allele)
	}
	return true, ""
}
