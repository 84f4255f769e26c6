package validate

import (
	"strconv"
	"strings"

	"github.com/variantlab/varcheck/internal/variant"
)

// checkRecord runs the record checks in order and returns the first
// failure, or nil when the record is accepted. Both public record
// entry points are adapters over this function, so the boolean and the
// error-returning modes cannot disagree about which records pass.
func (v *Validator) checkRecord(r *variant.Record) *Error {
	if r.Chrom == nil {
		return newError(KindMissingField, "missing chromosome attribute")
	}
	if r.Pos == nil {
		return newError(KindMissingField, "missing position attribute")
	}

	if !v.Chromosome(*r.Chrom) {
		return newError(KindInvalidChromosome, "invalid chromosome: %q", *r.Chrom)
	}

	pos, err := strconv.ParseInt(strings.TrimSpace(*r.Pos), 10, 64)
	if err != nil {
		return newError(KindInvalidPosition, "position is not an integer: %q", *r.Pos)
	}
	if pos < 1 {
		return newError(KindInvalidPosition, "position must be at least 1, got %d", pos)
	}

	max := v.catalog.MaxPosition(stripChr(*r.Chrom))
	if pos > max {
		return newError(KindPositionOutOfRange,
			"position %d exceeds chromosome %s length %d", pos, *r.Chrom, max)
	}

	if r.Assembly != nil && *r.Assembly != "" && !v.Assembly(*r.Assembly) {
		return newError(KindInvalidAssembly, "unrecognized assembly: %q", *r.Assembly)
	}

	// An alternate allele never stands alone, whatever its content.
	if r.Alt != nil && r.Ref == nil {
		return newError(KindAltWithoutRef,
			"alternate allele present without a reference allele")
	}

	if r.Ref != nil && !v.ReferenceAllele(*r.Ref) {
		return newError(KindInvalidAllele, "invalid reference allele: %q", *r.Ref)
	}
	if r.Alt != nil && !v.AlternateAllele(*r.Alt) {
		return newError(KindInvalidAllele, "invalid alternate allele: %q", *r.Alt)
	}

	return nil
}

// Record reports whether the record passes all checks. The failure
// reason is discarded; callers that need it should use CheckRecord.
func (v *Validator) Record(r *variant.Record) bool {
	return v.checkRecord(r) == nil
}

// CheckRecord returns nil when the record is accepted, or a *Error
// carrying the specific failed rule's kind and message.
func (v *Validator) CheckRecord(r *variant.Record) error {
	if err := v.checkRecord(r); err != nil {
		return err
	}
	return nil
}
