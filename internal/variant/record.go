// Package variant defines the variant record entity and pure
// normalization helpers for chromosome names, positions, and alleles.
package variant

import "fmt"

// Record holds the fields of a genomic variant under validation.
// Every field is optional: a nil pointer means the field was absent from
// the input, which is a different state from a present-but-invalid value.
// Position is carried as text because upstream sources may deliver it
// either as a number or as a string.
type Record struct {
	Chrom    *string
	Pos      *string
	Ref      *string
	Alt      *string
	Assembly *string
}

// Str returns a pointer to s, for populating optional Record fields.
func Str(s string) *string {
	return &s
}

// Pos returns a pointer to the decimal form of p.
func Pos(p int64) *string {
	s := fmt.Sprintf("%d", p)
	return &s
}

// String renders the record in chrom:pos ref>alt form for log and report
// output. Absent fields render as ".".
func (r *Record) String() string {
	return fmt.Sprintf("%s:%s %s>%s",
		orDot(r.Chrom), orDot(r.Pos), orDot(r.Ref), orDot(r.Alt))
}

func orDot(s *string) string {
	if s == nil {
		return "."
	}
	return *s
}
