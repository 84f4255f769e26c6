package variant

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeChromosome canonicalizes a chromosome name: leading "chr"
// prefixes are stripped (any case), "M" maps to "MT", and the result is
// uppercased. Stacked prefixes are stripped in one pass so the function
// is idempotent for every input.
func NormalizeChromosome(chrom string) string {
	for len(chrom) >= 3 && strings.EqualFold(chrom[:3], "chr") {
		chrom = chrom[3:]
	}
	if chrom == "M" || chrom == "m" {
		chrom = "MT"
	}
	return strings.ToUpper(chrom)
}

// NormalizePosition parses pos as an integer and returns its absolute
// value. It performs no range validation; a non-numeric input returns the
// parse error unchanged.
func NormalizePosition(pos string) (int64, error) {
	p, err := strconv.ParseInt(strings.TrimSpace(pos), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse position: %w", err)
	}
	if p < 0 {
		p = -p
	}
	return p, nil
}

// NormalizeAlleles trims and uppercases both alleles, then repeatedly
// drops a shared leading character while both strings are longer than one
// character. This is a syntactic common-prefix trim only; it does not
// left-align indels against a reference sequence.
func NormalizeAlleles(ref, alt string) (string, string) {
	ref = strings.ToUpper(strings.TrimSpace(ref))
	alt = strings.ToUpper(strings.TrimSpace(alt))

	for len(ref) > 1 && len(alt) > 1 && ref[0] == alt[0] {
		ref = ref[1:]
		alt = alt[1:]
	}

	return ref, alt
}
