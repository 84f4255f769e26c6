package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/variantlab/varcheck/internal/variant"
)

func TestExplainRecord(t *testing.T) {
	v := New()

	ok, reason := v.Explain(validRecord())
	assert.True(t, ok)
	assert.Empty(t, reason)

	r := validRecord()
	r.Chrom = variant.Str("99")
	ok, reason = v.Explain(r)
	assert.False(t, ok)
	assert.Equal(t, `invalid chromosome: "99"`, reason)
}

// The facade must agree with the error-returning mode on every input.
func TestExplainAgreesWithCheckRecord(t *testing.T) {
	v := New()

	records := []*variant.Record{
		validRecord(),
		{},
		{Chrom: variant.Str("1")},
		{Chrom: variant.Str("1"), Pos: variant.Str("-3")},
		{Chrom: variant.Str("1"), Pos: variant.Str("100"), Alt: variant.Str("A")},
		{Chrom: variant.Str("chrM"), Pos: variant.Str("100"), Ref: variant.Str("N")},
	}

	for _, r := range records {
		ok, reason := v.Explain(r)
		err := v.CheckRecord(r)
		if err == nil {
			assert.True(t, ok)
			assert.Empty(t, reason)
		} else {
			assert.False(t, ok)
			assert.Equal(t, err.Error(), reason)
		}
	}
}

func TestExplainFields(t *testing.T) {
	v := New()

	ok, reason := v.ExplainChromosome("chr7")
	assert.True(t, ok)
	assert.Empty(t, reason)

	ok, reason = v.ExplainChromosome(" 1")
	assert.False(t, ok)
	assert.NotEmpty(t, reason)

	ok, _ = v.ExplainAssembly("hg19")
	assert.True(t, ok)

	ok, reason = v.ExplainAssembly("hg17")
	assert.False(t, ok)
	assert.Contains(t, reason, "hg17")

	ok, _ = v.ExplainCoordinates("1", "1", "249250621")
	assert.True(t, ok)

	ok, reason = v.ExplainCoordinates("1", "1", "249250622")
	assert.False(t, ok)
	assert.Contains(t, reason, "249250622")

	ok, _ = v.ExplainReferenceAllele("-")
	assert.True(t, ok)

	ok, _ = v.ExplainAlternateAllele("N")
	assert.False(t, ok)
}
