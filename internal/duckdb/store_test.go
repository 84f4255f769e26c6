package duckdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variantlab/varcheck/internal/validate"
	"github.com/variantlab/varcheck/internal/variant"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func outcome(seq int, chrom, pos string, err error) validate.Outcome {
	return validate.Outcome{
		Seq: seq,
		Record: &variant.Record{
			Chrom: variant.Str(chrom),
			Pos:   variant.Str(pos),
			Ref:   variant.Str("A"),
			Alt:   variant.Str("T"),
		},
		Err: err,
	}
}

func TestOpenClose(t *testing.T) {
	s := openInMemory(t)
	assert.NotNil(t, s.DB())
}

func TestWriteAndCountOutcomes(t *testing.T) {
	s := openInMemory(t)

	outcomes := []validate.Outcome{
		outcome(0, "1", "100", nil),
		outcome(1, "99", "100",
			&validate.Error{Kind: validate.KindInvalidChromosome, Message: `invalid chromosome: "99"`}),
		outcome(2, "1", "0",
			&validate.Error{Kind: validate.KindInvalidPosition, Message: "position must be at least 1, got 0"}),
		outcome(3, "2", "-7",
			&validate.Error{Kind: validate.KindInvalidPosition, Message: "position must be at least 1, got -7"}),
	}

	require.NoError(t, s.WriteOutcomes(outcomes))

	counts, err := s.CountByKind()
	require.NoError(t, err)

	assert.Equal(t, int64(1), counts["invalid_chromosome"])
	assert.Equal(t, int64(2), counts["invalid_position"])
	assert.NotContains(t, counts, "")
}

func TestRejectedOrdered(t *testing.T) {
	s := openInMemory(t)

	outcomes := []validate.Outcome{
		outcome(0, "1", "100", nil),
		outcome(1, "99", "100",
			&validate.Error{Kind: validate.KindInvalidChromosome, Message: `invalid chromosome: "99"`}),
		outcome(2, "1", "100", nil),
		outcome(3, "1", "0",
			&validate.Error{Kind: validate.KindInvalidPosition, Message: "position must be at least 1, got 0"}),
	}
	require.NoError(t, s.WriteOutcomes(outcomes))

	rejected, err := s.Rejected()
	require.NoError(t, err)
	require.Len(t, rejected, 2)

	assert.Equal(t, 1, rejected[0].Seq)
	assert.Equal(t, "99", *rejected[0].Record.Chrom)
	assert.Contains(t, rejected[0].Err.Error(), "invalid chromosome")

	assert.Equal(t, 3, rejected[1].Seq)
}

func TestAbsentFieldsStoredAsNull(t *testing.T) {
	s := openInMemory(t)

	o := validate.Outcome{
		Seq: 0,
		Record: &variant.Record{
			Chrom: variant.Str("1"),
			Pos:   variant.Str("100"),
		},
		Err: nil,
	}
	require.NoError(t, s.WriteOutcomes([]validate.Outcome{o}))

	var refNull bool
	row := s.DB().QueryRow(`SELECT ref IS NULL FROM validation_results WHERE seq = 0`)
	require.NoError(t, row.Scan(&refNull))
	assert.True(t, refNull)
}

func TestWriteOutcomesEmptyBatch(t *testing.T) {
	s := openInMemory(t)
	require.NoError(t, s.WriteOutcomes(nil))
}
