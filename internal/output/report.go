// Package output provides report formatting for validation runs.
package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/variantlab/varcheck/internal/validate"
	"github.com/variantlab/varcheck/internal/variant"
)

// ReportWriter writes per-record validation outcomes as a tab-aligned
// report.
type ReportWriter struct {
	w        *tabwriter.Writer
	accepted int
	rejected int
	total    int
	showAll  bool // if false, only show rejected records
}

// NewReportWriter creates a new validation report writer.
func NewReportWriter(w io.Writer, showAll bool) *ReportWriter {
	return &ReportWriter{
		w:       tabwriter.NewWriter(w, 0, 0, 2, ' ', 0),
		showAll: showAll,
	}
}

// WriteHeader writes the report column header.
func (r *ReportWriter) WriteHeader() error {
	_, err := fmt.Fprintln(r.w, "Variant\tNormalized\tStatus\tKind\tReason")
	return err
}

// WriteOutcome writes one record's validation outcome. Accepted records
// are only written when the writer was created with showAll.
func (r *ReportWriter) WriteOutcome(rec *variant.Record, verr error) error {
	r.total++

	if verr == nil {
		r.accepted++
		if !r.showAll {
			return nil
		}
		_, err := fmt.Fprintf(r.w, "%s\t%s\tPASS\t\t\n", rec, normalized(rec))
		return err
	}

	r.rejected++
	_, err := fmt.Fprintf(r.w, "%s\t%s\tFAIL\t%s\t%s\n",
		rec, normalized(rec), validate.KindOf(verr), verr.Error())
	return err
}

// normalized renders the canonical form of a record for side-by-side
// comparison with the raw input. Records whose fields cannot be
// canonicalized (absent pieces, unparseable position) render empty.
func normalized(rec *variant.Record) string {
	if rec.Chrom == nil || rec.Pos == nil || rec.Ref == nil || rec.Alt == nil {
		return ""
	}
	pos, err := variant.NormalizePosition(*rec.Pos)
	if err != nil {
		return ""
	}
	ref, alt := variant.NormalizeAlleles(*rec.Ref, *rec.Alt)
	return fmt.Sprintf("%s:%d %s>%s", variant.NormalizeChromosome(*rec.Chrom), pos, ref, alt)
}

// Flush flushes the writer.
func (r *ReportWriter) Flush() error {
	return r.w.Flush()
}

// Summary returns the outcome counters.
func (r *ReportWriter) Summary() (total, accepted, rejected int) {
	return r.total, r.accepted, r.rejected
}

// WriteSummary writes an aggregate summary of the run.
func (r *ReportWriter) WriteSummary(w io.Writer) {
	passRate := float64(0)
	if r.total > 0 {
		passRate = float64(r.accepted) / float64(r.total) * 100
	}
	fmt.Fprintf(w, "\nValidation Summary:\n")
	fmt.Fprintf(w, "  Total records:  %d\n", r.total)
	fmt.Fprintf(w, "  Accepted:       %d (%.1f%%)\n", r.accepted, passRate)
	fmt.Fprintf(w, "  Rejected:       %d (%.1f%%)\n", r.rejected, 100-passRate)
}
