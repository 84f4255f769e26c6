package vcf

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/variantlab/varcheck/internal/variant"
)

func TestReader_Records(t *testing.T) {
	r, err := NewReader(filepath.Join("testdata", "sample.vcf"))
	if err != nil {
		t.Fatalf("failed to create reader: %v", err)
	}
	defer r.Close()

	rec, err := r.Next()
	if err != nil {
		t.Fatalf("failed to read record: %v", err)
	}
	if rec == nil {
		t.Fatal("expected a record, got nil")
	}

	if rec.Chrom == nil || *rec.Chrom != "12" {
		t.Errorf("expected chrom 12, got %v", rec.Chrom)
	}
	if rec.Pos == nil || *rec.Pos != "25245350" {
		t.Errorf("expected pos 25245350, got %v", rec.Pos)
	}
	if rec.Ref == nil || *rec.Ref != "C" {
		t.Errorf("expected ref C, got %v", rec.Ref)
	}
	if rec.Alt == nil || *rec.Alt != "A" {
		t.Errorf("expected alt A, got %v", rec.Alt)
	}

	count := 1
	for {
		rec, err := r.Next()
		if err != nil {
			t.Fatalf("error reading record: %v", err)
		}
		if rec == nil {
			break
		}
		count++
	}
	if count != 4 {
		t.Errorf("expected 4 records, got %d", count)
	}
}

func TestReader_Gzip(t *testing.T) {
	r, err := NewReader(filepath.Join("testdata", "sample_gz.vcf.gz"))
	if err != nil {
		t.Fatalf("failed to create gzip reader: %v", err)
	}
	defer r.Close()

	count := 0
	for {
		rec, err := r.Next()
		if err != nil {
			t.Fatalf("error reading record: %v", err)
		}
		if rec == nil {
			break
		}
		count++
	}
	if count != 4 {
		t.Errorf("expected 4 records, got %d", count)
	}
}

func TestReader_DotAltIsAbsent(t *testing.T) {
	r, err := NewReader(filepath.Join("testdata", "sample.vcf"))
	if err != nil {
		t.Fatalf("failed to create reader: %v", err)
	}
	defer r.Close()

	var last *variant.Record
	for {
		rec, err := r.Next()
		if err != nil {
			t.Fatalf("error reading record: %v", err)
		}
		if rec == nil {
			break
		}
		last = rec
	}

	// Final record has ALT "." which maps to an absent field.
	if last == nil {
		t.Fatal("expected records")
	}
	if last.Alt != nil {
		t.Errorf("expected absent alt for '.', got %q", *last.Alt)
	}
	if last.Ref == nil || *last.Ref != "G" {
		t.Errorf("expected ref G, got %v", last.Ref)
	}
}

func TestReader_Header(t *testing.T) {
	r, err := NewReader(filepath.Join("testdata", "sample.vcf"))
	if err != nil {
		t.Fatalf("failed to create reader: %v", err)
	}
	defer r.Close()

	header := r.Header()
	if len(header) != 4 {
		t.Fatalf("expected 4 header lines, got %d", len(header))
	}
	if header[0] != "##fileformat=VCFv4.2" {
		t.Errorf("unexpected first header line: %q", header[0])
	}
	if !strings.HasPrefix(header[len(header)-1], "#CHROM") {
		t.Errorf("expected #CHROM as final header line, got %q", header[len(header)-1])
	}
}

func TestReader_FromReader(t *testing.T) {
	input := "##fileformat=VCFv4.2\n" +
		"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n" +
		"1\t100\t.\tA\tT\t.\tPASS\t.\n"

	r, err := NewReaderFrom(strings.NewReader(input))
	if err != nil {
		t.Fatalf("failed to create reader: %v", err)
	}

	rec, err := r.Next()
	if err != nil {
		t.Fatalf("failed to read record: %v", err)
	}
	if rec == nil || *rec.Chrom != "1" {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestReader_MissingHeaderLine(t *testing.T) {
	input := "##fileformat=VCFv4.2\n1\t100\t.\tA\tT\t.\tPASS\t.\n"

	_, err := NewReaderFrom(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error for data line before #CHROM")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Errorf("expected *ParseError, got %T", err)
	}
}

func TestReader_TruncatedLine(t *testing.T) {
	input := "##fileformat=VCFv4.2\n" +
		"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n" +
		"1\t100\t.\tA\n"

	r, err := NewReaderFrom(strings.NewReader(input))
	if err != nil {
		t.Fatalf("failed to create reader: %v", err)
	}

	_, err = r.Next()
	if err == nil {
		t.Fatal("expected error for truncated line")
	}
	if !strings.Contains(err.Error(), "8 columns") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSplitMultiAllelic(t *testing.T) {
	tests := []struct {
		name     string
		alt      *string
		expected int
	}{
		{"single allele", variant.Str("C"), 1},
		{"two alleles", variant.Str("C,T"), 2},
		{"three alleles", variant.Str("C,T,G"), 3},
		{"absent alt", nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &variant.Record{
				Chrom: variant.Str("12"),
				Pos:   variant.Str("100"),
				Ref:   variant.Str("A"),
				Alt:   tt.alt,
			}

			split := SplitMultiAllelic(rec)
			if len(split) != tt.expected {
				t.Errorf("expected %d records, got %d", tt.expected, len(split))
			}
			for _, s := range split {
				if s.Alt != nil && strings.Contains(*s.Alt, ",") {
					t.Errorf("split record should not contain comma in alt: %s", *s.Alt)
				}
			}
		})
	}
}

func TestParseError(t *testing.T) {
	err := &ParseError{Line: 42, Message: "expected 8 columns, found 7"}

	expected := "vcf parse error at line 42: expected 8 columns, found 7"
	if err.Error() != expected {
		t.Errorf("error message mismatch: got %q, want %q", err.Error(), expected)
	}
}
