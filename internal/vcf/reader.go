package vcf

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/variantlab/varcheck/internal/variant"
)

// RecordSource yields variant records one at a time.
type RecordSource interface {
	// Next returns the next record, or nil when the input is exhausted.
	Next() (*variant.Record, error)
	Close() error
}

// Reader streams variant records from a VCF file. Only the first eight
// columns are read; genotype and sample columns are ignored.
type Reader struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	lineNumber int
	header     []string
}

// NewReader opens a VCF file for record streaming. Supports both plain
// and gzipped files; compression is detected from the gzip magic bytes
// rather than the file name.
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vcf file: %w", err)
	}

	r := &Reader{file: file}

	buf := make([]byte, 2)
	_, err = file.Read(buf)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("read vcf header: %w", err)
	}

	_, err = file.Seek(0, 0)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("seek vcf file: %w", err)
	}

	// gzip magic number (0x1f, 0x8b)
	if buf[0] == 0x1f && buf[1] == 0x8b {
		r.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		r.reader = bufio.NewReader(r.gzipReader)
	} else {
		r.reader = bufio.NewReader(file)
	}

	if err := r.parseHeader(); err != nil {
		r.Close()
		return nil, err
	}

	return r, nil
}

// NewReaderFrom creates a Reader from an io.Reader (e.g. stdin).
func NewReaderFrom(src io.Reader) (*Reader, error) {
	r := &Reader{reader: bufio.NewReader(src)}
	if err := r.parseHeader(); err != nil {
		return nil, err
	}
	return r, nil
}

// parseHeader reads and stores VCF header lines up to #CHROM.
func (r *Reader) parseHeader() error {
	for {
		line, err := r.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("read header: %w", err)
		}
		r.lineNumber++

		line = strings.TrimRight(line, "\r\n")

		if strings.HasPrefix(line, "##") {
			r.header = append(r.header, line)
			continue
		}

		if strings.HasPrefix(line, "#CHROM") {
			r.header = append(r.header, line)
			return nil
		}

		return &ParseError{
			Line:    r.lineNumber,
			Message: "expected #CHROM header line",
		}
	}

	return &ParseError{
		Line:    r.lineNumber,
		Message: "no #CHROM header line found",
	}
}

// Next reads the next variant record. Returns nil, nil at end of input.
func (r *Reader) Next() (*variant.Record, error) {
	line, err := r.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read record line: %w", err)
	}
	r.lineNumber++

	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return r.Next() // skip empty lines
	}

	return r.parseLine(line)
}

// parseLine extracts the validated fields from a VCF data line.
func (r *Reader) parseLine(line string) (*variant.Record, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 8 {
		return nil, &ParseError{
			Line:    r.lineNumber,
			Message: fmt.Sprintf("expected at least 8 columns, found %d", len(fields)),
		}
	}

	rec := &variant.Record{
		Chrom: variant.Str(fields[0]),
		Pos:   variant.Str(fields[1]),
	}
	if fields[3] != "." {
		rec.Ref = variant.Str(fields[3])
	}
	if fields[4] != "." {
		rec.Alt = variant.Str(fields[4])
	}

	return rec, nil
}

// SplitMultiAllelic splits a record with a comma-separated alternate
// allele into one record per allele.
func SplitMultiAllelic(r *variant.Record) []*variant.Record {
	if r.Alt == nil {
		return []*variant.Record{r}
	}

	alts := strings.Split(*r.Alt, ",")
	if len(alts) == 1 {
		return []*variant.Record{r}
	}

	records := make([]*variant.Record, len(alts))
	for i, alt := range alts {
		records[i] = &variant.Record{
			Chrom:    r.Chrom,
			Pos:      r.Pos,
			Ref:      r.Ref,
			Alt:      variant.Str(alt),
			Assembly: r.Assembly,
		}
	}

	return records
}

// Header returns the VCF header lines.
func (r *Reader) Header() []string {
	return r.header
}

// LineNumber returns the current line number being processed.
func (r *Reader) LineNumber() int {
	return r.lineNumber
}

// Close closes the reader and underlying file.
func (r *Reader) Close() error {
	if r.gzipReader != nil {
		r.gzipReader.Close()
	}
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// ParseError is an error during VCF record parsing with line context.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("vcf parse error at line %d: %s", e.Line, e.Message)
}
