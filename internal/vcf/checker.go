// Package vcf provides structural validation of VCF files and a bounded
// reader that streams variant records for validation.
package vcf

import (
	"bufio"
	"compress/gzip"
	"os"
	"strings"

	"github.com/variantlab/varcheck/internal/validate"
)

// DefaultScanLines bounds how many leading lines of a file are inspected
// for structural validity. Full-body parsing is out of scope.
const DefaultScanLines = 100

// requiredColumns are the mandatory VCF column header tokens.
var requiredColumns = []string{
	"#CHROM", "POS", "ID", "REF", "ALT", "QUAL", "FILTER", "INFO",
}

// Checker validates that a file is structurally a VCF. Failures are
// always reported as errors; there is no silent mode, because a
// malformed file is exceptional rather than a routine rejection.
type Checker struct {
	// ScanLines is the maximum number of leading lines inspected.
	ScanLines int
}

// NewChecker returns a Checker with the default scan bound.
func NewChecker() *Checker {
	return &Checker{ScanLines: DefaultScanLines}
}

// CheckFile validates the structure of the VCF file at path. The file
// must exist, carry a .vcf or .vcf.gz extension, open its meta section
// with a ##fileformat=VCF line, and, if a #CHROM header line appears
// within the scan window, that line must contain all mandatory column
// tokens. Token matching is substring containment, not tokenized column
// matching, to stay compatible with files accepted historically.
func (c *Checker) CheckFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &validate.Error{
				Kind:    validate.KindFileNotFound,
				Message: "file does not exist: " + path,
			}
		}
		return &validate.Error{
			Kind:    validate.KindUnreadableFile,
			Message: "cannot stat file: " + path,
			Err:     err,
		}
	}
	if !info.Mode().IsRegular() {
		return &validate.Error{
			Kind:    validate.KindFileNotFound,
			Message: "not a file: " + path,
		}
	}

	lower := strings.ToLower(path)
	gzipped := strings.HasSuffix(lower, ".vcf.gz")
	if !gzipped && !strings.HasSuffix(lower, ".vcf") {
		return &validate.Error{
			Kind:    validate.KindBadExtension,
			Message: "file must have a .vcf or .vcf.gz extension: " + path,
		}
	}

	lines, err := c.readPrefix(path, gzipped)
	if err != nil {
		return err
	}

	return c.checkLines(path, lines)
}

// readPrefix reads up to ScanLines lines from the file, decompressing
// when the name says the content is gzipped.
func (c *Checker) readPrefix(path string, gzipped bool) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &validate.Error{
			Kind:    validate.KindUnreadableFile,
			Message: "cannot open file: " + path,
			Err:     err,
		}
	}
	defer f.Close()

	var scanner *bufio.Scanner
	if gzipped {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, &validate.Error{
				Kind:    validate.KindUnreadableFile,
				Message: "cannot read gzip file: " + path,
				Err:     err,
			}
		}
		defer zr.Close()
		scanner = bufio.NewScanner(zr)
	} else {
		scanner = bufio.NewScanner(f)
	}

	maxLines := c.ScanLines
	if maxLines <= 0 {
		maxLines = DefaultScanLines
	}

	var lines []string
	for len(lines) < maxLines && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, &validate.Error{
			Kind:    validate.KindUnreadableFile,
			Message: "cannot read file: " + path,
			Err:     err,
		}
	}

	return lines, nil
}

// checkLines inspects the scanned prefix for the meta line and the
// column header line.
func (c *Checker) checkLines(path string, lines []string) error {
	allBlank := true
	var meta, header string

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		allBlank = false

		if meta == "" && strings.HasPrefix(line, "##") {
			meta = line
		}
		if strings.HasPrefix(line, "#CHROM") {
			header = line
			break
		}
	}

	if len(lines) == 0 || allBlank {
		return &validate.Error{
			Kind:    validate.KindEmptyFile,
			Message: "empty file: " + path,
		}
	}

	if !strings.HasPrefix(meta, "##fileformat=VCF") {
		return &validate.Error{
			Kind:    validate.KindMissingVCFHeader,
			Message: "missing VCF header (##fileformat=VCF) in " + path,
		}
	}

	if header != "" {
		for _, col := range requiredColumns {
			if !strings.Contains(header, col) {
				return &validate.Error{
					Kind:    validate.KindInvalidColumnHeader,
					Message: "invalid column header, missing " + col + " in " + path,
				}
			}
		}
	}

	return nil
}

// CheckFile validates path with the default scan bound.
func CheckFile(path string) error {
	return NewChecker().CheckFile(path)
}
