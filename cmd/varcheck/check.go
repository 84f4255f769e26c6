package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/variantlab/varcheck/internal/duckdb"
	"github.com/variantlab/varcheck/internal/output"
	"github.com/variantlab/varcheck/internal/validate"
	"github.com/variantlab/varcheck/internal/variant"
	"github.com/variantlab/varcheck/internal/vcf"
)

func newCheckCmd(verbose *bool) *cobra.Command {
	var (
		assembly  string
		workers   int
		scanLines int
		showAll   bool
		storePath string
	)

	cmd := &cobra.Command{
		Use:   "check <file.vcf>",
		Short: "Validate a VCF file's structure and its variant records",
		Example: `  varcheck check input.vcf
  varcheck check --assembly GRCh38 input.vcf.gz
  varcheck check --all --store results.duckdb cohort.vcf.gz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("assembly") {
				assembly = viper.GetString("assembly")
			}
			if !cmd.Flags().Changed("workers") {
				workers = viper.GetInt("workers")
			}
			if !cmd.Flags().Changed("scan-lines") {
				scanLines = viper.GetInt("scan_lines")
			}
			return runCheck(args[0], assembly, workers, scanLines, showAll, storePath, *verbose)
		},
	}

	cmd.Flags().StringVar(&assembly, "assembly", "", "Assembly to attach to each record (e.g. GRCh38)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Validation workers (0 = number of CPUs)")
	cmd.Flags().IntVar(&scanLines, "scan-lines", vcf.DefaultScanLines, "Lines inspected during the structure check")
	cmd.Flags().BoolVar(&showAll, "all", false, "Report accepted records too, not only rejections")
	cmd.Flags().StringVar(&storePath, "store", "", "Write per-record outcomes to a DuckDB file")

	return cmd
}

func runCheck(path, assembly string, workers, scanLines int, showAll bool, storePath string, verbose bool) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	checker := vcf.NewChecker()
	if scanLines > 0 {
		checker.ScanLines = scanLines
	}
	if err := checker.CheckFile(path); err != nil {
		return fmt.Errorf("structure check failed: %w", err)
	}
	logger.Debug("structure check passed", zap.String("file", path))

	reader, err := vcf.NewReader(path)
	if err != nil {
		return err
	}
	defer reader.Close()

	validator := validate.New()
	validator.SetLogger(logger)

	items := make(chan validate.Item, 64)
	var readErr error

	go func() {
		defer close(items)
		seq := 0
		for {
			rec, err := reader.Next()
			if err != nil {
				readErr = fmt.Errorf("read record: %w", err)
				return
			}
			if rec == nil {
				return
			}
			if assembly != "" {
				rec.Assembly = variant.Str(assembly)
			}

			// Multi-allelic records are validated per alternate allele.
			for _, split := range vcf.SplitMultiAllelic(rec) {
				items <- validate.Item{Seq: seq, Record: split}
				seq++
			}
		}
	}()

	results := validator.ParallelCheck(items, workers)

	report := output.NewReportWriter(os.Stdout, showAll)
	if err := report.WriteHeader(); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}

	var stored []validate.Outcome
	if err := validate.OrderedCollect(results, func(o validate.Outcome) error {
		if storePath != "" {
			stored = append(stored, o)
		}
		return report.WriteOutcome(o.Record, o.Err)
	}); err != nil {
		return err
	}

	if readErr != nil {
		return readErr
	}

	if err := report.Flush(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	report.WriteSummary(os.Stderr)

	if storePath != "" {
		store, err := duckdb.Open(storePath)
		if err != nil {
			return fmt.Errorf("open outcome store: %w", err)
		}
		defer store.Close()

		if err := store.WriteOutcomes(stored); err != nil {
			return fmt.Errorf("store outcomes: %w", err)
		}
		logger.Info("outcomes stored",
			zap.String("path", storePath),
			zap.Int("records", len(stored)))
	}

	_, _, rejected := report.Summary()
	if rejected > 0 {
		return fmt.Errorf("%d record(s) failed validation", rejected)
	}
	return nil
}
