package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/research-sorter/internal/config"
	"github.com/sells-group/research-sorter/internal/manifest"
	"github.com/sells-group/research-sorter/internal/organize"
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Classify, rename, and copy a folder of research files",
	Long:  "Scans the source folder for PDF and spreadsheet files, classifies each one by company or industry, and copies it under a canonical name into the target tree.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		applySortFlags(cmd, cfg)
		report, err := runSort(ctx, cfg, sortDryRun)
		if err != nil {
			return err
		}

		formatSummary(os.Stdout, report)
		return nil
	},
}

// applySortFlags overrides config values with explicitly set flags.
func applySortFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("source") {
		c.Sort.SourceDir, _ = flags.GetString("source")
	}
	if flags.Changed("target") {
		c.Sort.TargetDir, _ = flags.GetString("target")
	}
	if flags.Changed("on-collision") {
		c.Sort.OnCollision, _ = flags.GetString("on-collision")
	}
	if flags.Changed("manifest") {
		c.Sort.ManifestPath, _ = flags.GetString("manifest")
	}
	if flags.Changed("registry") {
		c.Registry.Path, _ = flags.GetString("registry")
	}
	if flags.Changed("ocr") {
		c.OCR.Provider, _ = flags.GetString("ocr")
	}
}

// runSort wires the organizer from config and sorts the source folder.
func runSort(ctx context.Context, c *config.Config, dryRun bool) (*organize.Report, error) {
	if err := c.Validate("sort"); err != nil {
		return nil, err
	}

	policy, err := organize.ParseCollisionPolicy(c.Sort.OnCollision)
	if err != nil {
		return nil, err
	}

	cls, err := initClassifier(c.Registry)
	if err != nil {
		return nil, err
	}

	reader, err := initReader(c.OCR)
	if err != nil {
		return nil, err
	}

	st, err := initStore(ctx, c.Store)
	if err != nil {
		return nil, eris.Wrap(err, "open run ledger")
	}
	if st != nil {
		defer st.Close() //nolint:errcheck
	}

	org := organize.New(cls, reader, st, organize.Options{
		Layout: organize.LayoutFromConfig(c.Sort),
		Policy: policy,
		DryRun: dryRun,
	})

	report, err := org.Run(ctx, c.Sort.SourceDir)
	if err != nil {
		return nil, eris.Wrap(err, "sort")
	}

	if c.Sort.ManifestPath != "" {
		if err := manifest.Write(c.Sort.ManifestPath, report.Summary, report.Files); err != nil {
			return nil, err
		}
		zap.L().Info("manifest written", zap.String("path", c.Sort.ManifestPath))
	}

	return report, nil
}

// formatSummary writes the end-of-run counts to w.
func formatSummary(out io.Writer, r *organize.Report) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if r.DryRun {
		_, _ = fmt.Fprintln(w, "Dry run: no files were copied.")
	}
	if r.Interrupted {
		_, _ = fmt.Fprintln(w, "Interrupted: remaining files were skipped.")
	}
	if r.RunID != "" {
		_, _ = fmt.Fprintf(w, "Run:\t%s\n", r.RunID)
	}
	_, _ = fmt.Fprintf(w, "Company reports:\t%d\n", r.Summary.Company)
	_, _ = fmt.Fprintf(w, "Industry reports:\t%d\n", r.Summary.Industry)
	_, _ = fmt.Fprintf(w, "Unclassified:\t%d\n", r.Summary.Unclassified)
	if r.Summary.Failed > 0 {
		_, _ = fmt.Fprintf(w, "Failed:\t%d\n", r.Summary.Failed)
	}
	_, _ = fmt.Fprintf(w, "Output:\t%s\n", r.TargetDir)
	_ = w.Flush()
}

var sortDryRun bool

func init() {
	sortCmd.Flags().String("source", "", "source folder (default from config)")
	sortCmd.Flags().String("target", "", "target folder (default from config)")
	sortCmd.Flags().String("on-collision", "", "overwrite or suffix (default from config)")
	sortCmd.Flags().String("manifest", "", "write an XLSX manifest to this path")
	sortCmd.Flags().String("registry", "", "registry file (.yaml or .xlsx); empty uses the built-in registry")
	sortCmd.Flags().String("ocr", "", "PDF text provider: local, mistral, or none")
	sortCmd.Flags().BoolVar(&sortDryRun, "dry-run", false, "classify and report without copying")
	rootCmd.AddCommand(sortCmd)
}
