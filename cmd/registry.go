package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/research-sorter/internal/classify"
	"github.com/sells-group/research-sorter/internal/registry"
)

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Inspect the entity registry",
}

var registryShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List aliases in match priority order",
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg, err := registry.Load(cfg.Registry.Path)
		if err != nil {
			return eris.Wrap(err, "registry show")
		}
		formatRegistry(os.Stdout, reg)
		return nil
	},
}

var registryExportCmd = &cobra.Command{
	Use:   "export <path.yaml>",
	Short: "Write the active registry as YAML",
	Long:  "Writes the active registry, built-in or loaded, to a YAML file that can be edited and passed back with registry.path.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry.Load(cfg.Registry.Path)
		if err != nil {
			return eris.Wrap(err, "registry export")
		}
		if err := registry.WriteYAML(reg, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %d aliases to %s\n", reg.Len(), args[0])
		return nil
	},
}

// formatRegistry writes the alias table followed by the keyword lists.
func formatRegistry(out io.Writer, reg *registry.Registry) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tALIAS\tNAME\tBOUNDARY")
	_, _ = fmt.Fprintln(w, "-\t-----\t----\t--------")
	m := classify.NewMatcher(reg)
	for i, e := range reg.Entries() {
		boundary := ""
		if m.NeedsBoundary(e.Alias) {
			boundary = "yes"
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, e.Alias, e.Name, boundary)
	}
	_ = w.Flush()

	_, _ = fmt.Fprintf(out, "\nIndustry keywords: %v\n", reg.IndustryKeywords())
	_, _ = fmt.Fprintf(out, "Stock features: %v\n", reg.StockFeatures())
}

func init() {
	registryCmd.AddCommand(registryShowCmd)
	registryCmd.AddCommand(registryExportCmd)
	rootCmd.AddCommand(registryCmd)
}
