package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sells-group/research-sorter/internal/classify"
	"github.com/sells-group/research-sorter/internal/model"
	"github.com/sells-group/research-sorter/internal/naming"
	"github.com/sells-group/research-sorter/internal/ocr"
)

// classification is the JSON shape printed by `classify` and returned by
// POST /classify.
type classification struct {
	Filename string         `json:"filename"`
	Category model.Category `json:"category"`
	Name     string         `json:"name,omitempty"`
	Strategy string         `json:"strategy,omitempty"`
	NewName  string         `json:"new_name"`
}

func newClassification(filename string, res classify.Result) classification {
	return classification{
		Filename: filename,
		Category: res.Category,
		Name:     res.Name,
		Strategy: res.Strategy,
		NewName:  naming.Compose(filename, res),
	}
}

var classifyCmd = &cobra.Command{
	Use:   "classify <file>...",
	Short: "Classify filenames without copying anything",
	Long:  "Prints the classification and canonical name of each argument as JSON lines. Arguments that name existing PDFs are read for the content fallback unless --no-read is set.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cls, err := initClassifier(cfg.Registry)
		if err != nil {
			return err
		}

		var reader *ocr.Reader
		noRead, _ := cmd.Flags().GetBool("no-read")
		if !noRead {
			if reader, err = initReader(cfg.OCR); err != nil {
				return err
			}
		}
		text, _ := cmd.Flags().GetString("text")

		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		for _, arg := range args {
			if err := enc.Encode(classifyArg(ctx, cls, reader, arg, text)); err != nil {
				return err
			}
		}
		return nil
	},
}

// classifyArg classifies one path. Explicit text wins over reading the file.
func classifyArg(ctx context.Context, cls *classify.Classifier, reader *ocr.Reader, arg, text string) classification {
	name := filepath.Base(arg)
	in := classify.Input{Filename: name}

	switch {
	case text != "":
		in.Page = func(context.Context) model.PageText { return model.TextOf(text) }
	case reader != nil:
		if _, err := os.Stat(arg); err == nil {
			in.Page = func(ctx context.Context) model.PageText { return reader.FirstPage(ctx, arg) }
		}
	}

	return newClassification(name, cls.Classify(ctx, in))
}

func init() {
	classifyCmd.Flags().String("text", "", "page-one text to use for the content fallback")
	classifyCmd.Flags().Bool("no-read", false, "never read PDF files from disk")
	rootCmd.AddCommand(classifyCmd)
}
