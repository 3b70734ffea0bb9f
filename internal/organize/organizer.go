// Package organize discovers research files in a source folder, classifies
// and renames them, and copies them into the target taxonomy tree.
package organize

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/research-sorter/internal/classify"
	"github.com/sells-group/research-sorter/internal/model"
	"github.com/sells-group/research-sorter/internal/naming"
	"github.com/sells-group/research-sorter/internal/ocr"
	"github.com/sells-group/research-sorter/internal/store"
)

const (
	progressTailRunes = 30
	progressHeadRunes = 40
)

// Options controls a sort run.
type Options struct {
	Layout Layout
	Policy CollisionPolicy
	DryRun bool
}

// Organizer runs classify → compose → place → copy over a source folder,
// one file at a time.
type Organizer struct {
	cls    *classify.Classifier
	reader *ocr.Reader
	st     store.Store
	opts   Options
}

// New creates an Organizer. reader and st may be nil: a nil reader disables
// the content fallback and a nil store skips the run ledger.
func New(cls *classify.Classifier, reader *ocr.Reader, st store.Store, opts Options) *Organizer {
	if opts.Policy == "" {
		opts.Policy = CollisionOverwrite
	}
	return &Organizer{cls: cls, reader: reader, st: st, opts: opts}
}

// Report is the outcome of a sort run.
type Report struct {
	RunID       string             `json:"run_id,omitempty"`
	SourceDir   string             `json:"source_dir"`
	TargetDir   string             `json:"target_dir"`
	DryRun      bool               `json:"dry_run"`
	Interrupted bool               `json:"interrupted"`
	Summary     model.RunSummary   `json:"summary"`
	Files       []model.FileRecord `json:"files"`
}

// Run sorts every research file in sourceDir. Per-file failures are counted
// and recorded, never returned; only discovery and ledger setup errors abort
// the run. A cancelled ctx stops the run between files.
func (o *Organizer) Run(ctx context.Context, sourceDir string) (*Report, error) {
	log := zap.L().With(zap.String("source", sourceDir), zap.String("target", o.opts.Layout.Root))

	files, err := Discover(sourceDir)
	if err != nil {
		return nil, err
	}

	report := &Report{
		SourceDir: sourceDir,
		TargetDir: o.opts.Layout.Root,
		DryRun:    o.opts.DryRun,
	}

	if o.st != nil {
		run, err := o.st.CreateRun(ctx, model.Run{
			SourceDir: sourceDir,
			TargetDir: o.opts.Layout.Root,
			DryRun:    o.opts.DryRun,
		})
		if err != nil {
			return nil, eris.Wrap(err, "organize: create run")
		}
		report.RunID = run.ID
		log = log.With(zap.String("run_id", run.ID))
	}

	log.Info("scanned source folder", zap.Int("files", len(files)), zap.Bool("dry_run", o.opts.DryRun))

	resolver := NewCollisionResolver(o.opts.Policy)
	for i, path := range files {
		if ctx.Err() != nil {
			log.Warn("interrupted", zap.Int("processed", i), zap.Int("total", len(files)))
			report.Interrupted = true
			break
		}

		rec, ok := o.processFile(ctx, i+1, path, resolver)
		if !ok {
			log.Warn("interrupted",
				zap.Int("processed", i),
				zap.Int("total", len(files)),
				zap.String("abandoned", filepath.Base(path)),
			)
			report.Interrupted = true
			break
		}
		rec.RunID = report.RunID
		count(&report.Summary, rec)

		if o.st != nil {
			saved, err := o.st.RecordFile(ctx, rec)
			if err != nil {
				log.Warn("ledger write failed", zap.String("file", rec.SourceName), zap.Error(err))
			} else {
				rec = *saved
			}
		}
		report.Files = append(report.Files, rec)
	}

	if o.st != nil {
		status := model.RunStatusComplete
		if report.Interrupted {
			status = model.RunStatusFailed
		}
		// The ledger outlives an interrupt so the partial run is still closed.
		if err := o.st.CompleteRun(context.WithoutCancel(ctx), report.RunID, status, report.Summary); err != nil {
			log.Warn("ledger complete failed", zap.Error(err))
		}
	}

	log.Info("sort complete",
		zap.Int("company", report.Summary.Company),
		zap.Int("industry", report.Summary.Industry),
		zap.Int("unclassified", report.Summary.Unclassified),
		zap.Int("failed", report.Summary.Failed),
	)
	return report, nil
}

// processFile classifies, names, and copies a single file. It reports false
// when ctx was cancelled during classification; the file is then left
// untouched and unrecorded.
func (o *Organizer) processFile(ctx context.Context, index int, path string, resolver *CollisionResolver) (model.FileRecord, bool) {
	name := filepath.Base(path)

	res := o.cls.Classify(ctx, classify.Input{Filename: name, Page: o.pageSource(path)})
	if ctx.Err() != nil {
		return model.FileRecord{}, false
	}
	newName := naming.Compose(name, res)
	p := o.opts.Layout.Place(path, res, newName)
	dst := resolver.Resolve(path, p.TargetPath())

	rec := model.FileRecord{
		SourceName: name,
		Category:   res.Category,
		Entity:     res.Name,
		Strategy:   res.Strategy,
		TargetPath: dst,
	}

	if !o.opts.DryRun {
		if err := o.place(p, dst); err != nil {
			zap.L().Error("copy failed",
				zap.Int("index", index),
				zap.String("file", name),
				zap.String("target", dst),
				zap.Error(err),
			)
			rec.Error = err.Error()
			return rec, true
		}
	}

	o.logProgress(index, p, filepath.Base(dst))
	return rec, true
}

func (o *Organizer) place(p Placement, dst string) error {
	for _, dir := range append([]string{p.TargetDir}, p.Ensure...) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return eris.Wrapf(err, "organize: create dir %s", dir)
		}
	}
	return copyFile(p.Source, dst)
}

// pageSource reads page-one text only when the classifier asks for it.
func (o *Organizer) pageSource(path string) classify.PageSource {
	return func(ctx context.Context) model.PageText {
		return o.reader.FirstPage(ctx, path)
	}
}

func (o *Organizer) logProgress(index int, p Placement, name string) {
	shown := tailRunes(name, progressTailRunes)
	if p.Result.IsUnclassified() {
		shown = headRunes(name, progressHeadRunes) + "..."
	}
	zap.L().Info("sorted",
		zap.Int("index", index),
		zap.String("category", string(p.Result.Category)),
		zap.String("icon", o.opts.Layout.icon(p)),
		zap.String("label", o.opts.Layout.label(p.Result)),
		zap.String("name", shown),
		zap.Bool("dry_run", o.opts.DryRun),
	)
}

func count(s *model.RunSummary, rec model.FileRecord) {
	if rec.Error != "" {
		s.Failed++
		return
	}
	switch rec.Category {
	case model.CategoryCompany:
		s.Company++
	case model.CategoryIndustry:
		s.Industry++
	default:
		s.Unclassified++
	}
}

func tailRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}

func headRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
