package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/research-sorter/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func TestSQLite_Migrate_Idempotent(t *testing.T) {
	st := newTestSQLiteStore(t)
	require.NoError(t, st.Migrate(context.Background()))
}

func TestSQLite_CreateAndGetRun(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, model.Run{SourceDir: "in", TargetDir: "out", DryRun: true})
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, model.RunStatusRunning, run.Status)

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, "in", got.SourceDir)
	assert.Equal(t, "out", got.TargetDir)
	assert.True(t, got.DryRun)
	assert.Equal(t, model.RunStatusRunning, got.Status)
	assert.Zero(t, got.Summary.Total())
}

func TestSQLite_GetRun_NotFound(t *testing.T) {
	st := newTestSQLiteStore(t)

	_, err := st.GetRun(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestSQLite_CompleteRun(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, model.Run{SourceDir: "in", TargetDir: "out"})
	require.NoError(t, err)

	summary := model.RunSummary{Company: 3, Industry: 1, Unclassified: 2}
	require.NoError(t, st.CompleteRun(ctx, run.ID, model.RunStatusComplete, summary))

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusComplete, got.Status)
	assert.Equal(t, summary, got.Summary)
	assert.Equal(t, 6, got.Summary.Total())
}

func TestSQLite_CompleteRun_NotFound(t *testing.T) {
	st := newTestSQLiteStore(t)

	err := st.CompleteRun(context.Background(), "missing", model.RunStatusFailed, model.RunSummary{})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestSQLite_ListRuns(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	first, err := st.CreateRun(ctx, model.Run{SourceDir: "a", TargetDir: "out"})
	require.NoError(t, err)
	second, err := st.CreateRun(ctx, model.Run{SourceDir: "b", TargetDir: "out"})
	require.NoError(t, err)
	require.NoError(t, st.CompleteRun(ctx, first.ID, model.RunStatusComplete, model.RunSummary{Company: 1}))

	all, err := st.ListRuns(ctx, RunFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)

	complete, err := st.ListRuns(ctx, RunFilter{Status: model.RunStatusComplete})
	require.NoError(t, err)
	require.Len(t, complete, 1)
	assert.Equal(t, first.ID, complete[0].ID)

	limited, err := st.ListRuns(ctx, RunFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, first.ID, limited[0].ID)
}

func TestSQLite_RecordAndListFiles(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, model.Run{SourceDir: "in", TargetDir: "out"})
	require.NoError(t, err)

	records := []model.FileRecord{
		{RunID: run.ID, SourceName: "GS_Tencent_(0700)_Update.pdf", Category: model.CategoryCompany, Entity: "腾讯", Strategy: "ticker", TargetPath: "out/腾讯/报告/x.pdf"},
		{RunID: run.ID, SourceName: "MS_Macro_Outlook.pdf", Category: model.CategoryIndustry, Strategy: "industry", TargetPath: "out/行业报告/y.pdf"},
		{RunID: run.ID, SourceName: "broken.pdf", Category: model.CategoryUnclassified, Error: "copy failed"},
	}
	for _, rec := range records {
		saved, err := st.RecordFile(ctx, rec)
		require.NoError(t, err)
		assert.NotEmpty(t, saved.ID)
		assert.False(t, saved.CreatedAt.IsZero())
	}

	files, err := st.ListFiles(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "GS_Tencent_(0700)_Update.pdf", files[0].SourceName)
	assert.Equal(t, model.CategoryCompany, files[0].Category)
	assert.Equal(t, "腾讯", files[0].Entity)
	assert.Equal(t, model.CategoryIndustry, files[1].Category)
	assert.Equal(t, "copy failed", files[2].Error)

	other, err := st.ListFiles(ctx, "other-run")
	require.NoError(t, err)
	assert.Empty(t, other)
}
