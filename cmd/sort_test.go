//go:build !integration

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/research-sorter/internal/config"
	"github.com/sells-group/research-sorter/internal/model"
	"github.com/sells-group/research-sorter/internal/organize"
)

func testSortConfig(t *testing.T) *config.Config {
	t.Helper()
	src := t.TempDir()
	for _, name := range []string{
		"GS_Tencent_(0700)_Update_Jan_5,_2024.pdf",
		"BROKER_Sector_Strategy_Outlook_Mar_1,_2023.pdf",
		"readme.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(src, name), []byte(name), 0o644))
	}

	return &config.Config{
		Store: config.StoreConfig{Driver: "sqlite", DatabaseURL: filepath.Join(t.TempDir(), "ledger.db")},
		Sort: config.SortConfig{
			SourceDir:       src,
			TargetDir:       filepath.Join(t.TempDir(), "sorted"),
			IndustryDir:     "行业报告",
			UnclassifiedDir: "_未分类文件",
			ReportDir:       "报告",
			ModelDir:        "模型",
			OnCollision:     "overwrite",
		},
		OCR: config.OCRConfig{Provider: "none"},
	}
}

func TestRunSort(t *testing.T) {
	c := testSortConfig(t)
	c.Sort.ManifestPath = filepath.Join(t.TempDir(), "manifest.xlsx")

	report, err := runSort(context.Background(), c, false)
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, model.RunSummary{Company: 1, Industry: 1}, report.Summary)
	assert.FileExists(t, filepath.Join(c.Sort.TargetDir, "腾讯控股", "报告", "GS-腾讯控股-Update-240105.pdf"))
	assert.FileExists(t, filepath.Join(c.Sort.TargetDir, "行业报告", "BROKER-Industry-Sector_Strategy_Outlook-230301.pdf"))
	assert.FileExists(t, c.Sort.ManifestPath)
}

func TestRunSort_DryRunWithoutLedger(t *testing.T) {
	c := testSortConfig(t)
	c.Store.Driver = "none"

	report, err := runSort(context.Background(), c, true)
	require.NoError(t, err)

	assert.Empty(t, report.RunID)
	assert.True(t, report.DryRun)
	assert.Equal(t, 2, report.Summary.Total())
	assert.NoDirExists(t, c.Sort.TargetDir)
}

func TestRunSort_InvalidConfig(t *testing.T) {
	c := testSortConfig(t)
	c.Sort.OnCollision = "rename"

	_, err := runSort(context.Background(), c, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "on_collision")
}

func TestRunSort_MissingSource(t *testing.T) {
	c := testSortConfig(t)
	c.Store.Driver = "none"
	c.Sort.SourceDir = filepath.Join(t.TempDir(), "missing")

	_, err := runSort(context.Background(), c, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read source dir")
}

func TestFormatSummary(t *testing.T) {
	var buf bytes.Buffer
	formatSummary(&buf, &organize.Report{
		RunID:     "abc12345",
		TargetDir: "Company_Research_Sorted",
		DryRun:    true,
		Summary:   model.RunSummary{Company: 3, Industry: 2, Unclassified: 1, Failed: 1},
	})

	out := buf.String()
	assert.Contains(t, out, "Dry run")
	assert.Contains(t, out, "abc12345")
	assert.Contains(t, out, "Company reports:")
	assert.Contains(t, out, "Failed:")
	assert.Contains(t, out, "Company_Research_Sorted")
}
