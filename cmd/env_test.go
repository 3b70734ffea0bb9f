//go:build !integration

package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/research-sorter/internal/config"
	"github.com/sells-group/research-sorter/internal/model"
)

func TestInitStore_SQLite(t *testing.T) {
	ctx := context.Background()
	st, err := initStore(ctx, config.StoreConfig{
		Driver:      "sqlite",
		DatabaseURL: filepath.Join(t.TempDir(), "ledger.db"),
	})
	require.NoError(t, err)
	require.NotNil(t, st)
	defer st.Close() //nolint:errcheck

	run, err := st.CreateRun(ctx, model.Run{SourceDir: "in", TargetDir: "out"})
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
}

func TestInitStore_None(t *testing.T) {
	st, err := initStore(context.Background(), config.StoreConfig{Driver: "none"})
	require.NoError(t, err)
	assert.Nil(t, st)

	_, err = requireStore(context.Background(), config.StoreConfig{Driver: "none"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ledger is disabled")
}

func TestInitStore_Unsupported(t *testing.T) {
	_, err := initStore(context.Background(), config.StoreConfig{Driver: "mysql"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported store driver")
}

func TestInitClassifier(t *testing.T) {
	cls, err := initClassifier(config.RegistryConfig{})
	require.NoError(t, err)
	assert.NotNil(t, cls)

	_, err = initClassifier(config.RegistryConfig{Path: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load registry")
}

func TestInitReader(t *testing.T) {
	r, err := initReader(config.OCRConfig{Provider: "none"})
	require.NoError(t, err)
	page := r.FirstPage(context.Background(), "/tmp/a.pdf")
	assert.Equal(t, model.UnavailableDisabled, page.Reason)

	_, err = initReader(config.OCRConfig{Provider: "tesseract"})
	require.Error(t, err)
}
