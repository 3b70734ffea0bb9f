//go:build !integration

package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/research-sorter/internal/classify"
	"github.com/sells-group/research-sorter/internal/model"
	"github.com/sells-group/research-sorter/internal/ocr"
	"github.com/sells-group/research-sorter/internal/registry"
)

func TestClassifyArg(t *testing.T) {
	cls := classify.New(registry.Default())
	ctx := context.Background()

	got := classifyArg(ctx, cls, nil, "/some/dir/BROKER_CompanyTitle_(0700)_Jan_5,_2024.pdf", "")
	assert.Equal(t, classification{
		Filename: "BROKER_CompanyTitle_(0700)_Jan_5,_2024.pdf",
		Category: model.CategoryCompany,
		Name:     "腾讯控股",
		Strategy: classify.StrategyTicker,
		NewName:  "BROKER-腾讯控股-CompanyTitle-240105.pdf",
	}, got)
}

func TestClassifyArg_TextFallback(t *testing.T) {
	cls := classify.New(registry.Default())

	got := classifyArg(context.Background(), cls, nil, "BROKER_Quarterly_Note_Jan_5,_2024.pdf", "Rating: Buy\nTarget Price: US$120\nNTES US Equity")
	assert.Equal(t, model.CategoryCompany, got.Category)
	assert.Equal(t, "网易", got.Name)
	assert.Equal(t, classify.StrategyContent, got.Strategy)
}

func TestClassifyArg_MissingFileIsNotRead(t *testing.T) {
	cls := classify.New(registry.Default())
	reader := ocr.NewReader(nil, 0)

	got := classifyArg(context.Background(), cls, reader, "/nonexistent/BROKER_Weekly_Notes_Jan_5,_2024.pdf", "")
	require.Equal(t, model.CategoryUnclassified, got.Category)
	assert.Equal(t, "BROKER_Weekly_Notes_Jan_5,_2024.pdf", got.NewName)
	assert.Empty(t, got.Strategy)
}
