package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/research-sorter/internal/classify"
	"github.com/sells-group/research-sorter/internal/config"
	"github.com/sells-group/research-sorter/internal/ocr"
	"github.com/sells-group/research-sorter/internal/registry"
	"github.com/sells-group/research-sorter/internal/store"
)

// initStore opens the run ledger. The "none" driver returns a nil Store.
func initStore(ctx context.Context, c config.StoreConfig) (store.Store, error) {
	var (
		st  store.Store
		err error
	)
	switch c.Driver {
	case "sqlite", "":
		dsn := c.DatabaseURL
		if dsn == "" {
			dsn = "research-sorter.db"
		}
		st, err = store.NewSQLite(dsn)
	case "postgres":
		st, err = store.NewPostgres(ctx, c.DatabaseURL, &store.PoolConfig{
			MaxConns: c.MaxConns,
			MinConns: c.MinConns,
		})
	case "none":
		return nil, nil
	default:
		return nil, eris.Errorf("unsupported store driver: %s", c.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, err
	}
	return st, nil
}

// requireStore opens the ledger for commands that cannot run without one.
func requireStore(ctx context.Context, c config.StoreConfig) (store.Store, error) {
	st, err := initStore(ctx, c)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, eris.New("run ledger is disabled (store.driver=none)")
	}
	return st, nil
}

// initClassifier loads the configured registry and builds a classifier.
func initClassifier(c config.RegistryConfig) (*classify.Classifier, error) {
	reg, err := registry.Load(c.Path)
	if err != nil {
		return nil, eris.Wrap(err, "load registry")
	}
	zap.L().Debug("registry loaded",
		zap.String("path", c.Path),
		zap.Int("aliases", reg.Len()),
	)
	return classify.New(reg), nil
}

// initReader builds the PDF page reader. The "none" provider yields a
// reader that reports every page as disabled.
func initReader(c config.OCRConfig) (*ocr.Reader, error) {
	ex, err := ocr.NewExtractor(c)
	if err != nil {
		return nil, err
	}
	return ocr.NewReader(ex, time.Duration(c.TimeoutSecs)*time.Second), nil
}
