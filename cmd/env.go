package main

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/quizbee-cli/internal/catalog"
	"github.com/sells-group/quizbee-cli/internal/classify"
	"github.com/sells-group/quizbee-cli/internal/corpus"
	"github.com/sells-group/quizbee-cli/internal/pipeline"
	"github.com/sells-group/quizbee-cli/internal/repair"
	"github.com/sells-group/quizbee-cli/internal/store"
)

// classifierEnv holds the catalog, corpus, store, and pipeline shared by the
// classify/repair/stats/serve commands.
type classifierEnv struct {
	Catalog  *catalog.Catalog
	Corpus   *corpus.Corpus
	Store    store.Store
	Pipeline *pipeline.Pipeline
}

// Close releases resources held by the environment.
func (ce *classifierEnv) Close() {
	if ce.Store != nil {
		_ = ce.Store.Close()
	}
}

// initEnv compiles the pattern catalog, loads the corpus, and opens the
// metadata store. Callers should defer env.Close().
func initEnv() (*classifierEnv, error) {
	cat, err := catalog.New()
	if err != nil {
		return nil, err
	}
	if cfg.Catalog.Overlay != "" {
		if err := cat.ApplyOverlayFile(cfg.Catalog.Overlay); err != nil {
			return nil, err
		}
	}

	c, err := corpus.Load(cfg.Corpus.File)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(cfg.Store.Driver, cfg.Store.Path)
	if err != nil {
		return nil, eris.Wrap(err, "open store")
	}

	zap.L().Info("environment ready",
		zap.String("corpus", cfg.Corpus.File),
		zap.String("store_driver", cfg.Store.Driver),
		zap.Int("questions", c.Count()),
	)

	return &classifierEnv{
		Catalog:  cat,
		Corpus:   c,
		Store:    st,
		Pipeline: pipeline.New(classify.New(cat), repair.New(cat), st, cfg.Pipeline.CheckpointEvery),
	}, nil
}
