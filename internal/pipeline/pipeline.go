// Package pipeline drives classification over the whole corpus: classify,
// repair, persist, checkpoint. Runs are resumable; questions already present
// in the store are skipped.
package pipeline

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/quizbee-cli/internal/classify"
	"github.com/sells-group/quizbee-cli/internal/corpus"
	"github.com/sells-group/quizbee-cli/internal/model"
	"github.com/sells-group/quizbee-cli/internal/repair"
	"github.com/sells-group/quizbee-cli/internal/store"
)

// RunStats reports what a pipeline run did.
type RunStats struct {
	Total       int
	Processed   int
	AlreadyDone int
	Repaired    int
}

// Pipeline classifies a corpus into a store.
type Pipeline struct {
	classifier *classify.Classifier
	repairer   *repair.Repairer
	store      store.Store

	// CheckpointEvery is the number of newly classified questions between
	// store flushes. Zero or negative disables intermediate checkpoints.
	CheckpointEvery int
}

// New returns a Pipeline writing to st.
func New(classifier *classify.Classifier, repairer *repair.Repairer, st store.Store, checkpointEvery int) *Pipeline {
	return &Pipeline{
		classifier:      classifier,
		repairer:        repairer,
		store:           st,
		CheckpointEvery: checkpointEvery,
	}
}

// Run classifies every question in the corpus that the store has not seen
// yet, tier by tier in tier order. Progress is checkpointed every
// CheckpointEvery questions and once at the end, so a cancelled run resumes
// where it left off.
func (p *Pipeline) Run(ctx context.Context, c *corpus.Corpus) (RunStats, error) {
	stats := RunStats{Total: c.Count()}
	sinceCheckpoint := 0

	for _, tier := range model.Tiers {
		for _, q := range c.Tiers[tier] {
			if err := ctx.Err(); err != nil {
				if ferr := p.checkpoint(stats); ferr != nil {
					return stats, ferr
				}
				return stats, eris.Wrap(err, "pipeline: run cancelled")
			}

			_, done, err := p.store.Get(ctx, q.ID)
			if err != nil {
				return stats, err
			}
			if done {
				stats.AlreadyDone++
				continue
			}

			cls := p.classifier.Classify(q)
			repaired, changes := p.repairer.Repair(q, cls)
			if len(changes) > 0 {
				stats.Repaired++
				zap.L().Info("pipeline: repaired classification",
					zap.String("id", q.ID),
					zap.String("tier", string(tier)),
					zap.Strings("changes", changes),
				)
				cls = repaired
			}

			if err := p.store.Put(ctx, q.ID, cls); err != nil {
				return stats, err
			}
			stats.Processed++
			sinceCheckpoint++

			if p.CheckpointEvery > 0 && sinceCheckpoint >= p.CheckpointEvery {
				if err := p.checkpoint(stats); err != nil {
					return stats, err
				}
				sinceCheckpoint = 0
				zap.L().Info("pipeline: checkpoint",
					zap.Int("processed", stats.Processed),
					zap.Int("total", stats.Total),
				)
			}
		}
	}

	if err := p.checkpoint(stats); err != nil {
		return stats, err
	}

	zap.L().Info("pipeline: run complete",
		zap.Int("total", stats.Total),
		zap.Int("processed", stats.Processed),
		zap.Int("already_done", stats.AlreadyDone),
		zap.Int("repaired", stats.Repaired),
	)
	return stats, nil
}

// ClassifyOne classifies and repairs a single question without touching the
// store.
func (p *Pipeline) ClassifyOne(q model.Question) model.Classification {
	cls := p.classifier.Classify(q)
	repaired, changes := p.repairer.Repair(q, cls)
	if len(changes) > 0 {
		return repaired
	}
	return cls
}

// RepairStored re-runs the constraint repairer over every classification
// already in the store, looking its question text back up in the corpus.
// Returns per-pair violation counts keyed by ForbiddenPair.Name.
func (p *Pipeline) RepairStored(ctx context.Context, c *corpus.Corpus, dryRun bool) (map[string]int, int, error) {
	all, err := p.store.All(ctx)
	if err != nil {
		return nil, 0, err
	}

	pairCounts := make(map[string]int)
	fixed := 0
	for _, tier := range model.Tiers {
		for _, q := range c.Tiers[tier] {
			if err := ctx.Err(); err != nil {
				return pairCounts, fixed, eris.Wrap(err, "pipeline: repair cancelled")
			}
			cls, ok := all[q.ID]
			if !ok {
				continue
			}
			for _, v := range repair.Violations(cls) {
				pairCounts[v.Name()]++
			}
			repaired, changes := p.repairer.Repair(q, cls)
			if len(changes) == 0 {
				continue
			}
			fixed++
			zap.L().Info("pipeline: repaired stored classification",
				zap.String("id", q.ID),
				zap.Strings("changes", changes),
				zap.Bool("dry_run", dryRun),
			)
			if dryRun {
				continue
			}
			if err := p.store.Put(ctx, q.ID, repaired); err != nil {
				return pairCounts, fixed, err
			}
		}
	}

	if !dryRun {
		if err := p.store.Flush(ctx); err != nil {
			return pairCounts, fixed, err
		}
	}
	return pairCounts, fixed, nil
}

func (p *Pipeline) checkpoint(stats RunStats) error {
	ctx := context.Background()
	progress := model.Progress{
		TotalQuestions: stats.Total,
		Categorized:    stats.AlreadyDone + stats.Processed,
	}
	if err := p.store.SetProgress(ctx, progress); err != nil {
		return err
	}
	return p.store.Flush(ctx)
}
