// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"radmarkers-core/engine"
	"radmarkers-core/tags"
)

// ErrUnreadable marks a tag file that failed the pre-check.
var ErrUnreadable = errors.New("unreadable tag file")

// Config controls where tag files live and which records enter clustering.
type Config struct {
	Dir    string // directory holding tag files
	Suffix string // appended to the individual name
	Filter tags.Filter
}

// TagPath is the tag file of ind.
func (c Config) TagPath(ind tags.Individual) string {
	return filepath.Join(c.Dir, ind.Name+c.Suffix)
}

// IndividualStats is what one tag file contributed.
type IndividualStats struct {
	Name string
	Path string
	tags.ReadStats
}

// Result summarizes a pipeline run.
type Result struct {
	Individuals []IndividualStats
	Read        tags.ReadStats // totals over Individuals
	Engine      engine.Stats
}

// Run checks that every tag file can be opened, then processes individuals
// strictly in the given order and local clusters in file order. It is
// sequential: every Process call may merge clusters seen so far. It returns
// the first error encountered (including context cancellation).
func Run(
	ctx context.Context,
	cfg Config,
	individuals []tags.Individual,
	eng Clusterer,
	log logrus.FieldLogger,
) (Result, error) {
	var res Result
	for _, ind := range individuals {
		p := cfg.TagPath(ind)
		if err := tags.CheckReadable(p); err != nil {
			return res, fmt.Errorf("%w for %s: %w", ErrUnreadable, ind.Name, err)
		}
	}

	for _, ind := range individuals {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		p := cfg.TagPath(ind)
		st, err := tags.StreamClustersCtx(ctx, p, cfg.Filter, func(lc tags.LocalCluster) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			eng.Process(ind.Index, lc)
			return nil
		})
		if err != nil {
			return res, err
		}
		res.Individuals = append(res.Individuals, IndividualStats{Name: ind.Name, Path: p, ReadStats: st})
		res.Read.Add(st)
		log.WithFields(logrus.Fields{
			"individual":     ind.Name,
			"local_clusters": st.Clusters,
			"kept":           st.Kept,
			"contaminated":   st.Contaminated,
			"below_min":      st.BelowThreshold,
		}).Info("individual processed")
	}
	res.Engine = eng.Stats()
	return res, nil
}
