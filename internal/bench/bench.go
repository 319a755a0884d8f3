// Package bench drives a tree with a random insert/delete workload and
// reports throughput, shape and rebalancing metrics.
package bench

import (
	"context"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"avltree"
)

// Config - workload parameters.
type Config struct {
	Count       int     // number of operations
	Seed        int64   // random source seed
	DeleteRatio float64 // probability that an operation is a delete
	KeySpace    int     // keys are drawn from [0, KeySpace)
	Unbalanced  bool    // use a plain BST instead of an AVL tree
	ReportEvery int     // log progress every n operations, 0 disables
	Check       bool    // verify the tree invariants at the end
}

// DefaultConfig returns the configuration used by the command line defaults.
func DefaultConfig() Config {
	return Config{
		Count:       1_000_000,
		Seed:        1,
		DeleteRatio: 0.25,
		KeySpace:    1 << 20,
		ReportEvery: 100_000,
	}
}

// Validate checks the configuration for values the runner can not use.
func (c Config) Validate() error {
	switch {
	case c.Count < 0:
		return errors.Errorf("count must not be negative, got %d", c.Count)
	case c.KeySpace <= 0:
		return errors.Errorf("key space must be positive, got %d", c.KeySpace)
	case c.DeleteRatio < 0 || c.DeleteRatio > 1:
		return errors.Errorf("delete ratio must be within [0, 1], got %g", c.DeleteRatio)
	case c.ReportEvery < 0:
		return errors.Errorf("report interval must not be negative, got %d", c.ReportEvery)
	}
	return nil
}

// Result - summary of a finished run.
type Result struct {
	Ops          int
	Inserts      int
	Deletes      int
	DeleteMisses int
	Size         int
	Height       int
	Width        int
	Stats        avltree.Stats
	Duration     time.Duration
}

// Runner applies a generated workload to a fresh tree.
type Runner struct {
	cfg     Config
	log     zerolog.Logger
	metrics *Metrics
}

// NewRunner validates cfg and registers the runner metrics on reg.
func NewRunner(cfg Config, log zerolog.Logger, reg prometheus.Registerer) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid bench config")
	}
	return &Runner{
		cfg:     cfg,
		log:     log,
		metrics: NewMetrics(reg),
	}, nil
}

// Run executes the workload. It stops early with the context error when
// ctx is cancelled.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	var (
		tree avltree.Tree[int]
		avl  *avltree.AVLTree[int]
	)
	if r.cfg.Unbalanced {
		tree = avltree.NewOrderedBST[int]()
	} else {
		avl = avltree.New[int]()
		tree = avl
	}
	stats := func() avltree.Stats {
		if avl == nil {
			return avltree.Stats{}
		}
		return avl.Stats()
	}

	rnd := rand.New(rand.NewSource(r.cfg.Seed))
	res := Result{}
	start := time.Now()
	since := start

	r.log.Info().
		Int("count", r.cfg.Count).
		Int64("seed", r.cfg.Seed).
		Bool("unbalanced", r.cfg.Unbalanced).
		Msg("starting run")

	for i := 0; i < r.cfg.Count; i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return res, errors.Wrapf(err, "stopped after %d operations", i)
			}
		}

		key := rnd.Intn(r.cfg.KeySpace)
		rotations := stats().Rotations
		if rnd.Float64() < r.cfg.DeleteRatio {
			res.Deletes++
			r.metrics.Deletes.Inc()
			if !tree.Delete(key).Success {
				res.DeleteMisses++
				r.metrics.DeleteMisses.Inc()
			}
		} else {
			res.Inserts++
			r.metrics.Inserts.Inc()
			tree.Insert(key)
		}
		r.metrics.Rotations.Add(float64(stats().Rotations - rotations))
		res.Ops++

		if r.cfg.ReportEvery > 0 && res.Ops%r.cfg.ReportEvery == 0 {
			r.observe(tree)
			elapsed := time.Since(since)
			r.log.Info().Msgf("processed %s ops in %s; %s ops/s",
				humanize.Comma(int64(res.Ops)),
				elapsed,
				humanize.Comma(int64(float64(r.cfg.ReportEvery)/elapsed.Seconds())))
			since = time.Now()
		}
	}

	res.Duration = time.Since(start)
	res.Size, res.Height = r.observe(tree)
	res.Width = tree.Width()
	res.Stats = stats()

	r.log.Info().
		Int("ops", res.Ops).
		Int("size", res.Size).
		Int("height", res.Height).
		Int("width", res.Width).
		Int("rotations", res.Stats.Rotations).
		Dur("duration", res.Duration).
		Msg("run finished")

	if r.cfg.Check {
		if err := check(tree, !r.cfg.Unbalanced); err != nil {
			return res, err
		}
		r.log.Debug().Msg("tree invariants hold")
	}

	return res, nil
}

// observe updates the shape gauges and returns size and height.
func (r *Runner) observe(tree avltree.Tree[int]) (int, int) {
	size, height := tree.Size(), tree.Height()
	r.metrics.TreeSize.Set(float64(size))
	r.metrics.TreeHeight.Set(float64(height))
	return size, height
}

// check verifies the structural invariants of tree.
func check(tree avltree.Tree[int], balanced bool) error {
	if !avltree.IsLinked(tree) {
		return errors.New("parent links are inconsistent")
	}
	if !avltree.IsOrdered(tree) {
		return errors.New("keys are out of order")
	}
	if balanced && !avltree.IsAVL(tree) {
		return errors.New("tree is not balanced")
	}
	return nil
}
