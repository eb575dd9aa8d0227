// SPDX-License-Identifier: MIT

// Package bench runs every configured algorithm on random square operands,
// checks each product against the naive triple loop, and reports timings.
//
// Concurrency:
//   - Independent multiplications run on an errgroup bounded by Workers.
//   - Each multiplication itself is single-threaded.
//   - Operands are generated from Seed, so a run is reproducible; only the
//     timings vary.
package bench

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/clrs/internal/config"
	"github.com/katalvlaran/clrs/internal/metrics"
	"github.com/katalvlaran/clrs/matrix"
	"github.com/katalvlaran/clrs/multiply"
)

// entryRange bounds the random operand entries to [-entryRange, entryRange].
// Products stay exact in int64 for every size the runner accepts.
const entryRange = 100

// Result is the outcome of one multiplication.
type Result struct {
	Algorithm string
	Size      int
	Run       int
	Duration  time.Duration
	Match     bool  // product equals the naive reference
	Err       error // kernel failure; Match is false
}

// Report collects every Result of one Run.
type Report struct {
	ID       string
	Started  time.Time
	Finished time.Time
	Results  []Result
}

// Runner executes a bench configuration.
type Runner struct {
	cfg    config.BenchConfig
	logger *slog.Logger
	rec    *metrics.Recorder
}

// NewRunner builds a runner. logger may be nil (discard); rec may be nil
// (no metrics).
func NewRunner(cfg config.BenchConfig, logger *slog.Logger, rec *metrics.Recorder) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Runner{cfg: cfg, logger: logger, rec: rec}
}

// operands is one (size, run) input pair with its reference product.
type operands struct {
	size, run int
	a, b      *matrix.Dense[int64]
	want      *matrix.Dense[int64]
}

// job is one (algorithm, operands) multiplication.
type job struct {
	algo string
	fn   Func[int64]
	in   *operands
}

// Run executes every (algorithm, size, run) combination.
//
// Implementation:
//   - Stage 1: resolve kernels; generate operands and the naive reference.
//   - Stage 2: fan the jobs out on an errgroup limited to Workers.
//   - Stage 3: record metrics and assemble the report in job order.
//
// Errors:
//   - unknown algorithm or invalid cutoff (before any work);
//   - ctx cancellation. Kernel failures and mismatches are reported in Results,
//     not returned.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	rep := &Report{ID: uuid.NewString(), Started: time.Now()}
	log := r.logger.With("run_id", rep.ID)

	kernels := make(map[string]Func[int64], len(r.cfg.Algorithms))
	for _, name := range r.cfg.Algorithms {
		fn, err := Kernel[int64](name, r.cfg.Cutoff, log)
		if err != nil {
			return nil, err
		}
		kernels[name] = fn
	}

	inputs, err := r.inputs()
	if err != nil {
		return nil, err
	}
	jobs := make([]job, 0, len(inputs)*len(r.cfg.Algorithms))
	for _, in := range inputs {
		for _, name := range r.cfg.Algorithms {
			jobs = append(jobs, job{algo: name, fn: kernels[name], in: in})
		}
	}
	log.Info("bench start", "jobs", len(jobs), "workers", r.cfg.Workers, "sizes", r.cfg.Sizes)

	results := make([]Result, len(jobs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.cfg.Workers, 1))
	for i, jb := range jobs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = execute(jb)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}

	for _, res := range results {
		r.record(log, res)
	}
	rep.Results = results
	rep.Finished = time.Now()
	if r.rec != nil {
		r.rec.MarkRun(rep.Finished)
	}
	log.Info("bench done", "elapsed", rep.Finished.Sub(rep.Started))

	return rep, nil
}

// inputs generates the operand pairs and their reference products.
func (r *Runner) inputs() ([]*operands, error) {
	out := make([]*operands, 0, len(r.cfg.Sizes)*r.cfg.Runs)
	for _, n := range r.cfg.Sizes {
		for run := 0; run < r.cfg.Runs; run++ {
			rng := rand.New(rand.NewSource(r.cfg.Seed + int64(n)*1_000_003 + int64(run)))
			a, err := randomSquare(rng, n)
			if err != nil {
				return nil, err
			}
			b, err := randomSquare(rng, n)
			if err != nil {
				return nil, err
			}
			ref, err := multiply.Naive[int64](a, b)
			if err != nil {
				return nil, fmt.Errorf("bench: reference n=%d run=%d: %w", n, run, err)
			}
			out = append(out, &operands{size: n, run: run, a: a, b: b, want: ref})
		}
	}

	return out, nil
}

// execute runs one job and compares against the reference.
func execute(jb job) Result {
	res := Result{Algorithm: jb.algo, Size: jb.in.size, Run: jb.in.run}
	start := time.Now()
	got, err := jb.fn(jb.in.a, jb.in.b)
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = err
		return res
	}
	res.Match = matrix.Equal[int64](got, jb.in.want)

	return res
}

// record logs res and feeds the metrics recorder.
func (r *Runner) record(log *slog.Logger, res Result) {
	outcome := metrics.ResultOK
	switch {
	case res.Err != nil:
		outcome = metrics.ResultError
		log.Error("multiply failed", "algorithm", res.Algorithm, "n", res.Size, "run", res.Run, "err", res.Err)
	case !res.Match:
		outcome = metrics.ResultMismatch
		log.Warn("product mismatch", "algorithm", res.Algorithm, "n", res.Size, "run", res.Run)
	default:
		log.Debug("multiply ok", "algorithm", res.Algorithm, "n", res.Size, "run", res.Run, "elapsed", res.Duration)
	}
	if r.rec != nil {
		r.rec.Observe(res.Algorithm, res.Size, res.Duration, outcome)
	}
}

// randomSquare fills an n×n matrix with entries in [-entryRange, entryRange].
func randomSquare(rng *rand.Rand, n int) (*matrix.Dense[int64], error) {
	m, err := matrix.NewDense[int64](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err = m.Set(i, j, rng.Int63n(2*entryRange+1)-entryRange); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Summary aggregates the results of one (algorithm, size) pair.
type Summary struct {
	Algorithm string
	Size      int
	Runs      int
	Failures  int // errors plus mismatches
	Mean      time.Duration
	Min       time.Duration
}

// Summaries groups the report by (size, algorithm), ordered by ascending size
// and then algorithm name. Mean and Min cover successful runs only.
func (rep *Report) Summaries() []Summary {
	type key struct {
		size int
		algo string
	}
	acc := map[key]*Summary{}
	var keys []key
	for _, res := range rep.Results {
		k := key{res.Size, res.Algorithm}
		s, ok := acc[k]
		if !ok {
			s = &Summary{Algorithm: res.Algorithm, Size: res.Size}
			acc[k] = s
			keys = append(keys, k)
		}
		s.Runs++
		if res.Err != nil || !res.Match {
			s.Failures++
			continue
		}
		s.Mean += res.Duration
		if s.Min == 0 || res.Duration < s.Min {
			s.Min = res.Duration
		}
	}

	slices.SortStableFunc(keys, func(a, b key) int {
		if a.size != b.size {
			return a.size - b.size
		}
		switch {
		case a.algo < b.algo:
			return -1
		case a.algo > b.algo:
			return 1
		}
		return 0
	})

	out := make([]Summary, 0, len(keys))
	for _, k := range keys {
		s := *acc[k]
		if ok := s.Runs - s.Failures; ok > 0 {
			s.Mean /= time.Duration(ok)
		}
		out = append(out, s)
	}

	return out
}

// Failed reports whether any result errored or mismatched.
func (rep *Report) Failed() bool {
	for _, res := range rep.Results {
		if res.Err != nil || !res.Match {
			return true
		}
	}

	return false
}
