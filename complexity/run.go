package complexity

import (
	"context"
	"fmt"
	"math/rand"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/algolab/fibonacci"
	"github.com/katalvlaran/algolab/search"
	"github.com/katalvlaran/algolab/sorting"
)

// Run measures every case selected by cfg.
func Run(ctx context.Context, cfg Config, opts ...Option) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := defaultRunOptions()
	for _, opt := range opts {
		opt(&o)
	}
	id, err := o.newID()
	if err != nil {
		return nil, fmt.Errorf("complexity: run id: %w", err)
	}

	sizes := slices.Clone(cfg.Sizes)
	slices.Sort(sizes)
	sizes = slices.Compact(sizes)

	rep := &Report{
		RunID:     id,
		StartedAt: o.now(),
		Config:    cfg,
		Search:    make([]SearchCase, len(sizes)),
		Sort:      make([]SortCase, len(sizes)),
		Fibonacci: make([]FibCase, cfg.FibMax+1),
	}
	log := o.logger.With(zap.String("run_id", id.String()))
	log.Info("complexity run started",
		zap.Ints("sizes", sizes),
		zap.Int("fib_max", cfg.FibMax),
		zap.Int("workers", cfg.Workers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, size := range sizes {
		i, size := i, size
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sc, err := measureSearch(size)
			if err != nil {
				return err
			}
			rep.Search[i] = sc
			log.Debug("search case done", zap.Int("size", size), zap.Int("binary_probes", sc.BinaryProbes))
			return nil
		})
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sc, err := measureSort(size, cfg.Seed)
			if err != nil {
				return err
			}
			rep.Sort[i] = sc
			log.Debug("sort case done", zap.Int("size", size), zap.Int("compares", sc.Compares))
			return nil
		})
	}
	for n := 0; n <= cfg.FibMax; n++ {
		n := n
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fc, err := measureFib(n)
			if err != nil {
				return err
			}
			rep.Fibonacci[n] = fc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Warn("complexity run failed", zap.Error(err))
		return nil, err
	}

	rep.FinishedAt = o.now()
	log.Info("complexity run finished", zap.Duration("elapsed", rep.FinishedAt.Sub(rep.StartedAt)))

	return rep, nil
}

// measureSearch probes 0, 2, 4, ... for an odd target larger than every
// element, then confirms each variant finds the last element.
func measureSearch(size int) (SearchCase, error) {
	seq := make([]int, size)
	for i := range seq {
		seq[i] = 2 * i
	}
	absent := 2*size - 1
	last := 2 * (size - 1)

	sc := SearchCase{Size: size}
	it, err := search.Binary(seq, absent, search.WithOnProbe(func(int, int, int) { sc.BinaryProbes++ }))
	if err != nil {
		return sc, err
	}
	rec, err := search.BinaryRecursive(seq, absent, search.WithOnProbe(func(int, int, int) { sc.RecursiveProbes++ }))
	if err != nil {
		return sc, err
	}
	lin := search.Linear(seq, absent)
	sc.LinearProbes = size
	if it != search.NotFound || rec != search.NotFound || lin != search.NotFound {
		return sc, fmt.Errorf("%w: absent %d found in size %d (binary=%d recursive=%d linear=%d)",
			ErrInvariant, absent, size, it, rec, lin)
	}

	it, _ = search.Binary(seq, last)
	rec, _ = search.BinaryRecursive(seq, last)
	lin = search.Linear(seq, last)
	if it != size-1 || rec != size-1 || lin != size-1 {
		return sc, fmt.Errorf("%w: last element of size %d at binary=%d recursive=%d linear=%d",
			ErrInvariant, size, it, rec, lin)
	}

	return sc, nil
}

// measureSort shuffles 0..size-1 deterministically from seed and size.
func measureSort(size int, seed int64) (SortCase, error) {
	r := rand.New(rand.NewSource(seed + int64(size)))
	in := r.Perm(size)

	sc := SortCase{Size: size}
	plain := sorting.Bubble(in,
		sorting.WithOnCompare(func(int, int) { sc.Compares++ }),
		sorting.WithOnSwap(func(int, int) { sc.Swaps++ }))
	early := sorting.Bubble(in,
		sorting.WithEarlyExit(),
		sorting.WithOnCompare(func(int, int) { sc.EarlyExitCompares++ }),
		sorting.WithOnSwap(func(int, int) { sc.EarlyExitSwaps++ }))

	for i := range plain {
		if plain[i] != i || early[i] != i {
			return sc, fmt.Errorf("%w: size %d not sorted at %d", ErrInvariant, size, i)
		}
	}
	// swaps equal the inversion count, whichever variant runs
	if sc.Swaps != sc.EarlyExitSwaps {
		return sc, fmt.Errorf("%w: size %d swaps %d != %d", ErrInvariant, size, sc.Swaps, sc.EarlyExitSwaps)
	}

	return sc, nil
}

func measureFib(n int) (FibCase, error) {
	naive, err := fibonacci.Naive(n)
	if err != nil {
		return FibCase{}, err
	}
	iter, err := fibonacci.Iterative(n)
	if err != nil {
		return FibCase{}, err
	}
	if naive != iter {
		return FibCase{}, fmt.Errorf("%w: F(%d) naive=%d iterative=%d", ErrInvariant, n, naive, iter)
	}

	return FibCase{
		N:              n,
		Value:          iter,
		NaiveCalls:     fibonacci.NaiveCalls(n),
		IterativeSteps: n,
	}, nil
}
