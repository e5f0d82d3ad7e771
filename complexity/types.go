package complexity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/algolab/algoerr"
)

// Limits that keep a run interactive: bubble sort is quadratic and naive
// Fibonacci exponential.
const (
	MaxSize   = 10_000
	MaxFibN   = 35
	MaxWorker = 64
)

var (
	// ErrInvalidConfig indicates a Config that fails Validate.
	ErrInvalidConfig = algoerr.New("complexity", algoerr.ErrInvalidArgument, "invalid config")

	// ErrInvariant indicates an algorithm broke its contract during a run.
	ErrInvariant = errors.New("complexity: invariant violated")
)

// Config selects what a run measures.
type Config struct {
	// Sizes are the sequence lengths used for search and sort cases.
	Sizes []int `yaml:"sizes" json:"sizes"`

	// FibMax is the largest n for the Fibonacci cases, which cover [0, FibMax].
	FibMax int `yaml:"fib_max" json:"fib_max"`

	// Workers bounds the number of cases measured concurrently.
	Workers int `yaml:"workers" json:"workers"`

	// Seed drives the shuffles of the sort cases.
	Seed int64 `yaml:"seed" json:"seed"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		Sizes:   []int{8, 64, 512, 2048},
		FibMax:  25,
		Workers: 4,
		Seed:    42,
	}
}

// Validate checks every field against the package limits.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: sizes must not be empty", ErrInvalidConfig)
	}
	for _, s := range c.Sizes {
		if s < 1 || s > MaxSize {
			return fmt.Errorf("%w: size %d outside [1, %d]", ErrInvalidConfig, s, MaxSize)
		}
	}
	if c.FibMax < 0 || c.FibMax > MaxFibN {
		return fmt.Errorf("%w: fib_max %d outside [0, %d]", ErrInvalidConfig, c.FibMax, MaxFibN)
	}
	if c.Workers < 1 || c.Workers > MaxWorker {
		return fmt.Errorf("%w: workers %d outside [1, %d]", ErrInvalidConfig, c.Workers, MaxWorker)
	}

	return nil
}

// SearchCase counts probes for an absent target, the worst case of every
// variant.
type SearchCase struct {
	Size            int `json:"size"`
	BinaryProbes    int `json:"binary_probes"`
	RecursiveProbes int `json:"recursive_probes"`
	LinearProbes    int `json:"linear_probes"`
}

// SortCase counts the work bubble sort does on a shuffled sequence.
type SortCase struct {
	Size              int `json:"size"`
	Compares          int `json:"compares"`
	Swaps             int `json:"swaps"`
	EarlyExitCompares int `json:"early_exit_compares"`
	EarlyExitSwaps    int `json:"early_exit_swaps"`
}

// FibCase contrasts the naive call count with the iterative step count.
type FibCase struct {
	N              int    `json:"n"`
	Value          int64  `json:"value"`
	NaiveCalls     uint64 `json:"naive_calls"`
	IterativeSteps int    `json:"iterative_steps"`
}

// Report is the outcome of one Run. Case slices are ordered by Size or N.
type Report struct {
	RunID      uuid.UUID    `json:"run_id"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Config     Config       `json:"config"`
	Search     []SearchCase `json:"search"`
	Sort       []SortCase   `json:"sort"`
	Fibonacci  []FibCase    `json:"fibonacci"`
}

// Option configures Run.
type Option func(*runOptions)

type runOptions struct {
	logger *zap.Logger
	now    func() time.Time
	newID  func() (uuid.UUID, error)
}

func defaultRunOptions() runOptions {
	return runOptions{
		logger: zap.NewNop(),
		now:    time.Now,
		newID:  uuid.NewV7,
	}
}

// WithLogger routes progress logs to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *runOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *runOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithRunID fixes the report ID instead of generating a UUIDv7.
func WithRunID(id uuid.UUID) Option {
	return func(o *runOptions) {
		o.newID = func() (uuid.UUID, error) { return id, nil }
	}
}
