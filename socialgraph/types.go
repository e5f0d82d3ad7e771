// Package socialgraph provides tunable options and error definitions
// for breadth-first exploration of a friendship Network.
package socialgraph

import (
	"context"
	"fmt"

	"github.com/katalvlaran/algolab/algoerr"
)

// Sentinel errors for network construction and traversal.
var (
	// ErrNilNetwork is returned if a nil network pointer is passed.
	ErrNilNetwork = algoerr.New("socialgraph", algoerr.ErrInvalidArgument, "network is nil")

	// ErrEmptyID indicates a person ID is the empty string.
	ErrEmptyID = algoerr.New("socialgraph", algoerr.ErrInvalidArgument, "person ID is empty")

	// ErrPersonNotFound indicates an operation referenced an unknown person.
	ErrPersonNotFound = algoerr.New("socialgraph", algoerr.ErrInvalidArgument, "person not found")

	// ErrSelfFriendship indicates an attempt to befriend oneself.
	ErrSelfFriendship = algoerr.New("socialgraph", algoerr.ErrInvalidArgument, "person cannot befriend themselves")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = algoerr.New("socialgraph", algoerr.ErrInvalidArgument, "invalid option supplied")

	// ErrNotConnected indicates no chain of friendships links two people.
	ErrNotConnected = algoerr.New("socialgraph", algoerr.ErrInvalidArgument, "people are not connected")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a person. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with a background context, no depth
// limit and a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(string, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0:  limit to depth d
//	d == 0: no depth limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: people visited, in visit sequence.
//   - Depth: degrees of separation from the start person.
//   - Parent: predecessor of each person in the BFS tree.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the friendship chain from the start person to dest.
// Returns ErrNotConnected if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: no path to %q", ErrNotConnected, dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Suggestion is a friend-of-a-friend recommendation.
type Suggestion struct {
	ID     string
	Mutual int
}
