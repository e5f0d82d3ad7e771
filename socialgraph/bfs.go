// Package socialgraph models friendships as an undirected graph and answers
// the classic interview questions on it with breadth-first search: who is
// reachable, how many degrees apart two people are, and whom to suggest as
// a new friend.
//
// BFS visits people in increasing degrees of separation. Neighbors are
// expanded in sorted order, so Order and Parent are deterministic.
package socialgraph

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// errReached stops a targeted walk once the destination is visited.
var errReached = errors.New("socialgraph: destination reached")

// queueItem pairs a person with their depth from the start.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	net     *Network
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search over n starting from start.
// Returns ErrNilNetwork, ErrPersonNotFound or ErrOptionViolation for invalid
// input, the context error on cancellation, or any OnVisit hook error.
//
// Complexity: O(V + E log d) where d is the largest friend count.
func BFS(n *Network, start string, opts ...Option) (*Result, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !n.HasPerson(start) {
		return nil, fmt.Errorf("%w: %q", ErrPersonNotFound, start)
	}

	size := n.Len()
	w := &walker{
		net:     n,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, size),
		visited: make(map[string]bool, size),
		res: &Result{
			Order:  make([]string, 0, size),
			Depth:  make(map[string]int, size),
			Parent: make(map[string]string, size),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("socialgraph: OnVisit error at %q: %w", item.id, err)
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}

		friends, err := w.net.Friends(item.id)
		if err != nil {
			return err
		}
		for _, f := range friends {
			if !w.visited[f] {
				w.enqueue(f, item.depth+1, item.id)
			}
		}
	}

	return nil
}

// DegreesOfSeparation returns the number of friendship hops between a and b.
// A person is 0 degrees from themselves.
func DegreesOfSeparation(n *Network, a, b string) (int, error) {
	if n == nil {
		return 0, ErrNilNetwork
	}
	if !n.HasPerson(b) {
		return 0, fmt.Errorf("%w: %q", ErrPersonNotFound, b)
	}
	found := false
	res, err := BFS(n, a, WithOnVisit(func(id string, _ int) error {
		if id == b {
			found = true
			return errReached
		}
		return nil
	}))
	if err != nil && !found {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("%w: %q and %q", ErrNotConnected, a, b)
	}

	return res.Depth[b], nil
}

// SuggestFriends ranks people at exactly two degrees from id by the number
// of mutual friends (descending, ties by ID ascending). limit <= 0 means all.
func SuggestFriends(n *Network, id string, limit int) ([]Suggestion, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	direct, err := n.Friends(id)
	if err != nil {
		return nil, err
	}

	mutual := make(map[string]int)
	for _, f := range direct {
		fof, err := n.Friends(f)
		if err != nil {
			return nil, err
		}
		for _, cand := range fof {
			if cand == id || n.AreFriends(id, cand) {
				continue
			}
			mutual[cand]++
		}
	}

	out := make([]Suggestion, 0, len(mutual))
	for cand, m := range mutual {
		out = append(out, Suggestion{ID: cand, Mutual: m})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Mutual != out[j].Mutual {
			return out[i].Mutual > out[j].Mutual
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}
