package socialgraph

import (
	"fmt"
	"sort"
	"sync"
)

// Network is an undirected friendship graph.
//
// All methods are safe for concurrent use; mu guards friends.
// friends[a][b] exists iff friends[b][a] exists.
type Network struct {
	mu      sync.RWMutex
	friends map[string]map[string]struct{}
}

// NewNetwork creates an empty Network.
func NewNetwork() *Network {
	return &Network{friends: make(map[string]map[string]struct{})}
}

// AddPerson registers id. Adding an existing person is a no-op.
// Complexity: O(1).
func (n *Network) AddPerson(id string) error {
	if id == "" {
		return ErrEmptyID
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.addLocked(id)

	return nil
}

func (n *Network) addLocked(id string) {
	if _, ok := n.friends[id]; !ok {
		n.friends[id] = make(map[string]struct{})
	}
}

// Befriend links a and b in both directions, registering either person if
// needed. Repeated calls are idempotent.
// Complexity: O(1).
func (n *Network) Befriend(a, b string) error {
	if a == "" || b == "" {
		return ErrEmptyID
	}
	if a == b {
		return fmt.Errorf("%w: %q", ErrSelfFriendship, a)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.addLocked(a)
	n.addLocked(b)
	n.friends[a][b] = struct{}{}
	n.friends[b][a] = struct{}{}

	return nil
}

// HasPerson reports whether id is registered.
func (n *Network) HasPerson(id string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.friends[id]

	return ok
}

// AreFriends reports whether a and b are directly linked.
func (n *Network) AreFriends(a, b string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.friends[a][b]

	return ok
}

// Friends returns the sorted friends of id.
// Complexity: O(d log d) for d friends.
func (n *Network) Friends(id string) ([]string, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	set, ok := n.friends[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPersonNotFound, id)
	}

	return sortedKeys(set), nil
}

// People returns every registered ID, sorted.
func (n *Network) People() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]string, 0, len(n.friends))
	for id := range n.friends {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Len returns the number of people.
func (n *Network) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.friends)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
