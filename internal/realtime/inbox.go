package realtime

import "sync"

// Inbox is an idempotent merge-by-id reducer for topic consumers. The broker
// may deliver the same event more than once; an Inbox keeps the first copy
// of each id and drops the rest, so consumers can treat every inbound event
// as a merge instead of an append.
type Inbox[T any] struct {
	mu    sync.Mutex
	seen  map[string]struct{}
	items []T
}

// NewInbox creates an empty inbox.
func NewInbox[T any]() *Inbox[T] {
	return &Inbox[T]{seen: make(map[string]struct{})}
}

// Merge adds the item under its id. Returns false when the id was already
// merged, in which case the item is discarded.
func (i *Inbox[T]) Merge(id string, item T) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	if _, ok := i.seen[id]; ok {
		return false
	}
	i.seen[id] = struct{}{}
	i.items = append(i.items, item)
	return true
}

// Items returns the merged items in first-seen order.
func (i *Inbox[T]) Items() []T {
	i.mu.Lock()
	defer i.mu.Unlock()

	out := make([]T, len(i.items))
	copy(out, i.items)
	return out
}

// Len returns the number of distinct merged items.
func (i *Inbox[T]) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.items)
}
