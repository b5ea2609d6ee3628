// Package notify implements a small synchronous publish/subscribe hub used by
// connectors and graphs to announce changes.
package notify

import (
	"sort"
	"sync"
)

// Hub fans events of type E out to subscribers. Subscribers are called
// synchronously on the publishing goroutine, in subscription order, and must
// not block.
type Hub[E any] struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]func(E)
}

// Subscribe registers fn and returns a function that removes it again.
// Calling cancel more than once is harmless.
func (h *Hub[E]) Subscribe(fn func(E)) (cancel func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs == nil {
		h.subs = make(map[uint64]func(E))
	}
	id := h.nextID
	h.nextID++
	h.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// Publish delivers e to every current subscriber. The subscriber list is
// copied before delivery so subscribers may cancel themselves.
func (h *Hub[E]) Publish(e E) {
	h.mu.Lock()
	if len(h.subs) == 0 {
		h.mu.Unlock()
		return
	}
	ids := make([]uint64, 0, len(h.subs))
	for id := range h.subs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	fns := make([]func(E), len(ids))
	for i, id := range ids {
		fns[i] = h.subs[id]
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}

// Len returns the number of active subscribers.
func (h *Hub[E]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
