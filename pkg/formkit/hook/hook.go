// Package hook provides ordered, synchronous notification hooks for the
// element model. A Hook holds zero or more subscribers; firing invokes them
// in subscription order and returns only after every subscriber has run.
package hook

// Hook is an ordered list of subscribers for one kind of state transition.
//
// The zero value is ready to use. Firing a hook with no subscribers is a
// safe no-op.
//
// Hook is NOT safe for concurrent use. The element model is synchronous and
// single-goroutine by design; guard externally if hooks must be shared.
type Hook[T any] struct {
	subs []*subscriber[T]
}

// Subscription detaches a subscriber from its hook.
type Subscription interface {
	// Unsubscribe removes the subscriber. Calling it more than once is a
	// no-op. Unsubscribing during Fire takes effect for later firings; the
	// in-flight firing still delivers to subscribers captured at its start.
	Unsubscribe()
}

type subscriber[T any] struct {
	hook *Hook[T]
	fn   func(T)
}

// Subscribe appends fn to the hook's subscriber list.
// Panics if fn is nil.
func (h *Hook[T]) Subscribe(fn func(T)) Subscription {
	if fn == nil {
		panic("hook: subscriber cannot be nil")
	}
	s := &subscriber[T]{hook: h, fn: fn}
	h.subs = append(h.subs, s)
	return s
}

// Fire invokes every subscriber with v, in subscription order.
// All subscribers complete before Fire returns.
func (h *Hook[T]) Fire(v T) {
	if len(h.subs) == 0 {
		return
	}
	// Snapshot so subscribing or unsubscribing from inside a subscriber
	// does not disturb the current delivery.
	snapshot := make([]*subscriber[T], len(h.subs))
	copy(snapshot, h.subs)
	for _, s := range snapshot {
		if s.hook == nil {
			continue // unsubscribed mid-fire
		}
		s.fn(v)
	}
}

// HasSubscribers reports whether at least one subscriber is attached.
func (h *Hook[T]) HasSubscribers() bool {
	return len(h.subs) > 0
}

// Len returns the number of attached subscribers.
func (h *Hook[T]) Len() int {
	return len(h.subs)
}

// Unsubscribe removes the subscriber from its hook.
func (s *subscriber[T]) Unsubscribe() {
	h := s.hook
	if h == nil {
		return
	}
	s.hook = nil
	for i, sub := range h.subs {
		if sub == s {
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			return
		}
	}
}
