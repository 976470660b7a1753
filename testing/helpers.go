// Package testing provides test utilities and helpers for vigil observers.
package testing

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/zoobzio/vigil"
)

// Action is a minimal action carrying only a type.
type Action struct {
	Type string
}

// LastAction is a state shape that remembers the most recent action type.
type LastAction struct {
	Last string
}

// RecordLast is a reducer that replaces the state with the type of the
// dispatched action. Actions without a type leave the state unchanged.
func RecordLast(state LastAction, action Action) LastAction {
	if action.Type != "" {
		state = LastAction{Last: action.Type}
	}
	return state
}

// Reducer computes the next state from the current state and an action.
type Reducer[S, A any] func(S, A) S

// Store is a reducer-driven, in-memory vigil.Store for tests.
//
// Dispatch snapshots the listener list before notifying, so a listener removed
// during a notification still receives that notification. Observers must
// cope with this.
type Store[S, A any] struct {
	reducer Reducer[S, A]

	mu        sync.RWMutex
	state     S
	listeners []*listener

	reads atomic.Int64
}

type listener struct {
	fn func()
}

// NewStore creates a Store with the given reducer and initial state.
func NewStore[S, A any](reducer Reducer[S, A], initial S) *Store[S, A] {
	return &Store[S, A]{
		reducer: reducer,
		state:   initial,
	}
}

// NewLastActionStore creates a Store that records the last dispatched action type.
func NewLastActionStore() *Store[LastAction, Action] {
	return NewStore[LastAction, Action](RecordLast, LastAction{})
}

// GetState returns the current state and counts the read.
func (s *Store[S, A]) GetState() S {
	s.reads.Add(1)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies the action and notifies every listener registered at the
// time of the call, in registration order.
func (s *Store[S, A]) Dispatch(action A) {
	s.mu.Lock()
	s.state = s.reducer(s.state, action)
	subs := make([]*listener, len(s.listeners))
	copy(subs, s.listeners)
	s.mu.Unlock()

	for _, l := range subs {
		l.fn()
	}
}

// Subscribe registers a listener and returns a function that removes it.
// The returned function is idempotent.
func (s *Store[S, A]) Subscribe(fn func()) func() {
	l := &listener{fn: fn}

	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, candidate := range s.listeners {
				if candidate == l {
					s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// Listeners returns the number of registered listeners.
func (s *Store[S, A]) Listeners() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

// Reads returns how many times GetState has been called.
func (s *Store[S, A]) Reads() int64 {
	return s.reads.Load()
}

// Spy records invocations of a predicate or callback.
type Spy[S any] struct {
	mu    sync.Mutex
	calls int
	last  vigil.GetState[S]
}

// Record counts a call and remembers the accessor it received.
func (s *Spy[S]) Record(get vigil.GetState[S]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.last = get
}

// Callback returns a vigil.Callback that records every invocation.
func (s *Spy[S]) Callback() vigil.Callback[S] {
	return s.Record
}

// Predicate returns a vigil.Predicate that records every invocation and
// delegates the decision to match.
func (s *Spy[S]) Predicate(match vigil.Predicate[S]) vigil.Predicate[S] {
	return func(get vigil.GetState[S]) bool {
		s.Record(get)
		return match(get)
	}
}

// Calls returns the number of recorded invocations.
func (s *Spy[S]) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Last returns the accessor received by the most recent invocation, or nil.
func (s *Spy[S]) Last() vigil.GetState[S] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// LastIs returns a predicate matching when the last recorded action type
// equals typ.
func LastIs(typ string) vigil.Predicate[LastAction] {
	return func(get vigil.GetState[LastAction]) bool {
		return get().Last == typ
	}
}

// WaitFor polls a condition until it returns true or timeout is reached.
// Returns true if the condition was met, false if timeout occurred.
func WaitFor(t *testing.T, timeout time.Duration, condition func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

// RequireCalls fails the test immediately if the spy was not invoked
// exactly n times.
func RequireCalls[S any](t *testing.T, spy *Spy[S], n int) {
	t.Helper()
	if got := spy.Calls(); got != n {
		t.Fatalf("expected %d calls, got %d", n, got)
	}
}
