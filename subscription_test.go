package vigil

import "testing"

// counterStore never forgets a listener, so detached subscriptions stay
// reachable from the store.
type counterStore struct {
	state     int
	listeners []func()
}

func (s *counterStore) GetState() int { return s.state }

func (s *counterStore) Subscribe(listener func()) func() {
	s.listeners = append(s.listeners, listener)
	return func() {}
}

func TestSubscription_StateTransitions(t *testing.T) {
	store := &counterStore{}
	obs := New[int](store)

	unsubscribe := obs.On(func(GetState[int]) bool { return true }, func(GetState[int]) {})
	if len(store.listeners) != 1 {
		t.Fatalf("expected 1 listener, got %d", len(store.listeners))
	}

	unsubscribe()
	unsubscribe()

	// The store above never removes listeners; the subscription must still
	// refuse to act once detached.
	calls := 0
	obs.On(func(GetState[int]) bool { calls++; return true }, func(GetState[int]) {})()
	for _, l := range store.listeners {
		l()
	}
	if calls != 0 {
		t.Errorf("expected detached subscriptions to ignore notifications, got %d predicate calls", calls)
	}
}

func TestSubscription_OnceMatchDetaches(t *testing.T) {
	store := &counterStore{}
	obs := New[int](store)

	calls := 0
	obs.Once(func(get GetState[int]) bool { return get() > 0 }, func(GetState[int]) { calls++ })

	s := store.listeners[0]
	s()
	if calls != 0 {
		t.Fatalf("expected no match at state 0, got %d calls", calls)
	}

	store.state = 1
	s()
	s()
	if calls != 1 {
		t.Errorf("expected exactly one call, got %d", calls)
	}
}
