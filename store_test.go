package vigil

import "testing"

func TestStoreFuncs_Delegates(t *testing.T) {
	var registered func()
	removed := false

	store := StoreFuncs[string]{
		Get: func() string { return "state" },
		Sub: func(listener func()) func() {
			registered = listener
			return func() { removed = true }
		},
	}

	if store.GetState() != "state" {
		t.Errorf("expected 'state', got %q", store.GetState())
	}

	called := false
	remove := store.Subscribe(func() { called = true })
	registered()
	if !called {
		t.Error("expected listener to be registered through Sub")
	}

	remove()
	if !removed {
		t.Error("expected remove to come from Sub")
	}
}

func TestStoreFuncs_PayloadListener(t *testing.T) {
	// A container whose listeners receive the new value.
	var subscribers []func(int)
	value := 0
	set := func(v int) {
		value = v
		for _, fn := range subscribers {
			fn(v)
		}
	}

	store := StoreFuncs[int]{
		Get: func() int { return value },
		Sub: func(listener func()) func() {
			subscribers = append(subscribers, func(int) { listener() })
			return func() {}
		},
	}

	var seen []int
	New[int](store).On(
		func(get GetState[int]) bool { return get()%2 == 0 },
		func(get GetState[int]) { seen = append(seen, get()) },
	)

	for i := 1; i <= 4; i++ {
		set(i)
	}

	if len(seen) != 2 || seen[0] != 2 || seen[1] != 4 {
		t.Errorf("expected [2 4], got %v", seen)
	}
}

var _ Store[int] = StoreFuncs[int]{}
