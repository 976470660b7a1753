package vigil

// Store is the state container a vigil Observer watches.
//
// GetState returns the current state synchronously. Subscribe registers a
// zero-argument listener that the store invokes after every state change and
// returns a function that removes exactly that listener. Calling the returned
// function more than once must be safe.
type Store[S any] interface {
	GetState() S
	Subscribe(listener func()) func()
}

// StoreFuncs adapts a pair of functions to the Store interface.
// Useful for containers whose accessor or subscription methods are named
// differently, or whose listeners receive a payload that vigil ignores.
type StoreFuncs[S any] struct {
	Get func() S
	Sub func(listener func()) func()
}

// GetState calls Get.
func (f StoreFuncs[S]) GetState() S {
	return f.Get()
}

// Subscribe calls Sub.
func (f StoreFuncs[S]) Subscribe(listener func()) func() {
	return f.Sub(listener)
}
