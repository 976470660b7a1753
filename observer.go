package vigil

import (
	"context"

	"github.com/zoobzio/capitan"
)

// GetState reads the store's current state. Predicates and callbacks receive
// the store's own accessor rather than a snapshot, so they decide when and
// how often to read.
type GetState[S any] func() S

// Predicate gates a callback. It must not mutate the store.
type Predicate[S any] func(get GetState[S]) bool

// Callback runs when its predicate matches.
type Callback[S any] func(get GetState[S])

// Unsubscribe detaches a subscription from the store. Safe to call any
// number of times.
type Unsubscribe func()

// Observer bridges a store's change notifications into predicate-gated
// callbacks. Each call to On or Once owns exactly one store listener;
// subscriptions never share state with one another.
type Observer[S any] struct {
	store   Store[S]
	name    string
	ctx     context.Context
	metrics MetricsProvider
}

// New creates an Observer for the given store. The store is not validated.
//
// Example:
//
//	obs := vigil.New[AppState](store, vigil.WithName("session"))
//
//	unsubscribe := obs.Once(
//	    func(get vigil.GetState[AppState]) bool { return get().User != nil },
//	    func(get vigil.GetState[AppState]) { greet(get().User) },
//	)
//	defer unsubscribe()
func New[S any](store Store[S], opts ...Option) *Observer[S] {
	cfg := &config{
		name:    DefaultName,
		ctx:     context.Background(),
		metrics: NoOpMetricsProvider{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Observer[S]{
		store:   store,
		name:    cfg.name,
		ctx:     cfg.ctx,
		metrics: cfg.metrics,
	}
}

// On invokes callback after every store notification for which predicate
// returns true, until the returned Unsubscribe is called.
//
// Panics raised by predicate, callback or the store propagate to whoever
// triggered the notification.
func (o *Observer[S]) On(predicate Predicate[S], callback Callback[S]) Unsubscribe {
	return o.subscribe(ModeOn, predicate, callback)
}

// Once invokes callback on the first store notification for which predicate
// returns true. The subscription detaches from the store before callback
// runs, so callback observes a clean, detached state and later notifications
// are ignored.
//
// The returned Unsubscribe cancels the subscription if it has not matched
// yet; after a match it does nothing.
func (o *Observer[S]) Once(predicate Predicate[S], callback Callback[S]) Unsubscribe {
	return o.subscribe(ModeOnce, predicate, callback)
}

// subscribe registers a new subscription with the store. Creation is reported
// only once the store has accepted the listener, so a store that notifies
// during Subscribe reports the match and detach first.
func (o *Observer[S]) subscribe(mode Mode, predicate Predicate[S], callback Callback[S]) Unsubscribe {
	s := &subscription[S]{
		observer:  o,
		mode:      mode,
		predicate: predicate,
		callback:  callback,
	}
	s.state.Store(int32(StateActive))

	remove := o.store.Subscribe(s.notify)
	s.remove.Store(&remove)

	o.metrics.OnSubscribe(mode)
	capitan.Emit(o.ctx, SubscriptionCreated,
		KeyObserver.Field(o.name),
		KeyMode.Field(mode.String()),
	)

	// The store may notify synchronously while registering; a Once that
	// matched then could not reach the handle yet.
	if s.State() == StateDetached {
		remove()
	}

	return s.unsubscribe
}
