/*
Package vigil lets callers react to conditions in a unidirectional-data-flow
state container without hand-wiring subscribe/unsubscribe bookkeeping.

A store is anything with a synchronous GetState and a Subscribe that invokes
zero-argument listeners after every state change. vigil wraps it in an
Observer exposing two operations, On and Once, each pairing a predicate with a
callback.

# Basic Usage

Create an Observer around a store:

	obs := vigil.New[AppState](store)

React every time a condition holds:

	unsubscribe := obs.On(
	    func(get vigil.GetState[AppState]) bool { return get().Cart.Total > 100 },
	    func(get vigil.GetState[AppState]) { offerFreeShipping(get().Cart) },
	)
	defer unsubscribe()

React the first time a condition holds, then stop listening:

	obs.Once(
	    func(get vigil.GetState[AppState]) bool { return get().Session.Ready },
	    func(get vigil.GetState[AppState]) { greet(get().Session.User) },
	)

Predicates and callbacks receive the store's own GetState accessor rather than
a copy of the state, so they choose when, and how often, to read it.

# Subscriptions

Every call to On or Once registers exactly one store listener and returns an
Unsubscribe. A subscription is either active or detached; detached is final.
Once detaches before running its callback, so the callback may freely
re-subscribe or dispatch. Unsubscribe is idempotent.

Predicates can be combined:

	obs.On(vigil.All(loggedIn, vigil.Not(isAdmin)), showOnboarding)

# Observability

Subscription lifecycle is published through capitan signals:

	capitan.Hook(vigil.SubscriptionDetached, func(_ context.Context, e *capitan.Event) {
	    reason, _ := vigil.KeyReason.From(e)
	    log.Printf("subscription detached: %s", reason)
	})

For metrics, supply a MetricsProvider with WithMetrics.

# Concurrency

vigil adds no locking and no goroutines. Predicates and callbacks run inline on
the store's notification path, and panics propagate to whoever triggered the
notification. Subscription state is atomic, so a Once fires at most once even
when a store notifies from several goroutines.
*/
package vigil
