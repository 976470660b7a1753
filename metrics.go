package vigil

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on key subscription events.
//
// Hooks run inline on the store's notification path and should return quickly.
type MetricsProvider interface {
	// OnSubscribe is called when a subscription registers with the store.
	OnSubscribe(mode Mode)

	// OnNotify is called for every notification an active subscription
	// handles, after its predicate has been evaluated.
	OnNotify(mode Mode, matched bool)

	// OnDetach is called once when a subscription detaches.
	// Reason is ReasonUnsubscribed or ReasonMatched.
	OnDetach(mode Mode, reason string)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnSubscribe(_ Mode)        {}
func (NoOpMetricsProvider) OnNotify(_ Mode, _ bool)   {}
func (NoOpMetricsProvider) OnDetach(_ Mode, _ string) {}
