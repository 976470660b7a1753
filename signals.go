package vigil

import "github.com/zoobzio/capitan"

// Subscription lifecycle signals.
var (
	// SubscriptionCreated is emitted when On or Once registers a listener
	// with the store.
	SubscriptionCreated = capitan.NewSignal(
		"vigil.subscription.created",
		"Subscription registered with store",
	)

	// SubscriptionMatched is emitted when a predicate matches, before the
	// callback is invoked.
	SubscriptionMatched = capitan.NewSignal(
		"vigil.subscription.matched",
		"Predicate matched store state",
	)

	// SubscriptionDetached is emitted when a subscription leaves the store,
	// either through its unsubscribe handle or after a Once match.
	SubscriptionDetached = capitan.NewSignal(
		"vigil.subscription.detached",
		"Subscription detached from store",
	)
)
