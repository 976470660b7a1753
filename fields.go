package vigil

import "github.com/zoobzio/capitan"

// Field keys for subscription events.
var (
	// KeyObserver is the name given to the Observer via WithName.
	KeyObserver = capitan.NewStringKey("observer")

	// KeyMode is the subscription mode, "on" or "once".
	KeyMode = capitan.NewStringKey("mode")

	// KeyReason is why a subscription detached.
	KeyReason = capitan.NewStringKey("reason")

	// KeyMatches is the number of times the predicate has matched.
	KeyMatches = capitan.NewIntKey("matches")
)
