package vigil

// State represents the lifecycle state of a single subscription.
type State int32

const (
	// StateActive indicates the subscription is registered with the store
	// and evaluates its predicate on every notification.
	StateActive State = iota

	// StateDetached indicates the subscription has been removed from the
	// store, either explicitly or after a Once match. Terminal.
	StateDetached
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateDetached:
		return "detached"
	default:
		return "unknown"
	}
}

// Mode distinguishes subscriptions created by On from those created by Once.
type Mode int

const (
	// ModeOn fires the callback on every matching notification.
	ModeOn Mode = iota

	// ModeOnce fires the callback on the first matching notification only.
	ModeOnce
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeOn:
		return "on"
	case ModeOnce:
		return "once"
	default:
		return "unknown"
	}
}

// Reasons reported when a subscription detaches.
const (
	ReasonUnsubscribed = "unsubscribed"
	ReasonMatched      = "matched"
)
