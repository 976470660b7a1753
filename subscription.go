package vigil

import (
	"sync/atomic"

	"github.com/zoobzio/capitan"
)

// subscription binds one predicate/callback pair to one store listener.
type subscription[S any] struct {
	observer  *Observer[S]
	mode      Mode
	predicate Predicate[S]
	callback  Callback[S]

	state   atomic.Int32
	matches atomic.Int64

	// remove is the store's deregistration handle, set once Subscribe returns.
	remove atomic.Pointer[func()]
}

// State returns the current state of the subscription.
func (s *subscription[S]) State() State {
	return State(s.state.Load())
}

// notify is the listener registered with the store.
func (s *subscription[S]) notify() {
	if s.State() != StateActive {
		return
	}

	get := GetState[S](s.observer.store.GetState)

	matched := s.predicate(get)

	// The predicate itself may have unsubscribed.
	if s.State() != StateActive {
		return
	}

	s.observer.metrics.OnNotify(s.mode, matched)
	if !matched {
		return
	}

	if s.mode == ModeOnce {
		// Lost to a concurrent unsubscribe or match.
		if !s.transition() {
			return
		}
		s.recordMatch()
		s.release(ReasonMatched)
	} else {
		s.recordMatch()
	}

	s.callback(get)
}

// unsubscribe is handed to the caller as the subscription's Unsubscribe.
func (s *subscription[S]) unsubscribe() {
	if s.transition() {
		s.release(ReasonUnsubscribed)
	}
}

// transition moves the subscription from active to detached. Only the first
// caller succeeds.
func (s *subscription[S]) transition() bool {
	return s.state.CompareAndSwap(int32(StateActive), int32(StateDetached))
}

// recordMatch counts a predicate match and reports it.
func (s *subscription[S]) recordMatch() {
	n := s.matches.Add(1)
	capitan.Emit(s.observer.ctx, SubscriptionMatched,
		KeyObserver.Field(s.observer.name),
		KeyMode.Field(s.mode.String()),
		KeyMatches.Field(int(n)),
	)
}

// release removes the listener from the store and reports the detachment.
func (s *subscription[S]) release(reason string) {
	if remove := s.remove.Load(); remove != nil {
		(*remove)()
	}

	s.observer.metrics.OnDetach(s.mode, reason)
	capitan.Emit(s.observer.ctx, SubscriptionDetached,
		KeyObserver.Field(s.observer.name),
		KeyMode.Field(s.mode.String()),
		KeyReason.Field(reason),
		KeyMatches.Field(int(s.matches.Load())),
	)
}
