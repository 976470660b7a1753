package vigil

// All returns a predicate that matches when every given predicate matches.
// Evaluation stops at the first predicate that does not match. With no
// predicates, All always matches.
func All[S any](predicates ...Predicate[S]) Predicate[S] {
	return func(get GetState[S]) bool {
		for _, p := range predicates {
			if !p(get) {
				return false
			}
		}
		return true
	}
}

// Any returns a predicate that matches when at least one given predicate
// matches. Evaluation stops at the first match. With no predicates, Any
// never matches.
func Any[S any](predicates ...Predicate[S]) Predicate[S] {
	return func(get GetState[S]) bool {
		for _, p := range predicates {
			if p(get) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate.
func Not[S any](predicate Predicate[S]) Predicate[S] {
	return func(get GetState[S]) bool {
		return !predicate(get)
	}
}
