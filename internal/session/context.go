package session

import "context"

type contextKey int

const stateContextKey contextKey = iota

// State carries the per-request session container and its refresher
// through the request context, so that every upstream call made while
// serving one inbound request shares the same store and renewal.
type State struct {
	Store     *Store
	Refresher Refresher
}

func WithState(ctx context.Context, state *State) context.Context {
	return context.WithValue(ctx, stateContextKey, state)
}

func StateFromContext(ctx context.Context) (*State, bool) {
	state, ok := ctx.Value(stateContextKey).(*State)
	return state, ok
}

// FromContext returns the resolved session of the current request.
func FromContext(ctx context.Context) (Session, Status) {
	state, ok := StateFromContext(ctx)
	if !ok {
		return Session{}, StatusUninitialized
	}

	return state.Store.Get()
}
