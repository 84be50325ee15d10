package middleware

import "github.com/aretw0/knobs/pkg/ports"

// Middleware allows wrapping a ValueStore to add behavior.
type Middleware func(ports.ValueStore) ports.ValueStore

// Chain applies middlewares so that the first one is the outermost.
func Chain(store ports.ValueStore, mws ...Middleware) ports.ValueStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
