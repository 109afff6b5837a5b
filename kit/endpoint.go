// CLAUDE:SUMMARY Transport-agnostic endpoint and middleware primitives shared by HTTP and MCP surfaces.
// Package kit holds the small transport toolkit: an Endpoint abstraction
// with middleware chaining, request-scoped context values, and the MCP
// tool adapter. Business packages expose Endpoints; transports adapt them.
package kit

import "context"

// Endpoint is a single request/response operation. Both the HTTP handlers
// and the MCP tools terminate in one of these.
type Endpoint func(ctx context.Context, req any) (any, error)

// Middleware wraps an Endpoint with cross-cutting behaviour.
type Middleware func(Endpoint) Endpoint

// Chain composes middlewares left to right: the first argument is the
// outermost wrapper.
func Chain(mws ...Middleware) Middleware {
	return func(next Endpoint) Endpoint {
		for i := len(mws) - 1; i >= 0; i-- {
			next = mws[i](next)
		}
		return next
	}
}
