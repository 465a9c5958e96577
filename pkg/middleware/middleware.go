// Package middleware provides composable HTTP middleware and the stack
// that applies it in registration order.
package middleware

import "net/http"

// Stack manages an ordered sequence of HTTP middleware.
type Stack struct {
	chain []func(http.Handler) http.Handler
}

// NewStack creates an empty middleware Stack.
func NewStack() *Stack {
	return &Stack{}
}

// Use appends middleware to the stack.
func (s *Stack) Use(mw func(http.Handler) http.Handler) {
	s.chain = append(s.chain, mw)
}

// Apply wraps handler with the stack so that the first registered
// middleware is the outermost.
func (s *Stack) Apply(handler http.Handler) http.Handler {
	for i := len(s.chain) - 1; i >= 0; i-- {
		handler = s.chain[i](handler)
	}
	return handler
}
