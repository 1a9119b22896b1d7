// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"strings"

	"github.com/danielhkuo/olympiad/apperr"
)

// PreflightMaxAge is how long browsers may cache a preflight response
const PreflightMaxAge = "86400"

// Endpoint dispatches one path by method and answers CORS preflight
// requests with the methods registered on it. Unregistered methods get a
// 405 JSON error.
type Endpoint struct {
	allowHeaders string
	methods      []string
	handlers     map[string]http.HandlerFunc
}

func NewEndpoint(allowHeaders ...string) *Endpoint {
	if len(allowHeaders) == 0 {
		allowHeaders = []string{"Content-Type"}
	}
	return &Endpoint{
		allowHeaders: strings.Join(allowHeaders, ", "),
		handlers:     make(map[string]http.HandlerFunc),
	}
}

// Handle registers h for method. Registration order is the order
// advertised in Access-Control-Allow-Methods.
func (e *Endpoint) Handle(method string, h http.HandlerFunc) *Endpoint {
	if _, exists := e.handlers[method]; !exists {
		e.methods = append(e.methods, method)
	}
	e.handlers[method] = h
	return e
}

// AllowedMethods returns the Access-Control-Allow-Methods value
func (e *Endpoint) AllowedMethods() string {
	return strings.Join(append(append([]string{}, e.methods...), http.MethodOptions), ", ")
}

func (e *Endpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	if r.Method == http.MethodOptions {
		w.Header().Set("Access-Control-Allow-Methods", e.AllowedMethods())
		w.Header().Set("Access-Control-Allow-Headers", e.allowHeaders)
		w.Header().Set("Access-Control-Max-Age", PreflightMaxAge)
		w.WriteHeader(http.StatusOK)
		return
	}

	h, ok := e.handlers[r.Method]
	if !ok {
		w.Header().Set("Allow", e.AllowedMethods())
		WriteError(w, r, apperr.MethodNotAllowed())
		return
	}

	h(w, r)
}
