// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"

	"github.com/danielhkuo/olympiad/cliparse"
)

// requestContext derives the context for a request's database work,
// bounded by cfg.RequestTimeout when it is set
func requestContext(r *http.Request, cfg cliparse.Config) (context.Context, context.CancelFunc) {
	if cfg.RequestTimeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), cfg.RequestTimeout)
}
