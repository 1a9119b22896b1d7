// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	middleware.WithLogging(handler)

Logs request start (method, path, remote) and completion (status,
duration_ms). Every request gets an X-Request-ID, reused from the client
when present.

# Endpoints and CORS

An Endpoint dispatches one path by method and answers preflight requests
with exactly the methods registered on it:

	results := middleware.NewEndpoint("Content-Type", "X-Participant-Id").
		Handle(http.MethodPost, submit).
		Handle(http.MethodGet, fetch)

OPTIONS returns 200 with an empty body. Other unregistered methods return
405 with a JSON error. CORS sets Access-Control-Allow-Origin: * on every
response, including errors.

# Errors

Handlers return apperr values and hand them to WriteError:

	if err := req.Validate(); err != nil {
		middleware.WriteError(w, r, err)
		return
	}

The error kind picks the status code. Causes of 500s are logged and never
written to the response.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

# Client IP Extraction

	ip := middleware.GetClientIP(r)
*/
package middleware
