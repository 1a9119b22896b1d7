// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apperr defines the error kinds a request can fail with.

	Validation        400
	Conflict          409
	NotFound          404
	MethodNotAllowed  405
	Persistence       500

Anything that is not an *Error is treated as Persistence by As.
*/
package apperr
