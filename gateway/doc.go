// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package gateway runs an http.Handler behind AWS API Gateway proxy
// integrations. See cmd/lambda.
package gateway
