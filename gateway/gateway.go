// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/danielhkuo/olympiad/models"
)

// HandlerFunc is the signature lambda.Start expects for API Gateway
// proxy integrations
type HandlerFunc func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// Handler serves API Gateway proxy events with an ordinary http.Handler.
// It never returns an error, so every failure reaches the caller as a
// JSON response.
func Handler(h http.Handler) HandlerFunc {
	adapter := httpadapter.New(h)

	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		resp, err := adapter.ProxyWithContext(ctx, event)
		if err != nil {
			slog.Warn("rejecting proxy event",
				"method", event.HTTPMethod,
				"path", event.Path,
				"error", err,
			)
			return badRequest(), nil
		}
		return resp, nil
	}
}

func badRequest() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusBadRequest,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: `{"error":"Bad Request","message":"` + models.MsgInvalidJSON + `"}`,
	}
}
