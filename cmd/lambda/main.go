// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command lambda serves the olympiad API as a single serverless function
// behind an API Gateway proxy integration. Configuration comes from the
// environment only.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/danielhkuo/olympiad/cliparse"
	"github.com/danielhkuo/olympiad/db"
	"github.com/danielhkuo/olympiad/gateway"
	"github.com/danielhkuo/olympiad/middleware"
	"github.com/danielhkuo/olympiad/router"
)

func main() {
	cfg, err := cliparse.ParseFlags(nil)
	if err != nil {
		slog.Error("Error parsing configuration", "error", err)
		os.Exit(1)
	}
	middleware.SetupLogger(os.Stdout, cfg.LogFormat, cfg.SlogLevel())

	// The pool survives across warm invocations
	dbConn, err := db.Open(context.Background(), cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	lambda.Start(gateway.Handler(router.NewRouter(dbConn, cfg)))
}
