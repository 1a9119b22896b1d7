// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags and Environment Variables

	-p           PORT           Server port (default 3318)
	-d           DATABASE_URL   Database URL (required)
	-t           DATABASE_TYPE  postgres or sqlite (default postgres)
	-log-level   LOG_LEVEL      debug, info, warn, error (default info)
	-log-format  LOG_FORMAT     json or text (default json)
	-request-timeout  REQUEST_TIMEOUT  database time per request (default 10s, 0 disables)
	-env                        .env file to load (default .env)

CLI flags take precedence over environment variables. The .env file is
loaded with godotenv and never overrides variables that are already set;
a missing file is not an error.
*/
package cliparse
