// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open validates the database type, opens a pool and pings it:

	conn, err := db.Open(ctx, db.TypePostgres, cfg.DatabaseURL)

PostgreSQL (lib/pq) is used in production; SQLite (modernc.org/sqlite) is
used for local runs and tests. All queries use $N placeholders, which both
drivers accept.

# Schema Creation

CreateSchema initializes all required tables for the given dialect:

	if err := db.CreateSchema(ctx, conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - participants: registered students, email is unique
  - tasks: olympiad questions with correct answers and points
  - results: one row per (participant_id, task_id)

# Relationships

	participants 1──* results *──1 tasks

All foreign keys use ON DELETE CASCADE.

# Constraint Errors

IsUniqueViolation recognizes a UNIQUE constraint failure from either
driver, so handlers can report duplicates as conflicts.
*/
package db
