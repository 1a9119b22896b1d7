// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the olympiad API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - RegistrationHandler: participant registration
  - TaskHandler: task listing
  - ResultsHandler: answer submission and result lookup

Handlers are created via constructor functions:

	registrationHandler := handlers.NewRegistrationHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg, m)

Every handler bounds its database work by cfg.RequestTimeout. A request
that runs out of time fails as a 500 like any other persistence error.

# Registration

	POST /register → Register

All six fields are trimmed and required. A second registration with the
same email is rejected with 409.

# Tasks

	GET /tasks → ListTasks

Tasks are returned in order_number order. The correct answer is never
selected, so it cannot leak into the response.

# Results

	POST /results → SubmitResults
	GET  /results → GetResults (?participant_id=N or X-Participant-Id)

Submission grades every answer with GradeAnswer and upserts one row per
(participant, task), so a resubmission replaces the earlier answer.
Answers for unknown tasks are skipped but still counted in total_tasks.
The whole submission runs in one transaction.

# Scoring

ScoreSubmission is pure and has no database access:

	graded, summary := handlers.ScoreSubmission(req.Answers, keys)

An answer is correct when it equals the stored answer after trimming
surrounding whitespace. Comparison is case-sensitive.
*/
package handlers
