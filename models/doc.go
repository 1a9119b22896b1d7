// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON, each with a Validate method that runs
before any database work:

  - RegisterRequest: student_name, school, class_name, parent_name, email, phone
  - SubmitResultsRequest: participant_id, answers
  - AnswerSubmission: task_id, answer, time_spent_seconds

# Response Types

  - RegisterResponse: success, message, participant
  - TaskListResponse: tasks, total
  - SubmitResultsResponse: success, total_points, correct_count, total_tasks
  - FetchResultsResponse: results, total_points
  - ErrorResponse: error, message

# Domain Types

  - Task: public task view (never carries the correct answer)
  - AnswerKey: correct answer and points used for grading
  - GradedAnswer: an answer after grading
  - ParticipantSummary: what registration echoes back

# Constants

New participants start with PaymentStatusPending ("pending"). The "paid"
status is written by the payment side, outside this API.

User-facing messages are the Msg* constants.
*/
package models
