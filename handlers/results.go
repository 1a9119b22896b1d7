// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/olympiad/apperr"
	"github.com/danielhkuo/olympiad/cliparse"
	"github.com/danielhkuo/olympiad/metrics"
	"github.com/danielhkuo/olympiad/middleware"
	"github.com/danielhkuo/olympiad/models"
)

// ParticipantIDHeader is accepted by GET /results when the query
// parameter is absent
const ParticipantIDHeader = "X-Participant-Id"

type ResultsHandler struct {
	db      *sql.DB
	cfg     cliparse.Config
	metrics *metrics.Metrics
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config, m *metrics.Metrics) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg, metrics: m}
}

// SubmitResults handles POST /results
// Grades each answer and upserts one result row per (participant, task).
// The whole submission is applied in a single transaction.
func (h *ResultsHandler) SubmitResults(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitResultsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	ctx, cancel := requestContext(r, h.cfg)
	defer cancel()

	resp, err := h.saveResults(ctx, req)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	skipped := resp.TotalTasks - resp.gradedCount
	h.metrics.ObserveGraded(metrics.OutcomeCorrect, resp.CorrectCount)
	h.metrics.ObserveGraded(metrics.OutcomeIncorrect, resp.gradedCount-resp.CorrectCount)
	h.metrics.ObserveGraded(metrics.OutcomeSkipped, skipped)

	slog.Info("results submitted",
		"participant_id", req.ParticipantID,
		"answers", resp.TotalTasks,
		"skipped", skipped,
		"correct", resp.CorrectCount,
		"total_points", resp.TotalPoints,
	)

	middleware.JSONResponse(w, http.StatusOK, resp.SubmitResultsResponse)
}

type submitOutcome struct {
	models.SubmitResultsResponse
	gradedCount int
}

func (h *ResultsHandler) saveResults(ctx context.Context, req models.SubmitResultsRequest) (submitOutcome, error) {
	fail := func(step string, err error) (submitOutcome, error) {
		return submitOutcome{}, apperr.Persistence(models.MsgResultsSaveFailed, fmt.Errorf("%s: %w", step, err))
	}

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return fail("begin transaction", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM participants WHERE id = $1`, req.ParticipantID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return submitOutcome{}, apperr.NotFound(models.MsgParticipantNotFound)
	}
	if err != nil {
		return fail("query participant", err)
	}

	keys, err := loadAnswerKeys(ctx, tx, req.Answers)
	if err != nil {
		return fail("load answer keys", err)
	}

	graded, resp := ScoreSubmission(req.Answers, keys)

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO results (participant_id, task_id, user_answer, is_correct, answered_at, time_spent_seconds)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (participant_id, task_id)
		DO UPDATE SET
			user_answer = EXCLUDED.user_answer,
			is_correct = EXCLUDED.is_correct,
			answered_at = EXCLUDED.answered_at,
			time_spent_seconds = EXCLUDED.time_spent_seconds
	`)
	if err != nil {
		return fail("prepare upsert", err)
	}
	defer stmt.Close()

	answeredAt := time.Now().UTC()
	for _, g := range graded {
		_, err := stmt.ExecContext(ctx, req.ParticipantID, g.TaskID, g.Answer, g.IsCorrect, answeredAt, g.TimeSpentSeconds)
		if err != nil {
			return fail(fmt.Sprintf("upsert result for task %d", g.TaskID), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fail("commit", err)
	}

	return submitOutcome{SubmitResultsResponse: resp, gradedCount: len(graded)}, nil
}

// loadAnswerKeys looks up each distinct task referenced by the answers.
// Tasks that do not exist are left out of the map.
func loadAnswerKeys(ctx context.Context, tx *sql.Tx, answers []models.AnswerSubmission) (map[int64]models.AnswerKey, error) {
	stmt, err := tx.PrepareContext(ctx, `SELECT correct_answer, points FROM tasks WHERE id = $1`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	keys := make(map[int64]models.AnswerKey, len(answers))
	seen := make(map[int64]bool, len(answers))
	for _, a := range answers {
		if seen[a.TaskID] {
			continue
		}
		seen[a.TaskID] = true

		key := models.AnswerKey{TaskID: a.TaskID}
		err := stmt.QueryRowContext(ctx, a.TaskID).Scan(&key.CorrectAnswer, &key.Points)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, err
		}
		keys[a.TaskID] = key
	}

	return keys, nil
}

// GetResults handles GET /results?participant_id=N
// Returns an empty list, not an error, when nothing was submitted yet
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	participantID, err := parseParticipantID(r)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	ctx, cancel := requestContext(r, h.cfg)
	defer cancel()

	resp, err := h.loadResults(ctx, participantID)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

func parseParticipantID(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("participant_id")
	if raw == "" {
		raw = r.Header.Get(ParticipantIDHeader)
	}
	if raw == "" {
		return 0, apperr.Validation(models.MsgParticipantRequired)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation(models.MsgParticipantNotNumeric)
	}
	return id, nil
}

func (h *ResultsHandler) loadResults(ctx context.Context, participantID int64) (models.FetchResultsResponse, error) {
	fail := func(step string, err error) (models.FetchResultsResponse, error) {
		return models.FetchResultsResponse{}, apperr.Persistence(models.MsgResultsUnavailable, fmt.Errorf("%s: %w", step, err))
	}

	conn, err := h.db.Conn(ctx)
	if err != nil {
		return fail("acquire connection", err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, `
		SELECT r.task_id, t.question, r.user_answer, r.is_correct, t.points
		FROM results r
		JOIN tasks t ON r.task_id = t.id
		WHERE r.participant_id = $1
		ORDER BY t.order_number, r.task_id
	`, participantID)
	if err != nil {
		return fail("query results", err)
	}
	defer rows.Close()

	resp := models.FetchResultsResponse{Results: []models.TaskResult{}}
	for rows.Next() {
		var res models.TaskResult
		var points int
		if err := rows.Scan(&res.TaskID, &res.Question, &res.UserAnswer, &res.IsCorrect, &points); err != nil {
			return fail("scan result", err)
		}
		if res.IsCorrect {
			res.Points = points
			resp.TotalPoints += points
		}
		resp.Results = append(resp.Results, res)
	}
	if err := rows.Err(); err != nil {
		return fail("iterate results", err)
	}

	return resp, nil
}
