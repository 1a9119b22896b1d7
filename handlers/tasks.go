// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/danielhkuo/olympiad/apperr"
	"github.com/danielhkuo/olympiad/cliparse"
	"github.com/danielhkuo/olympiad/middleware"
	"github.com/danielhkuo/olympiad/models"
)

type TaskHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewTaskHandler(db *sql.DB, cfg cliparse.Config) *TaskHandler {
	return &TaskHandler{db: db, cfg: cfg}
}

// ListTasks handles GET /tasks
// Correct answers are never selected here
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, h.cfg)
	defer cancel()

	tasks, err := h.loadTasks(ctx)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TaskListResponse{
		Tasks: tasks,
		Total: len(tasks),
	})
}

func (h *TaskHandler) loadTasks(ctx context.Context) ([]models.Task, error) {
	conn, err := h.db.Conn(ctx)
	if err != nil {
		return nil, apperr.Persistence(models.MsgTasksUnavailable, fmt.Errorf("acquire connection: %w", err))
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, `
		SELECT id, question, points, difficulty_level, order_number
		FROM tasks
		ORDER BY order_number, id
	`)
	if err != nil {
		return nil, apperr.Persistence(models.MsgTasksUnavailable, fmt.Errorf("query tasks: %w", err))
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Question, &t.Points, &t.DifficultyLevel, &t.OrderNumber); err != nil {
			return nil, apperr.Persistence(models.MsgTasksUnavailable, fmt.Errorf("scan task: %w", err))
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence(models.MsgTasksUnavailable, fmt.Errorf("iterate tasks: %w", err))
	}

	return tasks, nil
}
