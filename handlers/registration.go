// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/olympiad/apperr"
	"github.com/danielhkuo/olympiad/cliparse"
	"github.com/danielhkuo/olympiad/db"
	"github.com/danielhkuo/olympiad/middleware"
	"github.com/danielhkuo/olympiad/models"
)

type RegistrationHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewRegistrationHandler(db *sql.DB, cfg cliparse.Config) *RegistrationHandler {
	return &RegistrationHandler{db: db, cfg: cfg}
}

// Register handles POST /register
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
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

	participant, err := h.insertParticipant(ctx, req)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	slog.Info("participant registered", "participant_id", participant.ID, "school", req.School)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{
		Success:     true,
		Message:     models.MsgRegistered,
		Participant: participant,
	})
}

func (h *RegistrationHandler) insertParticipant(ctx context.Context, req models.RegisterRequest) (models.ParticipantSummary, error) {
	conn, err := h.db.Conn(ctx)
	if err != nil {
		return models.ParticipantSummary{}, apperr.Persistence(models.MsgRegistrationFailed, fmt.Errorf("acquire connection: %w", err))
	}
	defer conn.Close()

	p := models.ParticipantSummary{
		StudentName:   req.StudentName,
		Email:         req.Email,
		RegisteredAt:  time.Now().UTC().Truncate(time.Microsecond),
		PaymentStatus: models.PaymentStatusPending,
	}

	err = conn.QueryRowContext(ctx, `
		INSERT INTO participants (student_name, school, class_name, parent_name, email, phone, registered_at, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, req.StudentName, req.School, req.ClassName, req.ParentName, req.Email, req.Phone,
		p.RegisteredAt, p.PaymentStatus).Scan(&p.ID)

	if db.IsUniqueViolation(err) {
		return models.ParticipantSummary{}, apperr.Conflict(models.MsgEmailTaken, err)
	}
	if err != nil {
		return models.ParticipantSummary{}, apperr.Persistence(models.MsgRegistrationFailed, fmt.Errorf("insert participant: %w", err))
	}

	return p, nil
}
