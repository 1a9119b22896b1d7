// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"strings"
	"time"

	"github.com/danielhkuo/olympiad/apperr"
)

// PaymentStatusPending is the status of every new registration. Payment
// is confirmed outside this API, which then sets the column to "paid".
const PaymentStatusPending = "pending"

// User-facing messages
const (
	MsgInvalidJSON           = "Некорректный JSON"
	MsgAllFieldsRequired     = "Все поля обязательны для заполнения"
	MsgRegistered            = "Регистрация успешна! На ваш email будет отправлена ссылка на оплату."
	MsgEmailTaken            = "Этот email уже зарегистрирован"
	MsgAnswersRequired       = "participant_id и answers обязательны"
	MsgParticipantRequired   = "participant_id обязателен"
	MsgParticipantNotNumeric = "participant_id должен быть числом"
	MsgParticipantNotFound   = "Участник не найден"
	MsgServerError           = "Ошибка сервера"
	MsgRegistrationFailed    = "Не удалось зарегистрировать участника"
	MsgTasksUnavailable      = "Не удалось загрузить задания"
	MsgResultsSaveFailed     = "Не удалось сохранить результаты"
	MsgResultsUnavailable    = "Не удалось загрузить результаты"
)

// Request types

type RegisterRequest struct {
	StudentName string `json:"student_name"`
	School      string `json:"school"`
	ClassName   string `json:"class_name"`
	ParentName  string `json:"parent_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// Validate trims every field in place and rejects the request if any
// field is empty afterwards.
func (r *RegisterRequest) Validate() error {
	fields := []*string{
		&r.StudentName, &r.School, &r.ClassName,
		&r.ParentName, &r.Email, &r.Phone,
	}
	missing := false
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
		if *f == "" {
			missing = true
		}
	}
	if missing {
		return apperr.Validation(MsgAllFieldsRequired)
	}
	return nil
}

type AnswerSubmission struct {
	TaskID           int64  `json:"task_id"`
	Answer           string `json:"answer"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
}

type SubmitResultsRequest struct {
	ParticipantID int64              `json:"participant_id"`
	Answers       []AnswerSubmission `json:"answers"`
}

func (r *SubmitResultsRequest) Validate() error {
	if r.ParticipantID <= 0 || len(r.Answers) == 0 {
		return apperr.Validation(MsgAnswersRequired)
	}
	return nil
}

// Response types

type ParticipantSummary struct {
	ID            int64     `json:"id"`
	StudentName   string    `json:"student_name"`
	Email         string    `json:"email"`
	RegisteredAt  time.Time `json:"registered_at"`
	PaymentStatus string    `json:"payment_status"`
}

type RegisterResponse struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message"`
	Participant ParticipantSummary `json:"participant"`
}

type TaskListResponse struct {
	Tasks []Task `json:"tasks"`
	Total int    `json:"total"`
}

type SubmitResultsResponse struct {
	Success      bool `json:"success"`
	TotalPoints  int  `json:"total_points"`
	CorrectCount int  `json:"correct_count"`
	TotalTasks   int  `json:"total_tasks"`
}

type TaskResult struct {
	TaskID     int64  `json:"task_id"`
	Question   string `json:"question"`
	UserAnswer string `json:"user_answer"`
	IsCorrect  bool   `json:"is_correct"`
	Points     int    `json:"points"`
}

type FetchResultsResponse struct {
	Results     []TaskResult `json:"results"`
	TotalPoints int          `json:"total_points"`
}

// Domain types

// Task is the participant-facing view of a task. It has no field for
// the correct answer, so it can never be serialized.
type Task struct {
	ID              int64  `json:"id"`
	Question        string `json:"question"`
	Points          int    `json:"points"`
	DifficultyLevel string `json:"difficulty_level"`
	OrderNumber     int    `json:"order_number"`
}

// AnswerKey is what grading needs to know about a task
type AnswerKey struct {
	TaskID        int64  `json:"-"`
	CorrectAnswer string `json:"-"`
	Points        int    `json:"-"`
}

// GradedAnswer is one answer after grading, ready to be persisted
type GradedAnswer struct {
	TaskID           int64
	Answer           string
	IsCorrect        bool
	Points           int
	TimeSpentSeconds int
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
