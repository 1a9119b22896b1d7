// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/olympiad/cliparse"
	"github.com/danielhkuo/olympiad/db"
)

// SetupTestDB creates a fresh file-backed SQLite database with the full
// schema. It is closed automatically when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "olympiad.db")
	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	conn, err := db.Open(context.Background(), db.TypeSQLite, dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(context.Background(), conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "file::memory:",
		DatabaseType: db.TypeSQLite,
		LogLevel:     "error",
		LogFormat:    "text",

		RequestTimeout: 5 * time.Second,
	}
}

// CreateTestTask inserts a task and returns its ID
func CreateTestTask(t *testing.T, conn *sql.DB, question, correctAnswer string, points, orderNumber int) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO tasks (question, correct_answer, points, difficulty_level, order_number)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, question, correctAnswer, points, "medium", orderNumber).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}

	return id
}

// CreateTestParticipant inserts a participant with the given email and
// returns its ID
func CreateTestParticipant(t *testing.T, conn *sql.DB, email string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO participants (student_name, school, class_name, parent_name, email, phone, registered_at, payment_status)
		VALUES ('Test Student', 'Test School', '5А', 'Test Parent', $1, '+70000000000', $2, 'pending')
		RETURNING id
	`, email, time.Now().UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test participant: %v", err)
	}

	return id
}

// CountRows runs a COUNT(*) query and returns the result
func CountRows(t *testing.T, conn *sql.DB, query string, args ...interface{}) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var raw []byte
		if s, ok := body.(string); ok {
			raw = []byte(s)
		} else {
			raw, _ = json.Marshal(body)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
