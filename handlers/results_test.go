// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/olympiad/metrics"
	"github.com/danielhkuo/olympiad/models"
	"github.com/danielhkuo/olympiad/testutil"
)

type resultsFixture struct {
	db          *sql.DB
	handler     *ResultsHandler
	participant int64
	capital     int64 // "Paris", 10 points
	arithmetic  int64 // "42", 5 points
}

func setupResults(t *testing.T) resultsFixture {
	t.Helper()

	db := testutil.SetupTestDB(t)
	return resultsFixture{
		db:          db,
		handler:     NewResultsHandler(db, testutil.GetTestConfig(), metrics.New()),
		participant: testutil.CreateTestParticipant(t, db, "student@example.com"),
		capital:     testutil.CreateTestTask(t, db, "Столица Франции?", "Paris", 10, 1),
		arithmetic:  testutil.CreateTestTask(t, db, "Сколько будет 6×7?", "42", 5, 2),
	}
}

func (f resultsFixture) submit(t *testing.T, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	f.handler.SubmitResults(w, testutil.MakeRequest("POST", "/results", body, nil))
	return w
}

func (f resultsFixture) fetch(t *testing.T, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	f.handler.GetResults(w, testutil.MakeRequest("GET", path, nil, headers))
	return w
}

func TestSubmitResults(t *testing.T) {
	f := setupResults(t)

	w := f.submit(t, models.SubmitResultsRequest{
		ParticipantID: f.participant,
		Answers: []models.AnswerSubmission{
			{TaskID: f.capital, Answer: "Paris", TimeSpentSeconds: 12},
			{TaskID: f.arithmetic, Answer: "41", TimeSpentSeconds: 30},
		},
	})
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.SubmitResultsResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, models.SubmitResultsResponse{
		Success:      true,
		TotalPoints:  10,
		CorrectCount: 1,
		TotalTasks:   2,
	}, resp)

	assert.Equal(t, 2, testutil.CountRows(t, f.db,
		"SELECT COUNT(*) FROM results WHERE participant_id = $1", f.participant))

	var answer string
	var correct bool
	var spent int
	err := f.db.QueryRow(
		"SELECT user_answer, is_correct, time_spent_seconds FROM results WHERE participant_id = $1 AND task_id = $2",
		f.participant, f.arithmetic,
	).Scan(&answer, &correct, &spent)
	require.NoError(t, err)
	assert.Equal(t, "41", answer)
	assert.False(t, correct)
	assert.Equal(t, 30, spent)
}

func TestSubmitResults_UnknownTaskSkipped(t *testing.T) {
	f := setupResults(t)

	w := f.submit(t, models.SubmitResultsRequest{
		ParticipantID: f.participant,
		Answers: []models.AnswerSubmission{
			{TaskID: f.capital, Answer: "Paris"},
			{TaskID: 9999, Answer: "что угодно"},
		},
	})
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.SubmitResultsResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, 2, resp.TotalTasks)
	assert.Equal(t, 1, resp.CorrectCount)
	assert.Equal(t, 10, resp.TotalPoints)

	assert.Equal(t, 1, testutil.CountRows(t, f.db, "SELECT COUNT(*) FROM results"))
	assert.Zero(t, testutil.CountRows(t, f.db, "SELECT COUNT(*) FROM results WHERE task_id = $1", 9999))
}

func TestSubmitResults_ResubmissionOverwrites(t *testing.T) {
	f := setupResults(t)

	first := f.submit(t, models.SubmitResultsRequest{
		ParticipantID: f.participant,
		Answers:       []models.AnswerSubmission{{TaskID: f.capital, Answer: "London"}},
	})
	testutil.AssertStatus(t, first, http.StatusOK)

	var firstAnsweredAt string
	err := f.db.QueryRow("SELECT answered_at FROM results WHERE task_id = $1", f.capital).Scan(&firstAnsweredAt)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	second := f.submit(t, models.SubmitResultsRequest{
		ParticipantID: f.participant,
		Answers:       []models.AnswerSubmission{{TaskID: f.capital, Answer: "Paris"}},
	})
	testutil.AssertStatus(t, second, http.StatusOK)

	var resp models.SubmitResultsResponse
	testutil.AssertJSON(t, second, &resp)
	assert.Equal(t, 10, resp.TotalPoints)

	assert.Equal(t, 1, testutil.CountRows(t, f.db,
		"SELECT COUNT(*) FROM results WHERE participant_id = $1 AND task_id = $2", f.participant, f.capital))

	var answer, answeredAt string
	var correct bool
	err = f.db.QueryRow(
		"SELECT user_answer, is_correct, answered_at FROM results WHERE task_id = $1", f.capital,
	).Scan(&answer, &correct, &answeredAt)
	require.NoError(t, err)
	assert.Equal(t, "Paris", answer)
	assert.True(t, correct)
	assert.NotEqual(t, firstAnsweredAt, answeredAt)
}

func TestSubmitResults_ValidationErrors(t *testing.T) {
	f := setupResults(t)

	testCases := []struct {
		name string
		body interface{}
	}{
		{"missing participant_id", map[string]interface{}{
			"answers": []map[string]interface{}{{"task_id": f.capital, "answer": "Paris"}},
		}},
		{"missing answers", map[string]interface{}{"participant_id": f.participant}},
		{"empty answers", map[string]interface{}{"participant_id": f.participant, "answers": []interface{}{}}},
		{"zero participant_id", map[string]interface{}{
			"participant_id": 0,
			"answers":        []map[string]interface{}{{"task_id": f.capital, "answer": "Paris"}},
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := f.submit(t, tc.body)
			testutil.AssertStatus(t, w, http.StatusBadRequest)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			assert.Equal(t, models.MsgAnswersRequired, resp.Message)
		})
	}

	assert.Zero(t, testutil.CountRows(t, f.db, "SELECT COUNT(*) FROM results"))
}

func TestSubmitResults_InvalidJSON(t *testing.T) {
	f := setupResults(t)

	w := f.submit(t, `{"participant_id": 1, "answers": [`)
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, models.MsgInvalidJSON, resp.Message)
}

func TestSubmitResults_UnknownParticipant(t *testing.T) {
	f := setupResults(t)

	w := f.submit(t, models.SubmitResultsRequest{
		ParticipantID: f.participant + 100,
		Answers:       []models.AnswerSubmission{{TaskID: f.capital, Answer: "Paris"}},
	})
	testutil.AssertStatus(t, w, http.StatusNotFound)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, models.MsgParticipantNotFound, resp.Message)
	assert.Zero(t, testutil.CountRows(t, f.db, "SELECT COUNT(*) FROM results"))
}

func TestSubmitResults_DatabaseFailureHidesCause(t *testing.T) {
	f := setupResults(t)

	_, err := f.db.Exec("DROP TABLE results")
	require.NoError(t, err)

	w := f.submit(t, models.SubmitResultsRequest{
		ParticipantID: f.participant,
		Answers:       []models.AnswerSubmission{{TaskID: f.capital, Answer: "Paris"}},
	})
	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, models.MsgResultsSaveFailed, resp.Message)
	assert.NotContains(t, w.Body.String(), "no such table")
}

func TestGetResults_Empty(t *testing.T) {
	f := setupResults(t)

	w := f.fetch(t, fmt.Sprintf("/results?participant_id=%d", f.participant), nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `{"results":[],"total_points":0}`, w.Body.String())
}

func TestGetResults_OrderedByTaskOrder(t *testing.T) {
	f := setupResults(t)
	intro := testutil.CreateTestTask(t, f.db, "Сколько дней в неделе?", "7", 3, 0)

	// Submitted in reverse display order
	w := f.submit(t, models.SubmitResultsRequest{
		ParticipantID: f.participant,
		Answers: []models.AnswerSubmission{
			{TaskID: f.arithmetic, Answer: "42"},
			{TaskID: f.capital, Answer: "Лондон"},
			{TaskID: intro, Answer: "7"},
		},
	})
	testutil.AssertStatus(t, w, http.StatusOK)

	w = f.fetch(t, fmt.Sprintf("/results?participant_id=%d", f.participant), nil)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.FetchResultsResponse
	testutil.AssertJSON(t, w, &resp)

	require.Len(t, resp.Results, 3)
	assert.Equal(t, []int64{intro, f.capital, f.arithmetic},
		[]int64{resp.Results[0].TaskID, resp.Results[1].TaskID, resp.Results[2].TaskID})

	assert.Equal(t, models.TaskResult{
		TaskID: f.capital, Question: "Столица Франции?", UserAnswer: "Лондон", IsCorrect: false, Points: 0,
	}, resp.Results[1])
	assert.Equal(t, 5, resp.Results[2].Points)
	assert.True(t, resp.Results[2].IsCorrect)
	assert.Equal(t, 8, resp.TotalPoints)
}

func TestGetResults_OnlyOwnResults(t *testing.T) {
	f := setupResults(t)
	other := testutil.CreateTestParticipant(t, f.db, "other@example.com")

	for _, id := range []int64{f.participant, other} {
		w := f.submit(t, models.SubmitResultsRequest{
			ParticipantID: id,
			Answers:       []models.AnswerSubmission{{TaskID: f.capital, Answer: "Paris"}},
		})
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	w := f.fetch(t, fmt.Sprintf("/results?participant_id=%d", other), nil)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.FetchResultsResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Len(t, resp.Results, 1)
	assert.Equal(t, 10, resp.TotalPoints)
}

func TestGetResults_HeaderFallback(t *testing.T) {
	f := setupResults(t)

	w := f.submit(t, models.SubmitResultsRequest{
		ParticipantID: f.participant,
		Answers:       []models.AnswerSubmission{{TaskID: f.capital, Answer: "Paris"}},
	})
	testutil.AssertStatus(t, w, http.StatusOK)

	w = f.fetch(t, "/results", map[string]string{
		ParticipantIDHeader: fmt.Sprintf("%d", f.participant),
	})
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.FetchResultsResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Len(t, resp.Results, 1)
	assert.Equal(t, 10, resp.TotalPoints)
}

func TestGetResults_QueryParamWinsOverHeader(t *testing.T) {
	f := setupResults(t)

	w := f.submit(t, models.SubmitResultsRequest{
		ParticipantID: f.participant,
		Answers:       []models.AnswerSubmission{{TaskID: f.capital, Answer: "Paris"}},
	})
	testutil.AssertStatus(t, w, http.StatusOK)

	w = f.fetch(t, fmt.Sprintf("/results?participant_id=%d", f.participant), map[string]string{
		ParticipantIDHeader: "abc",
	})
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestGetResults_BadParticipantID(t *testing.T) {
	f := setupResults(t)

	testCases := []struct {
		name    string
		path    string
		headers map[string]string
		message string
	}{
		{"missing", "/results", nil, models.MsgParticipantRequired},
		{"empty query", "/results?participant_id=", nil, models.MsgParticipantRequired},
		{"non-numeric query", "/results?participant_id=abc", nil, models.MsgParticipantNotNumeric},
		{"negative query", "/results?participant_id=-3", nil, models.MsgParticipantNotNumeric},
		{"non-numeric header", "/results", map[string]string{ParticipantIDHeader: "x1"}, models.MsgParticipantNotNumeric},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := f.fetch(t, tc.path, tc.headers)
			testutil.AssertStatus(t, w, http.StatusBadRequest)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			assert.Equal(t, tc.message, resp.Message)
		})
	}
}

func TestGetResults_UnknownParticipantIsEmpty(t *testing.T) {
	f := setupResults(t)

	w := f.fetch(t, "/results?participant_id=424242", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `{"results":[],"total_points":0}`, w.Body.String())
}

func TestResults_LargeParticipantID(t *testing.T) {
	f := setupResults(t)

	w := f.fetch(t, "/results?participant_id=99999999999", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `{"results":[],"total_points":0}`, w.Body.String())

	w = f.submit(t, models.SubmitResultsRequest{
		ParticipantID: 99999999999,
		Answers:       []models.AnswerSubmission{{TaskID: f.capital, Answer: "Paris"}},
	})
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
