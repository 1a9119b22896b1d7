// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apperr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatus(t *testing.T) {
	testCases := []struct {
		kind     Kind
		expected int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindConflict, http.StatusConflict},
		{KindNotFound, http.StatusNotFound},
		{KindMethodNotAllowed, http.StatusMethodNotAllowed},
		{KindPersistence, http.StatusInternalServerError},
		{Kind(0), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.kind.Status())
		})
	}
}

func TestAs(t *testing.T) {
	t.Run("wrapped app error is found", func(t *testing.T) {
		orig := Validation("email is required")
		wrapped := fmt.Errorf("register: %w", orig)

		got := As(wrapped)
		assert.Same(t, orig, got)
		assert.Equal(t, KindValidation, got.Kind)
	})

	t.Run("plain error becomes persistence failure", func(t *testing.T) {
		got := As(sql.ErrConnDone)
		assert.Equal(t, KindPersistence, got.Kind)
		assert.True(t, errors.Is(got, sql.ErrConnDone))
		assert.NotContains(t, got.Message, sql.ErrConnDone.Error())
	})
}

func TestErrorString(t *testing.T) {
	err := Persistence("Failed to save results", errors.New("disk full"))
	assert.Equal(t, "persistence: Failed to save results: disk full", err.Error())

	err = Validation("participant_id is required")
	assert.Equal(t, "validation: participant_id is required", err.Error())
}
