// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"strings"

	"github.com/danielhkuo/olympiad/models"
)

// GradeAnswer reports whether the submitted answer matches the key.
// Only surrounding whitespace is ignored; the comparison is case-sensitive.
func GradeAnswer(answer string, key models.AnswerKey) bool {
	return strings.TrimSpace(answer) == key.CorrectAnswer
}

// ScoreSubmission grades every answer whose task has a key and sums the
// points of the correct ones. Answers for unknown tasks are skipped but
// still count towards TotalTasks.
func ScoreSubmission(answers []models.AnswerSubmission, keys map[int64]models.AnswerKey) ([]models.GradedAnswer, models.SubmitResultsResponse) {
	graded := make([]models.GradedAnswer, 0, len(answers))
	resp := models.SubmitResultsResponse{
		Success:    true,
		TotalTasks: len(answers),
	}

	for _, a := range answers {
		key, ok := keys[a.TaskID]
		if !ok {
			continue
		}

		g := models.GradedAnswer{
			TaskID:           a.TaskID,
			Answer:           strings.TrimSpace(a.Answer),
			IsCorrect:        GradeAnswer(a.Answer, key),
			TimeSpentSeconds: a.TimeSpentSeconds,
		}
		if g.IsCorrect {
			g.Points = key.Points
			resp.TotalPoints += key.Points
			resp.CorrectCount++
		}
		graded = append(graded, g)
	}

	return graded, resp
}
