package domain

import (
	"strconv"
	"strings"
)

// Submission maps question identifiers to the option index the caller
// selected. A question absent from the map is unanswered. Submissions are
// ephemeral; they exist only for the duration of one grading call.
type Submission map[string]int

// GradeResult is the outcome of grading one submission against one quiz.
type GradeResult struct {
	Score int
	Total int
}

// Grade compares a submission against a quiz's answer key.
//
// Total is always the number of questions in the quiz, independent of how
// many were answered. A question scores when the submitted option index
// equals its stored correct index, compared as integers. Unanswered
// questions and submission keys that match no question are skipped without
// error. A stored answer that does not parse as an integer never matches.
//
// Grade is pure: it performs no I/O and identical inputs always yield
// identical results.
func Grade(quiz *Quiz, submission Submission) GradeResult {
	result := GradeResult{Total: len(quiz.Questions)}
	for i := range quiz.Questions {
		question := &quiz.Questions[i]
		selected, answered := submission[question.ID]
		if !answered {
			continue
		}
		correct, err := strconv.Atoi(strings.TrimSpace(question.Answer))
		if err != nil {
			continue
		}
		if selected == correct {
			result.Score++
		}
	}
	return result
}
