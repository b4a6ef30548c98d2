package domain

import (
	"time"
)

// Question is one quiz item: text, an ordered list of selectable options,
// and the canonical correct-option index in its stored text form. The
// stored form is parsed to an integer only at grading time.
type Question struct {
	ID        string
	QuizID    string
	Text      string
	Options   []string
	Answer    string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate validates the question
func (q *Question) Validate() error {
	if q.Text == "" {
		return NewMissingFieldError("text")
	}
	if len(q.Options) < 2 {
		return ValidationError{Field: "options", Message: "at least two options are required"}
	}
	return nil
}

// Quiz is an authored collection of questions, owned by one instructor.
// Questions cannot outlive their quiz.
type Quiz struct {
	ID          string
	Title       string
	Description string
	CreatorID   string
	Questions   []Question
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewQuiz creates a new Quiz instance
func NewQuiz(title, description, creatorID string) *Quiz {
	now := time.Now()
	return &Quiz{
		Title:       title,
		Description: description,
		CreatorID:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate validates the quiz
func (q *Quiz) Validate() error {
	if q.Title == "" {
		return NewMissingFieldError("title")
	}
	if q.CreatorID == "" {
		return NewMissingFieldError("creator_id")
	}
	if len(q.Questions) == 0 {
		return ValidationError{Field: "questions", Message: "at least one question is required"}
	}
	for i := range q.Questions {
		if err := q.Questions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// QuizSummary is the catalog projection of a quiz: identifier and title
// only, so listing never leaks question content or answers.
type QuizSummary struct {
	ID    string
	Title string
}

// QuizResult is a persisted record of one grading outcome for one user on
// one quiz. Results are append-only; retakes create new rows.
type QuizResult struct {
	ID        string
	UserID    string
	QuizID    string
	Score     int
	CreatedAt time.Time
}

// NewQuizResult creates a new QuizResult instance
func NewQuizResult(userID, quizID string, score int) *QuizResult {
	return &QuizResult{
		UserID:    userID,
		QuizID:    quizID,
		Score:     score,
		CreatedAt: time.Now(),
	}
}
