package dto

import "time"

// QuizSummaryResponse is the catalog projection of a quiz.
// @Description Quiz catalog entry (identifier and title only)
type QuizSummaryResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// QuestionResponse is a question as presented to a quiz taker. The
// correct-option index is deliberately absent; answers never cross the
// presentation boundary.
type QuestionResponse struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// QuizDetailResponse is a full quiz as presented to a quiz taker.
// @Description Quiz with its questions, without the answer key
type QuizDetailResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Questions   []QuestionResponse `json:"questions"`
}

// QuestionDraft is one question in a quiz creation request. Answer is the
// zero-based index into Options.
type QuestionDraft struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Answer  int      `json:"answer"`
}

// CreateQuizRequest is the request body for creating a quiz.
// @Description Request body for quiz creation (INSTRUCTOR only)
type CreateQuizRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Questions   []QuestionDraft `json:"questions"`
}

// SubmitQuizRequest is the request body for submitting answers. Values
// are pointers so an explicit null marks a question as unanswered rather
// than failing to decode.
type SubmitQuizRequest struct {
	Answers map[string]*int `json:"answers"`
}

// SubmitQuizResponse reports one grading outcome.
// @Description Score and question count for a graded submission
type SubmitQuizResponse struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

// QuizResultResponse is one persisted result row.
type QuizResultResponse struct {
	ID        string    `json:"id"`
	QuizID    string    `json:"quiz_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
