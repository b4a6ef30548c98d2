package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores an ordered list of strings as a JSON array in a CLOB
// column. It is the single serialize/deserialize boundary for question
// options; everything above the repository sees a typed []string.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}

	return json.Unmarshal(bytesToParse, s)
}

// User represents a row in the users table.
type User struct {
	ID        string         `db:"ID"` // ULID
	GoogleID  string         `db:"GOOGLE_ID"`
	Email     string         `db:"EMAIL"`
	Name      sql.NullString `db:"NAME"`
	Role      string         `db:"USER_ROLE"`
	CreatedAt time.Time      `db:"CREATED_AT"`
	UpdatedAt time.Time      `db:"UPDATED_AT"`
	DeletedAt sql.NullTime   `db:"DELETED_AT"`
}

// Quiz represents a row in the quizzes table.
type Quiz struct {
	ID          string         `db:"ID"` // ULID
	Title       string         `db:"TITLE"`
	Description sql.NullString `db:"DESCRIPTION"`
	CreatorID   string         `db:"CREATOR_ID"`
	CreatedAt   time.Time      `db:"CREATED_AT"`
	UpdatedAt   time.Time      `db:"UPDATED_AT"`
}

// Question represents a row in the questions table. OPTIONS holds the
// JSON-encoded option list; ANSWER holds the correct-option index in its
// stored text form.
type Question struct {
	ID           string      `db:"ID"` // ULID
	QuizID       string      `db:"QUIZ_ID"`
	QuestionText string      `db:"QUESTION_TEXT"`
	Options      StringSlice `db:"OPTIONS"`
	Answer       string      `db:"ANSWER"`
	Position     int         `db:"POSITION"`
	CreatedAt    time.Time   `db:"CREATED_AT"`
	UpdatedAt    time.Time   `db:"UPDATED_AT"`
}

// QuizResult represents a row in the quiz_results table. Rows are
// append-only; there is no uniqueness over (USER_ID, QUIZ_ID).
type QuizResult struct {
	ID        string    `db:"ID"` // ULID
	UserID    string    `db:"USER_ID"`
	QuizID    string    `db:"QUIZ_ID"`
	Score     int       `db:"SCORE"`
	CreatedAt time.Time `db:"CREATED_AT"`
}
