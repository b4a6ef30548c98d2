package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quizdeck/internal/domain"
	"quizdeck/internal/repository/models"
	"quizdeck/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxQuizRepository implements domain.QuizRepository using sqlx.
type sqlxQuizRepository struct {
	db *sqlx.DB
}

// NewSQLXQuizRepository creates a new instance of sqlxQuizRepository.
func NewSQLXQuizRepository(db *sqlx.DB) domain.QuizRepository {
	return &sqlxQuizRepository{db: db}
}

func toDomainQuestion(modelQuestion *models.Question) domain.Question {
	var options []string
	if modelQuestion.Options != nil {
		options = modelQuestion.Options
	} else {
		options = []string{}
	}

	return domain.Question{
		ID:        modelQuestion.ID,
		QuizID:    modelQuestion.QuizID,
		Text:      modelQuestion.QuestionText,
		Options:   options,
		Answer:    modelQuestion.Answer,
		Position:  modelQuestion.Position,
		CreatedAt: modelQuestion.CreatedAt,
		UpdatedAt: modelQuestion.UpdatedAt,
	}
}

func fromDomainQuestion(domainQuestion *domain.Question) *models.Question {
	var options models.StringSlice
	if domainQuestion.Options != nil {
		options = domainQuestion.Options
	} else {
		options = models.StringSlice{}
	}

	return &models.Question{
		ID:           domainQuestion.ID,
		QuizID:       domainQuestion.QuizID,
		QuestionText: domainQuestion.Text,
		Options:      options,
		Answer:       domainQuestion.Answer,
		Position:     domainQuestion.Position,
		CreatedAt:    domainQuestion.CreatedAt,
		UpdatedAt:    domainQuestion.UpdatedAt,
	}
}

func toDomainQuiz(modelQuiz *models.Quiz, modelQuestions []models.Question) *domain.Quiz {
	if modelQuiz == nil {
		return nil
	}

	questions := make([]domain.Question, 0, len(modelQuestions))
	for i := range modelQuestions {
		questions = append(questions, toDomainQuestion(&modelQuestions[i]))
	}

	return &domain.Quiz{
		ID:          modelQuiz.ID,
		Title:       modelQuiz.Title,
		Description: modelQuiz.Description.String,
		CreatorID:   modelQuiz.CreatorID,
		Questions:   questions,
		CreatedAt:   modelQuiz.CreatedAt,
		UpdatedAt:   modelQuiz.UpdatedAt,
	}
}

func fromDomainQuiz(domainQuiz *domain.Quiz) *models.Quiz {
	if domainQuiz == nil {
		return nil
	}
	return &models.Quiz{
		ID:          domainQuiz.ID,
		Title:       domainQuiz.Title,
		Description: util.StringToNullString(domainQuiz.Description),
		CreatorID:   domainQuiz.CreatorID,
		CreatedAt:   domainQuiz.CreatedAt,
		UpdatedAt:   domainQuiz.UpdatedAt,
	}
}

// GetQuizByID retrieves a quiz with its questions in stored order.
// It returns (nil, nil) when no quiz has that identifier.
func (r *sqlxQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	executor := GetExecutor(ctx, r.db)

	var modelQuiz models.Quiz
	quizQuery := `SELECT ID, TITLE, DESCRIPTION, CREATOR_ID, CREATED_AT, UPDATED_AT
	              FROM quizzes WHERE ID = :1`
	if err := executor.GetContext(ctx, &modelQuiz, quizQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz %s: %w", id, err)
	}

	var modelQuestions []models.Question
	questionQuery := `SELECT ID, QUIZ_ID, QUESTION_TEXT, OPTIONS, ANSWER, POSITION, CREATED_AT, UPDATED_AT
	                  FROM questions WHERE QUIZ_ID = :1 ORDER BY POSITION ASC`
	if err := executor.SelectContext(ctx, &modelQuestions, questionQuery, id); err != nil {
		return nil, fmt.Errorf("failed to get questions for quiz %s: %w", id, err)
	}

	return toDomainQuiz(&modelQuiz, modelQuestions), nil
}

// ListQuizzes returns the catalog projection of every quiz.
func (r *sqlxQuizRepository) ListQuizzes(ctx context.Context) ([]domain.QuizSummary, error) {
	executor := GetExecutor(ctx, r.db)

	var rows []models.Quiz
	query := `SELECT ID, TITLE, DESCRIPTION, CREATOR_ID, CREATED_AT, UPDATED_AT
	          FROM quizzes ORDER BY CREATED_AT DESC`
	if err := executor.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}

	return toSummaries(rows), nil
}

// ListQuizzesByCreator returns only quizzes authored by creatorID.
// An author with no quizzes gets an empty slice, not an error.
func (r *sqlxQuizRepository) ListQuizzesByCreator(ctx context.Context, creatorID string) ([]domain.QuizSummary, error) {
	executor := GetExecutor(ctx, r.db)

	var rows []models.Quiz
	query := `SELECT ID, TITLE, DESCRIPTION, CREATOR_ID, CREATED_AT, UPDATED_AT
	          FROM quizzes WHERE CREATOR_ID = :1 ORDER BY CREATED_AT DESC`
	if err := executor.SelectContext(ctx, &rows, query, creatorID); err != nil {
		return nil, fmt.Errorf("failed to list quizzes for creator %s: %w", creatorID, err)
	}

	return toSummaries(rows), nil
}

func toSummaries(rows []models.Quiz) []domain.QuizSummary {
	summaries := make([]domain.QuizSummary, 0, len(rows))
	for i := range rows {
		summaries = append(summaries, domain.QuizSummary{ID: rows[i].ID, Title: rows[i].Title})
	}
	return summaries
}

// CreateQuiz inserts the quiz row and its question rows. Callers run it
// inside a transaction so a failed question insert never leaves a
// questionless quiz behind.
func (r *sqlxQuizRepository) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	executor := GetExecutor(ctx, r.db)

	modelQuiz := fromDomainQuiz(quiz)
	quizQuery := `INSERT INTO quizzes (ID, TITLE, DESCRIPTION, CREATOR_ID, CREATED_AT, UPDATED_AT)
	              VALUES (:1, :2, :3, :4, :5, :6)`
	if _, err := executor.ExecContext(ctx, quizQuery,
		modelQuiz.ID,
		modelQuiz.Title,
		modelQuiz.Description,
		modelQuiz.CreatorID,
		modelQuiz.CreatedAt,
		modelQuiz.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}

	questionQuery := `INSERT INTO questions (ID, QUIZ_ID, QUESTION_TEXT, OPTIONS, ANSWER, POSITION, CREATED_AT, UPDATED_AT)
	                  VALUES (:1, :2, :3, :4, :5, :6, :7, :8)`
	for i := range quiz.Questions {
		modelQuestion := fromDomainQuestion(&quiz.Questions[i])

		// Serialize the option list at the storage boundary; Oracle
		// binds the JSON string, not the driver.Valuer.
		optionsVal, err := modelQuestion.Options.Value()
		if err != nil {
			return fmt.Errorf("failed to serialize options: %w", err)
		}
		optionsStr, _ := optionsVal.(string)

		if _, err := executor.ExecContext(ctx, questionQuery,
			modelQuestion.ID,
			modelQuestion.QuizID,
			modelQuestion.QuestionText,
			optionsStr,
			modelQuestion.Answer,
			modelQuestion.Position,
			modelQuestion.CreatedAt,
			modelQuestion.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to create question: %w", err)
		}
	}

	return nil
}
