package repository

import (
	"context"
	"fmt"
	"time"

	"quizdeck/internal/domain"
	"quizdeck/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// sqlxQuizResultRepository implements domain.QuizResultRepository using sqlx.
type sqlxQuizResultRepository struct {
	db *sqlx.DB
}

// NewSQLXQuizResultRepository creates a new instance of sqlxQuizResultRepository.
func NewSQLXQuizResultRepository(db *sqlx.DB) domain.QuizResultRepository {
	return &sqlxQuizResultRepository{db: db}
}

func toDomainQuizResult(modelResult *models.QuizResult) domain.QuizResult {
	return domain.QuizResult{
		ID:        modelResult.ID,
		UserID:    modelResult.UserID,
		QuizID:    modelResult.QuizID,
		Score:     modelResult.Score,
		CreatedAt: modelResult.CreatedAt,
	}
}

func fromDomainQuizResult(domainResult *domain.QuizResult) *models.QuizResult {
	return &models.QuizResult{
		ID:        domainResult.ID,
		UserID:    domainResult.UserID,
		QuizID:    domainResult.QuizID,
		Score:     domainResult.Score,
		CreatedAt: domainResult.CreatedAt,
	}
}

// CreateResult appends one result row. Every submit call produces a new
// row; there is deliberately no uniqueness over (USER_ID, QUIZ_ID).
func (r *sqlxQuizResultRepository) CreateResult(ctx context.Context, result *domain.QuizResult) error {
	modelResult := fromDomainQuizResult(result)
	if modelResult.CreatedAt.IsZero() {
		modelResult.CreatedAt = time.Now()
	}

	query := `INSERT INTO quiz_results (ID, USER_ID, QUIZ_ID, SCORE, CREATED_AT)
	          VALUES (:1, :2, :3, :4, :5)`

	executor := GetExecutor(ctx, r.db)
	if _, err := executor.ExecContext(ctx, query,
		modelResult.ID,
		modelResult.UserID,
		modelResult.QuizID,
		modelResult.Score,
		modelResult.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to create quiz result: %w", err)
	}
	return nil
}

// GetResultsByUserID returns a user's results, newest first.
func (r *sqlxQuizResultRepository) GetResultsByUserID(ctx context.Context, userID string) ([]domain.QuizResult, error) {
	query := `SELECT ID, USER_ID, QUIZ_ID, SCORE, CREATED_AT
	          FROM quiz_results WHERE USER_ID = :1 ORDER BY CREATED_AT DESC`

	var modelResults []models.QuizResult
	executor := GetExecutor(ctx, r.db)
	if err := executor.SelectContext(ctx, &modelResults, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get quiz results for user %s: %w", userID, err)
	}

	results := make([]domain.QuizResult, 0, len(modelResults))
	for i := range modelResults {
		results = append(results, toDomainQuizResult(&modelResults[i]))
	}
	return results, nil
}
