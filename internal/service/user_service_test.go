package service

import (
	"context"
	"testing"
	"time"

	"quizdeck/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	repo := &mockUserRepository{
		getUserByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Email: "a@example.com", Name: "Ada", Role: domain.RoleInstructor}, nil
		},
	}
	svc := NewUserService(repo, &mockQuizResultRepository{})

	profile, err := svc.GetProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", profile.ID)
	assert.Equal(t, "a@example.com", profile.Email)
	assert.Equal(t, string(domain.RoleInstructor), profile.Role)
}

func TestGetProfileNotFound(t *testing.T) {
	repo := &mockUserRepository{
		getUserByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, nil
		},
	}
	svc := NewUserService(repo, &mockQuizResultRepository{})

	_, err := svc.GetProfile(context.Background(), "missing")
	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeNotFound, domainErr.Code)
}

func TestGetMyResultsNewestFirst(t *testing.T) {
	now := time.Now()
	resultRepo := &mockQuizResultRepository{
		getResultsByUserIDFunc: func(ctx context.Context, userID string) ([]domain.QuizResult, error) {
			return []domain.QuizResult{
				{ID: "r2", QuizID: "quiz-1", Score: 2, CreatedAt: now},
				{ID: "r1", QuizID: "quiz-1", Score: 1, CreatedAt: now.Add(-time.Hour)},
			}, nil
		},
	}
	svc := NewUserService(&mockUserRepository{}, resultRepo)

	results, err := svc.GetMyResults(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "r2", results[0].ID)
	assert.Equal(t, "r1", results[1].ID)
}

func TestGetMyResultsEmpty(t *testing.T) {
	resultRepo := &mockQuizResultRepository{
		getResultsByUserIDFunc: func(ctx context.Context, userID string) ([]domain.QuizResult, error) {
			return []domain.QuizResult{}, nil
		},
	}
	svc := NewUserService(&mockUserRepository{}, resultRepo)

	results, err := svc.GetMyResults(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}
