package service

import (
	"context"
	"fmt"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
)

// UserService serves profile and result-history lookups for the
// authenticated caller.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error)
	GetMyResults(ctx context.Context, userID string) ([]dto.QuizResultResponse, error)
}

type userServiceImpl struct {
	userRepo   domain.UserRepository
	resultRepo domain.QuizResultRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo domain.UserRepository, resultRepo domain.QuizResultRepository) UserService {
	return &userServiceImpl{userRepo: userRepo, resultRepo: resultRepo}
}

func (s *userServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewStorageError("failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("User not found with ID: %s", userID))
	}
	return &dto.UserProfileResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
	}, nil
}

// GetMyResults returns the caller's results, newest first. Retakes show up
// as separate entries.
func (s *userServiceImpl) GetMyResults(ctx context.Context, userID string) ([]dto.QuizResultResponse, error) {
	results, err := s.resultRepo.GetResultsByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewStorageError("failed to load quiz results", err)
	}
	responses := make([]dto.QuizResultResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, dto.QuizResultResponse{
			ID:        result.ID,
			QuizID:    result.QuizID,
			Score:     result.Score,
			CreatedAt: result.CreatedAt,
		})
	}
	return responses, nil
}
