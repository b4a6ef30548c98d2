package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quizdeck/internal/domain"
	"quizdeck/internal/repository/models"
	"quizdeck/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

func toDomainUser(modelUser *models.User) *domain.User {
	if modelUser == nil {
		return nil
	}
	var deletedAt *time.Time
	if modelUser.DeletedAt.Valid {
		deletedAt = &modelUser.DeletedAt.Time
	}

	return &domain.User{
		ID:        modelUser.ID,
		GoogleID:  modelUser.GoogleID,
		Email:     modelUser.Email,
		Name:      modelUser.Name.String,
		Role:      domain.ParseRole(modelUser.Role),
		CreatedAt: modelUser.CreatedAt,
		UpdatedAt: modelUser.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

func fromDomainUser(domainUser *domain.User) *models.User {
	if domainUser == nil {
		return nil
	}
	var deletedAt sql.NullTime
	if domainUser.DeletedAt != nil {
		deletedAt = util.TimeToNullTime(*domainUser.DeletedAt)
	}

	return &models.User{
		ID:        domainUser.ID,
		GoogleID:  domainUser.GoogleID,
		Email:     domainUser.Email,
		Name:      util.StringToNullString(domainUser.Name),
		Role:      string(domainUser.Role),
		CreatedAt: domainUser.CreatedAt,
		UpdatedAt: domainUser.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// CreateUser inserts a new user row.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	modelUser := fromDomainUser(user)
	if modelUser.CreatedAt.IsZero() {
		modelUser.CreatedAt = time.Now()
	}
	modelUser.UpdatedAt = time.Now()

	query := `INSERT INTO users (ID, GOOGLE_ID, EMAIL, NAME, USER_ROLE, CREATED_AT, UPDATED_AT, DELETED_AT)
	          VALUES (:1, :2, :3, :4, :5, :6, :7, :8)`

	executor := GetExecutor(ctx, r.db)
	if _, err := executor.ExecContext(ctx, query,
		modelUser.ID,
		modelUser.GoogleID,
		modelUser.Email,
		modelUser.Name,
		modelUser.Role,
		modelUser.CreatedAt,
		modelUser.UpdatedAt,
		modelUser.DeletedAt,
	); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by id; (nil, nil) when absent.
func (r *sqlxUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ID, GOOGLE_ID, EMAIL, NAME, USER_ROLE, CREATED_AT, UPDATED_AT, DELETED_AT
	          FROM users WHERE ID = :1 AND DELETED_AT IS NULL`

	var modelUser models.User
	executor := GetExecutor(ctx, r.db)
	if err := executor.GetContext(ctx, &modelUser, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return toDomainUser(&modelUser), nil
}

// GetUserByGoogleID retrieves a user by Google id; (nil, nil) when absent.
func (r *sqlxUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	query := `SELECT ID, GOOGLE_ID, EMAIL, NAME, USER_ROLE, CREATED_AT, UPDATED_AT, DELETED_AT
	          FROM users WHERE GOOGLE_ID = :1 AND DELETED_AT IS NULL`

	var modelUser models.User
	executor := GetExecutor(ctx, r.db)
	if err := executor.GetContext(ctx, &modelUser, query, googleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by google_id: %w", err)
	}
	return toDomainUser(&modelUser), nil
}

// UpdateUser updates profile fields for an existing user.
func (r *sqlxUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	modelUser := fromDomainUser(user)
	modelUser.UpdatedAt = time.Now()

	query := `UPDATE users SET EMAIL = :1, NAME = :2, USER_ROLE = :3, UPDATED_AT = :4 WHERE ID = :5`

	executor := GetExecutor(ctx, r.db)
	if _, err := executor.ExecContext(ctx, query,
		modelUser.Email,
		modelUser.Name,
		modelUser.Role,
		modelUser.UpdatedAt,
		modelUser.ID,
	); err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.ID, err)
	}
	return nil
}
