package service

import (
	"context"
	"errors"
	"testing"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockQuizRepository struct {
	getQuizByIDFunc          func(ctx context.Context, id string) (*domain.Quiz, error)
	listQuizzesFunc          func(ctx context.Context) ([]domain.QuizSummary, error)
	listQuizzesByCreatorFunc func(ctx context.Context, creatorID string) ([]domain.QuizSummary, error)
	createQuizFunc           func(ctx context.Context, quiz *domain.Quiz) error
}

func (m *mockQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	if m.getQuizByIDFunc != nil {
		return m.getQuizByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockQuizRepository) ListQuizzes(ctx context.Context) ([]domain.QuizSummary, error) {
	if m.listQuizzesFunc != nil {
		return m.listQuizzesFunc(ctx)
	}
	return nil, nil
}

func (m *mockQuizRepository) ListQuizzesByCreator(ctx context.Context, creatorID string) ([]domain.QuizSummary, error) {
	if m.listQuizzesByCreatorFunc != nil {
		return m.listQuizzesByCreatorFunc(ctx, creatorID)
	}
	return nil, nil
}

func (m *mockQuizRepository) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if m.createQuizFunc != nil {
		return m.createQuizFunc(ctx, quiz)
	}
	return nil
}

type mockQuizResultRepository struct {
	createResultFunc       func(ctx context.Context, result *domain.QuizResult) error
	getResultsByUserIDFunc func(ctx context.Context, userID string) ([]domain.QuizResult, error)
}

func (m *mockQuizResultRepository) CreateResult(ctx context.Context, result *domain.QuizResult) error {
	if m.createResultFunc != nil {
		return m.createResultFunc(ctx, result)
	}
	return nil
}

func (m *mockQuizResultRepository) GetResultsByUserID(ctx context.Context, userID string) ([]domain.QuizResult, error) {
	if m.getResultsByUserIDFunc != nil {
		return m.getResultsByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

type mockTransactionManager struct{}

func (m *mockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func intPtr(v int) *int { return &v }

func sampleQuiz(quizID string) *domain.Quiz {
	return &domain.Quiz{
		ID:        quizID,
		Title:     "Go Basics",
		CreatorID: "instructor-1",
		Questions: []domain.Question{
			{ID: "q1", QuizID: quizID, Text: "First?", Options: []string{"a", "b"}, Answer: "0", Position: 0},
			{ID: "q2", QuizID: quizID, Text: "Second?", Options: []string{"a", "b", "c"}, Answer: "2", Position: 1},
		},
	}
}

func newTestQuizService(quizRepo domain.QuizRepository, resultRepo domain.QuizResultRepository) QuizService {
	return NewQuizService(quizRepo, resultRepo, &mockTransactionManager{}, nil, nil)
}

func TestListQuizzesFiltersByRole(t *testing.T) {
	ctx := context.Background()
	all := []domain.QuizSummary{{ID: "1", Title: "One"}, {ID: "2", Title: "Two"}}
	mine := []domain.QuizSummary{{ID: "2", Title: "Two"}}

	quizRepo := &mockQuizRepository{
		listQuizzesFunc: func(ctx context.Context) ([]domain.QuizSummary, error) {
			return all, nil
		},
		listQuizzesByCreatorFunc: func(ctx context.Context, creatorID string) ([]domain.QuizSummary, error) {
			assert.Equal(t, "instructor-1", creatorID)
			return mine, nil
		},
	}
	svc := newTestQuizService(quizRepo, &mockQuizResultRepository{})

	studentView, err := svc.ListQuizzes(ctx, "student-1", domain.RoleStudent)
	require.NoError(t, err)
	assert.Len(t, studentView, 2)

	instructorView, err := svc.ListQuizzes(ctx, "instructor-1", domain.RoleInstructor)
	require.NoError(t, err)
	require.Len(t, instructorView, 1)
	assert.Equal(t, "2", instructorView[0].ID)
}

func TestListQuizzesEmptyCatalog(t *testing.T) {
	quizRepo := &mockQuizRepository{
		listQuizzesFunc: func(ctx context.Context) ([]domain.QuizSummary, error) {
			return []domain.QuizSummary{}, nil
		},
	}
	svc := newTestQuizService(quizRepo, &mockQuizResultRepository{})

	got, err := svc.ListQuizzes(context.Background(), "student-1", domain.RoleStudent)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetQuizStripsAnswers(t *testing.T) {
	quizID := util.NewULID()
	quizRepo := &mockQuizRepository{
		getQuizByIDFunc: func(ctx context.Context, id string) (*domain.Quiz, error) {
			return sampleQuiz(quizID), nil
		},
	}
	svc := newTestQuizService(quizRepo, &mockQuizResultRepository{})

	detail, err := svc.GetQuiz(context.Background(), quizID)
	require.NoError(t, err)
	require.Len(t, detail.Questions, 2)
	assert.Equal(t, []string{"a", "b"}, detail.Questions[0].Options)
	// The answer key must not appear anywhere in the taker-facing shape.
	assert.Equal(t, dto.QuestionResponse{ID: "q1", Text: "First?", Options: []string{"a", "b"}}, detail.Questions[0])
}

func TestGetQuizNotFound(t *testing.T) {
	quizRepo := &mockQuizRepository{
		getQuizByIDFunc: func(ctx context.Context, id string) (*domain.Quiz, error) {
			return nil, nil
		},
	}
	svc := newTestQuizService(quizRepo, &mockQuizResultRepository{})

	_, err := svc.GetQuiz(context.Background(), util.NewULID())
	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeQuizNotFound, domainErr.Code)
}

func TestGetQuizRejectsBadID(t *testing.T) {
	svc := newTestQuizService(&mockQuizRepository{}, &mockQuizResultRepository{})

	_, err := svc.GetQuiz(context.Background(), "not-a-ulid")
	require.Error(t, err)
	var validationErrs domain.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestCreateQuizForbiddenForStudents(t *testing.T) {
	svc := newTestQuizService(&mockQuizRepository{
		createQuizFunc: func(ctx context.Context, quiz *domain.Quiz) error {
			t.Fatal("CreateQuiz must not reach the repository for a student caller")
			return nil
		},
	}, &mockQuizResultRepository{})

	req := &dto.CreateQuizRequest{
		Title:     "Go Basics",
		Questions: []dto.QuestionDraft{{Text: "q", Options: []string{"a", "b"}, Answer: 0}},
	}
	_, err := svc.CreateQuiz(context.Background(), "student-1", domain.RoleStudent, req)
	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeForbidden, domainErr.Code)
}

func TestCreateQuizPersistsDraft(t *testing.T) {
	var persisted *domain.Quiz
	quizRepo := &mockQuizRepository{
		createQuizFunc: func(ctx context.Context, quiz *domain.Quiz) error {
			persisted = quiz
			return nil
		},
	}
	svc := newTestQuizService(quizRepo, &mockQuizResultRepository{})

	req := &dto.CreateQuizRequest{
		Title:       "Go Basics",
		Description: "intro",
		Questions: []dto.QuestionDraft{
			{Text: "First?", Options: []string{"a", "b"}, Answer: 1},
			{Text: "Second?", Options: []string{"a", "b", "c"}, Answer: 2},
		},
	}
	detail, err := svc.CreateQuiz(context.Background(), "instructor-1", domain.RoleInstructor, req)
	require.NoError(t, err)

	require.NotNil(t, persisted)
	assert.Equal(t, "instructor-1", persisted.CreatorID)
	require.Len(t, persisted.Questions, 2)
	assert.Equal(t, "1", persisted.Questions[0].Answer)
	assert.Equal(t, "2", persisted.Questions[1].Answer)
	assert.Equal(t, 0, persisted.Questions[0].Position)
	assert.Equal(t, 1, persisted.Questions[1].Position)

	assert.Equal(t, persisted.ID, detail.ID)
	assert.Len(t, detail.Questions, 2)
}

func TestCreateQuizRejectsInvalidDraft(t *testing.T) {
	svc := newTestQuizService(&mockQuizRepository{}, &mockQuizResultRepository{})

	req := &dto.CreateQuizRequest{
		Title:     "Go Basics",
		Questions: []dto.QuestionDraft{{Text: "q", Options: []string{"a", "b"}, Answer: 5}},
	}
	_, err := svc.CreateQuiz(context.Background(), "instructor-1", domain.RoleInstructor, req)
	require.Error(t, err)
	var validationErrs domain.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestSubmitQuizGradesAndRecords(t *testing.T) {
	quizID := util.NewULID()
	quizRepo := &mockQuizRepository{
		getQuizByIDFunc: func(ctx context.Context, id string) (*domain.Quiz, error) {
			return sampleQuiz(quizID), nil
		},
	}
	var recorded *domain.QuizResult
	resultRepo := &mockQuizResultRepository{
		createResultFunc: func(ctx context.Context, result *domain.QuizResult) error {
			recorded = result
			return nil
		},
	}
	svc := newTestQuizService(quizRepo, resultRepo)

	resp, err := svc.SubmitQuiz(context.Background(), "student-1", quizID, &dto.SubmitQuizRequest{
		Answers: map[string]*int{"q1": intPtr(0), "q2": intPtr(1)},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Score)
	assert.Equal(t, 2, resp.Total)

	require.NotNil(t, recorded)
	assert.Equal(t, "student-1", recorded.UserID)
	assert.Equal(t, quizID, recorded.QuizID)
	assert.Equal(t, 1, recorded.Score)
	assert.NotEmpty(t, recorded.ID)
}

func TestSubmitQuizSkipsNullAnswers(t *testing.T) {
	quizID := util.NewULID()
	quizRepo := &mockQuizRepository{
		getQuizByIDFunc: func(ctx context.Context, id string) (*domain.Quiz, error) {
			return sampleQuiz(quizID), nil
		},
	}
	svc := newTestQuizService(quizRepo, &mockQuizResultRepository{})

	resp, err := svc.SubmitQuiz(context.Background(), "student-1", quizID, &dto.SubmitQuizRequest{
		Answers: map[string]*int{"q1": nil, "q2": intPtr(2)},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Score)
	assert.Equal(t, 2, resp.Total)
}

func TestSubmitQuizNotFound(t *testing.T) {
	quizRepo := &mockQuizRepository{
		getQuizByIDFunc: func(ctx context.Context, id string) (*domain.Quiz, error) {
			return nil, nil
		},
	}
	resultRepo := &mockQuizResultRepository{
		createResultFunc: func(ctx context.Context, result *domain.QuizResult) error {
			t.Fatal("no result row may be written for a missing quiz")
			return nil
		},
	}
	svc := newTestQuizService(quizRepo, resultRepo)

	_, err := svc.SubmitQuiz(context.Background(), "student-1", util.NewULID(), &dto.SubmitQuizRequest{})
	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeQuizNotFound, domainErr.Code)
}

func TestSubmitQuizSurfacesStorageFailure(t *testing.T) {
	quizID := util.NewULID()
	quizRepo := &mockQuizRepository{
		getQuizByIDFunc: func(ctx context.Context, id string) (*domain.Quiz, error) {
			return sampleQuiz(quizID), nil
		},
	}
	storageErr := errors.New("ORA-00001: unique constraint violated")
	resultRepo := &mockQuizResultRepository{
		createResultFunc: func(ctx context.Context, result *domain.QuizResult) error {
			return storageErr
		},
	}
	svc := newTestQuizService(quizRepo, resultRepo)

	_, err := svc.SubmitQuiz(context.Background(), "student-1", quizID, &dto.SubmitQuizRequest{
		Answers: map[string]*int{"q1": intPtr(0)},
	})
	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeStorage, domainErr.Code)
	assert.ErrorIs(t, err, storageErr)
}

func TestSubmitQuizRetakesAppend(t *testing.T) {
	quizID := util.NewULID()
	quizRepo := &mockQuizRepository{
		getQuizByIDFunc: func(ctx context.Context, id string) (*domain.Quiz, error) {
			return sampleQuiz(quizID), nil
		},
	}
	var rows []*domain.QuizResult
	resultRepo := &mockQuizResultRepository{
		createResultFunc: func(ctx context.Context, result *domain.QuizResult) error {
			rows = append(rows, result)
			return nil
		},
	}
	svc := newTestQuizService(quizRepo, resultRepo)

	for i := 0; i < 2; i++ {
		_, err := svc.SubmitQuiz(context.Background(), "student-1", quizID, &dto.SubmitQuizRequest{
			Answers: map[string]*int{"q1": intPtr(0)},
		})
		require.NoError(t, err)
	}

	require.Len(t, rows, 2)
	assert.NotEqual(t, rows[0].ID, rows[1].ID)
}
