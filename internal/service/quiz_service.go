package service

import (
	"context"
	"strconv"
	"time"

	"quizdeck/internal/config"
	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/logger"
	"quizdeck/internal/util"
	"quizdeck/internal/validation"

	"go.uber.org/zap"
)

// QuizService covers the quiz catalog, quiz authoring, and the submit
// workflow (grade, record, report).
type QuizService interface {
	// ListQuizzes returns the catalog. Instructors see only their own
	// quizzes; students see everything.
	ListQuizzes(ctx context.Context, callerID string, role domain.Role) ([]dto.QuizSummaryResponse, error)

	// GetQuiz returns one quiz without its answer key.
	GetQuiz(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error)

	// CreateQuiz persists a validated quiz draft. Instructors only.
	CreateQuiz(ctx context.Context, callerID string, role domain.Role, req *dto.CreateQuizRequest) (*dto.QuizDetailResponse, error)

	// SubmitQuiz grades a submission, records the result, and reports the
	// score.
	SubmitQuiz(ctx context.Context, callerID string, quizID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error)
}

type quizServiceImpl struct {
	quizRepo   domain.QuizRepository
	resultRepo domain.QuizResultRepository
	txManager  domain.TransactionManager
	validator  *validation.Validator
	detail     *quizDetailCache
}

// NewQuizService wires the quiz service. cacheClient may be nil; the
// service then reads straight from the repository.
func NewQuizService(
	quizRepo domain.QuizRepository,
	resultRepo domain.QuizResultRepository,
	txManager domain.TransactionManager,
	cacheClient domain.Cache,
	cfg *config.Config,
) QuizService {
	var detail *quizDetailCache
	if cacheClient != nil {
		detail = newQuizDetailCache(cacheClient, cfg)
	}
	return &quizServiceImpl{
		quizRepo:   quizRepo,
		resultRepo: resultRepo,
		txManager:  txManager,
		validator:  validation.NewValidator(),
		detail:     detail,
	}
}

func (s *quizServiceImpl) ListQuizzes(ctx context.Context, callerID string, role domain.Role) ([]dto.QuizSummaryResponse, error) {
	var (
		summaries []domain.QuizSummary
		err       error
	)
	if role == domain.RoleInstructor {
		summaries, err = s.quizRepo.ListQuizzesByCreator(ctx, callerID)
	} else {
		summaries, err = s.quizRepo.ListQuizzes(ctx)
	}
	if err != nil {
		return nil, domain.NewStorageError("failed to list quizzes", err)
	}

	responses := make([]dto.QuizSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		responses = append(responses, dto.QuizSummaryResponse{ID: summary.ID, Title: summary.Title})
	}
	return responses, nil
}

func (s *quizServiceImpl) GetQuiz(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error) {
	if errs := s.validator.ValidateQuizID(quizID); len(errs) > 0 {
		return nil, errs
	}
	quiz, err := s.loadQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}
	return toQuizDetailResponse(quiz), nil
}

func (s *quizServiceImpl) CreateQuiz(ctx context.Context, callerID string, role domain.Role, req *dto.CreateQuizRequest) (*dto.QuizDetailResponse, error) {
	if role != domain.RoleInstructor {
		return nil, domain.NewForbiddenError("only instructors can create quizzes")
	}
	if errs := s.validator.ValidateCreateQuizRequest(req); len(errs) > 0 {
		return nil, errs
	}

	quiz := domain.NewQuiz(req.Title, req.Description, callerID)
	quiz.ID = util.NewULID()
	now := time.Now()
	for i, draft := range req.Questions {
		quiz.Questions = append(quiz.Questions, domain.Question{
			ID:        util.NewULID(),
			QuizID:    quiz.ID,
			Text:      draft.Text,
			Options:   draft.Options,
			Answer:    strconv.Itoa(draft.Answer),
			Position:  i,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.quizRepo.CreateQuiz(txCtx, quiz)
	})
	if err != nil {
		return nil, domain.NewStorageError("failed to create quiz", err)
	}

	logger.Get().Info("Quiz created",
		zap.String("quizID", quiz.ID),
		zap.String("creatorID", callerID),
		zap.Int("questions", len(quiz.Questions)))
	return toQuizDetailResponse(quiz), nil
}

// SubmitQuiz is the read-grade-record pipeline. Grading itself never
// touches storage; only the append of the result row does.
func (s *quizServiceImpl) SubmitQuiz(ctx context.Context, callerID string, quizID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	if errs := s.validator.ValidateQuizID(quizID); len(errs) > 0 {
		return nil, errs
	}

	quiz, err := s.loadQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	submission := make(domain.Submission, len(req.Answers))
	for questionID, selected := range req.Answers {
		if selected == nil {
			continue
		}
		submission[questionID] = *selected
	}

	graded := domain.Grade(quiz, submission)

	result := domain.NewQuizResult(callerID, quizID, graded.Score)
	result.ID = util.NewULID()
	if err := s.resultRepo.CreateResult(ctx, result); err != nil {
		return nil, domain.NewStorageError("failed to record quiz result", err)
	}

	logger.Get().Info("Quiz submitted",
		zap.String("quizID", quizID),
		zap.String("userID", callerID),
		zap.Int("score", graded.Score),
		zap.Int("total", graded.Total))
	return &dto.SubmitQuizResponse{Score: graded.Score, Total: graded.Total}, nil
}

func (s *quizServiceImpl) loadQuiz(ctx context.Context, quizID string) (*domain.Quiz, error) {
	load := func(ctx context.Context, id string) (*domain.Quiz, error) {
		quiz, err := s.quizRepo.GetQuizByID(ctx, id)
		if err != nil {
			return nil, domain.NewStorageError("failed to load quiz", err)
		}
		return quiz, nil
	}
	if s.detail != nil {
		return s.detail.loadThrough(ctx, quizID, load)
	}
	return load(ctx, quizID)
}

func toQuizDetailResponse(quiz *domain.Quiz) *dto.QuizDetailResponse {
	questions := make([]dto.QuestionResponse, 0, len(quiz.Questions))
	for _, question := range quiz.Questions {
		questions = append(questions, dto.QuestionResponse{
			ID:      question.ID,
			Text:    question.Text,
			Options: question.Options,
		})
	}
	return &dto.QuizDetailResponse{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		Questions:   questions,
	}
}
