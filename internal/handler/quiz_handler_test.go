package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/middleware"
	"quizdeck/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	claims *dto.AuthClaims
}

func (s *stubAuthService) GetGoogleLoginURL(state string) string { return "https://example.invalid" }

func (s *stubAuthService) HandleGoogleCallback(ctx context.Context, code, receivedState, expectedState string) (string, string, *domain.User, error) {
	return "", "", nil, nil
}

func (s *stubAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if tokenString == "valid" && s.claims != nil {
		return s.claims, nil
	}
	return nil, domain.NewUnauthorizedError("invalid token", nil)
}

func (s *stubAuthService) CreateJWT(ctx context.Context, user *domain.User, ttl time.Duration, tokenType string) (string, error) {
	return "", nil
}

func (s *stubAuthService) RefreshToken(ctx context.Context, refreshTokenString string) (string, string, error) {
	return "", "", nil
}

type stubQuizService struct {
	listQuizzesFunc func(ctx context.Context, callerID string, role domain.Role) ([]dto.QuizSummaryResponse, error)
	getQuizFunc     func(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error)
	createQuizFunc  func(ctx context.Context, callerID string, role domain.Role, req *dto.CreateQuizRequest) (*dto.QuizDetailResponse, error)
	submitQuizFunc  func(ctx context.Context, callerID, quizID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error)
}

func (s *stubQuizService) ListQuizzes(ctx context.Context, callerID string, role domain.Role) ([]dto.QuizSummaryResponse, error) {
	return s.listQuizzesFunc(ctx, callerID, role)
}

func (s *stubQuizService) GetQuiz(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error) {
	return s.getQuizFunc(ctx, quizID)
}

func (s *stubQuizService) CreateQuiz(ctx context.Context, callerID string, role domain.Role, req *dto.CreateQuizRequest) (*dto.QuizDetailResponse, error) {
	return s.createQuizFunc(ctx, callerID, role, req)
}

func (s *stubQuizService) SubmitQuiz(ctx context.Context, callerID, quizID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	return s.submitQuizFunc(ctx, callerID, quizID, req)
}

func newQuizApp(role domain.Role, quizService service.QuizService) *fiber.App {
	auth := &stubAuthService{
		claims: &dto.AuthClaims{UserID: "caller-1", Role: string(role), TokenType: "access"},
	}
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := NewQuizHandler(quizService)

	quizzes := app.Group("/api/quizzes", middleware.Protected(auth))
	quizzes.Get("/", h.ListQuizzes)
	quizzes.Post("/", middleware.RequireRole(domain.RoleInstructor), h.CreateQuiz)
	quizzes.Get("/:id", h.GetQuiz)
	quizzes.Post("/:id/submit", h.SubmitQuiz)
	return app
}

func authedRequest(method, target string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set(fiber.HeaderAuthorization, "Bearer valid")
	return req
}

func TestListQuizzesRequiresToken(t *testing.T) {
	app := newQuizApp(domain.RoleStudent, &stubQuizService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/quizzes/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestListQuizzesPassesCallerIdentity(t *testing.T) {
	quizService := &stubQuizService{
		listQuizzesFunc: func(ctx context.Context, callerID string, role domain.Role) ([]dto.QuizSummaryResponse, error) {
			assert.Equal(t, "caller-1", callerID)
			assert.Equal(t, domain.RoleInstructor, role)
			return []dto.QuizSummaryResponse{{ID: "1", Title: "One"}}, nil
		},
	}
	app := newQuizApp(domain.RoleInstructor, quizService)

	resp, err := app.Test(authedRequest(http.MethodGet, "/api/quizzes/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body []dto.QuizSummaryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "One", body[0].Title)
}

func TestGetQuizNotFoundMapsTo404(t *testing.T) {
	quizService := &stubQuizService{
		getQuizFunc: func(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error) {
			return nil, domain.NewQuizNotFoundError(quizID)
		},
	}
	app := newQuizApp(domain.RoleStudent, quizService)

	resp, err := app.Test(authedRequest(http.MethodGet, "/api/quizzes/01HMISSINGQUIZ00000000000A", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, string(domain.CodeQuizNotFound), body["code"])
}

func TestCreateQuizForbiddenForStudentRole(t *testing.T) {
	quizService := &stubQuizService{
		createQuizFunc: func(ctx context.Context, callerID string, role domain.Role, req *dto.CreateQuizRequest) (*dto.QuizDetailResponse, error) {
			t.Fatal("handler must not be reached without the INSTRUCTOR role")
			return nil, nil
		},
	}
	app := newQuizApp(domain.RoleStudent, quizService)

	payload, _ := json.Marshal(dto.CreateQuizRequest{Title: "t"})
	resp, err := app.Test(authedRequest(http.MethodPost, "/api/quizzes/", payload))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCreateQuizReturns201(t *testing.T) {
	quizService := &stubQuizService{
		createQuizFunc: func(ctx context.Context, callerID string, role domain.Role, req *dto.CreateQuizRequest) (*dto.QuizDetailResponse, error) {
			return &dto.QuizDetailResponse{ID: "new-quiz", Title: req.Title}, nil
		},
	}
	app := newQuizApp(domain.RoleInstructor, quizService)

	payload, _ := json.Marshal(dto.CreateQuizRequest{
		Title:     "Go Basics",
		Questions: []dto.QuestionDraft{{Text: "q", Options: []string{"a", "b"}, Answer: 0}},
	})
	resp, err := app.Test(authedRequest(http.MethodPost, "/api/quizzes/", payload))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCreateQuizValidationFailureMapsTo400(t *testing.T) {
	quizService := &stubQuizService{
		createQuizFunc: func(ctx context.Context, callerID string, role domain.Role, req *dto.CreateQuizRequest) (*dto.QuizDetailResponse, error) {
			return nil, domain.ValidationErrors{domain.NewMissingFieldError("title")}
		},
	}
	app := newQuizApp(domain.RoleInstructor, quizService)

	payload, _ := json.Marshal(dto.CreateQuizRequest{})
	resp, err := app.Test(authedRequest(http.MethodPost, "/api/quizzes/", payload))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body struct {
		Code    string                   `json:"code"`
		Details []map[string]interface{} `json:"details"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, string(domain.CodeValidation), body.Code)
	require.Len(t, body.Details, 1)
	assert.Equal(t, "title", body.Details[0]["field"])
}

func TestSubmitQuizReturnsScore(t *testing.T) {
	quizService := &stubQuizService{
		submitQuizFunc: func(ctx context.Context, callerID, quizID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
			assert.Equal(t, "caller-1", callerID)
			require.NotNil(t, req.Answers["q1"])
			assert.Equal(t, 0, *req.Answers["q1"])
			return &dto.SubmitQuizResponse{Score: 1, Total: 2}, nil
		},
	}
	app := newQuizApp(domain.RoleStudent, quizService)

	payload, _ := json.Marshal(dto.SubmitQuizRequest{Answers: map[string]*int{"q1": new(int)}})
	resp, err := app.Test(authedRequest(http.MethodPost, "/api/quizzes/01HQUIZID0000000000000000A/submit", payload))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.SubmitQuizResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Score)
	assert.Equal(t, 2, body.Total)
}

func TestSubmitQuizStorageFailureMapsTo500(t *testing.T) {
	quizService := &stubQuizService{
		submitQuizFunc: func(ctx context.Context, callerID, quizID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
			return nil, domain.NewStorageError("failed to record quiz result", assert.AnError)
		},
	}
	app := newQuizApp(domain.RoleStudent, quizService)

	payload, _ := json.Marshal(dto.SubmitQuizRequest{})
	resp, err := app.Test(authedRequest(http.MethodPost, "/api/quizzes/01HQUIZID0000000000000000A/submit", payload))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	// The storage cause stays server-side.
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, string(domain.CodeStorage), body["code"])
	assert.NotContains(t, body["message"], assert.AnError.Error())
}
