package main

import (
	"context"
	"log"
	"strconv"
	"time"

	"quizdeck/internal/config"
	"quizdeck/internal/database"
	"quizdeck/internal/domain"
	"quizdeck/internal/logger"
	"quizdeck/internal/repository"
	"quizdeck/internal/util"

	"go.uber.org/zap"
)

// Seeds a demo instructor, a demo student, and one sample quiz so a fresh
// environment has something to list and submit against.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg)
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewSQLXUserRepository(db)
	quizRepo := repository.NewSQLXQuizRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	instructor, err := seedUser(ctx, userRepo, "seed-google-instructor", "instructor@quizdeck.local", "Demo Instructor", domain.RoleInstructor)
	if err != nil {
		appLogger.Fatal("Failed to seed instructor", zap.Error(err))
	}
	if _, err := seedUser(ctx, userRepo, "seed-google-student", "student@quizdeck.local", "Demo Student", domain.RoleStudent); err != nil {
		appLogger.Fatal("Failed to seed student", zap.Error(err))
	}

	quiz := sampleQuiz(instructor.ID)
	err = txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return quizRepo.CreateQuiz(txCtx, quiz)
	})
	if err != nil {
		appLogger.Fatal("Failed to seed quiz", zap.Error(err))
	}

	appLogger.Info("Seed data created",
		zap.String("instructorID", instructor.ID),
		zap.String("quizID", quiz.ID))
}

func seedUser(ctx context.Context, repo domain.UserRepository, googleID, email, name string, role domain.Role) (*domain.User, error) {
	existing, err := repo.GetUserByGoogleID(ctx, googleID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	user := domain.NewUser(googleID, email)
	user.ID = util.NewULID()
	user.Name = name
	user.Role = role
	if err := repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func sampleQuiz(creatorID string) *domain.Quiz {
	quiz := domain.NewQuiz("Go Fundamentals", "A short warm-up quiz about the Go language.", creatorID)
	quiz.ID = util.NewULID()

	drafts := []struct {
		text    string
		options []string
		answer  int
	}{
		{"Which keyword declares a new goroutine?", []string{"async", "go", "spawn", "thread"}, 1},
		{"What is the zero value of a pointer?", []string{"0", "\"\"", "nil", "undefined"}, 2},
		{"Which construct is used for channel selection?", []string{"switch", "match", "select", "case"}, 2},
	}

	now := time.Now()
	for i, d := range drafts {
		quiz.Questions = append(quiz.Questions, domain.Question{
			ID:        util.NewULID(),
			QuizID:    quiz.ID,
			Text:      d.text,
			Options:   d.options,
			Answer:    strconv.Itoa(d.answer),
			Position:  i,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return quiz
}
