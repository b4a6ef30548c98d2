package validation

import (
	"fmt"
	"regexp"
	"strings"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 2000
	maxQuestionTextLen   = 1000
	maxQuestionsPerQuiz  = 100
	minOptionsPerQuest   = 2
	maxOptionsPerQuest   = 10
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateQuizRequest validates a quiz draft. The correct-option
// index must land inside the option list; a draft that stores an
// unanswerable question is rejected here rather than discovered at
// grading time.
func (v *Validator) ValidateCreateQuizRequest(req *dto.CreateQuizRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, domain.NewMissingFieldError("title"))
	} else if len(req.Title) > maxTitleLength {
		errs = append(errs, domain.NewOutOfRangeError("title", len(req.Title), 1, maxTitleLength))
	}

	if len(req.Description) > maxDescriptionLength {
		errs = append(errs, domain.NewOutOfRangeError("description", len(req.Description), 0, maxDescriptionLength))
	}

	if len(req.Questions) == 0 {
		errs = append(errs, domain.NewMissingFieldError("questions"))
		return errs
	}
	if len(req.Questions) > maxQuestionsPerQuiz {
		errs = append(errs, domain.NewOutOfRangeError("questions", len(req.Questions), 1, maxQuestionsPerQuiz))
	}

	for i := range req.Questions {
		errs = append(errs, v.validateQuestionDraft(i, &req.Questions[i])...)
	}

	return errs
}

func (v *Validator) validateQuestionDraft(index int, draft *dto.QuestionDraft) domain.ValidationErrors {
	var errs domain.ValidationErrors
	prefix := fmt.Sprintf("questions[%d]", index)

	if strings.TrimSpace(draft.Text) == "" {
		errs = append(errs, domain.NewMissingFieldError(prefix+".text"))
	} else if len(draft.Text) > maxQuestionTextLen {
		errs = append(errs, domain.NewOutOfRangeError(prefix+".text", len(draft.Text), 1, maxQuestionTextLen))
	}

	if len(draft.Options) < minOptionsPerQuest || len(draft.Options) > maxOptionsPerQuest {
		errs = append(errs, domain.NewOutOfRangeError(prefix+".options", len(draft.Options), minOptionsPerQuest, maxOptionsPerQuest))
		return errs
	}

	for j, option := range draft.Options {
		if strings.TrimSpace(option) == "" {
			errs = append(errs, domain.NewMissingFieldError(fmt.Sprintf("%s.options[%d]", prefix, j)))
		}
	}

	if draft.Answer < 0 || draft.Answer >= len(draft.Options) {
		errs = append(errs, domain.NewOutOfRangeError(prefix+".answer", draft.Answer, 0, len(draft.Options)-1))
	}

	return errs
}

// ValidateQuizID checks that a path parameter looks like a ULID before it
// reaches the repository.
func (v *Validator) ValidateQuizID(quizID string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(quizID) == "" {
		errs = append(errs, domain.NewMissingFieldError("quiz_id"))
	} else if !isValidULID(quizID) {
		errs = append(errs, domain.NewInvalidFormatError("quiz_id", quizID))
	}
	return errs
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, Crockford's Base32
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}
