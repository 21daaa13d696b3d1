package quiz

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/question"
)

type catalogue interface {
	Categories(ctx context.Context) ([]question.Category, error)
	QuestionsInCategory(ctx context.Context, categoryID int) ([]question.Question, error)
}

// Request is one quiz turn. The caller accumulates PreviousQuestions across turns.
type Request struct {
	PreviousQuestions []int
	CategoryID        int
}

// Turn is the question served for a request and the category it was drawn from.
type Turn struct {
	Question question.Question
	Category question.Category
}

// Service serves non-repeating quiz questions. It holds no per-player state.
type Service struct {
	catalogue catalogue
	selector  *Selector
	logger    zerolog.Logger
}

func NewService(catalogue catalogue, selector *Selector, logger zerolog.Logger) *Service {
	if selector == nil {
		selector = NewSelector(nil)
	}
	return &Service{
		catalogue: catalogue,
		selector:  selector,
		logger:    logger.With().Str("component", "quiz_service").Logger(),
	}
}

// Next resolves the category and returns an unseen question from it.
func (s *Service) Next(ctx context.Context, req Request) (Turn, error) {
	categories, err := s.catalogue.Categories(ctx)
	if err != nil {
		return Turn{}, err
	}

	category, err := s.selector.PickCategory(categories, req.CategoryID)
	if err != nil {
		quizTurns.WithLabelValues(outcomeNoCategory).Inc()
		return Turn{}, err
	}

	questions, err := s.catalogue.QuestionsInCategory(ctx, category.ID)
	if err != nil {
		return Turn{}, err
	}

	q, err := s.selector.Pick(questions, req.PreviousQuestions)
	if err != nil {
		if errors.Is(err, ErrQuizExhausted) {
			quizTurns.WithLabelValues(outcomeExhausted).Inc()
			s.logger.Debug().
				Int("category_id", category.ID).
				Int("previous", len(req.PreviousQuestions)).
				Msg("quiz category exhausted")
		}
		return Turn{}, err
	}

	quizTurns.WithLabelValues(outcomeServed).Inc()
	return Turn{Question: q, Category: category}, nil
}
