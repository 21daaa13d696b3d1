package question

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// CategoryCache defines cache behavior (implemented by Redis-backed Cache).
// Get returns nil, nil on a miss.
type CategoryCache interface {
	Get(ctx context.Context) ([]Category, error)
	Set(ctx context.Context, categories []Category) error
}

// Service implements the question catalogue on top of Postgres, with an
// optional category cache in front of the categories table.
type Service struct {
	questions  *repository.QuestionRepository
	categories *repository.CategoryRepository
	cache      CategoryCache
	pageSize   int
	logger     zerolog.Logger
}

type ServiceOptions struct {
	PageSize int
}

// NewService wires the catalogue. cache may be nil.
func NewService(questions *repository.QuestionRepository, categories *repository.CategoryRepository, cache CategoryCache, opts ServiceOptions, logger zerolog.Logger) *Service {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Service{
		questions:  questions,
		categories: categories,
		cache:      cache,
		pageSize:   pageSize,
		logger:     logger.With().Str("component", "question_service").Logger(),
	}
}

// Categories returns every category ordered by id.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("category cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}
	return s.RefreshCategories(ctx)
}

// RefreshCategories reloads categories from Postgres and repopulates the cache.
func (s *Service) RefreshCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	categories := make([]Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, toCategory(row))
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, categories); err != nil {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return categories, nil
}

// Category fetches a single category by id.
func (s *Service) Category(ctx context.Context, id int) (Category, error) {
	key, ok := toID(id)
	if !ok {
		return Category{}, ErrCategoryNotFound
	}
	row, err := s.categories.Get(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Category{}, ErrCategoryNotFound
		}
		return Category{}, fmt.Errorf("get category %d: %w", id, err)
	}
	return toCategory(row), nil
}

// ListQuestions returns one page of questions ordered by id, optionally
// restricted to a single category.
func (s *Service) ListQuestions(ctx context.Context, req ListRequest) (QuestionPage, error) {
	categories, err := s.Categories(ctx)
	if err != nil {
		return QuestionPage{}, err
	}

	var (
		rows    []sqlcgen.Question
		current *Category
	)
	if req.CategoryID != 0 {
		category, err := s.Category(ctx, req.CategoryID)
		if err != nil {
			return QuestionPage{}, err
		}
		current = &category
		rows, err = s.questions.ListByCategory(ctx, int32(category.ID))
		if err != nil {
			return QuestionPage{}, fmt.Errorf("list questions for category %d: %w", category.ID, err)
		}
	} else {
		rows, err = s.questions.ListAll(ctx)
		if err != nil {
			return QuestionPage{}, fmt.Errorf("list questions: %w", err)
		}
	}

	all := toQuestions(rows)
	return QuestionPage{
		Questions:       Paginate(all, req.Page, s.pageSize),
		TotalQuestions:  len(all),
		CurrentCategory: current,
		Categories:      categories,
	}, nil
}

// DeleteQuestion removes a question and returns the remaining total.
func (s *Service) DeleteQuestion(ctx context.Context, id int) (int, error) {
	key, ok := toID(id)
	if !ok {
		return 0, ErrQuestionNotFound
	}
	deleted, err := s.questions.Delete(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("delete question %d: %w", id, err)
	}
	if !deleted {
		return 0, ErrQuestionNotFound
	}
	s.logger.Info().Int("question_id", id).Msg("question deleted")
	return s.total(ctx)
}

// CreateQuestion validates and stores a new question. The category id is not
// checked against the categories table.
func (s *Service) CreateQuestion(ctx context.Context, req CreateRequest) (Question, int, error) {
	if strings.TrimSpace(req.Question) == "" {
		return Question{}, 0, &ValidationError{Field: "question", Message: "question is required"}
	}
	if strings.TrimSpace(req.Answer) == "" {
		return Question{}, 0, &ValidationError{Field: "answer", Message: "answer is required"}
	}
	if int(req.Category) < math.MinInt32 || int(req.Category) > math.MaxInt32 {
		return Question{}, 0, &ValidationError{Field: "category", Message: "category is out of range"}
	}
	if int(req.Difficulty) < math.MinInt32 || int(req.Difficulty) > math.MaxInt32 {
		return Question{}, 0, &ValidationError{Field: "difficulty", Message: "difficulty is out of range"}
	}

	row, err := s.questions.Insert(ctx, sqlcgen.InsertQuestionParams{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   int32(req.Category),
		Difficulty: int32(req.Difficulty),
	})
	if err != nil {
		return Question{}, 0, fmt.Errorf("insert question: %w", err)
	}

	total, err := s.total(ctx)
	if err != nil {
		return Question{}, 0, err
	}
	s.logger.Info().Int32("question_id", row.ID).Int32("category", row.Category).Msg("question created")
	return toQuestion(row), total, nil
}

// SearchQuestions returns the questions whose text contains term, case-sensitively.
func (s *Service) SearchQuestions(ctx context.Context, term string) (SearchResult, error) {
	rows, err := s.questions.Search(ctx, term)
	if err != nil {
		return SearchResult{}, fmt.Errorf("search questions: %w", err)
	}
	if len(rows) == 0 {
		return SearchResult{}, ErrNoMatches
	}
	total, err := s.total(ctx)
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{Questions: toQuestions(rows), TotalQuestions: total}, nil
}

// QuestionsInCategory lists a category's questions without existence checks.
func (s *Service) QuestionsInCategory(ctx context.Context, categoryID int) ([]Question, error) {
	key, ok := toID(categoryID)
	if !ok {
		return []Question{}, nil
	}
	rows, err := s.questions.ListByCategory(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("list questions for category %d: %w", categoryID, err)
	}
	return toQuestions(rows), nil
}

// QuestionsByCategory returns a known category and its questions. An unknown
// category and an empty one are reported with distinct errors.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID int) (CategoryQuestions, error) {
	category, err := s.Category(ctx, categoryID)
	if err != nil {
		return CategoryQuestions{}, err
	}
	questions, err := s.QuestionsInCategory(ctx, category.ID)
	if err != nil {
		return CategoryQuestions{}, err
	}
	if len(questions) == 0 {
		return CategoryQuestions{}, ErrCategoryEmpty
	}
	total, err := s.total(ctx)
	if err != nil {
		return CategoryQuestions{}, err
	}
	return CategoryQuestions{Category: category, Questions: questions, TotalQuestions: total}, nil
}

func (s *Service) total(ctx context.Context) (int, error) {
	count, err := s.questions.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return int(count), nil
}

func toID(id int) (int32, bool) {
	if id < 1 || id > math.MaxInt32 {
		return 0, false
	}
	return int32(id), true
}

func toCategory(row sqlcgen.Category) Category {
	return Category{ID: int(row.ID), Type: row.Type}
}

func toQuestion(row sqlcgen.Question) Question {
	return Question{
		ID:         int(row.ID),
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   int(row.Category),
		Difficulty: int(row.Difficulty),
	}
}

func toQuestions(rows []sqlcgen.Question) []Question {
	qs := make([]Question, 0, len(rows))
	for _, row := range rows {
		qs = append(qs, toQuestion(row))
	}
	return qs
}
