package question

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/question/external"
)

type opentdbProvider interface {
	Fetch(ctx context.Context, amount int, difficulty, qType string) ([]external.OpenTDBQuestion, error)
}

// OpenTDB difficulties mapped onto the 1..5 rating used by the stock questions.
var importDifficulty = map[string]int{
	"easy":   1,
	"medium": 3,
	"hard":   5,
}

// ImportResult summarises an import run.
type ImportResult struct {
	Imported int
	Skipped  int
}

// Importer pulls questions from Open Trivia DB into the local catalogue.
type Importer struct {
	svc     *Service
	opentdb opentdbProvider
	logger  zerolog.Logger
}

func NewImporter(svc *Service, opentdb opentdbProvider, logger zerolog.Logger) *Importer {
	return &Importer{
		svc:     svc,
		opentdb: opentdb,
		logger:  logger.With().Str("component", "opentdb_importer").Logger(),
	}
}

// Import fetches amount questions and stores those whose OpenTDB category
// starts with the name of an existing category. Others are skipped.
func (i *Importer) Import(ctx context.Context, amount int, difficulty string) (ImportResult, error) {
	if amount <= 0 {
		return ImportResult{}, fmt.Errorf("amount must be positive, got %d", amount)
	}

	categories, err := i.svc.Categories(ctx)
	if err != nil {
		return ImportResult{}, err
	}

	fetched, err := i.opentdb.Fetch(ctx, amount, difficulty, "")
	if err != nil {
		return ImportResult{}, fmt.Errorf("fetch opentdb questions: %w", err)
	}

	var result ImportResult
	for _, q := range fetched {
		category, ok := matchCategory(html.UnescapeString(q.Category), categories)
		if !ok {
			i.logger.Debug().Str("opentdb_category", q.Category).Msg("no matching category, skipping")
			result.Skipped++
			continue
		}

		rating, ok := importDifficulty[strings.ToLower(q.Difficulty)]
		if !ok {
			rating = importDifficulty["medium"]
		}

		_, _, err := i.svc.CreateQuestion(ctx, CreateRequest{
			Question:   html.UnescapeString(q.Question),
			Answer:     html.UnescapeString(q.CorrectAnswer),
			Category:   FlexibleInt(category.ID),
			Difficulty: FlexibleInt(rating),
		})
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				result.Skipped++
				continue
			}
			return result, err
		}
		result.Imported++
	}

	i.logger.Info().
		Int("imported", result.Imported).
		Int("skipped", result.Skipped).
		Msg("opentdb import finished")
	return result, nil
}

// matchCategory maps e.g. "Science: Computers" or "Science & Nature" to
// "Science" by prefix, then falls back to a whole-word match so "Modern Art"
// maps to "Art" while "Cartoon" does not.
func matchCategory(name string, categories []Category) (Category, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range categories {
		if c.Type == "" {
			continue
		}
		if strings.HasPrefix(name, strings.ToLower(c.Type)) {
			return c, true
		}
	}

	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, c := range categories {
		if c.Type == "" {
			continue
		}
		for _, w := range words {
			if w == strings.ToLower(c.Type) {
				return c, true
			}
		}
	}
	return Category{}, false
}
