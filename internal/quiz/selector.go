package quiz

import (
	"errors"
	"math/rand"

	"github.com/gokatarajesh/trivia-api/internal/question"
)

var (
	// ErrQuizExhausted means every question of the resolved category was already served.
	ErrQuizExhausted = errors.New("no questions left in this category")
	// ErrNoCategories means there is nothing to draw a random category from.
	ErrNoCategories = errors.New("no categories available")
)

// Selector draws quiz questions and categories. intn must return a value in [0, n).
type Selector struct {
	intn func(n int) int
}

// NewSelector returns a selector backed by intn, or by math/rand when intn is nil.
func NewSelector(intn func(n int) int) *Selector {
	if intn == nil {
		intn = rand.Intn
	}
	return &Selector{intn: intn}
}

// Pick returns a question whose id is not in previous, chosen uniformly among
// the unseen ones.
func (s *Selector) Pick(questions []question.Question, previous []int) (question.Question, error) {
	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	remaining := make([]question.Question, 0, len(questions))
	for _, q := range questions {
		if _, ok := seen[q.ID]; !ok {
			remaining = append(remaining, q)
		}
	}
	if len(remaining) == 0 {
		return question.Question{}, ErrQuizExhausted
	}
	return remaining[s.intn(len(remaining))], nil
}

// PickCategory returns the category with id requested, or a uniformly random
// one when no category has that id (0 means any category).
func (s *Selector) PickCategory(categories []question.Category, requested int) (question.Category, error) {
	if len(categories) == 0 {
		return question.Category{}, ErrNoCategories
	}
	if requested != 0 {
		for _, c := range categories {
			if c.ID == requested {
				return c, nil
			}
		}
	}
	return categories[s.intn(len(categories))], nil
}
