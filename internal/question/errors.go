package question

import "errors"

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryEmpty    = errors.New("no questions in category")
	ErrNoMatches        = errors.New("no questions match the search term")
)

// ValidationError represents a rejected field in a client payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
