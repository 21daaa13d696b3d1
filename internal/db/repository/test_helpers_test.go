package repository

import sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"

func sampleQuestion(id, category int32) sqlcgen.Question {
	return sqlcgen.Question{
		ID:         id,
		Question:   "What is the heaviest organ in the human body?",
		Answer:     "The Liver",
		Category:   category,
		Difficulty: 4,
	}
}
