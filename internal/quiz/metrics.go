package quiz

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeServed     = "served"
	outcomeExhausted  = "exhausted"
	outcomeNoCategory = "no_categories"
)

var quizTurns = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "trivia",
	Subsystem: "quiz",
	Name:      "turns_total",
	Help:      "Quiz turns by outcome.",
}, []string{"outcome"})
