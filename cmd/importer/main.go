package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gokatarajesh/trivia-api/internal/app"
	"github.com/gokatarajesh/trivia-api/internal/config"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
	"github.com/gokatarajesh/trivia-api/internal/question"
	"github.com/gokatarajesh/trivia-api/internal/question/external"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup runs before exit.
func run() int {
	var (
		amount     = flag.Int("amount", 10, "Number of questions to fetch (OpenTDB caps this at 50)")
		difficulty = flag.String("difficulty", "", "Optional difficulty filter: easy, medium or hard")
	)
	flag.Parse()

	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load("configs/.env"); err != nil {
			log.Warn().Err(err).Msg("could not load .env file")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load config")
		return 1
	}

	pool, err := app.NewPool(ctx, cfg.Postgres)
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to postgres")
		return 1
	}
	defer pool.Close()

	// Questions are never cached, so imported rows are visible to the API at once.
	catalogue := app.NewCatalogue(sqlcgen.New(pool), nil, cfg.Trivia, log.Logger)
	client := external.NewOpenTDBClient(cfg.OpenTDB.BaseURL, &http.Client{Timeout: cfg.OpenTDB.Timeout})

	result, err := question.NewImporter(catalogue, client, log.Logger).Import(ctx, *amount, *difficulty)
	if err != nil {
		log.Error().Err(err).Int("imported", result.Imported).Msg("import failed")
		return 1
	}

	log.Info().
		Int("imported", result.Imported).
		Int("skipped", result.Skipped).
		Msg("import complete")
	return 0
}
