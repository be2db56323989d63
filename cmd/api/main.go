package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/mvirtane/fitplan/internal/envstruct"
	"github.com/mvirtane/fitplan/internal/errors"
	"github.com/mvirtane/fitplan/internal/logging"
	"github.com/mvirtane/fitplan/internal/planner"
	"github.com/mvirtane/fitplan/internal/sqlite"
	"github.com/rs/cors"
)

type application struct {
	logger  *slog.Logger
	planner *planner.Service
	cors    *cors.Cors
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"FITPLAN_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite catalog database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"FITPLAN_SQLITE_URL" envDefault:"./fitplan.sqlite3"`
	// CORSOrigins lists the origins allowed to call the API.
	CORSOrigins []string `env:"FITPLAN_CORS_ORIGINS" envDefault:"*"`
	// ChallengeRangePolicy decides what happens when a batch challenge request
	// exceeds the day cap: "truncate" or "reject".
	ChallengeRangePolicy string `env:"FITPLAN_CHALLENGE_RANGE_POLICY" envDefault:"truncate"`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	rangePolicy := planner.RangeTruncate
	switch cfg.ChallengeRangePolicy {
	case "truncate":
	case "reject":
		rangePolicy = planner.RangeReject
	default:
		return errors.New("invalid FITPLAN_CHALLENGE_RANGE_POLICY, want truncate or reject")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "close db", errors.SlogError(closeErr))
		}
	}()

	plannerService, err := planner.NewService(ctx, db, logger, planner.WithRangePolicy(rangePolicy))
	if err != nil {
		return errors.Wrap(err, "new planner service")
	}

	app := application{
		logger:  logger,
		planner: plannerService,
		cors: cors.New(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
		}),
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes()); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := godotenv.Load(); err == nil {
		logger.LogAttrs(ctx, slog.LevelDebug, "loaded .env file")
	}
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
