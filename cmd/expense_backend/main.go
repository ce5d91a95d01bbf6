package main

import (
	"context"
	"database/sql"
	"errors"
	"html/template"
	"log/slog"
	"os"

	"github.com/expensemgmt/expense_management_app/internal/adapters/database/pgsql"
	"github.com/expensemgmt/expense_management_app/internal/adapters/llm/openai"
	"github.com/expensemgmt/expense_management_app/internal/core/ports/llm"
	portsrepo "github.com/expensemgmt/expense_management_app/internal/core/ports/repositories"
	"github.com/expensemgmt/expense_management_app/internal/core/services"
	"github.com/expensemgmt/expense_management_app/internal/handlers"
	"github.com/expensemgmt/expense_management_app/internal/middleware"
	"github.com/expensemgmt/expense_management_app/pkg/config"
	"github.com/expensemgmt/expense_management_app/pkg/database"
	"github.com/expensemgmt/expense_management_app/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// fallbackDSN keeps the pool constructible when no database is configured;
// every call then fails at the gateway and the handlers serve demo data.
const fallbackDSN = "postgres://localhost:5432/expenses"

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	databaseURL := cfg.DatabaseURL
	if databaseURL == "" {
		logger.Warn("DATABASE_URL not set, all endpoints will degrade to demo data")
		databaseURL = fallbackDSN
	}

	// A missing database must not abort startup: the whole surface degrades
	// to demo data instead. Only an explicit ENABLE_DB_CHECK makes a dead
	// store fatal.
	dbPool, err := database.NewPgxPool(context.Background(), databaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool initialised.")

	runMigrations(logger, databaseURL)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.SetHTMLTemplate(template.Must(template.New("").ParseFS(web.TemplatesFS, "templates/*.html")))

	repos := &portsrepo.RepositoryProvider{
		ExpenseRepo:   pgsql.NewPgxExpenseRepository(dbPool),
		ReferenceRepo: pgsql.NewPgxReferenceRepository(dbPool),
	}

	var completer llm.Completer
	llmCfg := openai.Config{
		Endpoint:   cfg.OpenAIEndpoint,
		Deployment: cfg.OpenAIDeployment,
		APIKey:     cfg.OpenAIAPIKey,
		APIVersion: cfg.OpenAIAPIVersion,
		Timeout:    cfg.OpenAITimeout,
	}
	if llmCfg.IsConfigured() {
		completer = openai.NewClient(llmCfg, logger)
		logger.Info("Hosted chat model configured", slog.String("deployment", cfg.OpenAIDeployment))
	} else {
		logger.Warn("Hosted chat model not configured. Chat will return placeholder responses.")
	}

	svcContainer := services.NewContainer(repos, completer, logger)
	handlers.RegisterRoutes(r, cfg, svcContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies the SQL migrations best-effort: an unreachable
// database is logged and skipped so the demo-data path still works.
func runMigrations(logger *slog.Logger, databaseURL string) {
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		logger.Warn("Skipping migrations: failed to open database connection", slog.String("error", err.Error()))
		return
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	if err := migrationDB.Ping(); err != nil {
		logger.Warn("Skipping migrations: database unreachable", slog.String("error", err.Error()))
		return
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Warn("Skipping migrations: could not create postgres driver instance", slog.String("error", err.Error()))
		return
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Warn("Skipping migrations: could not create migrate instance", slog.String("error", err.Error()))
		return
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply.")
	case err != nil:
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
	default:
		logger.Info("Database migrations applied successfully.")
	}
}
