package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	_ "lionreport/docs" // swagger docs
	"lionreport/internal/auth"
	"lionreport/internal/cache"
	"lionreport/internal/config"
	"lionreport/internal/db"
	"lionreport/internal/handler"
	"lionreport/internal/logger"
	"lionreport/internal/model"
	"lionreport/internal/repository"
	"lionreport/internal/router"
	"lionreport/internal/service"
)

// @title L.I.O.N. Report API
// @version 1.0
// @description Internal weekly reporting tool: daily work logs, L.I.O.N. entries, and PDF report delivery by email.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	gormDB, err := db.NewMySQL(cfg.MySQL.DSN)
	if err != nil {
		slog.Error("database init failed", "err", err)
		os.Exit(1)
	}

	if err := gormDB.AutoMigrate(
		&model.Company{},
		&model.Team{},
		&model.User{},
		&model.DailyLog{},
		&model.LIONEntry{},
		&model.Report{},
	); err != nil {
		slog.Error("auto-migrate failed", "err", err)
		os.Exit(1)
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	logRepo := repository.NewDailyLogRepository(gormDB)
	entryRepo := repository.NewLIONEntryRepository(gormDB)
	reportRepo := repository.NewReportRepository(gormDB)
	teamRepo := repository.NewTeamRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWT.Secret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	logService := service.NewLogService(logRepo)
	entryService := service.NewEntryService(entryRepo)

	composer := service.NewComposer(logRepo, service.StaticSummarizer{}, cacheClient)
	renderer := service.NewPDFRenderer()
	mailer := service.NewSMTPMailer(cfg.SMTP)
	dispatcher := service.NewDispatcher(mailer, reportRepo, userRepo, teamRepo, composer, renderer, service.DispatcherConfig{
		SendTimeout: time.Duration(cfg.SMTP.TimeoutSeconds) * time.Second,
		MaxRetries:  cfg.SMTP.MaxRetries,
		RetryDelay:  500 * time.Millisecond,
	})
	reportService := service.NewReportService(composer, renderer, dispatcher, userRepo, reportRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	logHandler := handler.NewLogHandler(logService)
	entryHandler := handler.NewEntryHandler(entryService)
	reportHandler := handler.NewReportHandler(reportService, dispatcher)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, authHandler, logHandler, entryHandler, reportHandler)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := e.Start(cfg.Addr()); err != nil && err != http.ErrServerClosed {
		slog.Error("server failed", "err", err)
		os.Exit(1)
	}
}
