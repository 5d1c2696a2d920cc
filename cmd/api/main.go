// cmd/api/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/teamdock/teamdock/internal/auth"
	"github.com/teamdock/teamdock/internal/config"
	"github.com/teamdock/teamdock/internal/email"
	"github.com/teamdock/teamdock/internal/handler"
	"github.com/teamdock/teamdock/internal/middleware"
	"github.com/teamdock/teamdock/internal/repository"
	"github.com/teamdock/teamdock/internal/service"
	"github.com/teamdock/teamdock/internal/storage"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-redis/redis/v8"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	templateRepo := repository.NewEmailTemplateRepository(db)
	usageStore := repository.NewUsageStore(db)
	deletionStore := repository.NewDeletionStore(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize mailer
	var mailer email.Mailer = email.NoopMailer{}
	if cfg.Sendgrid.APIKey != "" {
		mailer = email.NewSendgridMailer(cfg.Sendgrid.APIKey, cfg.Sendgrid.From, templateRepo)
	}

	// Initialize object storage
	objects, err := setupStorage(cfg)
	if err != nil {
		return fmt.Errorf("setting up object storage: %w", err)
	}

	// Initialize settings cache
	var cache *redis.Client
	if cfg.Redis.CacheMode {
		cache = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		defer cache.Close()
	}

	// Initialize services
	settingsService := service.NewSettingsService(settingsRepo, cache, cfg.Redis.CacheMode)
	deletionService := service.NewDeletionService(deletionStore, companyRepo, objects)
	usageService := service.NewUsageService(userRepo, companyRepo, usageStore, settingsService)
	userService := service.NewUserService(userRepo, companyRepo, passwordHasher, tokenManager, mailer, cfg.BaseURL)
	teamService := service.NewTeamService(teamRepo, settingsService, usageStore)
	invitationService := service.NewInvitationService(invitationRepo, companyRepo, userRepo, settingsService, mailer, cfg.BaseURL)
	documentService := service.NewDocumentService(documentRepo, usageStore, settingsService, objects)
	templateService := service.NewEmailTemplateService(templateRepo)

	// Initialize handlers and gates
	gate := middleware.NewGatekeeper(tokenManager, userRepo, companyRepo, teamRepo, invitationRepo)
	userHandler := handler.NewUserHandler(userService, usageService, deletionService)
	superAdminHandler := handler.NewSuperAdminHandler(deletionService, usageService, settingsService, templateService, companyRepo)
	teamHandler := handler.NewTeamHandler(teamService)
	invitationHandler := handler.NewInvitationHandler(invitationService)
	documentHandler := handler.NewDocumentHandler(documentService)

	// Create router
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Public routes
	r.Route("/auth", func(r chi.Router) {
		r.Use(chimw.AllowContentType("application/json"))
		r.Post("/register", userHandler.Register)
		r.Post("/login", userHandler.Login)
		r.Post("/verify-account", userHandler.VerifyAccount)
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(gate.VerifyToken)

		r.Route("/me", func(r chi.Router) {
			r.Get("/profile", userHandler.Profile)
			r.Get("/usage", userHandler.MyUsage)
		})

		r.With(gate.UserExists).Post("/user/delete-profile", userHandler.DeleteProfile)

		r.Route("/teams", func(r chi.Router) {
			r.Use(gate.IsAccountVerified)
			r.With(gate.AdminAccess).Post("/", teamHandler.Create)
			r.With(gate.IsCompanyUser).Get("/", teamHandler.List)
			r.With(gate.IsCompanyUser).Get("/active", teamHandler.ListActive)
			r.With(gate.TeamExists, gate.IsMemberOfTeamOrSharedMember).Get("/{teamId}", teamHandler.Get)
			r.With(gate.TeamExists, gate.IsMemberOfTeam, gate.AdminAccess).
				Patch("/{teamId}/status", teamHandler.SetStatus)
			r.With(gate.TeamExists, gate.IsMemberOfTeam, gate.IsValidFileExtension).
				Post("/{teamId}/documents", documentHandler.Upload)
			r.With(gate.TeamExists, gate.IsMemberOfTeamOrSharedMember).
				Get("/{teamId}/documents", documentHandler.ListByTeam)
		})

		r.Route("/invitations", func(r chi.Router) {
			r.Use(gate.IsAccountVerified)
			r.With(gate.AdminOrSuperAdminAccess, gate.IsValidRole, gate.CompanyExists).Post("/", invitationHandler.Invite)
			r.Get("/", invitationHandler.ListByCompany)
			r.Patch("/{invitationId}", invitationHandler.Respond)
			r.With(gate.IsSenderOwner).Delete("/{invitationId}", invitationHandler.Revoke)
		})

		r.Route("/super-admin", func(r chi.Router) {
			r.Use(gate.SuperAdminAccess)
			r.Delete("/companies/{companyId}", superAdminHandler.DeleteCompany)
			r.Get("/companies/{companyId}/usage", superAdminHandler.CompanyUsage)
			r.With(gate.UserExists).Get("/users/{userId}/usage", superAdminHandler.UserUsage)
			r.With(gate.UserExists).Get("/users/{userId}/role", superAdminHandler.UserRole)
			r.Get("/environment", superAdminHandler.GetEnvironment)
			r.Patch("/environment", superAdminHandler.PatchEnvironment)
			r.Get("/email/templates", superAdminHandler.ListEmailTemplates)
			r.Patch("/email/templates/{templateId}", superAdminHandler.UpdateEmailTemplate)
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Name,
	)

	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(mysql.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func setupStorage(cfg *config.Config) (storage.ObjectStorage, error) {
	if !cfg.Storage.Enabled {
		slog.Info("Cloud storage disabled, remote objects are skipped")
		return storage.DisabledStorage{}, nil
	}

	store, err := storage.NewMinioStorage(storage.MinioOptions{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
