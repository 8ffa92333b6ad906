package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bangasho83/hummane/internal/domain/audit"
	"github.com/bangasho83/hummane/internal/domain/auth"
	"github.com/bangasho83/hummane/internal/domain/company"
	"github.com/bangasho83/hummane/internal/domain/directory"
	"github.com/bangasho83/hummane/internal/domain/feedback"
	"github.com/bangasho83/hummane/internal/domain/leave"
	"github.com/bangasho83/hummane/internal/domain/notifications"
	"github.com/bangasho83/hummane/internal/domain/recruiting"
	"github.com/bangasho83/hummane/internal/domain/reports"
	"github.com/bangasho83/hummane/internal/platform/config"
	"github.com/bangasho83/hummane/internal/platform/db"
	"github.com/bangasho83/hummane/internal/platform/email"
	"github.com/bangasho83/hummane/internal/platform/metrics"
	"github.com/bangasho83/hummane/internal/transport/http/api"
	audithandler "github.com/bangasho83/hummane/internal/transport/http/handlers/audit"
	authhandler "github.com/bangasho83/hummane/internal/transport/http/handlers/auth"
	companyhandler "github.com/bangasho83/hummane/internal/transport/http/handlers/company"
	directoryhandler "github.com/bangasho83/hummane/internal/transport/http/handlers/directory"
	feedbackhandler "github.com/bangasho83/hummane/internal/transport/http/handlers/feedback"
	leavehandler "github.com/bangasho83/hummane/internal/transport/http/handlers/leave"
	notificationshandler "github.com/bangasho83/hummane/internal/transport/http/handlers/notifications"
	recruitinghandler "github.com/bangasho83/hummane/internal/transport/http/handlers/recruiting"
	reportshandler "github.com/bangasho83/hummane/internal/transport/http/handlers/reports"
	"github.com/bangasho83/hummane/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if err := db.Seed(ctx, pool, cfg); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	router := buildRouter(cfg, pool)

	log.Printf("hummane server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func buildRouter(cfg config.Config, pool *pgxpool.Pool) http.Handler {
	collector := metrics.New()

	authSvc := auth.NewService(auth.NewStore(pool), cfg.JWTSecret, cfg.TokenTTL)
	companySvc := company.NewService(company.NewStore(pool), authSvc)
	directorySvc := directory.NewService(directory.NewStore(pool))
	leaveSvc := leave.NewService(leave.NewStore(pool))
	recruitingSvc := recruiting.NewService(recruiting.NewStore(pool), directorySvc)
	feedbackSvc := feedback.NewService(feedback.NewStore(pool))
	reportsSvc := reports.NewService(reports.NewStore(pool), directorySvc)
	auditSvc := audit.New(pool)

	hub := notifications.NewHub()
	notifySvc := notifications.New(notifications.NewStore(pool), hub, email.New(cfg))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Metrics(collector))
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(authSvc, cfg.AllowSelfSignup).RegisterRoutes(r)
		companyhandler.NewHandler(companySvc, authSvc).RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireCompany)
			directoryhandler.NewHandler(directorySvc, auditSvc, notifySvc).RegisterRoutes(r)
			leavehandler.NewHandler(leaveSvc, auditSvc).RegisterRoutes(r)
			recruitinghandler.NewHandler(recruitingSvc, auditSvc, notifySvc).RegisterRoutes(r)
			feedbackhandler.NewHandler(feedbackSvc, auditSvc).RegisterRoutes(r)
			reportshandler.NewHandler(reportsSvc).RegisterRoutes(r)
			notificationshandler.NewHandler(notifySvc).RegisterRoutes(r)
			audithandler.NewHandler(auditSvc).RegisterRoutes(r)
		})
	})

	return router
}
