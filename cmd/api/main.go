package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sitelab/sitelab-api/internal/config"
	"github.com/sitelab/sitelab-api/internal/infra/captcha"
	"github.com/sitelab/sitelab-api/internal/infra/database"
	"github.com/sitelab/sitelab-api/internal/infra/http/handlers"
	"github.com/sitelab/sitelab-api/internal/infra/http/middleware"
	"github.com/sitelab/sitelab-api/internal/infra/mail"
	"github.com/sitelab/sitelab-api/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	demoRepo := database.NewDemoRequestRepository(db)
	portfolioRepo := database.NewPortfolioRepository(db)
	adminRepo := database.NewAdminUserRepository(db)

	// 2. Collaborators
	captchaClient := captcha.NewClient(cfg.HCaptchaSecret, cfg.IsDevelopment())
	mailSender := mail.NewEmailSender(
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass,
		cfg.EmailFrom, cfg.AdminEmail, cfg.AppURL,
	)

	// 3. UseCases
	submitLeadUC := usecase.NewSubmitLeadUseCase(leadRepo, captchaClient, mailSender)
	submitDemoUC := usecase.NewSubmitDemoRequestUseCase(demoRepo, captchaClient, mailSender)
	submitContactUC := usecase.NewSubmitContactUseCase(captchaClient, mailSender)
	statsUC := usecase.NewGetStatsUseCase(leadRepo, demoRepo)

	// 4. Handlers
	leadHandler := handlers.NewLeadHandler(submitLeadUC)
	demoHandler := handlers.NewDemoRequestHandler(submitDemoUC)
	contactHandler := handlers.NewContactHandler(submitContactUC)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioRepo)
	adminLeadHandler := handlers.NewAdminLeadHandler(leadRepo)
	adminDemoHandler := handlers.NewAdminDemoRequestHandler(demoRepo)
	statsHandler := handlers.NewStatsHandler(statsUC)
	authHandler := handlers.NewAuthHandler(adminRepo, cfg.JWTSecret)
	healthHandler := handlers.NewHealthHandler(db, cfg.SMTPHost != "", cfg.HCaptchaSecret != "")

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Public intake
		r.Post("/leads", leadHandler.Handle)
		r.Post("/demo-requests", demoHandler.Handle)
		r.Post("/contact", contactHandler.Handle)
		r.Get("/portfolio", portfolioHandler.Handle)

		// Admin surface
		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", authHandler.HandleLogin)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin(cfg.JWTSecret))

				r.Get("/leads", adminLeadHandler.HandleList)
				r.Get("/leads/{id}", adminLeadHandler.HandleGet)
				r.Patch("/leads/{id}", adminLeadHandler.HandlePatch)
				r.Delete("/leads/{id}", adminLeadHandler.HandleDelete)

				r.Get("/demo-requests", adminDemoHandler.HandleList)
				r.Get("/demo-requests/{id}", adminDemoHandler.HandleGet)
				r.Patch("/demo-requests/{id}", adminDemoHandler.HandlePatch)
				r.Delete("/demo-requests/{id}", adminDemoHandler.HandleDelete)

				r.Get("/stats", statsHandler.Handle)
			})
		})
	})

	addr := ":" + cfg.Port
	log.Printf("🔥 SiteLab API running on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
