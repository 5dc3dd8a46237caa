package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"cinelog/catalog"
	"cinelog/config"
	"cinelog/database"
	"cinelog/handlers"
	"cinelog/middleware"
	"cinelog/models"
	"cinelog/services"
	"cinelog/shared/logger"
	"cinelog/store"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Environment, cfg.Debug)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	if err := database.SeedAdminUser(db, cfg); err != nil {
		slog.Error("failed to seed admin user", "error", err)
		os.Exit(1)
	}

	movieStore := store.NewMovieStore(db)
	userStore := store.NewUserStore(db)
	listStore := store.NewListStore(db)
	reviewStore := store.NewReviewStore(db)

	tmdb := catalog.NewClient(cfg.CatalogBaseURL, cfg.CatalogAPIKey)
	sessions := services.NewSessionManager(cfg)
	movieSvc := services.NewMovieService(movieStore, tmdb, cfg.CacheTTL)
	authSvc := services.NewAuthService(userStore)
	listSvc := services.NewListService(listStore)
	reviewSvc := services.NewReviewService(reviewStore, movieSvc)
	adminSvc := services.NewAdminService(userStore, reviewStore)

	auth := middleware.NewAuth(sessions, authSvc)

	statusHandler := handlers.NewStatusHandler(db)
	authHandler := handlers.NewAuthHandler(authSvc, sessions)
	movieHandler := handlers.NewMovieHandler(movieSvc)
	listHandler := handlers.NewListHandler(listSvc)
	reviewHandler := handlers.NewReviewHandler(reviewSvc)
	adminHandler := handlers.NewAdminHandler(adminSvc, reviewSvc)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", statusHandler.Status)

		r.Route("/users", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAuth)
				r.Get("/profile", authHandler.Profile)
				r.Put("/profile", authHandler.UpdateProfile)
			})
		})

		r.Route("/movies", func(r chi.Router) {
			r.Get("/", movieHandler.Discover)
			r.Get("/trending", movieHandler.Trending)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAuth)
				r.Get("/favorites", listHandler.Get(models.ListFavorites))
				r.Post("/favorites", listHandler.Add(models.ListFavorites))
				r.Delete("/favorites/{id}", listHandler.Remove(models.ListFavorites))
				r.Get("/watchlist", listHandler.Get(models.ListWatchlist))
				r.Post("/watchlist", listHandler.Add(models.ListWatchlist))
				r.Delete("/watchlist/{id}", listHandler.Remove(models.ListWatchlist))
			})

			r.Get("/{id}", movieHandler.Get)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/movie/{movieId}", reviewHandler.ListForMovie)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAuth)
				r.Get("/my-reviews", reviewHandler.ListMine)
				r.Post("/{movieId}", reviewHandler.Create)
				r.Put("/{id}", reviewHandler.Update)
				r.Delete("/{id}", reviewHandler.Delete)
				r.Post("/{id}/like", reviewHandler.ToggleLike)
				r.Post("/{id}/report", reviewHandler.Report)
			})

			r.Get("/{id}", reviewHandler.Get)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireAuth)
			r.Use(auth.AdminOnly)
			r.Get("/users", adminHandler.ListUsers)
			r.Put("/users/{id}/ban", adminHandler.ToggleBan)
			r.Get("/reviews", adminHandler.ListReviews)
			r.Get("/reviews/reported", adminHandler.ListReported)
			r.Delete("/reviews/{id}", adminHandler.DeleteReview)
			r.Get("/stats", adminHandler.Stats)
		})
	})

	addr := ":" + cfg.ServerPort
	slog.Info("cinelog starting", "addr", addr, "env", cfg.Environment)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
