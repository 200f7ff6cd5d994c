package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/social-spark/internal/api"
	apiMiddleware "github.com/phrazzld/social-spark/internal/api/middleware"
	"github.com/phrazzld/social-spark/internal/web"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	actionHandler := api.NewActionHandler(app.actions, app.logger)
	postHandler := api.NewPostHandler(app.posts, app.logger)
	optionsHandler := api.NewOptionsHandler(app.config.Generation.DefaultLanguage)
	generationsHandler := api.NewGenerationsHandler(app.generationLogs, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/options", optionsHandler.GetOptions)
		r.Get("/generations", generationsHandler.ListGenerations)

		r.Route("/actions", func(r chi.Router) {
			r.Post("/generate-text", actionHandler.GenerateText)
			r.Post("/generate-image", actionHandler.GenerateImage)
			r.Post("/generate-dual-image", actionHandler.GenerateDualImage)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Use(apiMiddleware.RequireSession)
			r.Get("/", postHandler.ListPosts)
			r.Post("/", postHandler.CreatePost)
			r.Get("/{id}", postHandler.GetPost)
			r.Delete("/{id}", postHandler.DeletePost)
			r.Post("/{id}/image", postHandler.GenerateImage)
			r.Post("/{id}/text", postHandler.RegenerateText)
			r.Get("/{id}/images/{index}", postHandler.DownloadImage)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	r.Handle("/*", web.Handler())

	return r
}
