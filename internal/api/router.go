package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mkerins/ai-friend/internal/api/handler"
	customMiddleware "github.com/mkerins/ai-friend/internal/api/middleware"
	"github.com/mkerins/ai-friend/internal/config"
	"github.com/mkerins/ai-friend/internal/domain"
	"github.com/mkerins/ai-friend/internal/export"
	"github.com/mkerins/ai-friend/internal/llm"
	"github.com/mkerins/ai-friend/internal/llm/groq"
	"github.com/mkerins/ai-friend/internal/service"
	"github.com/mkerins/ai-friend/internal/xlsxlog"
	"github.com/rs/zerolog/log"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, store domain.SessionStore) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize completion router with the Groq provider
	llmRouter := llm.NewRouter("groq")
	if cfg.LLM.Groq.APIKey != "" {
		llmRouter.RegisterProvider(groq.NewProvider(cfg.LLM.Groq.APIKey, cfg.LLM.Groq.Model, cfg.LLM.Groq.BaseURL))
	} else {
		log.Warn().Msg("GROQ_API_KEY is empty, completion requests will be rejected")
	}

	// Initialize conversation log and exporter
	logger := xlsxlog.NewLogger(cfg.Log.Path)
	exporter := export.NewPDFExporter()

	// Initialize services
	chatService := service.NewChatService(store, llmRouter, logger, exporter, cfg.LLM.Groq.APIKey)

	// Initialize handlers
	chatHandler := handler.NewChatHandler(chatService)

	// Session middleware
	sessionMiddleware := customMiddleware.NewSessionMiddleware(store)

	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware.Resolve)

		r.Get("/", handler.Page)

		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/health", handler.HealthCheck)

			r.Post("/name", chatHandler.SetName)
			r.Post("/ask", chatHandler.Ask)
			r.Get("/history", chatHandler.History)
			r.Get("/export", chatHandler.Export)
		})
	})

	return r
}
