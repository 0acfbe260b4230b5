package server

import (
	"fmt"
	"net/http"
	"time"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"

	"github.com/getzep/csmentor/internal"
	"github.com/getzep/csmentor/pkg/auth"
	"github.com/getzep/csmentor/pkg/models"
	"github.com/getzep/csmentor/pkg/server/apihandlers"
)

var log = internal.GetLogger()

const (
	ReadHeaderTimeout = 5 * time.Second
	RouterName        = "csmentor"
)

// Create creates a new HTTP server with the given app state
func Create(appState *models.AppState) *http.Server {
	router := setupRouter(appState)
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", appState.Config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
}

// @title			CS Mentor API
// @description	API for answering Computer Science related questions
// @version		1.0.0
// @BasePath		/
// @schemes		http https
func setupRouter(appState *models.AppState) *chi.Mux {
	router := chi.NewRouter()
	router.Use(httpLogger.Logger("router", log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.CleanPath)
	router.Use(CORS(appState.Config.Server.AllowedOrigins))
	router.Use(SendVersion)
	router.Use(middleware.Heartbeat("/healthz"))
	router.Use(otelchi.Middleware(
		RouterName,
		otelchi.WithChiRoutes(router),
		otelchi.WithRequestMethodInSpanName(true),
	))

	router.Get("/", apihandlers.RootHandler())
	router.Get("/health", apihandlers.HealthHandler(appState))
	router.Get("/ask", apihandlers.AskNotAllowedHandler())

	router.Group(func(r chi.Router) {
		if appState.Config.Auth.Required {
			verifier, err := auth.JWTVerifier(appState.Config)
			if err != nil {
				log.Fatal(err)
			}
			log.Info("JWT authentication required")
			r.Use(verifier)
			r.Use(auth.Authenticator)
		}

		r.Post("/ask", apihandlers.AskHandler(appState))
		r.Get("/intents/search", apihandlers.SuggestHandler(appState))
	})

	return router
}
