package apihandlers

import (
	"fmt"
	"net/http"

	"github.com/getzep/csmentor/config"
	"github.com/getzep/csmentor/pkg/models"
	"github.com/getzep/csmentor/pkg/server/handlertools"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Intents  int    `json:"intents"`
	Patterns int    `json:"patterns"`
	Model    string `json:"model,omitempty"`
}

type RootResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthHandler godoc
//
//	@Summary		Check API health status
//	@Description	Healthy only when the intent corpus loaded at startup and is non-empty.
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Failure		503	{object}	handlertools.APIError	"Service Unhealthy"
//	@Router			/health [get]
func HealthHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !appState.Ready() {
			cause := appState.CorpusErr
			if cause == nil {
				cause = models.ErrCorpusUnavailable
			}
			handlertools.RenderError(
				w,
				fmt.Errorf("service unhealthy: %w", cause),
				http.StatusServiceUnavailable,
			)
			return
		}

		res := HealthResponse{
			Status:   "healthy",
			Intents:  appState.Corpus.Len(),
			Patterns: appState.Corpus.PatternCount(),
			Model:    appState.ModelName,
		}
		if err := handlertools.EncodeJSON(w, res); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// RootHandler describes the API. It has no side effects.
func RootHandler() http.HandlerFunc {
	res := RootResponse{
		Message: "Welcome to the CS Mentor API",
		Version: config.Version,
		Endpoints: map[string]string{
			"POST /ask":           "Ask a Computer Science related question",
			"GET /health":         "Check API health status",
			"GET /intents/search": "Suggest known questions matching a partial query",
		},
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if err := handlertools.EncodeJSON(w, res); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}
