package apihandlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getzep/csmentor/pkg/intents"
	"github.com/getzep/csmentor/pkg/models"
	"github.com/getzep/csmentor/pkg/server/handlertools"
)

const maxSuggestionLimit = 50

// SuggestHandler godoc
//
//	@Summary		Suggest known questions
//	@Description	Fuzzy matches q against every corpus pattern and returns the best matches.
//	@Tags			intents
//	@Produce		json
//	@Param			q		query		string	true	"Partial question"
//	@Param			limit	query		int		false	"Maximum number of suggestions"
//	@Success		200		{array}		intents.Suggestion
//	@Failure		400		{object}	handlertools.APIError	"Bad Request"
//	@Failure		503		{object}	handlertools.APIError	"Service Unavailable"
//	@Router			/intents/search [get]
func SuggestHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !appState.Ready() {
			handlertools.RenderError(w, models.ErrCorpusUnavailable, http.StatusServiceUnavailable)
			return
		}

		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query == "" {
			handlertools.RenderError(w, errors.New("query parameter q is required"), http.StatusBadRequest)
			return
		}

		limit, err := handlertools.IntFromQuery(r, "limit")
		if err != nil || limit < 0 || limit > maxSuggestionLimit {
			handlertools.RenderError(
				w,
				fmt.Errorf("limit must be between 0 and %d", maxSuggestionLimit),
				http.StatusBadRequest,
			)
			return
		}

		suggestions := intents.Suggest(query, appState.Corpus, limit)
		if err := handlertools.EncodeJSON(w, suggestions); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}
