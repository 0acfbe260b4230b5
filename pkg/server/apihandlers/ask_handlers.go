package apihandlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/getzep/csmentor/pkg/models"
	"github.com/getzep/csmentor/pkg/server/handlertools"
)

var validate = validator.New()

const (
	successMessage       = "Answer found"
	lowConfidenceMessage = "Sorry, I'm not confident about this answer. Please rephrase your question."
	methodNotAllowedText = "Method Not Allowed. Use POST to /ask with a JSON body containing your question."
)

const (
	StatusSuccess       = "success"
	StatusLowConfidence = "low_confidence"
)

// maxRequestBytes caps the /ask body. Questions are short.
const maxRequestBytes = 64 << 10

// AskHandler godoc
//
//	@Summary		Ask a Computer Science question
//	@Description	Resolves the question against the intent corpus and/or the QA model.
//	@Tags			ask
//	@Accept			json
//	@Produce		json
//	@Param			question	body		models.QARequest	true	"Question"
//	@Success		200			{object}	models.QAResponse
//	@Failure		400			{object}	handlertools.APIError	"Bad Request"
//	@Failure		502			{object}	handlertools.APIError	"QA model unavailable"
//	@Failure		503			{object}	handlertools.APIError	"Service Unavailable"
//	@Router			/ask [post]
func AskHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if appState.Resolver == nil {
			handlertools.RenderError(w, models.ErrCorpusUnavailable, http.StatusServiceUnavailable)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

		var request models.QARequest
		if err := handlertools.DecodeJSON(r, &request); err != nil {
			handlertools.RenderError(
				w,
				fmt.Errorf("invalid request body: %w", err),
				http.StatusBadRequest,
			)
			return
		}

		if err := validate.Struct(request); err != nil {
			handlertools.RenderError(
				w,
				fmt.Errorf("field \"question\" is required: %w", models.ErrBadRequest),
				http.StatusBadRequest,
			)
			return
		}

		result, err := appState.Resolver.GetAnswer(r.Context(), *request.Question)
		if err != nil {
			handlertools.RenderError(w, err, handlertools.StatusForError(err))
			return
		}

		if err := handlertools.EncodeJSON(w, NewQAResponse(result, appState.Resolver.AcceptThreshold())); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// NewQAResponse wraps result with a status that is "success" only when the
// confidence exceeds acceptThreshold.
func NewQAResponse(result *models.AnswerResult, acceptThreshold float64) *models.QAResponse {
	if result.Confidence > acceptThreshold {
		return &models.QAResponse{
			Status:  StatusSuccess,
			Message: successMessage,
			Data:    result,
		}
	}
	return &models.QAResponse{
		Status:  StatusLowConfidence,
		Message: lowConfidenceMessage,
		Data:    result,
	}
}

// AskNotAllowedHandler rejects GET /ask before it reaches the resolver.
func AskNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", http.MethodPost)
		handlertools.RenderError(w, errors.New(methodNotAllowedText), http.StatusMethodNotAllowed)
	}
}
