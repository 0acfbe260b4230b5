package qa

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/getzep/csmentor/config"
	"github.com/getzep/csmentor/internal"
	"github.com/getzep/csmentor/pkg/models"
)

var log = internal.GetLogger()

// DefaultMinConfidence is the score below which an extracted answer is replaced by
// the low confidence message.
const DefaultMinConfidence = 0.3

// Model answers a question by extracting a span from a fixed reference text.
type Model interface {
	Answer(ctx context.Context, question string) (*models.AnswerResult, error)
	Name() string
}

// NewModel builds the model described by cfg: the remote model when a server URL is
// configured, the local sentence extractor otherwise.
func NewModel(cfg *config.QAConfig) (Model, error) {
	qaContext, err := LoadContext(cfg.ContextPath)
	if err != nil {
		return nil, err
	}

	if cfg.ServerURL != "" {
		timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
		return NewRemoteModel(
			cfg.ServerURL,
			qaContext,
			cfg.MinConfidence,
			NewRetryableHTTPClient(cfg.MaxRetries, timeout),
		), nil
	}

	return NewLocalModel(qaContext, cfg.MinConfidence), nil
}

// gate applies the low confidence rule shared by every model: scores under minScore keep
// their value but lose the extracted answer.
func gate(answer string, score, minScore float64, qaContext string) *models.AnswerResult {
	result := &models.AnswerResult{
		Answer:      strings.TrimSpace(answer),
		Confidence:  score,
		Source:      models.SourceModel,
		ContextUsed: qaContext,
	}
	if score < minScore || result.Answer == "" {
		result.Answer = models.LowConfidenceAnswer
	}
	return result
}

func checkQuestion(question string) error {
	if strings.TrimSpace(question) == "" {
		return models.NewEmptyQuestionError()
	}
	return nil
}

func modelError(name string, err error) error {
	return fmt.Errorf("%s: %w: %w", name, models.ErrModelUnavailable, err)
}
