package qa

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/circuitbreaker"

	"github.com/getzep/csmentor/pkg/models"
)

const (
	BreakerFailureThreshold = 5
	BreakerDelay            = 30 * time.Second
)

var _ Model = &RemoteModel{}

// RemoteModel delegates extraction to a question-answering inference server.
// The server receives {question, context} on POST /qa and replies with the
// extracted span and its score.
type RemoteModel struct {
	url           string
	context       string
	minConfidence float64
	client        *http.Client
	breaker       circuitbreaker.CircuitBreaker[[]byte]
}

type remoteRequest struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

type remoteResponse struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
}

func NewRemoteModel(serverURL, qaContext string, minConfidence float64, client *http.Client) *RemoteModel {
	if client == nil {
		client = http.DefaultClient
	}
	return &RemoteModel{
		url:           strings.TrimRight(serverURL, "/") + "/qa",
		context:       qaContext,
		minConfidence: minConfidence,
		client:        client,
		breaker: circuitbreaker.Builder[[]byte]().
			HandleIf(isServerFailure).
			WithFailureThreshold(BreakerFailureThreshold).
			WithDelay(BreakerDelay).
			Build(),
	}
}

func (m *RemoteModel) Name() string {
	return "remote:" + m.url
}

func (m *RemoteModel) Answer(ctx context.Context, question string) (*models.AnswerResult, error) {
	if err := checkQuestion(question); err != nil {
		return nil, err
	}

	jsonBody, err := json.Marshal(remoteRequest{Question: question, Context: m.context})
	if err != nil {
		return nil, fmt.Errorf("error marshaling qa request: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, modelError(m.Name(), err)
	}

	// Once the server has failed repeatedly, calls fail fast until the
	// breaker half-opens again.
	bodyBytes, err := failsafe.Get(func() ([]byte, error) {
		return m.post(ctx, jsonBody)
	}, m.breaker)
	if err != nil {
		return nil, modelError(m.Name(), err)
	}

	var resp remoteResponse
	if err := json.Unmarshal(bodyBytes, &resp); err != nil {
		log.Errorf("Error unmarshaling qa response body: %s", err)
		return nil, modelError(m.Name(), err)
	}

	return gate(resp.Answer, resp.Score, m.minConfidence, m.context), nil
}

// isServerFailure reports whether err counts against the breaker. Requests
// abandoned by the caller say nothing about the QA server.
func isServerFailure(_ []byte, err error) bool {
	return err != nil && !errors.Is(err, context.Canceled)
}

func (m *RemoteModel) post(ctx context.Context, jsonBody []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	resp, err := m.client.Do(req)
	if err != nil {
		log.Error("Error making qa request: ", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("qa server returned %d - %s", resp.StatusCode, resp.Status)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Error reading qa response body: ", err)
		return nil, err
	}

	return bodyBytes, nil
}
