package models

import "context"

type AnswerSource string

const (
	SourceIntents AnswerSource = "intents"
	SourceModel   AnswerSource = "model"
)

// LowConfidenceAnswer is returned whenever no strategy produces a confident answer.
const LowConfidenceAnswer = "The model is not confident enough to provide an accurate answer."

// MatchCandidate is the best pattern match found for a single lookup.
type MatchCandidate struct {
	Answer         string       `json:"answer"`
	Confidence     float64      `json:"confidence"`
	Source         AnswerSource `json:"source"`
	MatchedPattern string       `json:"matched_pattern"`
}

// AnswerResult is what the resolver hands back to callers.
type AnswerResult struct {
	Answer         string       `json:"answer"`
	Confidence     float64      `json:"confidence"`
	Source         AnswerSource `json:"source"`
	MatchedPattern string       `json:"matched_pattern,omitempty"`
	ContextUsed    string       `json:"context_used,omitempty"`
}

// NewLowConfidenceResult returns the fixed fallback answer.
func NewLowConfidenceResult() *AnswerResult {
	return &AnswerResult{
		Answer:     LowConfidenceAnswer,
		Confidence: 0.0,
		Source:     SourceModel,
	}
}

// IsFallback reports whether r is the fixed low confidence fallback.
func (r *AnswerResult) IsFallback() bool {
	return r.Answer == LowConfidenceAnswer && r.Source == SourceModel
}

// Answerer resolves a question into an answer.
type Answerer interface {
	GetAnswer(ctx context.Context, question string) (*AnswerResult, error)
	// AcceptThreshold is the confidence an answer must exceed to count as a success.
	AcceptThreshold() float64
}

// QARequest is the body accepted by POST /ask.
// Question is a pointer so that a missing or null field is rejected before resolution.
type QARequest struct {
	Question *string `json:"question" validate:"required"`
}

// QAResponse wraps an AnswerResult for the HTTP API.
type QAResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Data    *AnswerResult `json:"data"`
}
