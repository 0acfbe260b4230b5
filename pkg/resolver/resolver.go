package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getzep/csmentor/config"
	"github.com/getzep/csmentor/internal"
	"github.com/getzep/csmentor/pkg/intents"
	"github.com/getzep/csmentor/pkg/models"
	"github.com/getzep/csmentor/pkg/qa"
	"github.com/getzep/csmentor/pkg/search"
)

var log = internal.GetLogger()

// DefaultAcceptThreshold is the confidence an intent match must exceed to be
// returned. Matches between the matcher's scan threshold and this value are found
// but rejected.
const DefaultAcceptThreshold = 0.5

type Strategy string

const (
	// StrategyIntents answers from the intent corpus only.
	StrategyIntents Strategy = "intents"
	// StrategyModel answers from the extractive QA model only.
	StrategyModel Strategy = "model"
	// StrategyHybrid tries the corpus first and asks the model when it falls back.
	StrategyHybrid Strategy = "hybrid"
)

// ParseStrategy maps a config value to a Strategy. Empty means StrategyIntents.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyIntents:
		return StrategyIntents, nil
	case StrategyModel:
		return StrategyModel, nil
	case StrategyHybrid:
		return StrategyHybrid, nil
	default:
		return "", fmt.Errorf("answer.strategy (%s) is not supported", s)
	}
}

var _ models.Answerer = &Resolver{}

// Resolver decides which answer, if any, to give for a question. It holds the
// corpus handle it was built with and no per-request state.
type Resolver struct {
	corpus          *models.Corpus
	matcher         *intents.Matcher
	model           qa.Model
	strategy        Strategy
	acceptThreshold float64
}

type Option func(*Resolver)

// WithMatcher overrides the default intent matcher. A nil matcher is ignored.
func WithMatcher(m *intents.Matcher) Option {
	return func(r *Resolver) {
		if m != nil {
			r.matcher = m
		}
	}
}

// WithAcceptThreshold overrides DefaultAcceptThreshold.
func WithAcceptThreshold(threshold float64) Option {
	return func(r *Resolver) {
		r.acceptThreshold = threshold
	}
}

// WithModel wires an extractive QA model in with the given strategy.
func WithModel(model qa.Model, strategy Strategy) Option {
	return func(r *Resolver) {
		r.model = model
		r.strategy = strategy
	}
}

// New returns a Resolver over corpus. Without options it answers from the corpus
// only, with the default thresholds and scorer.
func New(corpus *models.Corpus, opts ...Option) *Resolver {
	r := &Resolver{
		corpus:          corpus,
		matcher:         intents.NewMatcher(),
		strategy:        StrategyIntents,
		acceptThreshold: DefaultAcceptThreshold,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewFromConfig builds a Resolver from the answer section of cfg. model may be nil
// when cfg selects the intents strategy.
func NewFromConfig(cfg *config.AnswerConfig, corpus *models.Corpus, model qa.Model) (*Resolver, error) {
	strategy, err := ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	if strategy != StrategyIntents && model == nil {
		return nil, fmt.Errorf("answer.strategy %s requires a qa model", strategy)
	}

	matcher := &intents.Matcher{
		Threshold: cfg.MatchThreshold,
		Scorer:    search.NewScorer(cfg.WordWeight, cfg.SequenceWeight),
	}

	return New(
		corpus,
		WithMatcher(matcher),
		WithAcceptThreshold(cfg.AcceptThreshold),
		WithModel(model, strategy),
	), nil
}

// GetAnswer resolves question against corpus with the default thresholds.
func GetAnswer(question string, corpus *models.Corpus) (*models.AnswerResult, error) {
	return New(corpus).GetAnswer(context.Background(), question)
}

func (r *Resolver) AcceptThreshold() float64 {
	return r.acceptThreshold
}

func (r *Resolver) Strategy() Strategy {
	return r.strategy
}

// GetAnswer returns the answer for question. A blank question is an
// *models.EmptyQuestionError. When no strategy produces a confident answer the
// fixed low confidence result is returned.
func (r *Resolver) GetAnswer(ctx context.Context, question string) (*models.AnswerResult, error) {
	if strings.TrimSpace(question) == "" {
		return nil, models.NewEmptyQuestionError()
	}

	switch r.strategy {
	case StrategyModel:
		return r.answerFromModel(ctx, question)
	case StrategyHybrid:
		if result := r.answerFromIntents(question); result != nil {
			return result, nil
		}
		result, err := r.answerFromModel(ctx, question)
		if err != nil {
			if errors.Is(err, models.ErrModelUnavailable) {
				log.Warnf("qa model failed, returning fallback: %v", err)
				return models.NewLowConfidenceResult(), nil
			}
			return nil, err
		}
		if result.Answer == models.LowConfidenceAnswer {
			return models.NewLowConfidenceResult(), nil
		}
		return result, nil
	default:
		if result := r.answerFromIntents(question); result != nil {
			return result, nil
		}
		return models.NewLowConfidenceResult(), nil
	}
}

// answerFromIntents returns the best corpus match, or nil if none clears the
// acceptance threshold.
func (r *Resolver) answerFromIntents(question string) *models.AnswerResult {
	candidate := r.matcher.FindBestMatch(question, r.corpus)
	if candidate == nil {
		log.Debugf("no intent match for %q", question)
		return nil
	}
	if candidate.Confidence <= r.acceptThreshold {
		log.Debugf(
			"intent match %q rejected for %q: %.3f <= %.3f",
			candidate.MatchedPattern,
			question,
			candidate.Confidence,
			r.acceptThreshold,
		)
		return nil
	}

	return &models.AnswerResult{
		Answer:         candidate.Answer,
		Confidence:     candidate.Confidence,
		Source:         candidate.Source,
		MatchedPattern: candidate.MatchedPattern,
	}
}

func (r *Resolver) answerFromModel(ctx context.Context, question string) (*models.AnswerResult, error) {
	if r.model == nil {
		return nil, fmt.Errorf("no qa model configured: %w", models.ErrModelUnavailable)
	}
	return r.model.Answer(ctx, question)
}
