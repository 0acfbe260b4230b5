package qa

import (
	"context"
	"strings"
	"unicode"

	"github.com/getzep/csmentor/pkg/models"
	"github.com/getzep/csmentor/pkg/search"
)

var _ Model = &LocalModel{}

// LocalModel extracts the context sentence that covers the most question terms.
// Used when no QA server is configured.
type LocalModel struct {
	context       string
	sentences     []sentence
	minConfidence float64
}

type sentence struct {
	text  string
	terms map[string]struct{}
}

func NewLocalModel(qaContext string, minConfidence float64) *LocalModel {
	raw := SplitSentences(qaContext)
	sentences := make([]sentence, 0, len(raw))
	for _, s := range raw {
		sentences = append(sentences, sentence{text: s, terms: terms(s)})
	}
	return &LocalModel{
		context:       qaContext,
		sentences:     sentences,
		minConfidence: minConfidence,
	}
}

func (m *LocalModel) Name() string {
	return "local-extractive"
}

// Answer scores each sentence by the share of question terms it contains and
// returns the best one. Ties keep the earliest sentence.
func (m *LocalModel) Answer(ctx context.Context, question string) (*models.AnswerResult, error) {
	if err := checkQuestion(question); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	questionTerms := terms(search.Normalize(question))

	var best string
	var bestScore float64
	if len(questionTerms) > 0 {
		for _, s := range m.sentences {
			score := coverage(questionTerms, s.terms)
			if score > bestScore {
				best = s.text
				bestScore = score
			}
		}
	}

	log.Debugf("local model best score %.3f for %q", bestScore, question)

	return gate(best, bestScore, m.minConfidence, m.context), nil
}

// SplitSentences breaks text after '.', '!' or '?' when followed by whitespace.
func SplitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0
	for i, r := range runes {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
			sentences = append(sentences, s)
		}
		start = i + 1
	}
	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func terms(text string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		f = strings.TrimFunc(f, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if f != "" {
			set[f] = struct{}{}
		}
	}
	return set
}

func coverage(question, sentence map[string]struct{}) float64 {
	hits := 0
	for t := range question {
		if _, ok := sentence[t]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(question))
}
