package intents

import (
	"github.com/sahilm/fuzzy"

	"github.com/getzep/csmentor/pkg/models"
)

const DefaultSuggestionLimit = 5

// Suggestion is a corpus pattern that fuzzily matches a partial query.
type Suggestion struct {
	Pattern string `json:"pattern"`
	Tag     string `json:"tag,omitempty"`
	Score   int    `json:"score"`
}

// patternSource adapts a corpus to fuzzy.Source without copying patterns.
type patternSource struct {
	patterns []string
	tags     []string
}

func (p patternSource) String(i int) string { return p.patterns[i] }
func (p patternSource) Len() int            { return len(p.patterns) }

func newPatternSource(corpus *models.Corpus) patternSource {
	src := patternSource{
		patterns: make([]string, 0, corpus.PatternCount()),
		tags:     make([]string, 0, corpus.PatternCount()),
	}
	if corpus == nil {
		return src
	}
	for _, intent := range corpus.Intents {
		for _, pattern := range intent.Patterns {
			src.patterns = append(src.patterns, pattern)
			src.tags = append(src.tags, intent.Tag)
		}
	}
	return src
}

// Suggest returns up to limit corpus patterns that fuzzily match query, best first.
// It helps callers phrase questions the corpus knows about.
func Suggest(query string, corpus *models.Corpus, limit int) []Suggestion {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	src := newPatternSource(corpus)
	matches := fuzzy.FindFrom(query, src)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	suggestions := make([]Suggestion, 0, len(matches))
	for _, match := range matches {
		suggestions = append(suggestions, Suggestion{
			Pattern: src.patterns[match.Index],
			Tag:     src.tags[match.Index],
			Score:   match.Score,
		})
	}
	return suggestions
}
