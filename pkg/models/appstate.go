package models

import (
	"github.com/getzep/csmentor/config"
)

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	Config *config.Config
	// Corpus is nil when the intents source failed to load at startup; CorpusErr holds why.
	Corpus    *Corpus
	CorpusErr error
	Resolver  Answerer
	// ModelName describes the QA model wired into the resolver, if any.
	ModelName string
}

// Ready reports whether the intent corpus loaded and is non-empty.
func (a *AppState) Ready() bool {
	return a.CorpusErr == nil && a.Corpus.Len() > 0
}
