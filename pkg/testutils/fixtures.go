package testutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/getzep/csmentor/pkg/models"
)

const (
	MobilePattern  = "What is mobile development?"
	MobileResponse = "Mobile development focuses on creating applications for mobile devices."
)

// MobileCorpus is the single intent corpus used across package tests.
func MobileCorpus() *models.Corpus {
	return &models.Corpus{
		Path: "intents.json",
		Intents: []models.Intent{
			{
				Tag:       "mobile_development",
				Patterns:  []string{MobilePattern},
				Responses: []string{MobileResponse},
			},
		},
	}
}

// CSCorpus is a small corpus with several intents and overlapping vocabulary.
func CSCorpus() *models.Corpus {
	return &models.Corpus{
		Path: "intents.json",
		Intents: []models.Intent{
			{
				Tag:       "algorithms",
				Patterns:  []string{"What are algorithms?", "Explain algorithms"},
				Responses: []string{"An algorithm is a finite sequence of steps that solves a problem."},
			},
			{
				Tag:       "data_structures",
				Patterns:  []string{"What are data structures?", "Tell me about data structures"},
				Responses: []string{"Data structures organize and store data so it can be used efficiently."},
			},
			{
				Tag:       "mobile_development",
				Patterns:  []string{MobilePattern},
				Responses: []string{MobileResponse, "An unused second response."},
			},
		},
	}
}

// WriteFile writes content to name inside a per-test temp dir and returns its path.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}

// WriteCorpus writes corpus as an intents.json file and returns its path.
func WriteCorpus(t testing.TB, corpus *models.Corpus) string {
	t.Helper()
	data, err := json.Marshal(map[string]any{"intents": corpus.Intents})
	if err != nil {
		t.Fatalf("failed to marshal corpus: %v", err)
	}
	return WriteFile(t, "intents.json", string(data))
}
