package intents

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"

	"github.com/getzep/csmentor/internal"
	"github.com/getzep/csmentor/pkg/models"
)

var log = internal.GetLogger()

// Format is the encoding of an intents source.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the decoder for a source by file extension. Anything that
// isn't .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Loader loads intent corpora and memoizes them by resolved path. The zero value is
// not usable; create one with NewLoader and share it for the life of the process.
type Loader struct {
	mu     sync.RWMutex
	cache  map[string]*models.Corpus
	flight singleflight.Group
}

func NewLoader() *Loader {
	return &Loader{cache: make(map[string]*models.Corpus)}
}

// Load returns the corpus at path, reading and validating it on first use.
// Concurrent first loads of the same path share a single read. Failed loads are
// not cached, so a fixed file is picked up on the next call.
func (l *Loader) Load(path string) (*models.Corpus, error) {
	resolved, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve intents path %s: %w", path, err)
	}

	l.mu.RLock()
	corpus, ok := l.cache[resolved]
	l.mu.RUnlock()
	if ok {
		return corpus, nil
	}

	v, err, _ := l.flight.Do(resolved, func() (interface{}, error) {
		l.mu.RLock()
		cached, ok := l.cache[resolved]
		l.mu.RUnlock()
		if ok {
			return cached, nil
		}

		corpus, err := LoadFile(resolved)
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.cache[resolved] = corpus
		l.mu.Unlock()

		log.Infof(
			"Loaded %d intents (%d patterns) from %s",
			corpus.Len(),
			corpus.PatternCount(),
			resolved,
		)
		return corpus, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*models.Corpus), nil
}

// Cached reports whether path has already been loaded successfully.
func (l *Loader) Cached(path string) bool {
	resolved, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.cache[resolved]
	return ok
}

// LoadFile reads and parses an intents source without caching.
func LoadFile(path string) (*models.Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, models.NewNotFoundError(fmt.Sprintf("intents file %s", path))
		}
		return nil, fmt.Errorf("failed to read intents file %s: %w", path, err)
	}

	intents, err := Parse(data, FormatFromPath(path))
	if err != nil {
		var formatErr *models.InvalidFormatError
		if errors.As(err, &formatErr) {
			formatErr.Source = path
		}
		return nil, err
	}

	return &models.Corpus{Path: path, Intents: intents}, nil
}

// Parse decodes and validates an intents document. Every failure is an
// *models.InvalidFormatError.
func Parse(data []byte, format Format) ([]models.Intent, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, models.NewInvalidFormatError("", "intents file is empty")
	}

	var source models.IntentSource
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &source)
	default:
		err = json.Unmarshal(data, &source)
	}
	if err != nil {
		return nil, models.NewInvalidFormatError("", fmt.Sprintf("unable to parse intents: %v", err))
	}

	if source.Intents == nil {
		return nil, models.NewInvalidFormatError("", "missing required key \"intents\"")
	}

	intents := *source.Intents
	if len(intents) == 0 {
		return nil, models.NewInvalidFormatError("", "\"intents\" must be a non-empty list")
	}

	for i := range intents {
		if err := validate.Struct(&intents[i]); err != nil {
			return nil, models.NewInvalidFormatError(
				"",
				fmt.Sprintf("intent %d (%s) is malformed: %v", i, intents[i].Tag, err),
			)
		}
	}

	return intents, nil
}
