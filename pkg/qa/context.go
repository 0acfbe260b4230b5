package qa

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/getzep/csmentor/pkg/models"
)

// LoadContext reads the reference text the extractive model answers from.
// The file must exist and hold more than whitespace.
func LoadContext(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", models.NewNotFoundError(fmt.Sprintf("%s file", filepath.Base(path)))
		}
		return "", fmt.Errorf("error reading context file: %w", err)
	}

	content := strings.TrimSpace(string(data))
	if content == "" {
		return "", models.NewInvalidFormatError("", fmt.Sprintf("%s file is empty", filepath.Base(path)))
	}

	return content, nil
}
