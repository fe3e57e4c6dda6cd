// Package tokenizer estimates token counts for generated documents.
package tokenizer

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// Counter estimates token counts for text content.
type Counter interface {
	Name() string
	CountString(input string) (int, error)
}

// Config captures tokenizer selection parameters provided by the CLI.
type Config struct {
	Model string
}

const (
	defaultModel        = "gpt-4o"
	defaultEncodingName = "cl100k_base"
)

// NewCounter returns a Counter for the requested model together with the
// name actually resolved. Models unknown to tiktoken fall back to the
// cl100k_base encoding, and the fallback name is reported so the estimate is
// never attributed to the wrong tokenizer.
func NewCounter(configuration Config) (Counter, string, error) {
	modelName := strings.TrimSpace(configuration.Model)
	if modelName == "" {
		modelName = defaultModel
	}
	lowerModelName := strings.ToLower(modelName)

	encoding, encodingError := tiktoken.EncodingForModel(lowerModelName)
	if encodingError == nil && encoding != nil {
		return openAICounter{encoding: encoding, name: lowerModelName}, modelName, nil
	}

	fallbackEncoding, fallbackError := tiktoken.GetEncoding(defaultEncodingName)
	if fallbackError != nil {
		return nil, "", fmt.Errorf("initialize fallback tokenizer: %w", fallbackError)
	}
	return openAICounter{encoding: fallbackEncoding, name: defaultEncodingName}, defaultEncodingName, nil
}
