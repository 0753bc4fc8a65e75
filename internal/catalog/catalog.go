// Package catalog decodes the FAQ catalogue compiled into the binary.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/llfarm/llfarm-faq/internal/domain"
	apperrors "github.com/llfarm/llfarm-faq/internal/errors"
	"gopkg.in/yaml.v3"
)

const (
	maxQuestionLen = 255
	maxAnswerLen   = 3000
)

//go:embed faq.yaml
var defaultYAML []byte

type document struct {
	Items []domain.FAQItem `yaml:"items"`
}

// Default returns the built-in LL-FARM catalogue.
func Default() (domain.Catalog, error) {
	return Parse(defaultYAML)
}

// Parse decodes a YAML catalogue document and validates every item.
// Questions and answers are trimmed before validation.
func Parse(data []byte) (domain.Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if len(doc.Items) == 0 {
		return domain.Catalog{}, apperrors.ErrEmptyCatalog
	}

	for i := range doc.Items {
		item := &doc.Items[i]
		item.Question = strings.TrimSpace(item.Question)
		item.Answer = strings.TrimSpace(item.Answer)
		if err := validateItem(i, *item); err != nil {
			return domain.Catalog{}, err
		}
	}

	return domain.NewCatalog(doc.Items), nil
}

func validateItem(i int, item domain.FAQItem) error {
	field := func(name string) string {
		return fmt.Sprintf("items[%d].%s", i, name)
	}

	switch {
	case item.Question == "":
		return apperrors.ValidationError{Field: field("question"), Message: "required"}
	case utf8.RuneCountInString(item.Question) > maxQuestionLen:
		return apperrors.ValidationError{
			Field:   field("question"),
			Message: fmt.Sprintf("must be at most %d characters", maxQuestionLen),
		}
	case item.Answer == "":
		return apperrors.ValidationError{Field: field("answer"), Message: "required"}
	case utf8.RuneCountInString(item.Answer) > maxAnswerLen:
		return apperrors.ValidationError{
			Field:   field("answer"),
			Message: fmt.Sprintf("must be at most %d characters", maxAnswerLen),
		}
	}
	return nil
}
