package validate

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/natal-cli/internal/core/domain"
)

// Name trims and title-cases a name or alias.
func Name(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", domain.NewValidationError(domain.FieldName, domain.ErrEmptyInput, "Name must not be empty.")
	}
	return cases.Title(language.Und).String(s), nil
}

// City trims a birth town name.
func City(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", domain.NewValidationError(domain.FieldCity, domain.ErrEmptyInput, "City must not be empty.")
	}
	return s, nil
}
