package validate

import (
	"github.com/custodia-labs/natal-cli/internal/core/domain"
	"github.com/custodia-labs/natal-cli/internal/similarity"
	"github.com/custodia-labs/natal-cli/internal/tzdb"
)

const msgNoTimezone = "Timezone must match a real timezone like Australia/Melbourne."

// Timezone checks s against the canonical timezone set.
// An exact match is returned unchanged. A near miss fails with
// domain.ErrSuggestion carrying the closest canonical name; anything else
// fails with domain.ErrNoMatch.
func Timezone(s string) (domain.TimezoneName, error) {
	if tzdb.Contains(s) {
		return domain.TimezoneName(s), nil
	}

	matches := similarity.CloseMatches(s, tzdb.Names(), 1, similarity.DefaultCutoff)
	if len(matches) == 0 {
		return "", domain.NewValidationError(domain.FieldTimezone, domain.ErrNoMatch, msgNoTimezone)
	}

	verr := domain.NewValidationError(domain.FieldTimezone, domain.ErrSuggestion,
		"Did you mean: "+matches[0]+"?")
	verr.Suggestion = matches[0]
	return "", verr
}
