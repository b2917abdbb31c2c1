package driving

import "github.com/custodia-labs/natal-cli/internal/core/domain"

// IntakeState is the state of an intake session.
type IntakeState int

// Intake session states.
const (
	// IntakeAwaitingField waits for input for the current field.
	IntakeAwaitingField IntakeState = iota

	// IntakeComplete means every field was accepted.
	IntakeComplete

	// IntakeCancelled means the user quit. Terminal.
	IntakeCancelled
)

// String returns the string representation.
func (s IntakeState) String() string {
	switch s {
	case IntakeAwaitingField:
		return "awaiting_field"
	case IntakeComplete:
		return "complete"
	case IntakeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// IntakeSession collects birth data one field at a time.
// A rejected field is never advanced past; the profile only becomes
// available once every field has been accepted.
type IntakeSession interface {
	// Current returns the field awaiting input.
	// Only meaningful while State is IntakeAwaitingField.
	Current() domain.Field

	// State returns the session state.
	State() IntakeState

	// Submit offers raw input for the current field and returns the
	// normalised value once accepted, e.g. "alex" is stored as "Alex".
	// Returns domain.ErrCancelled for the quit keyword, a
	// *domain.ValidationError when the field is rejected, or nil when it
	// is accepted.
	Submit(input string) (string, error)

	// Progress returns the number of accepted fields and the total.
	Progress() (accepted, total int)

	// Profile returns the completed profile, or domain.ErrIncomplete.
	Profile() (*domain.UserProfile, error)
}

// ProfileService creates intake sessions and validates whole inputs.
type ProfileService interface {
	// NewSession starts a fresh intake session.
	NewSession() IntakeSession

	// Build validates every field of in at once and returns the profile,
	// or all validation failures joined together.
	Build(in domain.BirthInput) (*domain.UserProfile, error)

	// ValidateField validates a single field value and returns the
	// normalised value as text.
	ValidateField(field domain.Field, input string) (string, error)
}
