package services

import (
	"errors"

	"github.com/custodia-labs/natal-cli/internal/core/domain"
	"github.com/custodia-labs/natal-cli/internal/core/ports/driving"
	"github.com/custodia-labs/natal-cli/internal/core/validate"
	"github.com/custodia-labs/natal-cli/internal/logger"
)

// Ensure implementations satisfy the interfaces.
var (
	_ driving.ProfileService = (*ProfileService)(nil)
	_ driving.IntakeSession  = (*IntakeSession)(nil)
)

// draft holds accepted values while a session is in progress.
type draft struct {
	name      string
	date      domain.BirthDate
	clock     domain.BirthTime
	city      string
	latitude  domain.Latitude
	longitude domain.Longitude
	timezone  domain.TimezoneName
}

func (d *draft) profile() *domain.UserProfile {
	return domain.NewUserProfile(d.name, d.date, d.clock, d.city, d.latitude, d.longitude, d.timezone)
}

// accept validates input for field and stores it on the draft.
// It returns the normalised value as text.
func (d *draft) accept(field domain.Field, input string) (string, error) {
	switch field {
	case domain.FieldName:
		v, err := validate.Name(input)
		if err != nil {
			return "", err
		}
		d.name = v
		return v, nil
	case domain.FieldBirthDate:
		v, err := validate.Date(input)
		if err != nil {
			return "", err
		}
		d.date = v
		return v.String(), nil
	case domain.FieldBirthTime:
		v, err := validate.Time(input)
		if err != nil {
			return "", err
		}
		d.clock = v
		return v.String(), nil
	case domain.FieldCity:
		v, err := validate.City(input)
		if err != nil {
			return "", err
		}
		d.city = v
		return v, nil
	case domain.FieldLatitude:
		v, err := validate.Latitude(input)
		if err != nil {
			return "", err
		}
		d.latitude = v
		return v.String(), nil
	case domain.FieldLongitude:
		v, err := validate.Longitude(input)
		if err != nil {
			return "", err
		}
		d.longitude = v
		return v.String(), nil
	case domain.FieldTimezone:
		v, err := validate.Timezone(input)
		if err != nil {
			return "", err
		}
		d.timezone = v
		return v.String(), nil
	default:
		return "", domain.ErrInvalidInput
	}
}

// IntakeSession walks the intake fields in order.
// It is not safe for concurrent use.
type IntakeSession struct {
	fields []domain.Field
	pos    int
	state  driving.IntakeState
	draft  draft
}

// NewIntakeSession creates a session positioned at the first field.
func NewIntakeSession() *IntakeSession {
	return &IntakeSession{
		fields: domain.AllFields(),
		state:  driving.IntakeAwaitingField,
	}
}

// Current returns the field awaiting input.
func (s *IntakeSession) Current() domain.Field {
	if s.pos >= len(s.fields) {
		return ""
	}
	return s.fields[s.pos]
}

// State returns the session state.
func (s *IntakeSession) State() driving.IntakeState {
	return s.state
}

// Progress returns the number of accepted fields and the total.
func (s *IntakeSession) Progress() (accepted, total int) {
	return s.pos, len(s.fields)
}

// Submit offers raw input for the current field and returns its
// normalised value.
func (s *IntakeSession) Submit(input string) (string, error) {
	switch s.state {
	case driving.IntakeCancelled:
		return "", domain.ErrCancelled
	case driving.IntakeComplete:
		return "", domain.ErrInvalidInput
	}

	if domain.IsQuit(input) {
		s.state = driving.IntakeCancelled
		s.draft = draft{}
		logger.Debug("intake cancelled at %s", s.Current())
		return "", domain.ErrCancelled
	}

	field := s.Current()
	value, err := s.draft.accept(field, input)
	if err != nil {
		logger.Debug("intake rejected %s: %v", field, err)
		return "", err
	}

	logger.Debug("intake accepted %s", field)
	s.pos++
	if s.pos == len(s.fields) {
		s.state = driving.IntakeComplete
	}
	return value, nil
}

// Profile returns the completed profile.
func (s *IntakeSession) Profile() (*domain.UserProfile, error) {
	if s.state != driving.IntakeComplete {
		return nil, domain.ErrIncomplete
	}
	return s.draft.profile(), nil
}

// ProfileService creates intake sessions and validates whole inputs.
type ProfileService struct{}

// NewProfileService creates a new profile service.
func NewProfileService() *ProfileService {
	return &ProfileService{}
}

// NewSession starts a fresh intake session.
func (s *ProfileService) NewSession() driving.IntakeSession {
	return NewIntakeSession()
}

// Build validates every field of in and returns the profile, or every
// validation failure joined together.
func (s *ProfileService) Build(in domain.BirthInput) (*domain.UserProfile, error) {
	var d draft
	var errs []error
	for _, field := range domain.AllFields() {
		if _, err := d.accept(field, in.Value(field)); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return d.profile(), nil
}

// ValidateField validates a single field value and returns it normalised.
func (s *ProfileService) ValidateField(field domain.Field, input string) (string, error) {
	if !field.IsValid() {
		return "", domain.ErrInvalidInput
	}
	var d draft
	return d.accept(field, input)
}

// BuildProfile validates in without a service instance.
func BuildProfile(in domain.BirthInput) (*domain.UserProfile, error) {
	return NewProfileService().Build(in)
}
