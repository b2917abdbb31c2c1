package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/natal-cli/internal/core/domain"
)

// BirthDataInput is the input schema for the validate_birth_data tool.
type BirthDataInput struct {
	Name      string `json:"name" jsonschema:"name or alias"`
	BirthDate string `json:"birth_date" jsonschema:"birth date as YYYY-MM-DD"`
	BirthTime string `json:"birth_time" jsonschema:"local birth time as HH:MM, 24-hour"`
	City      string `json:"city" jsonschema:"birth town"`
	Latitude  string `json:"latitude" jsonschema:"latitude in decimal degrees, must include a decimal point"`
	Longitude string `json:"longitude" jsonschema:"longitude in decimal degrees, must include a decimal point"`
	Timezone  string `json:"timezone" jsonschema:"canonical timezone name such as Australia/Melbourne"`
}

// BirthDataOutput is the output schema for the validate_birth_data tool.
type BirthDataOutput struct {
	Valid   bool           `json:"valid"`
	Profile *ProfileOutput `json:"profile,omitempty"`
	Errors  []FieldError   `json:"errors,omitempty"`
}

// ProfileOutput is a validated, normalised profile.
type ProfileOutput struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	BirthTime string `json:"birth_time"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Timezone  string `json:"timezone"`
}

// FieldError describes one rejected field.
type FieldError struct {
	Field      string `json:"field"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// FieldInput is the input schema for the validate_field tool.
type FieldInput struct {
	Field string `json:"field" jsonschema:"one of name, birth_date, birth_time, city, latitude, longitude, timezone"`
	Value string `json:"value" jsonschema:"raw value to validate"`
}

// FieldOutput is the output schema for the validate_field tool.
type FieldOutput struct {
	Valid      bool   `json:"valid"`
	Value      string `json:"value,omitempty"`
	Message    string `json:"message,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// TimezonesInput is the input schema for the list_timezones tool.
type TimezonesInput struct {
	Region string `json:"region,omitempty" jsonschema:"region prefix such as Australia; omit to list regions"`
}

// TimezonesOutput is the output schema for the list_timezones tool.
type TimezonesOutput struct {
	Region string   `json:"region,omitempty"`
	Names  []string `json:"names"`
	Count  int      `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "validate_birth_data",
		Description: "Validate a complete set of birth data and return the normalised profile or every field error",
	}, s.handleValidateBirthData)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "validate_field",
		Description: "Validate a single birth data field",
	}, s.handleValidateField)

	if s.ports.Timezone != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_timezones",
			Description: "List timezone regions, or canonical timezone names under a region",
		}, s.handleListTimezones)
	}
}

// handleValidateBirthData handles the validate_birth_data tool invocation.
func (s *Server) handleValidateBirthData(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input BirthDataInput,
) (*mcp.CallToolResult, BirthDataOutput, error) {
	profile, err := s.ports.Profile.Build(domain.BirthInput(input))
	if err != nil {
		fieldErrs, ok := fieldErrors(err)
		if !ok {
			return nil, BirthDataOutput{}, err
		}
		return nil, BirthDataOutput{Errors: fieldErrs}, nil
	}

	return nil, BirthDataOutput{
		Valid: true,
		Profile: &ProfileOutput{
			Name:      profile.Name(),
			BirthDate: profile.BirthDate().String(),
			BirthTime: profile.BirthTime().String(),
			City:      profile.City(),
			Country:   profile.Country(),
			Latitude:  profile.Latitude().String(),
			Longitude: profile.Longitude().String(),
			Timezone:  profile.Timezone().String(),
		},
	}, nil
}

// handleValidateField handles the validate_field tool invocation.
func (s *Server) handleValidateField(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input FieldInput,
) (*mcp.CallToolResult, FieldOutput, error) {
	field := domain.Field(strings.ToLower(strings.TrimSpace(input.Field)))
	if !field.IsValid() {
		return nil, FieldOutput{}, fmt.Errorf("unknown field %q", input.Field)
	}

	value, err := s.ports.Profile.ValidateField(field, input.Value)
	if err != nil {
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			return nil, FieldOutput{}, err
		}
		return nil, FieldOutput{Message: verr.Message, Suggestion: verr.Suggestion}, nil
	}

	return nil, FieldOutput{Valid: true, Value: value}, nil
}

// handleListTimezones handles the list_timezones tool invocation.
func (s *Server) handleListTimezones(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input TimezonesInput,
) (*mcp.CallToolResult, TimezonesOutput, error) {
	region := strings.TrimSpace(input.Region)
	if region == "" {
		regions := s.ports.Timezone.Regions()
		return nil, TimezonesOutput{Names: regions, Count: len(regions)}, nil
	}

	names, err := s.ports.Timezone.List(region)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, TimezonesOutput{Region: region, Names: []string{}}, nil
	}
	if err != nil {
		return nil, TimezonesOutput{}, err
	}

	return nil, TimezonesOutput{Region: region, Names: names, Count: len(names)}, nil
}

// fieldErrors flattens joined validation errors.
// ok is false when err holds anything other than validation errors.
func fieldErrors(err error) ([]FieldError, bool) {
	errs := []error{err}
	if joined, isJoined := err.(interface{ Unwrap() []error }); isJoined {
		errs = joined.Unwrap()
	}

	out := make([]FieldError, 0, len(errs))
	for _, e := range errs {
		var verr *domain.ValidationError
		if !errors.As(e, &verr) {
			return nil, false
		}
		out = append(out, FieldError{
			Field:      verr.Field.String(),
			Message:    verr.Message,
			Suggestion: verr.Suggestion,
		})
	}
	return out, true
}
