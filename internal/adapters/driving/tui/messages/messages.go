// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/natal-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewForm collects the birth data one field at a time.
	ViewForm ViewType = iota
	// ViewResult shows the summary, the report question and the output paths.
	ViewResult
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewForm:
		return "form"
	case ViewResult:
		return "result"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// FieldAccepted is sent when a field passes validation.
type FieldAccepted struct {
	Field domain.Field
	Value string
}

// ProfileCompleted is sent once every field has been accepted.
type ProfileCompleted struct {
	Profile *domain.UserProfile
}

// ReportChosen carries the answer to the report question.
type ReportChosen struct {
	Write bool
}

// ChartGenerated carries the outcome of chart generation.
type ChartGenerated struct {
	Result *domain.ChartResult
	Err    error
}

// Cancelled signals the user left the session before it completed.
type Cancelled struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
