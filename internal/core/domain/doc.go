// Package domain defines the core business entities for natal.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - BirthDate, BirthTime: calendar values parsed from user input
//   - Latitude, Longitude: range-checked coordinates
//   - TimezoneName: a canonical IANA timezone identifier
//   - UserProfile: the validated aggregate handed to the chart engine
//   - Chart, ChartResult: what the chart engine produces
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
