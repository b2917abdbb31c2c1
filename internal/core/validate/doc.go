// Package validate converts free-form text into range-checked domain values.
//
// Every validator is a pure function: it takes the raw string and returns
// either the parsed value or a *domain.ValidationError whose message is
// suitable to show to the user and whose Kind is one of the domain
// validation sentinels.
//
// Accepted values are stable: feeding an accepted input back into the same
// validator yields the same value.
package validate
