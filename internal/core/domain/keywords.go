package domain

import "strings"

// Reserved words recognised at the prompts.
const (
	// QuitKeyword cancels the session from any prompt.
	QuitKeyword = "quit"

	// ListKeyword browses timezones from the timezone prompt.
	ListKeyword = "list"
)

// IsQuit reports whether input is the cancellation keyword.
// Case and surrounding whitespace are ignored.
func IsQuit(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), QuitKeyword)
}

// ParseList reports whether input is a list request and returns the
// region prefix that follows the keyword, if any.
func ParseList(input string) (prefix string, ok bool) {
	fields := strings.Fields(input)
	if len(fields) == 0 || !strings.EqualFold(fields[0], ListKeyword) {
		return "", false
	}
	if len(fields) > 1 {
		prefix = fields[1]
	}
	return prefix, true
}
