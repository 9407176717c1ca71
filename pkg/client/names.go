package client

import "strings"

// NameOrder controls how a combined full name splits into first/last
// parts. The dashboard historically assumed the given name comes last
// ("Nguyen Van An" -> first "An", last "Nguyen Van"); western-style
// input puts it first.
type NameOrder int

const (
	// GivenNameLast treats the final token as the first name and the
	// remainder as the last name.
	GivenNameLast NameOrder = iota
	// GivenNameFirst treats the first token as the first name.
	GivenNameFirst
)

// SplitFullName splits a combined display name into (firstName, lastName)
// according to the configured order. A single-token name becomes the
// first name with an empty last name.
func SplitFullName(full string, order NameOrder) (firstName, lastName string) {
	tokens := strings.Fields(full)
	if len(tokens) == 0 {
		return "", ""
	}
	if len(tokens) == 1 {
		return tokens[0], ""
	}

	switch order {
	case GivenNameFirst:
		return tokens[0], strings.Join(tokens[1:], " ")
	default:
		return tokens[len(tokens)-1], strings.Join(tokens[:len(tokens)-1], " ")
	}
}

// JoinName builds the display name shown by the dashboard: last name
// first, matching how rows are rendered.
func JoinName(lastName, firstName string) string {
	return strings.TrimSpace(lastName + " " + firstName)
}
