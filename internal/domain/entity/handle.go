package entity

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	handlePattern      = regexp.MustCompile(`^[a-zA-Z0-9._]+$`)
	handleDisallowedRe = regexp.MustCompile(`[^a-z0-9._]`)
)

// ValidHandle reports whether handle only contains letters, digits, dots and underscores.
func ValidHandle(handle string) bool {
	return handlePattern.MatchString(handle)
}

// SanitizeHandle lowercases s and strips every character a handle cannot contain.
func SanitizeHandle(s string) string {
	return handleDisallowedRe.ReplaceAllString(strings.ToLower(s), "")
}

// HandleBase returns the un-suffixed handle candidate for a user:
// "first.last" when both names are set, otherwise the email local part.
func HandleBase(firstName, lastName, email string) string {
	if strings.TrimSpace(firstName) != "" && strings.TrimSpace(lastName) != "" {
		return SanitizeHandle(strings.TrimSpace(firstName) + "." + strings.TrimSpace(lastName))
	}

	return SanitizeHandle(EmailLocalPart(email))
}

// HandleCandidate returns the n-th candidate for base: base itself for n == 0,
// then base1, base2, ...
func HandleCandidate(base string, n int) string {
	if n == 0 {
		return base
	}

	return base + strconv.Itoa(n)
}
