package service

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"social-backend/internal/models"
)

const (
	fallbackUsernameBase = "user"
	minUsernameBase      = 3
	// Leaves room for the longest suffix ("_999") within the 30 character limit.
	maxUsernameBase = 26
)

// usernameBase derives a base that satisfies the username rule: the first
// name if it yields at least three usable characters, else the email local
// part without its "+tag", else a constant.
func usernameBase(user *models.User) string {
	if user.FirstName != nil {
		if base := cleanUsername(*user.FirstName); len(base) >= minUsernameBase {
			return base
		}
	}

	local, _, _ := strings.Cut(user.Email, "@")
	local, _, _ = strings.Cut(local, "+")
	if base := cleanUsername(local); len(base) >= minUsernameBase {
		return base
	}

	return fallbackUsernameBase
}

// cleanUsername lower-cases s, folds accents ("José" becomes "jose") and drops
// every character outside [a-z0-9._]. Dots and underscores are trimmed from
// both ends.
func cleanUsername(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' || r == '_' {
			b.WriteRune(r)
		}
	}

	base := strings.Trim(b.String(), "._")
	if len(base) > maxUsernameBase {
		base = strings.TrimRight(base[:maxUsernameBase], "._")
	}
	return base
}

// suggestUsernames returns five candidates derived from base, in a fixed
// order. Each template has its own separator and suffix shape, so the
// candidates are always distinct.
func suggestUsernames(base string, intN func(n int) int) []string {
	return []string{
		base,
		fmt.Sprintf("%s%d", base, 10+intN(90)),
		fmt.Sprintf("%s_%d", base, 100+intN(900)),
		fmt.Sprintf("%s.%d", base, 1+intN(999)),
		base + string(rune('a'+intN(26))),
	}
}
