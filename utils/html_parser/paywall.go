package html_parser

import "strings"

// paywallTerms is the lexicon scanned for paywall and login walls.
var paywallTerms = []string{
	"subscribe", "subscription", "paywall", "sign in", "sign up",
	"login", "register", "premium", "account", "paid", "subscribe now",
}

// paywallThreshold is the number of distinct lexicon terms that must appear
// before content is flagged.
const paywallThreshold = 3

// LooksPaywalled reports whether the content reads like a paywall or login
// wall. It is a best-effort heuristic, not authoritative: a case-insensitive
// scan that triggers when at least three distinct lexicon terms appear.
func LooksPaywalled(content string) bool {
	lowered := strings.ToLower(content)

	found := 0
	for _, term := range paywallTerms {
		if strings.Contains(lowered, term) {
			found++
			if found >= paywallThreshold {
				return true
			}
		}
	}
	return false
}
