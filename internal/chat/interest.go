package chat

import "strings"

// interestKeywords signal that a visitor is close to converting. The check
// is a deterministic case-insensitive substring match; keep it that way, the
// prompt behavior is specified keyword-exact.
var interestKeywords = []string{
	"price",
	"pricing",
	"cost",
	"quote",
	"hire",
	"start",
	"project",
	"interested",
	"consultation",
	"schedule",
}

// historyPromptThreshold is the number of prior turns after which the
// conversation is considered engaged enough to ask for an email regardless
// of keywords.
const historyPromptThreshold = 4

// ShowsInterest reports whether the message contains any interest keyword.
func ShowsInterest(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range interestKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ShouldPromptEmail decides whether the UI should ask for the visitor's
// email: an interest keyword or a long-enough history triggers the prompt,
// and an email supplied on this call always suppresses it.
func ShouldPromptEmail(message string, historyLen int, email string) bool {
	if email != "" {
		return false
	}
	return ShowsInterest(message) || historyLen >= historyPromptThreshold
}
