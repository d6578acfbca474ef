package triage

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// blockedWords is the campus conduct list applied to submissions.
// Substring matching keeps recall high at the cost of the usual
// scunthorpe false positives; rejected items carry a validation error
// telling the submitter to rephrase.
var blockedWords = []string{
	"damn",
	"hell",
	"stupid",
	"idiot",
	"fool",
	"crap",
	"suck",
}

var htmlStripper = bluemonday.StrictPolicy()

// SanitizeText strips all HTML markup from submitted text. Submissions
// are plain text; any markup is treated as noise, not an error.
func SanitizeText(text string) string {
	return strings.TrimSpace(htmlStripper.Sanitize(text))
}

// ContainsBlockedWords reports whether the text trips the conduct
// screen. Case-insensitive substring search over the sanitized text.
func ContainsBlockedWords(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range blockedWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
