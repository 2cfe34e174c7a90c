// Package safety screens patient messages before any model sees them.
package safety

import (
	"strings"

	"github.com/samber/lo"
)

// HelplineMessage is returned whenever a crisis phrase is detected.
const HelplineMessage = "It sounds like you may need urgent support. Please reach out to a professional immediately. Here is a helpline: **988 Suicide & Crisis Lifeline**."

// CrisisKeywords favor recall: a false positive only shows the helpline.
var CrisisKeywords = []string{
	"end it all",
	"give up",
	"can't go on",
	"hopeless",
	"suicide",
	"kill myself",
	"want to die",
	"ending my life",
}

// CrisisFilter matches lower-cased messages by plain substring containment.
// No tokenization, stemming or negation handling.
type CrisisFilter struct {
	keywords []string
}

func NewCrisisFilter(keywords []string) *CrisisFilter {
	return &CrisisFilter{
		keywords: lo.Map(keywords, func(k string, _ int) string { return strings.ToLower(k) }),
	}
}

// Matches returns the first keyword contained in message.
func (f *CrisisFilter) Matches(message string) (string, bool) {
	lower := strings.ToLower(message)
	return lo.Find(f.keywords, func(k string) bool {
		return k != "" && strings.Contains(lower, k)
	})
}

func (f *CrisisFilter) IsCrisis(message string) bool {
	_, ok := f.Matches(message)
	return ok
}
