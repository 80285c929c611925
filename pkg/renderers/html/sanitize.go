package html

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	copyPolicyOnce sync.Once
	copyPolicy     *bluemonday.Policy
)

// sanitizeCopy cleans configurable rich copy. Only inline emphasis and links
// survive.
func sanitizeCopy(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(copySanitizer().Sanitize(trimmed))
}

func copySanitizer() *bluemonday.Policy {
	copyPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("strong", "em", "b", "i", "br", "span")
		policy.AllowStandardURLs()
		policy.AllowAttrs("href").OnElements("a")
		policy.RequireNoFollowOnLinks(true)
		policy.AllowAttrs("class").OnElements("span")
		copyPolicy = policy
	})
	return copyPolicy
}
