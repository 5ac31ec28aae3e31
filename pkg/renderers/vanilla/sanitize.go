package vanilla

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// labels and placeholders are user-authored free text; the strict policy
// strips any markup before it reaches the preview page.
var textPolicy = bluemonday.StrictPolicy()

func sanitizeText(input string) string {
	if input == "" {
		return ""
	}
	sanitized := textPolicy.Sanitize(input)
	// bluemonday entity-escapes on the way out; the template engine escapes
	// again, so fold the entities back to plain text here.
	return strings.TrimSpace(html.UnescapeString(sanitized))
}
