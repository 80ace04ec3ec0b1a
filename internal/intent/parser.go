package intent

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Parse classifies one model reply. The whole reply (after stripping a
// markdown code fence) must be a single valid JSON object with a
// recognized "task" value and an optional "filters" object to count as
// a directive; anything else is returned verbatim as free text. There
// is no partial extraction: a reply that merely contains JSON is still
// free text.
func Parse(reply string) Result {
	trimmed := stripCodeFence(strings.TrimSpace(reply))

	if !gjson.Valid(trimmed) {
		return Result{Text: reply}
	}
	parsed := gjson.Parse(trimmed)
	if !parsed.IsObject() {
		return Result{Text: reply}
	}

	task := parsed.Get("task")
	if task.Type != gjson.String {
		return Result{Text: reply}
	}
	kind := Kind(task.String())
	switch kind {
	case KindFindVenue, KindFindPlanner:
	default:
		return Result{Text: reply}
	}

	filters := make(map[string]gjson.Result)
	if raw := parsed.Get("filters"); raw.Exists() {
		if !raw.IsObject() {
			return Result{Text: reply}
		}
		raw.ForEach(func(key, value gjson.Result) bool {
			filters[key.String()] = value
			return true
		})
	}

	return Result{Directive: &Directive{Kind: kind, Filters: filters}}
}

// stripCodeFence removes a wrapping markdown code fence (``` or ```json)
// when the whole string is fenced. Models often wrap JSON this way.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	body := strings.TrimPrefix(s, "```")
	body = strings.TrimPrefix(body, "json")
	body = strings.TrimPrefix(body, "JSON")
	idx := strings.LastIndex(body, "```")
	if idx < 0 {
		return s
	}
	return strings.TrimSpace(body[:idx])
}
