package intent

import "github.com/tidwall/gjson"

// Kind identifies a structured search directive.
type Kind string

const (
	KindFindVenue   Kind = "find_venue"
	KindFindPlanner Kind = "find_planner"
)

// Directive is a recognized structured reply from the model: a task kind
// plus its raw filter fields, before normalization.
type Directive struct {
	Kind    Kind
	Filters map[string]gjson.Result
}

// Result is the outcome of classifying one model reply. Exactly one of
// Directive and Text is set: either the whole reply was a recognized
// directive, or it is passed through verbatim as free text.
type Result struct {
	Directive *Directive
	Text      string
}
