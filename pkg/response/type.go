package response

// Envelope is the outward-facing result wrapper. Exactly one shape is
// produced per request: venues, event_planners, or text — never a mix.
type Envelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Ack is the acknowledgement body for control operations (e.g. reset).
type Ack struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ErrResp is the error body. Always this shape — requests never crash the process.
type ErrResp struct {
	Error string `json:"error"`
}

// Envelope type tags.
const (
	TypeVenues        = "venues"
	TypeEventPlanners = "event_planners"
	TypeText          = "text"
)

// StatusOK is the acknowledgement status value.
const StatusOK = "OK"
