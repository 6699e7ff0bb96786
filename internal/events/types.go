package events

import "time"

// Event names delivered to the automation endpoint.
const (
	TypeLeadCreated = "lead.created"
)

// Envelope is the JSON body posted to the automation webhook. The receiving
// workflow engine routes on Event and treats Data as opaque.
type Envelope struct {
	Event     string    `json:"event"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// LeadCreatedV1 is the payload for a lead.created event. Phone and Message
// are pointers so absent values serialize as null, matching what the
// automation workflows already expect.
type LeadCreatedV1 struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Message *string `json:"message"`
}

// NewEnvelope stamps an envelope with the current UTC time.
func NewEnvelope(event string, data any) Envelope {
	return Envelope{
		Event:     event,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}
