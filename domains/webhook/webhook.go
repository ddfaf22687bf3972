package webhook

// InboundMessage is the one fact the relay extracts from a webhook
// delivery: who wrote, which message, and what it said.
type InboundMessage struct {
	Sender    string `json:"sender"`
	MessageID string `json:"message_id"`
	Type      string `json:"type"`
	Text      string `json:"text"`
}

// EventOutcome tags the result of parsing a webhook delivery, making every
// previously swallowed path an explicit branch.
type EventOutcome int

const (
	// EventText means a processable text message was extracted.
	EventText EventOutcome = iota
	// EventIgnored means the payload is structurally valid Cloud API
	// traffic with nothing to process (status callbacks, non-text types,
	// empty entries). The platform still requires a 200 ack.
	EventIgnored
	// EventMalformed means the body was not decodable JSON.
	EventMalformed
)

func (o EventOutcome) String() string {
	switch o {
	case EventText:
		return "text"
	case EventIgnored:
		return "ignored"
	case EventMalformed:
		return "malformed"
	}
	return "unknown"
}
