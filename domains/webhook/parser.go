package webhook

import "encoding/json"

// eventPayload mirrors the slice of the Cloud API event envelope this
// relay cares about: entry[0].changes[0].value.messages[0].
type eventPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Messages []struct {
					From string `json:"from"`
					ID   string `json:"id"`
					Type string `json:"type"`
					Text struct {
						Body string `json:"body"`
					} `json:"text"`
				} `json:"messages"`
				Statuses []json.RawMessage `json:"statuses"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// ParseEvent inspects a webhook delivery body and returns a tagged outcome.
// Only the first message of the first change of the first entry is
// considered, matching the platform's per-delivery batching for this use.
func ParseEvent(body []byte) (InboundMessage, EventOutcome, string) {
	if !json.Valid(body) {
		return InboundMessage{}, EventMalformed, "body is not valid JSON"
	}

	// Valid JSON of an unexpected shape (wrong field types, top-level
	// array) is normal platform noise: ack it like any other no-op event.
	var payload eventPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return InboundMessage{}, EventIgnored, "unexpected envelope shape: " + err.Error()
	}

	if len(payload.Entry) == 0 {
		return InboundMessage{}, EventIgnored, "no entry"
	}
	entry := payload.Entry[0]
	if len(entry.Changes) == 0 {
		return InboundMessage{}, EventIgnored, "no changes"
	}
	value := entry.Changes[0].Value

	if len(value.Messages) == 0 {
		if len(value.Statuses) > 0 {
			return InboundMessage{}, EventIgnored, "status callback"
		}
		return InboundMessage{}, EventIgnored, "no messages"
	}

	msg := value.Messages[0]
	if msg.Type != "text" {
		return InboundMessage{}, EventIgnored, "unsupported message type: " + msg.Type
	}

	return InboundMessage{
		Sender:    msg.From,
		MessageID: msg.ID,
		Type:      msg.Type,
		Text:      msg.Text.Body,
	}, EventText, ""
}
