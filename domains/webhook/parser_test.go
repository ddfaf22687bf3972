package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const textPayload = `{
	"object": "whatsapp_business_account",
	"entry": [{
		"id": "100000000000000",
		"changes": [{
			"field": "messages",
			"value": {
				"messaging_product": "whatsapp",
				"metadata": {"display_phone_number": "15550000000", "phone_number_id": "200000000000000"},
				"contacts": [{"profile": {"name": "Tester"}, "wa_id": "111"}],
				"messages": [{"from": "111", "id": "wamid.1", "timestamp": "1700000000", "type": "text", "text": {"body": "hi"}}]
			}
		}]
	}]
}`

const statusPayload = `{
	"entry": [{
		"changes": [{
			"value": {
				"messaging_product": "whatsapp",
				"statuses": [{"id": "wamid.out.1", "status": "delivered", "recipient_id": "111"}]
			}
		}]
	}]
}`

func TestParseEvent_TextMessage(t *testing.T) {
	msg, outcome, reason := ParseEvent([]byte(textPayload))
	require.Equal(t, EventText, outcome, "reason: %s", reason)
	assert.Equal(t, "111", msg.Sender)
	assert.Equal(t, "wamid.1", msg.MessageID)
	assert.Equal(t, "hi", msg.Text)
}

func TestParseEvent_StatusCallback(t *testing.T) {
	_, outcome, reason := ParseEvent([]byte(statusPayload))
	assert.Equal(t, EventIgnored, outcome)
	assert.Equal(t, "status callback", reason)
}

func TestParseEvent_MissingEntry(t *testing.T) {
	_, outcome, _ := ParseEvent([]byte(`{"object": "whatsapp_business_account"}`))
	assert.Equal(t, EventIgnored, outcome)
}

func TestParseEvent_NonTextType(t *testing.T) {
	payload := `{"entry":[{"changes":[{"value":{"messages":[{"from":"111","id":"wamid.2","type":"image"}]}}]}]}`
	_, outcome, reason := ParseEvent([]byte(payload))
	assert.Equal(t, EventIgnored, outcome)
	assert.Contains(t, reason, "image")
}

func TestParseEvent_MalformedBody(t *testing.T) {
	for _, body := range []string{
		"not json at all",
		"{truncated",
		"",
	} {
		_, outcome, _ := ParseEvent([]byte(body))
		assert.Equal(t, EventMalformed, outcome, "body: %s", body)
	}
}

func TestParseEvent_ValidJSONWrongShapeIsIgnored(t *testing.T) {
	for _, body := range []string{
		`[1, 2, 3]`,
		`{"entry": "foo"}`,
		`{"entry": [{"changes": 42}]}`,
		`"just a string"`,
	} {
		_, outcome, _ := ParseEvent([]byte(body))
		assert.Equal(t, EventIgnored, outcome, "body: %s", body)
	}
}

func TestParseEvent_EmptyArrays(t *testing.T) {
	for _, body := range []string{
		`{"entry":[]}`,
		`{"entry":[{"changes":[]}]}`,
		`{"entry":[{"changes":[{"value":{}}]}]}`,
	} {
		_, outcome, _ := ParseEvent([]byte(body))
		assert.Equal(t, EventIgnored, outcome, "body: %s", body)
	}
}
