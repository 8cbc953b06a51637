package event

import (
	"encoding/json"
	"fmt"
)

// Record returns the payload of an ingredient or recipe event
func (e Event) Record() (RecordPayloadV1, error) {
	return payloadAs[RecordPayloadV1](e)
}

// Session returns the payload of an auth event
func (e Event) Session() (SessionPayloadV1, error) {
	return payloadAs[SessionPayloadV1](e)
}

// payloadAs accepts the struct the MemoryBus carries as is. Anything else,
// such as a map from a decoded JSON event, goes through a JSON round trip.
func payloadAs[T any](e Event) (T, error) {
	switch p := e.Payload.(type) {
	case T:
		return p, nil
	case *T:
		if p != nil {
			return *p, nil
		}
	}

	var out T
	raw, err := json.Marshal(e.Payload)
	if err == nil {
		err = json.Unmarshal(raw, &out)
	}
	if err != nil {
		return out, fmt.Errorf("%s %s: %w", ErrMsgBadPayload, e.Type, err)
	}
	return out, nil
}
