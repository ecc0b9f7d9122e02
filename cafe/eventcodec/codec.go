// Package eventcodec encodes tab events into self describing JSON envelopes and back.
package eventcodec

import (
	"encoding/json"

	"github.com/code19m/errx"
	"github.com/google/uuid"

	"github.com/TechArp/CafeApp/cafe"
)

const (
	// CodeUnknownEventType is returned when an envelope names an event this package does not know.
	CodeUnknownEventType = "UNKNOWN_EVENT_TYPE"

	// CodeMalformedEnvelope is returned when an envelope or its data can not be parsed.
	CodeMalformedEnvelope = "MALFORMED_EVENT_ENVELOPE"
)

// Envelope is the wire form of an event.
type Envelope struct {
	Type  string          `json:"type"`
	TabID uuid.UUID       `json:"tab_id"`
	Data  json.RawMessage `json:"data"`
}

// Encode wraps event into an envelope.
func Encode(event cafe.Event) ([]byte, error) {
	if event == nil {
		return nil, errx.New("can not encode nil event",
			errx.WithCode(CodeUnknownEventType),
			errx.WithType(errx.T_Validation),
		)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errx.Wrap(err, errx.WithDetails(errx.D{"event_type": event.Name()}))
	}

	raw, err := json.Marshal(Envelope{
		Type:  event.Name(),
		TabID: event.AggregateID(),
		Data:  data,
	})
	if err != nil {
		return nil, errx.Wrap(err, errx.WithDetails(errx.D{"event_type": event.Name()}))
	}
	return raw, nil
}

// Decode parses an envelope produced by Encode.
func Decode(raw []byte) (cafe.Event, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errx.Wrap(err,
			errx.WithCode(CodeMalformedEnvelope),
			errx.WithType(errx.T_Validation),
		)
	}

	switch env.Type {
	case cafe.EventTabOpened:
		return decodeAs[cafe.TabOpened](env)
	case cafe.EventOrderPlaced:
		return decodeAs[cafe.OrderPlaced](env)
	case cafe.EventDrinkServed:
		return decodeAs[cafe.DrinkServed](env)
	case cafe.EventFoodPrepared:
		return decodeAs[cafe.FoodPrepared](env)
	case cafe.EventFoodServed:
		return decodeAs[cafe.FoodServed](env)
	case cafe.EventOrderServed:
		return decodeAs[cafe.OrderServed](env)
	}

	return nil, errx.New("unknown event type",
		errx.WithCode(CodeUnknownEventType),
		errx.WithType(errx.T_Validation),
		errx.WithDetails(errx.D{"event_type": env.Type, "tab_id": env.TabID.String()}),
	)
}

// DecodeAll decodes a stream of envelopes in order, stopping at the first error.
func DecodeAll(raws [][]byte) ([]cafe.Event, error) {
	events := make([]cafe.Event, 0, len(raws))
	for i, raw := range raws {
		event, err := Decode(raw)
		if err != nil {
			return nil, errx.Wrap(err, errx.WithDetails(errx.D{"position": i}))
		}
		events = append(events, event)
	}
	return events, nil
}

func decodeAs[E cafe.Event](env Envelope) (cafe.Event, error) {
	var event E
	if err := json.Unmarshal(env.Data, &event); err != nil {
		return nil, errx.Wrap(err,
			errx.WithCode(CodeMalformedEnvelope),
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"event_type": env.Type}),
		)
	}

	if event.AggregateID() != env.TabID {
		return nil, errx.New("envelope tab id does not match event",
			errx.WithCode(CodeMalformedEnvelope),
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{
				"event_type":   env.Type,
				"envelope_tab": env.TabID.String(),
				"event_tab":    event.AggregateID().String(),
			}),
		)
	}
	return event, nil
}
