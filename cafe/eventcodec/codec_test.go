package eventcodec_test

import (
	"encoding/json"
	"testing"

	"github.com/code19m/errx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TechArp/CafeApp/cafe"
	"github.com/TechArp/CafeApp/cafe/eventcodec"
)

var (
	tab   = cafe.Tab{ID: uuid.MustParse("9a7d3b8c-4d55-4a64-a3d5-20b7f9f1a2c4"), TableNumber: 7}
	pepsi = cafe.Drink{MenuItem: cafe.MenuItem{MenuNumber: 1, Name: "Pepsi", Price: decimal.RequireFromString("1.50")}}
	soup  = cafe.Food{MenuItem: cafe.MenuItem{MenuNumber: 20, Name: "Soup", Price: decimal.RequireFromString("3.10")}}
	order = cafe.Order{Tab: tab, Drinks: []cafe.Drink{pepsi}, Foods: []cafe.Food{soup}}
)

func TestRoundTrip(t *testing.T) {
	events := []cafe.Event{
		cafe.TabOpened{Tab: tab},
		cafe.OrderPlaced{Order: order},
		cafe.DrinkServed{Drink: pepsi, TabID: tab.ID},
		cafe.FoodPrepared{Food: soup, TabID: tab.ID},
		cafe.FoodServed{Food: soup, TabID: tab.ID},
		cafe.OrderServed{Order: order, Payment: cafe.NewPayment(order)},
	}

	for _, event := range events {
		t.Run(event.Name(), func(t *testing.T) {
			raw, err := eventcodec.Encode(event)
			require.NoError(t, err)

			decoded, err := eventcodec.Decode(raw)
			require.NoError(t, err)
			assert.True(t, event.Equal(decoded), "expected %#v, got %#v", event, decoded)
		})
	}
}

func TestEncode_Envelope(t *testing.T) {
	raw, err := eventcodec.Encode(cafe.DrinkServed{Drink: pepsi, TabID: tab.ID})
	require.NoError(t, err)

	var env struct {
		Type  string `json:"type"`
		TabID string `json:"tab_id"`
		Data  struct {
			Drink struct {
				MenuNumber int    `json:"menu_number"`
				Name       string `json:"name"`
				Price      string `json:"price"`
			} `json:"drink"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))

	assert.Equal(t, cafe.EventDrinkServed, env.Type)
	assert.Equal(t, tab.ID.String(), env.TabID)
	assert.Equal(t, "Pepsi", env.Data.Drink.Name)
	assert.Equal(t, "1.5", env.Data.Drink.Price)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		expectedCode string
	}{
		{
			name:         "unknown type",
			raw:          `{"type":"tab.closed","tab_id":"9a7d3b8c-4d55-4a64-a3d5-20b7f9f1a2c4","data":{}}`,
			expectedCode: eventcodec.CodeUnknownEventType,
		},
		{
			name:         "not json",
			raw:          `not json`,
			expectedCode: eventcodec.CodeMalformedEnvelope,
		},
		{
			name:         "bad data",
			raw:          `{"type":"tab.opened","tab_id":"9a7d3b8c-4d55-4a64-a3d5-20b7f9f1a2c4","data":{"tab":"x"}}`,
			expectedCode: eventcodec.CodeMalformedEnvelope,
		},
		{
			name:         "tab id mismatch",
			raw:          `{"type":"drink.served","tab_id":"00000000-0000-0000-0000-000000000001","data":{"tab_id":"9a7d3b8c-4d55-4a64-a3d5-20b7f9f1a2c4"}}`,
			expectedCode: eventcodec.CodeMalformedEnvelope,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := eventcodec.Decode([]byte(tc.raw))
			require.Error(t, err)
			assert.True(t, errx.IsCodeIn(err, tc.expectedCode), "got %v", err)
		})
	}
}

func TestEncode_Nil(t *testing.T) {
	_, err := eventcodec.Encode(nil)
	require.Error(t, err)
}

func TestDecodeAll(t *testing.T) {
	var raws [][]byte
	for _, event := range []cafe.Event{cafe.TabOpened{Tab: tab}, cafe.OrderPlaced{Order: order}} {
		raw, err := eventcodec.Encode(event)
		require.NoError(t, err)
		raws = append(raws, raw)
	}

	events, err := eventcodec.DecodeAll(raws)
	require.NoError(t, err)

	state, ok := cafe.Replay(events).Value()
	require.True(t, ok)
	assert.True(t, cafe.PlacedOrder{Order: order}.Equal(state))

	_, err = eventcodec.DecodeAll(append(raws, []byte(`{}`)))
	require.Error(t, err)
}
