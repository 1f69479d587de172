package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	decodeRequest := func(payload string, want Amount) func(t *testing.T) {
		return func(t *testing.T) {
			var block RawItinerary
			require.NoError(t, json.Unmarshal([]byte(payload), &block))

			if diff := cmp.Diff(want, block.Price); diff != "" {
				t.Fatalf("price mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("number", decodeRequest(`{"price": 512, "flights": []}`, 512))
	t.Run("numeric_string", decodeRequest(`{"price": " 640.5 ", "flights": []}`, 640.5))
	t.Run("non_numeric_string", decodeRequest(`{"price": "call us", "flights": []}`, 0))
	t.Run("null", decodeRequest(`{"price": null, "flights": []}`, 0))
	t.Run("missing", decodeRequest(`{"flights": []}`, 0))
}

func TestRawDuration_UnmarshalJSON(t *testing.T) {
	minutes := func(m int) *int { return &m }

	decodeRequest := func(payload string, want RawDuration) func(t *testing.T) {
		return func(t *testing.T) {
			var leg RawLeg
			require.NoError(t, json.Unmarshal([]byte(payload), &leg))

			if diff := cmp.Diff(want, leg.Duration); diff != "" {
				t.Fatalf("duration mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("minutes", decodeRequest(`{"duration": 125}`, RawDuration{Minutes: minutes(125)}))
	t.Run("fractional_minutes", decodeRequest(`{"duration": 89.6}`, RawDuration{Minutes: minutes(90)}))
	t.Run("text", decodeRequest(`{"duration": "2h 5m"}`, RawDuration{Text: "2h 5m"}))
	t.Run("missing", decodeRequest(`{}`, RawDuration{}))
}

func TestFlexString_UnmarshalJSON(t *testing.T) {
	var params SearchParameters
	require.NoError(t, json.Unmarshal([]byte(`{"travel_class": 1}`), &params))
	require.Equal(t, FlexString("1"), params.TravelClass)

	require.NoError(t, json.Unmarshal([]byte(`{"travel_class": "business"}`), &params))
	require.Equal(t, FlexString("business"), params.TravelClass)
}
