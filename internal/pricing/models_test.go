// internal/pricing/models_test.go
package pricing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivity_UnmarshalString(t *testing.T) {
	var a Activity
	require.NoError(t, json.Unmarshal([]byte(`"Visit Temple of the Tooth"`), &a))
	assert.Equal(t, "Visit Temple of the Tooth", a.Name)

	out, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, `"Visit Temple of the Tooth"`, string(out))
}

func TestActivity_UnmarshalObject(t *testing.T) {
	raw := `{"name":"Sigiriya Rock climb","duration":"4h"}`

	var a Activity
	require.NoError(t, json.Unmarshal([]byte(raw), &a))
	assert.Equal(t, "Sigiriya Rock climb", a.Name)

	// The original object shape survives a marshal round trip.
	out, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestItinerary_UnmarshalDistinguishesMissingDays(t *testing.T) {
	var noDays Itinerary
	require.NoError(t, json.Unmarshal([]byte(`{"tripName":"Sri Lanka"}`), &noDays))
	assert.Nil(t, noDays.Days)

	var emptyDays Itinerary
	require.NoError(t, json.Unmarshal([]byte(`{"days":[]}`), &emptyDays))
	assert.NotNil(t, emptyDays.Days)
	assert.Len(t, emptyDays.Days, 0)

	var nullDays Itinerary
	require.NoError(t, json.Unmarshal([]byte(`{"days":null}`), &nullDays))
	assert.Nil(t, nullDays.Days)
}

func TestItinerary_UnknownFieldsPassThrough(t *testing.T) {
	raw := `{
		"tripName": "Hill Country Loop",
		"summary": {"region": "Central"},
		"days": [{"day": 1, "location": "Kandy"}],
		"estimatedTotalBudget": 500
	}`

	var it Itinerary
	require.NoError(t, json.Unmarshal([]byte(raw), &it))
	require.Len(t, it.Days, 1)
	assert.Equal(t, "Kandy", it.Days[0].Location)
	assert.Equal(t, 500.0, it.EstimatedTotalBudget)

	it.EstimatedTotalBudget = 620

	out, err := json.Marshal(it)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.JSONEq(t, `"Hill Country Loop"`, string(decoded["tripName"]))
	assert.JSONEq(t, `{"region": "Central"}`, string(decoded["summary"]))
	assert.JSONEq(t, `620`, string(decoded["estimatedTotalBudget"]))
}

func TestPlannerInput_TravelerCount(t *testing.T) {
	tests := []struct {
		name     string
		input    PlannerInput
		expected int
	}{
		{"explicit travelers wins", PlannerInput{Travelers: 4, Adults: 1, Children: 1}, 4},
		{"adults plus children", PlannerInput{Adults: 2, Children: 1}, 3},
		{"empty input floors at one", PlannerInput{}, 1},
		{"children only", PlannerInput{Children: 2}, 2},
		{"negative floors at one", PlannerInput{Travelers: -3}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.TravelerCount())
		})
	}
}
