package openai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercil/assetrank/core"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`},
		{"leading prose", `Here is the result: {"a": 1}`, `{"a": 1}`},
		{"trailing prose", `{"a": 1} hope that helps`, `{"a": 1}`},
		{"no object", `nothing here`, `nothing here`},
		{"unterminated", `oops {"a": 1`, `{"a": 1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractJSONObject(tt.input))
		})
	}
}

func TestRepairJSON(t *testing.T) {
	// Missing opening quote before a key is recoverable
	repaired := repairJSON(`{"min": null, max": 5000000}`)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(repaired), &out))
	assert.Equal(t, 5000000.0, out["max"])

	// Well-formed input passes through untouched
	assert.Equal(t, `{"min": 1}`, repairJSON(`{"min": 1}`))
}

func TestIntentPayloadToIntent(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		raw := `{
			"asset_types": ["Condo"],
			"must_have": ["BTS_station"],
			"nice_to_have": ["park", ""],
			"avoid_poi": ["market"],
			"pet_friendly": true,
			"price_range": {"min": 3000000, "max": 5000000},
			"target_location": " Chatuchak park ",
			"avoid_location": ""
		}`

		var payload intentPayload
		require.NoError(t, json.Unmarshal([]byte(raw), &payload))

		intent := payload.toIntent()
		require.NoError(t, core.ValidateIntent(intent))

		assert.Equal(t, []string{"condo"}, intent.AssetTypes)
		assert.Equal(t, []string{"bts_station"}, intent.MustHave)
		assert.Equal(t, []string{"park"}, intent.NiceToHave)
		assert.Equal(t, []string{"market"}, intent.AvoidPoi)
		assert.Equal(t, core.TriStateTrue, intent.PetFriendly)
		require.NotNil(t, intent.PriceRange.Min)
		require.NotNil(t, intent.PriceRange.Max)
		assert.Equal(t, 3000000.0, *intent.PriceRange.Min)
		assert.Equal(t, 5000000.0, *intent.PriceRange.Max)
		assert.Equal(t, "Chatuchak park", intent.TargetLocation)
		assert.Empty(t, intent.AvoidLocation)
	})

	t.Run("nulls map to unconstrained", func(t *testing.T) {
		raw := `{
			"asset_types": [],
			"must_have": [],
			"nice_to_have": [],
			"avoid_poi": [],
			"pet_friendly": null,
			"price_range": {"min": null, "max": null}
		}`

		var payload intentPayload
		require.NoError(t, json.Unmarshal([]byte(raw), &payload))

		intent := payload.toIntent()
		require.NoError(t, core.ValidateIntent(intent))

		assert.Empty(t, intent.AssetTypes)
		assert.Equal(t, core.TriStateUnknown, intent.PetFriendly)
		assert.False(t, intent.PriceRange.Bounded())
	})
}

func TestBuildIntentPrompt(t *testing.T) {
	prompt := buildIntentPrompt()

	// The schema and both vocabularies must be embedded
	assert.Contains(t, prompt, `"asset_types"`)
	assert.Contains(t, prompt, "bts_station")
	assert.Contains(t, prompt, "detached_house")
	assert.Contains(t, prompt, "train_station")
}
