package openai

import (
	"fmt"
	"strings"

	"github.com/mercil/assetrank/ai"
)

const intentResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "asset_types": {"type": "array", "items": {"type": "string"}},
    "must_have": {"type": "array", "items": {"type": "string"}},
    "nice_to_have": {"type": "array", "items": {"type": "string"}},
    "avoid_poi": {"type": "array", "items": {"type": "string"}},
    "pet_friendly": {"type": ["boolean", "null"]},
    "price_range": {
      "type": "object",
      "properties": {
        "min": {"type": ["number", "null"]},
        "max": {"type": ["number", "null"]}
      },
      "required": ["min", "max"]
    },
    "target_location": {"type": "string"},
    "avoid_location": {"type": "string"}
  },
  "required": ["asset_types", "must_have", "nice_to_have", "avoid_poi", "pet_friendly", "price_range"],
  "additionalProperties": false
}`

const intentPromptTemplate = `You are a real-estate search specialist. Analyze the property search query the
user provides and convert it into a single JSON object.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Field rules:
- "asset_types": the property types the user is looking for, as specific as possible.
  Allowed values: %s.
  A generic "house" means: ["detached_house", "twin_house"]. If no type is mentioned, use [].
- "must_have": points of interest the user requires, using the standard POI keys.
  If none are mentioned, use [].
- "nice_to_have": points of interest the user would like but does not require. If none, use [].
- "avoid_poi": points of interest the user wants to stay away from, e.g. "not near a school",
  "away from the crowds (market/mall)". If none, use [].
- "pet_friendly": true if the user wants to keep pets, false if the user explicitly does not
  want pets around, null if pets are not mentioned.
- "price_range": the user's budget, converted to plain numbers.
  "5M" -> 5000000, "3.5 million" -> 3500000.
  "under 5M" -> {"min": null, "max": 5000000}. "3-5M" -> {"min": 3000000, "max": 5000000}.
  If price is not mentioned, use {"min": null, "max": null}.
- "target_location": a named place the user wants to live near ("near Chatuchak park",
  "around Thonglor"). Empty string if none.
- "avoid_location": a named place the user wants to stay away from. Empty string if none.

Standard POI keys (must_have, nice_to_have and avoid_poi may only contain these): %s.

POI key normalization:
- "bts", "skytrain" -> "bts_station"
- "mrt", "subway", "underground" -> "mrt"
- "train", "railway station" -> "train_station"
  Never map "skytrain" or "subway" to "train_station"; an electric transit line and the
  state railway are different things.
- "7-11", "seven eleven", "corner shop" -> "convenience_store"
- "mall", "department store" -> "shopping_mall"
- "clinic" -> "hospital"
- "vet", "animal clinic" -> "veterinary"
- "green space" -> "park"

Respond with JSON only.`

// buildIntentPrompt creates the system prompt with the schema, asset type
// labels and POI keys embedded.
func buildIntentPrompt() string {
	return fmt.Sprintf(intentPromptTemplate,
		intentResponseSchema,
		strings.Join(ai.AssetTypeLabels, ", "),
		strings.Join(ai.PoiKeys, ", "))
}
