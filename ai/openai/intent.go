// Copyright 2025 Mercil
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/mercil/assetrank/ai"
	"github.com/mercil/assetrank/core"
)

// IntentParser implements ai.IntentParser using OpenAI-compatible chat APIs.
type IntentParser struct {
	client llms.Model
	logger *slog.Logger
}

// intentPriceRange is an internal type used for JSON unmarshaling.
// Null bounds mean the user did not constrain that side.
type intentPriceRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// intentPayload is the wrapper structure for the LLM's JSON response.
type intentPayload struct {
	AssetTypes     []string         `json:"asset_types"`
	MustHave       []string         `json:"must_have"`
	NiceToHave     []string         `json:"nice_to_have"`
	AvoidPoi       []string         `json:"avoid_poi"`
	PetFriendly    *bool            `json:"pet_friendly"`
	PriceRange     intentPriceRange `json:"price_range"`
	TargetLocation string           `json:"target_location"`
	AvoidLocation  string           `json:"avoid_location"`
}

// newIntentParser is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newIntentParser(config *ai.Config) (*IntentParser, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat/extraction
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ParserHost),
		openai.WithToken("none"),
		openai.WithModel(config.ParserModel),
	)
	if err != nil {
		return nil, err
	}

	return &IntentParser{
		client: client,
		logger: slog.Default().With("component", "openai-intent-parser"),
	}, nil
}

// NewIntentParser creates a new intent parser using the provided configuration.
//
// Returns ai.IntentParser interface to enforce abstraction.
func NewIntentParser(config *ai.Config) (ai.IntentParser, error) {
	return newIntentParser(config)
}

// ParseIntent extracts a structured search intent from a free-form query
// using an LLM. Malformed JSON responses are retried and repaired before
// giving up.
func (p *IntentParser) ParseIntent(ctx context.Context, query string) (*core.Intent, error) {
	systemPrompt := buildIntentPrompt()
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(query),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var payload intentPayload
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := p.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			p.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			p.logger.Debug("no choices returned from model")
			return core.EmptyIntent(), nil
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Models sometimes wrap the object in prose
		responseText = extractJSONObject(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		payload = intentPayload{}
		if err := json.Unmarshal([]byte(responseText), &payload); err != nil {
			lastErr = err
			p.logger.Warn("error parsing intent response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		p.logger.Error("failed to parse intent response after retries", "err", lastErr)
		return nil, lastErr
	}

	intent := payload.toIntent()
	if err := core.ValidateIntent(intent); err != nil {
		p.logger.Warn("model produced an invalid intent", "err", err)
		return nil, err
	}

	p.logger.Debug("intent parsed",
		"asset_types", intent.AssetTypes,
		"must_have", intent.MustHave,
		"nice_to_have", intent.NiceToHave,
		"avoid_poi", intent.AvoidPoi)
	return intent, nil
}

// toIntent converts the wire payload into a domain intent. POI keys are
// lowercased so a model that capitalizes them still matches the catalog.
func (p intentPayload) toIntent() *core.Intent {
	return &core.Intent{
		AssetTypes:  lowerAll(p.AssetTypes),
		MustHave:    lowerAll(p.MustHave),
		NiceToHave:  lowerAll(p.NiceToHave),
		AvoidPoi:    lowerAll(p.AvoidPoi),
		PetFriendly: core.TriStateFromPtr(p.PetFriendly),
		PriceRange: core.PriceRange{
			Min: p.PriceRange.Min,
			Max: p.PriceRange.Max,
		},
		TargetLocation: strings.TrimSpace(p.TargetLocation),
		AvoidLocation:  strings.TrimSpace(p.AvoidLocation),
	}
}

func lowerAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(strings.ToLower(v))
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
