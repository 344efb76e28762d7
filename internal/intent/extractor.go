// Package intent extracts structured search intent from free-form text
// using a chat model. Extraction never fails outward: every failure path
// degrades to an "unknown" intent the caller can branch on.
package intent

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/qarenlabs/travelsearch/internal/models"
)

const systemPrompt = `You are an intent extraction engine.

Your job is to analyze a user's search query and extract structured intent data.

You must:
- Understand Arabic (formal and dialect), English, or mixed text.
- Handle spelling mistakes and phonetic writing.
- Infer the most likely intent and domain.
- Output ONLY valid JSON.
- Never ask questions.
- Never explain.
- Never add extra text.

If the input is a greeting, irrelevant, or unclear, set intent = "unknown".
Use confidence score between 0.0 and 1.0.

Allowed intent values: travel, product, service, unknown.
Allowed domain examples:
- travel.flight
- product.smartphone
- product.laptop
- product.clothing
- product.furniture
- service.internet_home
- service.insurance
If not sure, domain must be null.

Allowed priority values:
cheapest, best_value, top_rated, most_popular, fastest, newest, or null.

Output JSON format:
{
  "intent": "...",
  "domain": "... or null",
  "entities": { ... },
  "priority": "... or null",
  "confidence": 0.0
}
`

const (
	extractTimeout = 30 * time.Second

	// Confidence reported when extraction degraded rather than ran.
	degradedConfidence = 0.1
)

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Extractor struct {
	client chatCompleter
	model  string
}

// NewExtractor builds an extractor. An empty API key is not an error: the
// extractor stays usable and short-circuits to unknown without spending a
// model call.
func NewExtractor(apiKey string) *Extractor {
	e := &Extractor{model: openai.GPT4oMini}
	if apiKey != "" {
		e.client = openai.NewClient(apiKey)
	}
	return e
}

func newExtractorWithClient(client chatCompleter) *Extractor {
	return &Extractor{client: client, model: openai.GPT4oMini}
}

// Extract returns structured intent for the given text. It never returns
// an error; diagnostics ride along in entities["_error"].
func (e *Extractor) Extract(ctx context.Context, text string) models.IntentResult {
	if e.client == nil {
		return models.UnknownIntent(degradedConfidence)
	}

	ctx, cancel := context.WithTimeout(ctx, extractTimeout)
	defer cancel()

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		// go-openai omits a zero temperature from the request body, so pin
		// determinism with the smallest value it will serialize.
		Temperature: math.SmallestNonzeroFloat32,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "Extract intent from this user input:\n\n\"" + text + "\""},
		},
	})
	if err != nil {
		return degraded(err)
	}
	if len(resp.Choices) == 0 {
		return degraded(errors.New("model returned no choices"))
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		content = "{}"
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(stripFence(content)), &data); err != nil {
		return degraded(err)
	}

	return backfill(data)
}

func degraded(cause error) models.IntentResult {
	result := models.UnknownIntent(degradedConfidence)
	result.Entities["_error"] = cause.Error()
	return result
}

// stripFence removes a markdown code-fence wrapper, with or without a
// "json" language tag, which some models add despite the prompt.
func stripFence(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.Trim(t, "`")
	t = strings.TrimSpace(t)
	if strings.HasPrefix(t, "json") {
		t = strings.TrimSpace(strings.TrimPrefix(t, "json"))
	}
	return t
}

// backfill guarantees a structurally complete result even when the model
// omits or mistypes fields.
func backfill(data map[string]any) models.IntentResult {
	result := models.IntentResult{
		Intent:   models.IntentUnknown,
		Entities: map[string]any{},
	}

	if intent, ok := data["intent"].(string); ok && intent != "" {
		result.Intent = intent
	}
	if domain, ok := data["domain"].(string); ok && domain != "" {
		result.Domain = &domain
	}
	if entities, ok := data["entities"].(map[string]any); ok && entities != nil {
		result.Entities = entities
	}
	if priority, ok := data["priority"].(string); ok && priority != "" {
		result.Priority = &priority
	}
	result.Confidence = asFloat(data["confidence"])

	return result
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	}
	return 0.0
}
