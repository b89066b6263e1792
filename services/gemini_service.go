package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.5-flash-lite"

// A hung upstream call should stall its own request only, not forever.
const generateTimeout = 30 * time.Second

// TextGenerator produces raw model text for a prompt. Satisfied by the Gemini
// client and by test doubles.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator calls the Gemini API with an API key credential.
type GeminiGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiGenerator(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiGenerator{
		client: client,
		model:  client.GenerativeModel(geminiModel),
	}, nil
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to call Gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content in Gemini response")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected part type %T in Gemini response", resp.Candidates[0].Content.Parts[0])
	}
	return string(text), nil
}

func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

// NutritionAI turns free-text food descriptions into structured records via a
// text-generation model. All code-fence stripping and JSON heuristics live
// here; the rest of the system never sees raw model text.
type NutritionAI struct {
	gen TextGenerator
}

func NewNutritionAI(gen TextGenerator) *NutritionAI {
	return &NutritionAI{gen: gen}
}

// ParsedFood is the model's reading of one food description.
type ParsedFood struct {
	Quantity float64
	Unit     string
	ItemName string
}

// NutritionFacts are estimated values per one serving.
type NutritionFacts struct {
	Name     string
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
}

const parsingPrompt = `
Analyze the food description: "%s".
Extract the quantity, the unit of measurement, and the standardized item name.
Return a single JSON object with three keys: "quantity", "unit", and "item_name".
- "quantity" should be a number.
- "unit" should be a string like 'ml', 'g', 'slice', 'piece', 'bowl', 'cup', or 'unit' if not specified.
- "item_name" should be the food's name, singular and standardized (e.g., "boiled egg" instead of "eggs").

Example 1: "500ml of milk" -> {"quantity": 500, "unit": "ml", "item_name": "milk"}
Example 2: "2 slices of pepperoni pizza" -> {"quantity": 2, "unit": "slice", "item_name": "pepperoni pizza"}
Example 3: "An apple" -> {"quantity": 1, "unit": "unit", "item_name": "apple"}
`

const nutritionPrompt = `
Provide estimated nutritional information for ONE serving of "%s".
If the unit is 'g' or 'ml', provide data for a 100g or 100ml serving.
Otherwise, provide data for one piece/slice/unit.
Return a clean JSON object with keys: "name", "calories", "protein", "carbs", "fat", "fiber".
The name should be a cleaned-up version. All values must be numbers.
`

// ParseDescription extracts {quantity, unit, item_name} from a description.
// Missing keys fall back to 1.0 / "unit" / "".
func (s *NutritionAI) ParseDescription(ctx context.Context, description string) (*ParsedFood, error) {
	raw, err := s.gen.GenerateText(ctx, fmt.Sprintf(parsingPrompt, description))
	if err != nil {
		return nil, err
	}

	var reply struct {
		Quantity *float64 `json:"quantity"`
		Unit     *string  `json:"unit"`
		ItemName *string  `json:"item_name"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &reply); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}

	parsed := &ParsedFood{Quantity: 1.0, Unit: "unit"}
	if reply.Quantity != nil {
		parsed.Quantity = *reply.Quantity
	}
	if reply.Unit != nil {
		parsed.Unit = strings.ToLower(*reply.Unit)
	}
	if reply.ItemName != nil {
		parsed.ItemName = strings.ToLower(*reply.ItemName)
	}
	return parsed, nil
}

// EstimateNutrition asks the model for per-serving nutrition facts of a food
// name. Missing numeric keys default to 0; a missing name falls back to the
// requested one.
func (s *NutritionAI) EstimateNutrition(ctx context.Context, itemName string) (*NutritionFacts, error) {
	raw, err := s.gen.GenerateText(ctx, fmt.Sprintf(nutritionPrompt, itemName))
	if err != nil {
		return nil, err
	}

	var reply struct {
		Name     *string  `json:"name"`
		Calories *float64 `json:"calories"`
		Protein  *float64 `json:"protein"`
		Carbs    *float64 `json:"carbs"`
		Fat      *float64 `json:"fat"`
		Fiber    *float64 `json:"fiber"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &reply); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}

	facts := &NutritionFacts{Name: itemName}
	if reply.Name != nil && *reply.Name != "" {
		facts.Name = *reply.Name
	}
	if reply.Calories != nil {
		facts.Calories = *reply.Calories
	}
	if reply.Protein != nil {
		facts.Protein = *reply.Protein
	}
	if reply.Carbs != nil {
		facts.Carbs = *reply.Carbs
	}
	if reply.Fat != nil {
		facts.Fat = *reply.Fat
	}
	if reply.Fiber != nil {
		facts.Fiber = *reply.Fiber
	}
	return facts, nil
}

// Models often wrap JSON replies in markdown code fences.
func stripCodeFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}
