package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/iimrul/dhan/models"
)

const defaultModel = "gemini-2.5-flash"

// ErrInvalidResponse means the model answered with something that is not the
// declared recommendation array.
var ErrInvalidResponse = errors.New("invalid response format from AI")

// Recommendation is one AI-suggested seed-to-soil match.
type Recommendation struct {
	Name       string  `json:"name"`
	MatchScore float64 `json:"match_score"` // 0-100
	Reason     string  `json:"reason"`
}

// recommendationSchema constrains the model to a JSON array of
// {name, match_score, reason} objects so the response parses reliably.
var recommendationSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name": {
				Type:        genai.TypeString,
				Description: "The name of the recommended seed.",
			},
			"match_score": {
				Type:        genai.TypeNumber,
				Description: "A score from 0-100 indicating the suitability of the seed.",
			},
			"reason": {
				Type:        genai.TypeString,
				Description: "A brief justification for the recommendation.",
			},
		},
		Required: []string{"name", "match_score", "reason"},
	},
}

// Client wraps the Gemini API for the two calls the backend makes:
// structured seed recommendations and the Dhan-Bot chat.
type Client struct {
	client *genai.Client
	model  string
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Client{client: client, model: defaultModel}, nil
}

// Recommend asks the model for the top 3 seed matches for the given soil
// state. Any transport or parse failure collapses into a single coarse error;
// the caller surfaces it as one retryable failure.
func (c *Client) Recommend(
	ctx context.Context,
	current models.SoilReading,
	history []models.HistoricalSoilEntry,
	seeds []models.Seed,
) ([]Recommendation, error) {
	prompt := buildRecommendationPrompt(current, history, seeds)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   recommendationSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("recommendation request failed: %w", err)
	}

	return parseRecommendations(resp.Text())
}

// parseRecommendations decodes the raw model text. A response that is valid
// JSON but not an array (the schema notwithstanding) is rejected.
func parseRecommendations(text string) ([]Recommendation, error) {
	trimmed := strings.TrimSpace(text)
	var recs []Recommendation
	if err := json.Unmarshal([]byte(trimmed), &recs); err != nil {
		return nil, ErrInvalidResponse
	}
	return recs, nil
}

func buildRecommendationPrompt(
	current models.SoilReading,
	history []models.HistoricalSoilEntry,
	seeds []models.Seed,
) string {
	var b strings.Builder

	b.WriteString("You are an expert agricultural advisor for Bangladeshi rice farmers.\n")
	b.WriteString("Your task is to recommend the top 3 most suitable native rice seeds based on the provided soil data.\n\n")

	b.WriteString("Current Soil Conditions:\n")
	fmt.Fprintf(&b, "- pH: %.1f\n", current.PH)
	fmt.Fprintf(&b, "- Moisture: %.0f%%\n", current.Moisture)
	fmt.Fprintf(&b, "- Fertility: %s\n\n", current.Fertility)

	b.WriteString("Historical Soil Data (last 7 days):\n")
	for _, d := range history {
		fmt.Fprintf(&b, "- %s: pH %.1f, Moisture %.0f%%\n", d.Day, d.PH, d.Moisture)
	}
	b.WriteString("\n")

	b.WriteString("Available Native Rice Seeds:\n")
	for _, s := range seeds {
		fmt.Fprintf(&b, "- %s: %s (Optimal pH: %s, Optimal Moisture: %s)\n",
			s.Name, s.Description, s.OptimalPH, s.OptimalMoisture)
	}
	b.WriteString("\n")

	b.WriteString("Analyze the data and provide your top 3 recommendations. For each, include the seed name, a match score from 0 to 100, and a brief, clear reason for the recommendation.\n")
	b.WriteString("Ensure the recommended seed names exactly match one of the available seeds.\n")

	return b.String()
}
