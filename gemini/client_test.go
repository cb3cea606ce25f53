package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iimrul/dhan/models"
)

func TestParseRecommendations(t *testing.T) {
	recs, err := parseRecommendations(`[
		{"name": "Kalo Jira Rice", "match_score": 92, "reason": "Drought resistant and suited to acidic soil."},
		{"name": "Balam Dhan", "match_score": 85.5, "reason": "Thrives in loamy soil at this pH."}
	]`)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Kalo Jira Rice", recs[0].Name)
	assert.Equal(t, 92.0, recs[0].MatchScore)
	assert.Equal(t, 85.5, recs[1].MatchScore)
}

func TestParseRecommendationsTrimsWhitespace(t *testing.T) {
	recs, err := parseRecommendations("\n  []  \n")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestParseRecommendationsRejectsNonArray(t *testing.T) {
	_, err := parseRecommendations(`{"name": "Kalo Jira Rice", "match_score": 92, "reason": "x"}`)
	assert.ErrorIs(t, err, ErrInvalidResponse)

	_, err = parseRecommendations("not json at all")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestBuildRecommendationPrompt(t *testing.T) {
	current := models.SoilReading{Fertility: "High", PH: 6.3, Moisture: 55}
	history := []models.HistoricalSoilEntry{
		{Day: "Aug 25", SoilReading: models.SoilReading{Fertility: "Medium", PH: 6.5, Moisture: 60}},
		{Day: "Aug 26", SoilReading: models.SoilReading{Fertility: "Medium", PH: 6.4, Moisture: 58}},
	}
	seeds := []models.Seed{
		{Name: "Chinigura Rice", Description: "Small-grain aromatic rice.", OptimalPH: "6.0-7.0", OptimalMoisture: "High"},
	}

	prompt := buildRecommendationPrompt(current, history, seeds)

	assert.Contains(t, prompt, "pH: 6.3")
	assert.Contains(t, prompt, "Moisture: 55%")
	assert.Contains(t, prompt, "Fertility: High")
	assert.Contains(t, prompt, "Aug 25: pH 6.5, Moisture 60%")
	assert.Contains(t, prompt, "Chinigura Rice: Small-grain aromatic rice. (Optimal pH: 6.0-7.0, Optimal Moisture: High)")
	assert.Contains(t, prompt, "top 3")
	assert.Contains(t, prompt, "exactly match one of the available seeds")
}
