package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/roamgen/roamgen/internal/app/models"
)

func TestBuildItineraryPrompt(t *testing.T) {
	req := testRequest()
	req.MustVisit = "Hawa Mahal"
	req.DietaryNeeds = "vegetarian"

	prompt := BuildItineraryPrompt(req)

	assert.Contains(t, prompt, "trip to Jaipur")
	assert.Contains(t, prompt, "March 10, 2026")
	assert.Contains(t, prompt, "March 13, 2026")
	assert.Contains(t, prompt, "ALL 3 days")
	assert.Contains(t, prompt, "- Budget: ₹50000 (budgetINR: 50000)")
	assert.Contains(t, prompt, "- Group size: 2 people")
	assert.Contains(t, prompt, "- Interests: history, food")
	assert.Contains(t, prompt, "- Must-visit places: Hawa Mahal")
	assert.Contains(t, prompt, "- Dietary restrictions: vegetarian")
	// ISO dates go into the schema example so the model echoes them back.
	assert.Contains(t, prompt, `"startDate": "2026-03-10"`)
	assert.Contains(t, prompt, `"endDate": "2026-03-13"`)
	assert.Contains(t, prompt, "MUST be a valid JSON object")
}

func TestBuildItineraryPromptOptionalFieldsOmitted(t *testing.T) {
	req := models.TripRequest{Destination: "Kochi", Budget: 20000}

	prompt := BuildItineraryPrompt(req)

	assert.Contains(t, prompt, "unspecified start date")
	assert.Contains(t, prompt, "unspecified duration")
	assert.Contains(t, prompt, "- Interests: Not specified")
	assert.Contains(t, prompt, "- Travel style: Not specified")
	// Group size floors at one traveller.
	assert.Contains(t, prompt, "- Group size: 1 people")
	// Empty optionals produce no detail line at all.
	assert.NotContains(t, prompt, "Must-visit places")
	assert.NotContains(t, prompt, "Accessibility needs")
}

func TestBuildItineraryPromptSingleDate(t *testing.T) {
	start := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	req := models.TripRequest{Destination: "Udaipur", Budget: 1, StartDate: &start}

	prompt := BuildItineraryPrompt(req)

	assert.Contains(t, prompt, "June 1, 2026")
	assert.Contains(t, prompt, "unspecified end date")
	assert.Contains(t, prompt, "unspecified duration")
}

func TestBuildEnhancementPrompt(t *testing.T) {
	it := GenerateMockItinerary(testRequest())

	prompt := BuildEnhancementPrompt(it)

	assert.Contains(t, prompt, it.ID)
	assert.Contains(t, prompt, `"destination": "Jaipur"`)
	assert.Contains(t, prompt, `"formattedItinerary"`)
	assert.Contains(t, prompt, `"htmlContent"`)
	assert.Contains(t, prompt, "Do not include any CSS or JavaScript")
}
