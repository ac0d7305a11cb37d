package planner

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/roamgen/roamgen/internal/app/models"
)

// System instructions for the two completion passes. The generation
// instruction restates every schema rule because the upstream model is the
// unreliable party here; the extractor and repairer exist for the cases where
// it ignores them anyway.
const (
	generationSystemInstruction = `You are a meticulous travel-planning assistant that ONLY returns valid JSON. Your response MUST be a complete, valid JSON object with no text before or after. Do not use markdown code blocks. Do not include explanations. You MUST include ALL days in the date range, not just some days. You MUST provide specific accommodation recommendations with names, prices, and ratings. You MUST include working image URLs for all activities and the cover image. You MUST provide detailed descriptions (2-3 sentences minimum) for each activity. All monetary values must include the ₹ symbol and be realistic and sum to no more than the stated budget. Each activity must include fields: id, time (HH:MM), title, description, location, type, duration, cost, rating, image, notes. Do NOT invent fields or omit required fields. Obey the field names and data types in the schema precisely. Ensure all JSON is properly formatted with no trailing commas or syntax errors.`

	enhancementSystemInstruction = `You are a travel content designer specialized in creating beautiful, engaging travel itineraries. Your task is to enhance and format travel itinerary data into a visually appealing format.`
)

// BuildItineraryPrompt renders the generation prompt for a trip request.
// Pure function: optional fields are omitted rather than rendered empty, and
// the computed day count is stated explicitly so the model has no excuse to
// return a partial range.
func BuildItineraryPrompt(req models.TripRequest) string {
	numDays := req.DurationDays()
	tripDuration := "unspecified duration"
	if numDays > 0 {
		tripDuration = fmt.Sprintf("%d days", numDays)
	}

	startDate := "unspecified start date"
	startDateISO := ""
	if req.StartDate != nil {
		startDate = req.StartDate.Format("January 2, 2006")
		startDateISO = req.StartDate.Format("2006-01-02")
	}
	endDate := "unspecified end date"
	endDateISO := ""
	if req.EndDate != nil {
		endDate = req.EndDate.Format("January 2, 2006")
		endDateISO = req.EndDate.Format("2006-01-02")
	}

	var details strings.Builder
	fmt.Fprintf(&details, "- Budget: ₹%d (budgetINR: %d)\n", req.Budget, req.Budget)
	groupSize := req.GroupSize
	if groupSize < 1 {
		groupSize = 1
	}
	fmt.Fprintf(&details, "- Group size: %d people\n", groupSize)
	fmt.Fprintf(&details, "- Interests: %s\n", orNotSpecified(req.Interests))
	fmt.Fprintf(&details, "- Travel style: %s\n", orNotSpecified(req.TravelStyle))
	appendDetail(&details, "Spending priority", req.SpendingPriority)
	appendDetail(&details, "Accommodation type", req.AccommodationType)
	appendDetail(&details, "Room configuration", req.RoomConfig)
	appendDetail(&details, "Transportation/rental needs", req.TransportNeeds)
	appendDetail(&details, "Accessibility needs", req.AccessibilityNeeds)
	appendDetail(&details, "Dietary restrictions", req.DietaryNeeds)
	appendDetail(&details, "Food preferences", req.FoodPreferences)
	appendDetail(&details, "Must-visit places", req.MustVisit)

	return fmt.Sprintf(`
Create a detailed travel itinerary for a trip to %s from %s to %s (%s).

Trip details:
%s
IMPORTANT REQUIREMENTS:
1. Create a complete day-by-day itinerary for ALL %d days of the trip (from %s to %s inclusive)
2. Recommend SPECIFIC accommodation options with exact names, locations, prices, and ratings
3. Include REAL, WORKING image URLs for all activities (use Unsplash URLs if needed: https://source.unsplash.com/random/600x400/?[keyword])
4. Provide DETAILED descriptions for each activity (at least 2-3 sentences)
5. Include specific restaurant recommendations with cuisine types and price ranges
6. Ensure all costs are in INR with the ₹ symbol

Please provide a complete day-by-day itinerary with:
1. A descriptive title for the trip
2. A list of days with date and activities
3. For each activity include:
   - Time
   - Title
   - Detailed description (2-3 sentences minimum)
   - Specific location with address if applicable
   - Type (attraction, food, transport, accommodation, or other)
   - Duration
   - Approximate cost with ₹ symbol
   - A realistic rating (1-5)
   - A working image URL (use Unsplash if needed)
   - Additional notes or tips

CRITICAL: Your response MUST be a valid JSON object with no text before or after. Do not use markdown code blocks. Do not include explanations.

The JSON must follow this exact structure:
{
  "id": "trip-[unique-id]",
  "title": "Descriptive title for the trip",
  "destination": "%s",
  "startDate": "%s",
  "endDate": "%s",
  "totalCost": "Estimated total cost in INR with ₹ symbol",
  "coverImage": "URL for a cover image (must be a working URL)",
  "days": [
    {
      "day": 1,
      "date": "Formatted date",
      "activities": [
        {
          "id": "act-1-1",
          "time": "09:00",
          "title": "Activity title",
          "description": "Detailed description (2-3 sentences minimum)",
          "location": "Specific location with address if applicable",
          "type": "attraction|food|transport|accommodation|other",
          "duration": "Duration in hours",
          "cost": "₹1000",
          "rating": 4.5,
          "image": "https://source.unsplash.com/random/600x400/?[keyword]",
          "notes": "Additional notes or tips"
        }
      ]
    }
  ]
}

Ensure all JSON is properly formatted with no trailing commas or syntax errors. Double-check that all quotes are properly escaped within strings. Verify that ALL image URLs are working URLs.
`, req.Destination, startDate, endDate, tripDuration,
		details.String(),
		numDays, startDate, endDate,
		req.Destination, startDateISO, endDateISO)
}

// BuildEnhancementPrompt renders the second-pass prompt that asks the
// enhancement model to restyle an already-normalized itinerary into richer
// JSON plus standalone HTML.
func BuildEnhancementPrompt(it models.Itinerary) string {
	serialized, err := json.MarshalIndent(it, "", "  ")
	if err != nil {
		// Itinerary is a plain value type, marshal cannot realistically fail;
		// fall back to the compact form to keep the function total.
		serialized, _ = json.Marshal(it)
	}

	return fmt.Sprintf(`
I have a travel itinerary in JSON format that I need you to enhance and format into a beautiful, engaging travel plan.
Please analyze this itinerary data, add more descriptive details, and format it in a way that would be visually appealing on a website.

Here's the itinerary data:
%s

Please return your response as a JSON object with two fields:
1. "formattedItinerary": An enhanced version of the original itinerary JSON with more descriptive details
2. "htmlContent": HTML content that presents the itinerary in a beautiful, structured format suitable for a travel website

For the HTML content:
- Use semantic HTML5
- Include sections for each day
- Format activities in a visually appealing way
- Add engaging descriptions
- Highlight important information like costs, times, and locations
- Make it visually structured and easy to read
- Do not include any CSS or JavaScript
`, string(serialized))
}

func appendDetail(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) != "" {
		fmt.Fprintf(b, "- %s: %s\n", label, value)
	}
}

func orNotSpecified(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Not specified"
	}
	return value
}
