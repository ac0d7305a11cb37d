package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/roamgen/roamgen/internal/app/models"
)

// CurrencySymbol is the canonical symbol every cost string is normalized to.
const CurrencySymbol = "₹"

// Normalize converts a parsed-but-untrusted document into a schema-conformant
// Itinerary. It never fails: every missing or mistyped field is replaced with
// a deterministic default, falling back to the originating trip request where
// one applies. This is the structural firewall between model output and the
// rest of the application, so nothing downstream has to re-check shape.
func Normalize(doc map[string]any, req models.TripRequest) models.Itinerary {
	startDate := ""
	if req.StartDate != nil {
		startDate = req.StartDate.Format("2006-01-02")
	}
	endDate := ""
	if req.EndDate != nil {
		endDate = req.EndDate.Format("2006-01-02")
	}

	it := models.Itinerary{
		ID:          stringField(doc, "id"),
		Title:       stringField(doc, "title"),
		Destination: stringField(doc, "destination"),
		StartDate:   stringField(doc, "startDate"),
		EndDate:     stringField(doc, "endDate"),
	}

	if it.ID == "" {
		it.ID = fmt.Sprintf("trip-%d", time.Now().UnixMilli())
	}
	if it.Title == "" {
		it.Title = "Trip to " + req.Destination
	}
	if it.Destination == "" {
		it.Destination = req.Destination
	}
	if it.StartDate == "" {
		it.StartDate = startDate
	}
	if it.EndDate == "" {
		it.EndDate = endDate
	}

	if totalCost := stringField(doc, "totalCost"); totalCost != "" {
		it.TotalCost = ensureCurrencySymbol(totalCost)
	} else {
		it.TotalCost = fmt.Sprintf("%s%d", CurrencySymbol, req.Budget)
	}

	it.CoverImage = ensureValidImageURL(stringField(doc, "coverImage"), req.Destination, "travel,landscape", coverImageSize)
	it.Days = normalizeDays(doc["days"], req.Destination)

	return it
}

func normalizeDays(raw any, destination string) []models.DayPlan {
	entries, ok := raw.([]any)
	if !ok {
		return []models.DayPlan{}
	}

	days := make([]models.DayPlan, 0, len(entries))
	for i, entry := range entries {
		dayDoc, ok := entry.(map[string]any)
		if !ok {
			dayDoc = map[string]any{}
		}

		day := models.DayPlan{
			Day:  i + 1,
			Date: stringField(dayDoc, "date"),
		}
		if n, ok := numberField(dayDoc, "day"); ok && n > 0 {
			day.Day = int(n)
		}
		day.Activities = normalizeActivities(dayDoc["activities"], day.Day, destination)
		days = append(days, day)
	}
	return days
}

func normalizeActivities(raw any, dayNumber int, destination string) []models.Activity {
	entries, ok := raw.([]any)
	if !ok {
		return []models.Activity{}
	}

	activities := make([]models.Activity, 0, len(entries))
	for i, entry := range entries {
		actDoc, ok := entry.(map[string]any)
		if !ok {
			actDoc = map[string]any{}
		}

		act := models.Activity{
			ID:          stringField(actDoc, "id"),
			Time:        stringField(actDoc, "time"),
			Title:       stringField(actDoc, "title"),
			Description: stringField(actDoc, "description"),
			Location:    stringField(actDoc, "location"),
			Type:        stringField(actDoc, "type"),
			Duration:    stringField(actDoc, "duration"),
			Cost:        ensureCurrencySymbol(stringField(actDoc, "cost")),
			Notes:       stringField(actDoc, "notes"),
		}
		if act.ID == "" {
			act.ID = fmt.Sprintf("act-%d-%d", dayNumber, i+1)
		}
		if act.Type == "" {
			// Any provided type string is passed through uninspected; only a
			// missing one is defaulted.
			act.Type = models.ActivityTypeOther
		}
		act.Rating = 4.0
		if r, ok := numberField(actDoc, "rating"); ok {
			act.Rating = r
		}
		keyword := act.Type
		if keyword == "" {
			keyword = "travel"
		}
		act.Image = ensureValidImageURL(stringField(actDoc, "image"), destination, keyword, activityImageSize)

		activities = append(activities, act)
	}
	return activities
}

const (
	activityImageSize = "600x400"
	coverImageSize    = "1200x800"
)

// ensureCurrencySymbol normalizes a cost string to the canonical currency
// symbol: already-canonical strings pass through, bare integers get prefixed,
// foreign symbols are substituted, anything else collapses to a zero value.
func ensureCurrencySymbol(cost string) string {
	if cost == "" {
		return CurrencySymbol + "0"
	}
	if strings.Contains(cost, CurrencySymbol) {
		return cost
	}
	if isDigits(cost) {
		return CurrencySymbol + cost
	}
	replaced := strings.NewReplacer("$", CurrencySymbol, "€", CurrencySymbol, "£", CurrencySymbol).Replace(cost)
	if strings.Contains(replaced, CurrencySymbol) {
		return replaced
	}
	return CurrencySymbol + "0"
}

// ensureValidImageURL keeps any value with a resolvable scheme and otherwise
// synthesizes an Unsplash search URL keyed on destination and keyword.
func ensureValidImageURL(url, destination, keyword, size string) string {
	if strings.HasPrefix(url, "http") {
		return url
	}
	return fmt.Sprintf("https://source.unsplash.com/random/%s/?%s,%s",
		size, imageKeyword(destination), imageKeyword(keyword))
}

func imageKeyword(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", ",")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func stringField(doc map[string]any, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}

func numberField(doc map[string]any, key string) (float64, bool) {
	switch v := doc[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
