package planner

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roamgen/roamgen/internal/app/models"
)

var budgetPrinter = message.NewPrinter(language.English)

// GenerateMockItinerary fabricates a deterministic itinerary from the request
// alone, with no network access. Unlike the AI path it always fills the whole
// requested day range. Used when no provider is configured and as the
// fallback when the pipeline fails.
func GenerateMockItinerary(req models.TripRequest) models.Itinerary {
	startDate := ""
	endDate := ""
	if req.StartDate != nil {
		startDate = req.StartDate.Format("2006-01-02")
	}
	if req.EndDate != nil {
		endDate = req.EndDate.Format("2006-01-02")
	}

	return models.Itinerary{
		ID:          fmt.Sprintf("trip-%d", time.Now().UnixMilli()),
		Title:       "Exploring " + req.Destination,
		Destination: req.Destination,
		StartDate:   startDate,
		EndDate:     endDate,
		TotalCost:   budgetPrinter.Sprintf("%s%d", CurrencySymbol, req.Budget),
		CoverImage:  ensureValidImageURL("", req.Destination, "travel,landscape", coverImageSize),
		Days:        generateMockDays(req),
	}
}

func generateMockDays(req models.TripRequest) []models.DayPlan {
	numDays := req.DurationDays()
	if numDays == 0 {
		numDays = 1
	}

	days := make([]models.DayPlan, 0, numDays)
	for i := 0; i < numDays; i++ {
		date := ""
		if req.StartDate != nil {
			date = req.StartDate.AddDate(0, 0, i).Format("Jan 2, 2006")
		}
		days = append(days, models.DayPlan{
			Day:        i + 1,
			Date:       date,
			Activities: generateMockActivities(i+1, req.Destination),
		})
	}
	return days
}

func generateMockActivities(day int, destination string) []models.Activity {
	morning := models.Activity{
		ID:          fmt.Sprintf("act-%d-1", day),
		Time:        "09:00",
		Title:       fmt.Sprintf("Exploring %s - Day %d", destination, day),
		Description: fmt.Sprintf("Start your day with a delicious breakfast before heading out to explore more of %s.", destination),
		Location:    destination,
		Type:        models.ActivityTypeAttraction,
		Duration:    "2 hours",
		Cost:        CurrencySymbol + "0",
		Rating:      4.0,
		Image:       ensureValidImageURL("", destination, "landmark", activityImageSize),
	}
	if day == 1 {
		morning.Title = "Arrival and Check-in"
		morning.Description = fmt.Sprintf("Welcome to %s! After checking in to your accommodation, take some time to relax and get settled.", destination)
		morning.Type = models.ActivityTypeAccommodation
		morning.Image = ensureValidImageURL("", destination, "hotel", activityImageSize)
	}

	return []models.Activity{
		morning,
		{
			ID:          fmt.Sprintf("act-%d-2", day),
			Time:        "12:30",
			Title:       "Lunch at Local Restaurant",
			Description: fmt.Sprintf("Enjoy a delicious meal at one of the popular local restaurants in %s.", destination),
			Location:    destination + " City Center",
			Type:        models.ActivityTypeFood,
			Duration:    "1.5 hours",
			Cost:        CurrencySymbol + "500",
			Rating:      4.5,
			Image:       ensureValidImageURL("", destination, "food,restaurant", activityImageSize),
		},
		{
			ID:          fmt.Sprintf("act-%d-3", day),
			Time:        "14:00",
			Title:       "Visit to " + mockAttraction(destination, day),
			Description: fmt.Sprintf("Explore one of the most famous attractions in %s.", destination),
			Location:    destination,
			Type:        models.ActivityTypeAttraction,
			Duration:    "3 hours",
			Cost:        CurrencySymbol + "300",
			Rating:      4.8,
			Image:       ensureValidImageURL("", destination, "attraction", activityImageSize),
		},
		{
			ID:          fmt.Sprintf("act-%d-4", day),
			Time:        "19:00",
			Title:       "Dinner at " + mockRestaurant(destination, day),
			Description: "End your day with a wonderful dinner experience.",
			Location:    destination + " Downtown",
			Type:        models.ActivityTypeFood,
			Duration:    "2 hours",
			Cost:        CurrencySymbol + "800",
			Rating:      4.7,
			Image:       ensureValidImageURL("", destination, "dinner,restaurant", activityImageSize),
		},
	}
}

func mockAttraction(destination string, day int) string {
	attractions := []string{
		destination + " Historical Museum",
		destination + " National Park",
		destination + " Art Gallery",
		destination + " Cathedral",
		destination + " Botanical Gardens",
		destination + " Castle",
		destination + " Zoo",
		destination + " Aquarium",
		destination + " Science Center",
		"Old Town " + destination,
	}
	return attractions[day%len(attractions)]
}

func mockRestaurant(destination string, day int) string {
	restaurants := []string{
		"The " + destination + " Kitchen",
		destination + " Bistro",
		"Taste of " + destination,
		destination + " Grill",
		destination + " Fine Dining",
		"Local Flavors",
		destination + " Street Food",
		destination + " Fusion",
		"Traditional " + destination,
		destination + " Seafood",
	}
	return restaurants[(day+3)%len(restaurants)]
}
