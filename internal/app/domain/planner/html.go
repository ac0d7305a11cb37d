package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/roamgen/roamgen/internal/app/models"
)

// GenerateFallbackHTML renders a plain semantic-HTML version of an itinerary.
// Used when the enhancement pass is disabled or fails, so the display layer
// always has HTML content to show.
func GenerateFallbackHTML(it models.Itinerary) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<div class="itinerary-container">`+"\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", it.Title)
	fmt.Fprintf(&b, "<p><strong>Destination:</strong> %s</p>\n", it.Destination)
	fmt.Fprintf(&b, "<p><strong>Dates:</strong> %s - %s</p>\n", formatDisplayDate(it.StartDate), formatDisplayDate(it.EndDate))
	fmt.Fprintf(&b, "<p><strong>Total Cost:</strong> %s</p>\n", it.TotalCost)

	for _, day := range it.Days {
		fmt.Fprintf(&b, `<div class="day-container">`+"\n")
		fmt.Fprintf(&b, "<h2>Day %d - %s</h2>\n", day.Day, day.Date)
		fmt.Fprintf(&b, `<div class="activities-container">`+"\n")
		for _, act := range day.Activities {
			fmt.Fprintf(&b, `<div class="activity">`+"\n")
			fmt.Fprintf(&b, "<h3>%s - %s</h3>\n", act.Time, act.Title)
			fmt.Fprintf(&b, "<p><strong>Location:</strong> %s</p>\n", act.Location)
			fmt.Fprintf(&b, "<p><strong>Duration:</strong> %s</p>\n", act.Duration)
			fmt.Fprintf(&b, "<p>%s</p>\n", act.Description)
			if act.Cost != "" {
				fmt.Fprintf(&b, "<p><strong>Cost:</strong> %s</p>\n", act.Cost)
			}
			if act.Rating > 0 {
				fmt.Fprintf(&b, "<p><strong>Rating:</strong> %.1f/5</p>\n", act.Rating)
			}
			b.WriteString("</div>\n")
		}
		b.WriteString("</div>\n</div>\n")
	}

	b.WriteString("</div>")
	return b.String()
}

func formatDisplayDate(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("January 2, 2006")
}
