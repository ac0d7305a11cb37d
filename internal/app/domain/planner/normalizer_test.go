package planner

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/roamgen/roamgen/internal/app/models"
)

func testRequest() models.TripRequest {
	start := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 13, 0, 0, 0, 0, time.UTC)
	return models.TripRequest{
		Destination: "Jaipur",
		StartDate:   &start,
		EndDate:     &end,
		Budget:      50000,
		Interests:   "history, food",
		TravelStyle: "relaxed",
		GroupSize:   2,
	}
}

func TestNormalizeFullDocument(t *testing.T) {
	doc := map[string]any{
		"id":          "trip-abc",
		"title":       "Royal Jaipur",
		"destination": "Jaipur",
		"startDate":   "2026-03-10",
		"endDate":     "2026-03-13",
		"totalCost":   "₹48,000",
		"coverImage":  "https://example.com/cover.jpg",
		"days": []any{
			map[string]any{
				"day":  float64(1),
				"date": "March 10, 2026",
				"activities": []any{
					map[string]any{
						"id":          "act-1-1",
						"time":        "09:00",
						"title":       "Amber Fort",
						"description": "Hilltop fort with mirror palace.",
						"location":    "Amer Road",
						"type":        "attraction",
						"duration":    "3 hours",
						"cost":        "₹500",
						"rating":      float64(4.8),
						"image":       "https://example.com/fort.jpg",
						"notes":       "Go early.",
					},
				},
			},
		},
	}

	it := Normalize(doc, testRequest())

	assert.Equal(t, "trip-abc", it.ID)
	assert.Equal(t, "Royal Jaipur", it.Title)
	assert.Equal(t, "₹48,000", it.TotalCost)
	assert.Equal(t, "https://example.com/cover.jpg", it.CoverImage)
	assert.Len(t, it.Days, 1)
	assert.Equal(t, 1, it.Days[0].Day)
	assert.Len(t, it.Days[0].Activities, 1)
	act := it.Days[0].Activities[0]
	assert.Equal(t, "Amber Fort", act.Title)
	assert.Equal(t, 4.8, act.Rating)
	assert.Equal(t, "https://example.com/fort.jpg", act.Image)
}

func TestNormalizeEmptyDocument(t *testing.T) {
	req := testRequest()
	it := Normalize(map[string]any{}, req)

	assert.True(t, strings.HasPrefix(it.ID, "trip-"))
	assert.Equal(t, "Trip to Jaipur", it.Title)
	assert.Equal(t, "Jaipur", it.Destination)
	assert.Equal(t, "2026-03-10", it.StartDate)
	assert.Equal(t, "2026-03-13", it.EndDate)
	assert.Equal(t, "₹50000", it.TotalCost)
	assert.Contains(t, it.CoverImage, "source.unsplash.com")
	assert.Contains(t, it.CoverImage, "1200x800")
	// Missing days are not invented; an empty list is the honest answer.
	assert.NotNil(t, it.Days)
	assert.Empty(t, it.Days)
}

func TestNormalizeDaysDefaults(t *testing.T) {
	doc := map[string]any{
		"days": []any{
			map[string]any{}, // everything missing
			map[string]any{
				"day": float64(5), // explicit number wins over position
				"activities": []any{
					map[string]any{"title": "Walk"},
				},
			},
			"not an object at all",
		},
	}

	it := Normalize(doc, testRequest())

	assert.Len(t, it.Days, 3)
	assert.Equal(t, 1, it.Days[0].Day)
	assert.Empty(t, it.Days[0].Activities)
	assert.Equal(t, 5, it.Days[1].Day)
	assert.Equal(t, 3, it.Days[2].Day)

	act := it.Days[1].Activities[0]
	assert.Equal(t, "act-5-1", act.ID)
	assert.Equal(t, models.ActivityTypeOther, act.Type)
	assert.Equal(t, 4.0, act.Rating)
	assert.Contains(t, act.Image, "source.unsplash.com")
	assert.Contains(t, act.Image, "600x400")
	assert.Equal(t, "₹0", act.Cost)
}

func TestNormalizeUnknownActivityTypePassesThrough(t *testing.T) {
	doc := map[string]any{
		"days": []any{
			map[string]any{
				"activities": []any{
					map[string]any{"type": "sightseeing-cruise"},
				},
			},
		},
	}
	it := Normalize(doc, testRequest())
	assert.Equal(t, "sightseeing-cruise", it.Days[0].Activities[0].Type)
}

func TestEnsureCurrencySymbol(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"empty", "", "₹0"},
		{"already canonical", "₹1,200", "₹1,200"},
		{"canonical with prose", "about ₹500 total", "about ₹500 total"},
		{"bare digits", "1200", "₹1200"},
		{"dollar sign", "$500", "₹500"},
		{"euro sign", "€45", "₹45"},
		{"pound sign", "£30", "₹30"},
		{"no recognizable amount", "Free entry", "₹0"},
		{"digits with separator are not bare digits", "1,200", "₹0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ensureCurrencySymbol(tt.in))
		})
	}
}

func TestEnsureValidImageURL(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		destination string
		keyword     string
		expected    string
	}{
		{
			name:        "http url kept",
			url:         "http://example.com/a.jpg",
			destination: "Goa",
			keyword:     "beach",
			expected:    "http://example.com/a.jpg",
		},
		{
			name:        "https url kept",
			url:         "https://example.com/a.jpg",
			destination: "Goa",
			keyword:     "beach",
			expected:    "https://example.com/a.jpg",
		},
		{
			name:        "empty url synthesized",
			url:         "",
			destination: "Goa",
			keyword:     "beach",
			expected:    "https://source.unsplash.com/random/600x400/?goa,beach",
		},
		{
			name:        "relative path replaced and spaces collapsed",
			url:         "/images/a.jpg",
			destination: "New Delhi",
			keyword:     "street food",
			expected:    "https://source.unsplash.com/random/600x400/?new,delhi,street,food",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ensureValidImageURL(tt.url, tt.destination, tt.keyword, activityImageSize))
		})
	}
}

func TestNormalizeRoundTripStable(t *testing.T) {
	// Running an already normalized itinerary back through Normalize must not
	// change anything observable.
	req := testRequest()
	first := Normalize(map[string]any{
		"days": []any{
			map[string]any{"activities": []any{map[string]any{"title": "Walk", "cost": "200"}}},
		},
	}, req)

	doc := map[string]any{
		"id":          first.ID,
		"title":       first.Title,
		"destination": first.Destination,
		"startDate":   first.StartDate,
		"endDate":     first.EndDate,
		"totalCost":   first.TotalCost,
		"coverImage":  first.CoverImage,
		"days": []any{
			map[string]any{
				"day":  float64(first.Days[0].Day),
				"date": first.Days[0].Date,
				"activities": []any{
					map[string]any{
						"id":          first.Days[0].Activities[0].ID,
						"time":        first.Days[0].Activities[0].Time,
						"title":       first.Days[0].Activities[0].Title,
						"description": first.Days[0].Activities[0].Description,
						"location":    first.Days[0].Activities[0].Location,
						"type":        first.Days[0].Activities[0].Type,
						"duration":    first.Days[0].Activities[0].Duration,
						"cost":        first.Days[0].Activities[0].Cost,
						"rating":      first.Days[0].Activities[0].Rating,
						"image":       first.Days[0].Activities[0].Image,
						"notes":       first.Days[0].Activities[0].Notes,
					},
				},
			},
		},
	}

	second := Normalize(doc, req)
	assert.Equal(t, first, second)
}
