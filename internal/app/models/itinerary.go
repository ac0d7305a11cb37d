package models

import "time"

// Activity types the planner asks the model to use. The normalizer passes
// unknown types through untouched and only fills in ActivityTypeOther when
// the field is missing entirely.
const (
	ActivityTypeAttraction    = "attraction"
	ActivityTypeFood          = "food"
	ActivityTypeTransport     = "transport"
	ActivityTypeAccommodation = "accommodation"
	ActivityTypeOther         = "other"
)

// TripRequest holds the user-submitted trip parameters from the planner form.
// It lives for a single generation request and is never persisted.
type TripRequest struct {
	Destination        string     `form:"destination" json:"destination" binding:"required,min=2"`
	StartDate          *time.Time `form:"startDate" json:"startDate" time_format:"2006-01-02"`
	EndDate            *time.Time `form:"endDate" json:"endDate" time_format:"2006-01-02"`
	Budget             int        `form:"budget" json:"budget" binding:"required,min=1"`
	Interests          string     `form:"interests" json:"interests"`
	TravelStyle        string     `form:"travelStyle" json:"travelStyle"`
	GroupSize          int        `form:"groupSize" json:"groupSize"`
	AccommodationType  string     `form:"accommodationType" json:"accommodationType"`
	RoomConfig         string     `form:"roomConfig" json:"roomConfig"`
	TransportNeeds     string     `form:"transportNeeds" json:"transportNeeds"`
	AccessibilityNeeds string     `form:"accessibilityNeeds" json:"accessibilityNeeds"`
	DietaryNeeds       string     `form:"dietaryNeeds" json:"dietaryNeeds"`
	FoodPreferences    string     `form:"foodPreferences" json:"foodPreferences"`
	SpendingPriority   string     `form:"spendingPriority" json:"spendingPriority"`
	MustVisit          string     `form:"mustVisit" json:"mustVisit"`
}

// DurationDays returns the trip length as the ceiling of the calendar-day
// difference between the two dates, or 0 when either date is missing.
func (r TripRequest) DurationDays() int {
	if r.StartDate == nil || r.EndDate == nil {
		return 0
	}
	diff := r.EndDate.Sub(*r.StartDate)
	days := int(diff.Hours() / 24)
	if diff%(24*time.Hour) != 0 {
		days++
	}
	if days < 0 {
		return 0
	}
	return days
}

// Activity is a single scheduled event within a day of an itinerary.
type Activity struct {
	ID          string  `json:"id"`
	Time        string  `json:"time"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Type        string  `json:"type"`
	Duration    string  `json:"duration"`
	Cost        string  `json:"cost"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
	Notes       string  `json:"notes"`
}

// DayPlan groups the activities of one calendar day. Day is 1-based and
// matches the entry's position in the days sequence.
type DayPlan struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
}

// Itinerary is the canonical structured trip plan produced by the planner
// pipeline. HTMLContent is only set when the enhancement pass ran.
type Itinerary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	TotalCost   string    `json:"totalCost"`
	CoverImage  string    `json:"coverImage"`
	Days        []DayPlan `json:"days"`
	HTMLContent string    `json:"htmlContent,omitempty"`
}
