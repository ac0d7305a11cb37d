package home

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HomeHandlers struct {
	logger *zap.Logger
}

func NewHomeHandlers(logger *zap.Logger) *HomeHandlers {
	return &HomeHandlers{logger: logger}
}

// ShowHomePage renders the landing page with the trip-planner form. If the
// session still knows a generated itinerary, a shortcut to it is offered.
func (h *HomeHandlers) ShowHomePage(c *gin.Context) {
	lastPlanLink := ""
	session := sessions.Default(c)
	if id, ok := session.Get("last_itinerary_id").(string); ok && id != "" {
		lastPlanLink = fmt.Sprintf(`
			<div class="mb-6 text-sm">
				<a href="/itinerary/%s" class="text-blue-600 hover:underline">View your last plan</a>
			</div>`, id)
	}

	c.Header("Content-Type", "text/html")
	c.String(http.StatusOK, fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>Roamgen - AI Travel Planner</title>
	<script src="https://unpkg.com/htmx.org@1.9.12"></script>
	<script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gray-50 dark:bg-gray-900 text-gray-900 dark:text-gray-100">
<main class="max-w-3xl mx-auto px-4 py-12">
	<h1 class="text-3xl font-bold mb-2">Plan your next trip</h1>
	<p class="text-gray-600 dark:text-gray-400 mb-8">Tell us where you want to go and we generate a complete day-by-day itinerary.</p>
	%s
	<form hx-post="/itinerary/generate" hx-target="#itinerary-result" hx-swap="outerHTML" hx-indicator="#loading-indicator" class="space-y-6">
		<div class="grid grid-cols-1 md:grid-cols-2 gap-4">
			<label class="block">
				<span class="text-sm font-medium">Destination</span>
				<input name="destination" required minlength="2" placeholder="Lisbon, Portugal" class="mt-1 w-full rounded-lg border-gray-300 dark:bg-gray-800">
			</label>
			<label class="block">
				<span class="text-sm font-medium">Budget (INR)</span>
				<input name="budget" type="number" required min="1" placeholder="50000" class="mt-1 w-full rounded-lg border-gray-300 dark:bg-gray-800">
			</label>
			<label class="block">
				<span class="text-sm font-medium">Start date</span>
				<input name="startDate" type="date" class="mt-1 w-full rounded-lg border-gray-300 dark:bg-gray-800">
			</label>
			<label class="block">
				<span class="text-sm font-medium">End date</span>
				<input name="endDate" type="date" class="mt-1 w-full rounded-lg border-gray-300 dark:bg-gray-800">
			</label>
			<label class="block">
				<span class="text-sm font-medium">Group size</span>
				<input name="groupSize" type="number" min="1" value="1" class="mt-1 w-full rounded-lg border-gray-300 dark:bg-gray-800">
			</label>
			<label class="block">
				<span class="text-sm font-medium">Travel style</span>
				<select name="travelStyle" class="mt-1 w-full rounded-lg border-gray-300 dark:bg-gray-800">
					<option value="">Any</option>
					<option value="relaxed">Relaxed</option>
					<option value="moderate">Moderate</option>
					<option value="packed">Packed</option>
				</select>
			</label>
		</div>
		<label class="block">
			<span class="text-sm font-medium">Interests</span>
			<input name="interests" placeholder="beaches, museums, food" class="mt-1 w-full rounded-lg border-gray-300 dark:bg-gray-800">
		</label>
		<div class="grid grid-cols-1 md:grid-cols-2 gap-4">
			<label class="block">
				<span class="text-sm font-medium">Accommodation</span>
				<select name="accommodationType" class="mt-1 w-full rounded-lg border-gray-300 dark:bg-gray-800">
					<option value="">Any</option>
					<option value="hotel">Hotel</option>
					<option value="hostel">Hostel</option>
					<option value="airbnb">Airbnb</option>
				</select>
			</label>
			<label class="block">
				<span class="text-sm font-medium">Transport needs</span>
				<input name="transportNeeds" placeholder="rental car, public transit" class="mt-1 w-full rounded-lg border-gray-300 dark:bg-gray-800">
			</label>
			<label class="block">
				<span class="text-sm font-medium">Dietary restrictions</span>
				<input name="dietaryNeeds" class="mt-1 w-full rounded-lg border-gray-300 dark:bg-gray-800">
			</label>
			<label class="block">
				<span class="text-sm font-medium">Accessibility needs</span>
				<input name="accessibilityNeeds" class="mt-1 w-full rounded-lg border-gray-300 dark:bg-gray-800">
			</label>
		</div>
		<label class="block">
			<span class="text-sm font-medium">Must-visit places</span>
			<textarea name="mustVisit" rows="2" class="mt-1 w-full rounded-lg border-gray-300 dark:bg-gray-800"></textarea>
		</label>
		<button type="submit" class="w-full bg-blue-600 hover:bg-blue-700 text-white font-semibold rounded-lg py-3">
			Generate itinerary
		</button>
		<div id="loading-indicator" class="htmx-indicator flex items-center gap-3 text-blue-700 dark:text-blue-300">
			<div class="w-4 h-4 border-2 border-blue-600 border-t-transparent rounded-full animate-spin"></div>
			<span class="text-sm">Generating your itinerary (this may take a minute)...</span>
		</div>
	</form>
	<div id="itinerary-result"></div>
</main>
</body>
</html>`, lastPlanLink))
}
