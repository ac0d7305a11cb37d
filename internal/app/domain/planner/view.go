package planner

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/roamgen/roamgen/internal/app/models"
)

// renderItineraryFragment renders the result panel swapped in by HTMX after a
// generation. The enhancement pass supplies the body HTML when it ran;
// otherwise the fallback renderer does.
func renderItineraryFragment(it models.Itinerary) string {
	body := it.HTMLContent
	if body == "" {
		body = GenerateFallbackHTML(it)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div id="itinerary-result" class="mt-8">`+"\n")
	fmt.Fprintf(&b, `<div class="rounded-xl overflow-hidden border border-gray-200 dark:border-gray-700">`+"\n")
	fmt.Fprintf(&b, `<img src="%s" alt="%s" class="w-full h-64 object-cover">`+"\n", it.CoverImage, it.Destination)
	fmt.Fprintf(&b, `<div class="p-6">`+"\n")
	fmt.Fprintf(&b, `<div class="flex items-center justify-between mb-4">`+"\n")
	fmt.Fprintf(&b, `<h2 class="text-2xl font-bold">%s</h2>`+"\n", it.Title)
	fmt.Fprintf(&b, `<span class="text-lg font-semibold">%s</span>`+"\n", it.TotalCost)
	b.WriteString("</div>\n")
	b.WriteString(body)
	b.WriteString("\n")
	fmt.Fprintf(&b, `<div class="mt-6 flex gap-3">`+"\n")
	fmt.Fprintf(&b, `<a href="/itinerary/%s/json" class="text-sm text-blue-600 hover:underline">Download JSON</a>`+"\n", it.ID)
	fmt.Fprintf(&b, `<button hx-post="/itinerary/reset" hx-target="#itinerary-result" hx-swap="outerHTML" class="text-sm text-red-600 hover:underline">Start over</button>`+"\n")
	b.WriteString("</div>\n</div>\n</div>\n</div>")
	return b.String()
}

// renderErrorFragment writes a user-facing error panel. The message is shown
// verbatim, so only pass copy meant for the user, never raw error text.
func renderErrorFragment(c *gin.Context, status int, message string) {
	c.Header("Content-Type", "text/html")
	c.String(status, fmt.Sprintf(`
		<div id="itinerary-result" class="bg-red-50 dark:bg-red-900/20 border border-red-200 dark:border-red-700 rounded-xl p-6 mt-4">
			<div class="flex items-center gap-3">
				<svg class="w-5 h-5 text-red-500" fill="none" stroke="currentColor" viewBox="0 0 24 24">
					<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M12 8v4m0 4h.01M21 12a9 9 0 11-18 0 9 9 0 0118 0z"></path>
				</svg>
				<span class="text-red-700 dark:text-red-300 text-sm">%s</span>
			</div>
		</div>
	`, message))
}
