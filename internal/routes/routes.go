package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/roamgen/roamgen/internal/app/domain/home"
	"github.com/roamgen/roamgen/internal/app/domain/planner"
	"github.com/roamgen/roamgen/internal/pkg/cache"
	"github.com/roamgen/roamgen/internal/pkg/config"
)

type AppHandlers struct {
	Home    *home.HomeHandlers
	Planner *planner.PlannerHandlers
}

// Setup wires the handler graph and registers all routes.
func Setup(r *gin.Engine, cfg *config.Config, log *zap.Logger) {
	handlers := setupDependencies(cfg, log)
	setupRouter(r, handlers)
}

func setupDependencies(cfg *config.Config, log *zap.Logger) *AppHandlers {
	store := cache.NewItineraryStore(30*time.Minute, log)

	// The pipeline only exists when the primary provider is configured; the
	// handlers short-circuit to the mock generator otherwise.
	var pipeline *planner.Pipeline
	if cfg.UsePrimary() {
		primary := planner.NewCompletionClient(cfg.Primary)
		var enhancement planner.CompletionClient
		if cfg.UseEnhancement() {
			enhancement = planner.NewCompletionClient(cfg.Enhancement)
		}
		pipeline = planner.NewPipeline(primary, enhancement, log)
	}

	return &AppHandlers{
		Home:    home.NewHomeHandlers(log),
		Planner: planner.NewPlannerHandlers(cfg, pipeline, store, log),
	}
}

func setupRouter(r *gin.Engine, h *AppHandlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", h.Home.ShowHomePage)

	itinerary := r.Group("/itinerary")
	{
		itinerary.POST("/generate", h.Planner.HandleGenerate)
		itinerary.POST("/reset", h.Planner.HandleReset)
		itinerary.GET("/:id", h.Planner.HandleItineraryPage)
		itinerary.GET("/:id/json", h.Planner.HandleItineraryJSON)
	}
}
