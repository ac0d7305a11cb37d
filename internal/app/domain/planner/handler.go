package planner

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roamgen/roamgen/internal/app/models"
	"github.com/roamgen/roamgen/internal/app/observability/metrics"
	"github.com/roamgen/roamgen/internal/pkg/cache"
	"github.com/roamgen/roamgen/internal/pkg/config"
)

const sessionItineraryKey = "last_itinerary_id"

// PlannerHandlers owns the planner form submission and itinerary display
// endpoints.
type PlannerHandlers struct {
	cfg      *config.Config
	pipeline *Pipeline
	store    *cache.ItineraryStore
	logger   *zap.Logger
}

func NewPlannerHandlers(cfg *config.Config, pipeline *Pipeline, store *cache.ItineraryStore, logger *zap.Logger) *PlannerHandlers {
	return &PlannerHandlers{
		cfg:      cfg,
		pipeline: pipeline,
		store:    store,
		logger:   logger,
	}
}

// HandleGenerate runs one generation for a submitted trip request and renders
// the itinerary fragment. Pipeline failures fall back to the mock generator;
// only input validation errors are shown to the user directly.
func (h *PlannerHandlers) HandleGenerate(c *gin.Context) {
	requestID := uuid.New().String()

	var req models.TripRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Info("Rejected trip request",
			zap.String("request_id", requestID),
			zap.Error(err))
		renderErrorFragment(c, http.StatusBadRequest, "Please provide a destination and a budget.")
		return
	}

	if req.StartDate != nil && req.EndDate != nil && !req.EndDate.After(*req.StartDate) {
		renderErrorFragment(c, http.StatusBadRequest, "End date must be after start date.")
		return
	}

	h.logger.Info("Generating itinerary",
		zap.String("request_id", requestID),
		zap.String("destination", req.Destination),
		zap.Int("days", req.DurationDays()),
		zap.Bool("use_primary", h.cfg.UsePrimary()))

	var it models.Itinerary
	if h.cfg.UsePrimary() && h.pipeline != nil {
		generated, err := h.pipeline.Generate(c.Request.Context(), req)
		if err != nil {
			// Pipeline failures are never surfaced raw; the mock generator
			// guarantees the user still gets a complete plan.
			metrics.Get().MockFallbacksTotal.Add(c.Request.Context(), 1)
			h.logger.Warn("Pipeline failed, serving mock itinerary",
				zap.String("request_id", requestID),
				zap.Error(err))
			it = GenerateMockItinerary(req)
		} else {
			it = generated
		}
	} else {
		it = GenerateMockItinerary(req)
	}

	h.store.Put(it)

	session := sessions.Default(c)
	session.Set(sessionItineraryKey, it.ID)
	if err := session.Save(); err != nil {
		h.logger.Warn("Failed to save session", zap.Error(err))
	}

	c.Header("Content-Type", "text/html")
	c.String(http.StatusOK, renderItineraryFragment(it))
}

// HandleItineraryPage re-renders a stored itinerary by id.
func (h *PlannerHandlers) HandleItineraryPage(c *gin.Context) {
	it, found := h.store.Get(c.Param("id"))
	if !found {
		renderErrorFragment(c, http.StatusNotFound, "This itinerary has expired. Plan a new trip to get started again.")
		return
	}
	c.Header("Content-Type", "text/html")
	c.String(http.StatusOK, renderItineraryFragment(it))
}

// HandleItineraryJSON returns the raw itinerary document.
func (h *PlannerHandlers) HandleItineraryJSON(c *gin.Context) {
	it, found := h.store.Get(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": models.ErrNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, it)
}

// HandleReset discards the stored itinerary for this session.
func (h *PlannerHandlers) HandleReset(c *gin.Context) {
	session := sessions.Default(c)
	if id, ok := session.Get(sessionItineraryKey).(string); ok {
		h.store.Delete(id)
	}
	session.Delete(sessionItineraryKey)
	if err := session.Save(); err != nil {
		h.logger.Warn("Failed to save session", zap.Error(err))
	}
	c.Header("Content-Type", "text/html")
	c.String(http.StatusOK, `<div id="itinerary-result"></div>`)
}
