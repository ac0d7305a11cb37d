package planner

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/roamgen/roamgen/internal/app/models"
	"github.com/roamgen/roamgen/internal/app/observability/metrics"
)

// Pipeline sequences prompt construction, the primary completion call,
// extraction, repair and normalization into one generation run, with an
// optional enhancement pass at the end. It is stateless across requests:
// each Generate call closes over its own TripRequest and nothing else.
type Pipeline struct {
	primary     CompletionClient
	enhancement CompletionClient // nil when the second pass is not configured
	logger      *zap.Logger
	parseLogger *slog.Logger
}

// NewPipeline builds a pipeline. Pass a nil enhancement client to skip the
// second pass entirely.
func NewPipeline(primary, enhancement CompletionClient, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		primary:     primary,
		enhancement: enhancement,
		logger:      logger,
		parseLogger: slog.Default(),
	}
}

// Generate runs one itinerary generation end to end. Any failure before
// normalization terminates the run with an error from the models taxonomy;
// the caller decides whether to fall back to the mock generator. Enhancement
// failures never propagate.
func (p *Pipeline) Generate(ctx context.Context, req models.TripRequest) (models.Itinerary, error) {
	ctx, span := otel.Tracer("ItineraryPipeline").Start(ctx, "Generate", trace.WithAttributes(
		attribute.String("trip.destination", req.Destination),
		attribute.Int("trip.days", req.DurationDays()),
	))
	defer span.End()

	m := metrics.Get()
	start := time.Now()
	defer func() {
		m.GenerationDuration.Record(ctx, time.Since(start).Seconds())
	}()

	prompt := BuildItineraryPrompt(req)
	span.SetAttributes(attribute.Int("prompt.length", len(prompt)))

	content, err := p.primary.Complete(ctx, generationSystemInstruction, prompt)
	if err != nil {
		p.logger.Error("Primary completion call failed",
			zap.String("destination", req.Destination),
			zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "primary completion failed")
		return models.Itinerary{}, err
	}
	span.SetAttributes(attribute.Int("response.length", len(content)))

	candidate, err := ExtractJSON(content)
	if err != nil {
		m.ExtractionFailuresTotal.Add(ctx, 1)
		p.logger.Warn("No JSON payload found in model output",
			zap.Int("response_length", len(content)),
			zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "extraction failed")
		return models.Itinerary{}, err
	}

	needsRepair := !json.Valid([]byte(candidate))
	doc, err := Repair(candidate, p.parseLogger)
	if err != nil {
		m.RepairFailuresTotal.Add(ctx, 1)
		p.logger.Warn("JSON repair exhausted all tiers", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "repair failed")
		return models.Itinerary{}, err
	}
	if needsRepair {
		m.RepairTier2Total.Add(ctx, 1)
	}

	it := Normalize(doc, req)
	span.SetAttributes(attribute.Int("itinerary.days", len(it.Days)))

	it = p.enhance(ctx, it, req)

	path := "primary"
	if it.HTMLContent != "" && p.enhancement != nil {
		path = "enhanced"
	}
	m.GenerationRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("path", path)))
	span.SetStatus(codes.Ok, "itinerary generated")
	return it, nil
}

// enhance runs the optional second pass. Every failure in here is non-fatal:
// the pre-enhancement itinerary is returned with fallback HTML attached, and
// the caller never observes the error beyond a log line.
func (p *Pipeline) enhance(ctx context.Context, it models.Itinerary, req models.TripRequest) models.Itinerary {
	if p.enhancement == nil {
		return it
	}

	ctx, span := otel.Tracer("ItineraryPipeline").Start(ctx, "Enhance", trace.WithAttributes(
		attribute.String("itinerary.id", it.ID),
	))
	defer span.End()

	m := metrics.Get()
	discard := func(reason string, err error) models.Itinerary {
		m.EnhancementFailuresTotal.Add(ctx, 1)
		p.logger.Warn("Enhancement pass failed, keeping original itinerary",
			zap.String("reason", reason),
			zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, reason)
		it.HTMLContent = GenerateFallbackHTML(it)
		return it
	}

	content, err := p.enhancement.Complete(ctx, enhancementSystemInstruction, BuildEnhancementPrompt(it))
	if err != nil {
		return discard("completion failed", err)
	}

	candidate, err := ExtractJSON(content)
	if err != nil {
		return discard("extraction failed", err)
	}

	doc, err := Repair(candidate, p.parseLogger)
	if err != nil {
		return discard("repair failed", err)
	}

	htmlContent, _ := doc["htmlContent"].(string)
	if formatted, ok := doc["formattedItinerary"].(map[string]any); ok {
		enhanced := Normalize(formatted, req)
		enhanced.HTMLContent = htmlContent
		if enhanced.HTMLContent == "" {
			enhanced.HTMLContent = GenerateFallbackHTML(enhanced)
		}
		span.SetStatus(codes.Ok, "itinerary enhanced")
		return enhanced
	}

	// No formatted itinerary in the response; HTML alone is still useful.
	if htmlContent != "" {
		it.HTMLContent = htmlContent
		span.SetStatus(codes.Ok, "html content attached")
		return it
	}

	return discard("response missing formattedItinerary and htmlContent", models.ErrMalformedResponse)
}
