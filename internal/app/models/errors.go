package models

import "errors"

// Domain specific errors for the itinerary generation pipeline.
var (
	ErrNotFound           = errors.New("requested item not found")
	ErrBadRequest         = errors.New("bad request")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidDateRange   = errors.New("end date must be after start date")
	ErrMissingCredentials = errors.New("missing or rejected API credentials")
	ErrRateLimited        = errors.New("rate limited by upstream API")
	ErrUpstreamAPI        = errors.New("upstream API request failed")
	ErrMalformedResponse  = errors.New("upstream response missing message content")
	ErrNoJSONFound        = errors.New("no JSON object found in model output")
	ErrUnparseableJSON    = errors.New("model output could not be parsed as JSON after repair")
)
