package services

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"reply-pilot/eventbus"
	"reply-pilot/events"
	"reply-pilot/generator"
	"reply-pilot/logger"
	"reply-pilot/models"
	"reply-pilot/parser"
	"reply-pilot/prompt"
	"reply-pilot/ratelimit"
	"reply-pilot/readability"
	"reply-pilot/sentiment"
)

// GenerateError classifies a failed generation for the HTTP layer.
type GenerateError struct {
	StatusCode int
	ErrorCode  string
	Message    string
	Field      string
	Cause      error
}

func (e *GenerateError) Error() string {
	if e == nil {
		return "generation_failed"
	}
	return e.ErrorCode
}

const unavailableMessage = "Service temporarily unavailable. Please try again later."
const genericFailureMessage = "Failed to generate responses. Please try again."

// GenerationService runs the reply-generation pipeline: rate limiting,
// validation, prompt construction, the model call, option parsing,
// sentiment scoring and the analytics event.
type GenerationService struct {
	gen     generator.TextGenerator
	limiter *ratelimit.Limiter
	bus     eventbus.EventBus
}

func NewGenerationService(gen generator.TextGenerator, limiter *ratelimit.Limiter, bus eventbus.EventBus) *GenerationService {
	return &GenerationService{gen: gen, limiter: limiter, bus: bus}
}

// Generate handles one request for clientID. Rate limiting and validation
// run before any provider call, so denied requests never cost a model
// invocation.
func (s *GenerationService) Generate(ctx context.Context, clientID string, req models.GenerateRequest) (*models.GenerateResponse, *GenerateError) {
	if result := s.limiter.CheckAndConsume(ctx, clientID); !result.Allowed {
		return nil, &GenerateError{
			StatusCode: http.StatusTooManyRequests,
			ErrorCode:  "rate_limited",
			Message:    result.Message,
		}
	}

	if verr := validateRequest(req); verr != nil {
		return nil, verr
	}

	start := time.Now()
	promptText := prompt.Build(req)

	raw, err := s.gen.Generate(ctx, promptText)
	if err != nil {
		s.publishEvent(false, time.Since(start).Milliseconds(), req, nil)
		if errors.Is(err, generator.ErrUnavailable) {
			return nil, &GenerateError{
				StatusCode: http.StatusServiceUnavailable,
				ErrorCode:  "provider_unavailable",
				Message:    unavailableMessage,
				Cause:      err,
			}
		}
		return nil, &GenerateError{
			StatusCode: http.StatusInternalServerError,
			ErrorCode:  "generation_failed",
			Message:    genericFailureMessage,
			Cause:      err,
		}
	}

	options, err := parser.ParseReplyOptions(raw)
	if err != nil {
		s.publishEvent(false, time.Since(start).Milliseconds(), req, nil)
		// Provider non-determinism, not a caller mistake; the caller may
		// simply retry.
		return nil, &GenerateError{
			StatusCode: http.StatusInternalServerError,
			ErrorCode:  "invalid_model_response",
			Message:    genericFailureMessage,
			Cause:      err,
		}
	}

	elapsed := time.Since(start).Milliseconds()

	sent := sentiment.Analyze(req.Review)
	suggestions := buildSuggestions(sent.Label, req.Stars, req.BusinessType)

	allOptions := []string{options.A, options.B, options.C}
	joined := strings.Join(allOptions, " ")
	wordCount := 0
	for _, opt := range allOptions {
		wordCount += len(strings.Fields(opt))
	}

	response := &models.GenerateResponse{
		Options:     *options,
		Sentiment:   sent,
		Suggestions: suggestions,
		Metadata: models.ResponseMetadata{
			GeneratedAt:      time.Now().UTC(),
			Model:            s.gen.Model(),
			ProcessingTimeMs: elapsed,
			WordCount:        int(math.Round(float64(wordCount) / 3)),
			ReadabilityScore: round1(readability.Score(joined)),
		},
	}

	s.publishEvent(true, elapsed, req, &sent)

	return response, nil
}

func validateRequest(req models.GenerateRequest) *GenerateError {
	badRequest := func(field, message string) *GenerateError {
		return &GenerateError{
			StatusCode: http.StatusBadRequest,
			ErrorCode:  "invalid_request",
			Message:    message,
			Field:      field,
		}
	}

	if len(strings.TrimSpace(req.Review)) < 5 {
		return badRequest("review", "Review must be at least 5 characters long")
	}
	if !contains(models.Tones, req.Tone) {
		return badRequest("tone", "Invalid tone selection")
	}
	if !contains(models.Lengths, req.Length) {
		return badRequest("length", "Invalid length selection")
	}
	if req.Platform != "" && !contains(models.Platforms, req.Platform) {
		return badRequest("platform", "Invalid platform selection")
	}
	if req.Stars != 0 && (req.Stars < 1 || req.Stars > 5) {
		return badRequest("stars", "Stars must be between 1 and 5")
	}
	return nil
}

// publishEvent fires the analytics event without blocking the response
// path. Failures are logged, never surfaced: recording must not change the
// outcome delivered to the caller.
func (s *GenerationService) publishEvent(success bool, elapsedMs int64, req models.GenerateRequest, sent *models.SentimentAnalysis) {
	evt := events.GenerationCompletedEvent{
		BaseEvent: events.BaseEvent{
			ID:        uuid.NewString(),
			Type:      events.GenerationCompleted,
			Timestamp: time.Now().UTC(),
			Source:    "generation-service",
		},
		Success:        success,
		ResponseTimeMs: elapsedMs,
		Tone:           req.Tone,
		Platform:       req.Platform,
		Sentiment:      sent,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		data, _, err := events.SerializeEvent(evt)
		if err != nil {
			logger.Log.Errorf("failed to serialize analytics event: %v", err)
			return
		}
		if err := s.bus.Publish(ctx, eventbus.TopicGenerationCompleted, eventbus.Event{
			ID:      evt.ID,
			Payload: data,
		}); err != nil {
			logger.Log.Errorf("failed to publish analytics event: %v", err)
		}
	}()
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
