package services_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reply-pilot/eventbus"
	"reply-pilot/generator"
	"reply-pilot/models"
	"reply-pilot/ratelimit"
	"reply-pilot/services"
	"reply-pilot/storage"
)

type fakeGenerator struct {
	output string
	err    error
	calls  int
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

func (f *fakeGenerator) Model() string { return "fake-model" }

const wellFormedOutput = `A: Thank you so much for your kind words! We are thrilled you enjoyed your visit.
B: We really appreciate you taking the time to share this. Hope to see you again soon!
C: Thanks for the wonderful feedback. Our team will be delighted to hear it.`

func validRequest() models.GenerateRequest {
	return models.GenerateRequest{
		Review:   "Amazing food and excellent service! The staff was so friendly.",
		Stars:    5,
		Tone:     "friendly",
		Length:   "medium",
		Platform: "google",
	}
}

func newService(gen generator.TextGenerator, perMinute, perDay int) *services.GenerationService {
	limiter := ratelimit.New(storage.NewMemoryAdapter(), perMinute, perDay)
	return services.NewGenerationService(gen, limiter, eventbus.NewMemoryEventBus())
}

func TestGenerateSuccess(t *testing.T) {
	gen := &fakeGenerator{output: wellFormedOutput}
	svc := newService(gen, 100, 1000)

	resp, gerr := svc.Generate(context.Background(), "203.0.113.7", validRequest())
	require.Nil(t, gerr)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.Options.A)
	assert.NotEmpty(t, resp.Options.B)
	assert.NotEmpty(t, resp.Options.C)
	assert.Equal(t, models.SentimentPositive, resp.Sentiment.Label)
	assert.NotEmpty(t, resp.Suggestions)
	assert.Equal(t, "fake-model", resp.Metadata.Model)
	assert.Greater(t, resp.Metadata.WordCount, 0)
	assert.GreaterOrEqual(t, resp.Metadata.ReadabilityScore, 0.0)
	assert.LessOrEqual(t, resp.Metadata.ReadabilityScore, 100.0)
}

func TestGenerateValidation(t *testing.T) {
	gen := &fakeGenerator{output: wellFormedOutput}
	svc := newService(gen, 100, 1000)

	cases := []struct {
		name   string
		mutate func(*models.GenerateRequest)
		field  string
	}{
		{"short review", func(r *models.GenerateRequest) { r.Review = "meh" }, "review"},
		{"bad tone", func(r *models.GenerateRequest) { r.Tone = "sarcastic" }, "tone"},
		{"bad length", func(r *models.GenerateRequest) { r.Length = "huge" }, "length"},
		{"bad platform", func(r *models.GenerateRequest) { r.Platform = "myspace" }, "platform"},
		{"bad stars", func(r *models.GenerateRequest) { r.Stars = 6 }, "stars"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			resp, gerr := svc.Generate(context.Background(), "client", req)
			assert.Nil(t, resp)
			require.NotNil(t, gerr)
			assert.Equal(t, http.StatusBadRequest, gerr.StatusCode)
			assert.Equal(t, "invalid_request", gerr.ErrorCode)
			assert.Equal(t, tc.field, gerr.Field)
		})
	}

	// Validation failures never reach the provider.
	assert.Equal(t, 0, gen.calls)
}

func TestGenerateRateLimited(t *testing.T) {
	gen := &fakeGenerator{output: wellFormedOutput}
	svc := newService(gen, 3, 1000)

	for i := 0; i < 3; i++ {
		_, gerr := svc.Generate(context.Background(), "client", validRequest())
		require.Nil(t, gerr)
	}

	resp, gerr := svc.Generate(context.Background(), "client", validRequest())
	assert.Nil(t, resp)
	require.NotNil(t, gerr)
	assert.Equal(t, http.StatusTooManyRequests, gerr.StatusCode)
	assert.Equal(t, "rate_limited", gerr.ErrorCode)
	assert.Equal(t, "Too many requests. Please wait a minute and try again.", gerr.Message)
	assert.Equal(t, 3, gen.calls)
}

func TestGenerateProviderUnavailable(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("%w: quota exceeded", generator.ErrUnavailable)}
	svc := newService(gen, 100, 1000)

	resp, gerr := svc.Generate(context.Background(), "client", validRequest())
	assert.Nil(t, resp)
	require.NotNil(t, gerr)
	assert.Equal(t, http.StatusServiceUnavailable, gerr.StatusCode)
	assert.Equal(t, "provider_unavailable", gerr.ErrorCode)
	assert.Equal(t, "Service temporarily unavailable. Please try again later.", gerr.Message)
}

func TestGenerateProviderFailure(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("connection reset")}
	svc := newService(gen, 100, 1000)

	_, gerr := svc.Generate(context.Background(), "client", validRequest())
	require.NotNil(t, gerr)
	assert.Equal(t, http.StatusInternalServerError, gerr.StatusCode)
	assert.Equal(t, "generation_failed", gerr.ErrorCode)
}

func TestGenerateMalformedModelOutput(t *testing.T) {
	gen := &fakeGenerator{output: "A: only one option here\nSome trailing prose."}
	svc := newService(gen, 100, 1000)

	resp, gerr := svc.Generate(context.Background(), "client", validRequest())
	assert.Nil(t, resp)
	require.NotNil(t, gerr)
	assert.Equal(t, http.StatusInternalServerError, gerr.StatusCode)
	assert.Equal(t, "invalid_model_response", gerr.ErrorCode)
	assert.Equal(t, "Failed to generate responses. Please try again.", gerr.Message)
}

func TestGenerateLowStarsAppendsRecoverySuggestions(t *testing.T) {
	gen := &fakeGenerator{output: wellFormedOutput}
	svc := newService(gen, 100, 1000)

	req := validRequest()
	req.Review = "Terrible experience, the room was dirty and the staff was rude."
	req.Stars = 1

	resp, gerr := svc.Generate(context.Background(), "client", req)
	require.Nil(t, gerr)

	assert.Equal(t, models.SentimentNegative, resp.Sentiment.Label)
	assert.Contains(t, resp.Suggestions, "Consider offering a discount or compensation")
	assert.Contains(t, resp.Suggestions, "Follow up privately to resolve their concerns")
}
