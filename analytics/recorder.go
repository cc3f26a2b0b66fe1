package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"reply-pilot/models"
	"reply-pilot/storage"
)

const aggregateKey = "analytics:aggregate"

// Recorder maintains the single running Analytics aggregate through the
// storage adapter. Updates are read-modify-write over one JSON document; a
// recorder-level mutex serializes them so concurrent generations cannot
// lose increments.
type Recorder struct {
	store         storage.Adapter
	mu            sync.Mutex
	retentionDays int

	now func() time.Time
}

func NewRecorder(store storage.Adapter, retentionDays int) *Recorder {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	return &Recorder{
		store:         store,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// Record folds one generation attempt into the aggregate. Best-effort by
// contract: callers log the returned error and move on.
func (r *Recorder) Record(ctx context.Context, success bool, responseTimeMs int64, tone string, platform string, sentiment *models.SentimentAnalysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	agg, err := r.load(ctx)
	if err != nil {
		return err
	}

	agg.TotalGenerations++
	n := float64(agg.TotalGenerations)

	// Running success rate reconstructed from the previous rate.
	successCount := math.Round(agg.SuccessRate * (n - 1))
	if success {
		successCount++
	}
	agg.SuccessRate = successCount / n

	agg.AverageResponseTime = (agg.AverageResponseTime*(n-1) + float64(responseTimeMs)) / n

	if sentiment != nil {
		switch sentiment.Label {
		case models.SentimentPositive:
			agg.SentimentDistribution.Positive++
		case models.SentimentNegative:
			agg.SentimentDistribution.Negative++
		default:
			agg.SentimentDistribution.Neutral++
		}
	}

	if platform == "" {
		platform = "other"
	}
	agg.PlatformBreakdown[platform]++
	agg.TonePreferences[tone]++

	r.updateTimeSeries(&agg, sentiment)

	return r.save(ctx, agg)
}

// updateTimeSeries bumps today's entry and trims the history. The average
// sentiment intentionally uses a 2-point mean of (previous average, new
// score), matching the established product behavior.
func (r *Recorder) updateTimeSeries(agg *models.Analytics, sentiment *models.SentimentAnalysis) {
	today := r.now().Format("2006-01-02")

	found := false
	for i := range agg.TimeSeriesData {
		if agg.TimeSeriesData[i].Date == today {
			agg.TimeSeriesData[i].Generations++
			if sentiment != nil {
				agg.TimeSeriesData[i].AvgSentiment = (agg.TimeSeriesData[i].AvgSentiment + sentiment.Score) / 2
			}
			found = true
			break
		}
	}
	if !found {
		point := models.TimeSeriesPoint{Date: today, Generations: 1}
		if sentiment != nil {
			point.AvgSentiment = sentiment.Score
		}
		agg.TimeSeriesData = append(agg.TimeSeriesData, point)
	}

	// ISO dates sort lexicographically; newest first.
	sort.Slice(agg.TimeSeriesData, func(i, j int) bool {
		return agg.TimeSeriesData[i].Date > agg.TimeSeriesData[j].Date
	})
	if len(agg.TimeSeriesData) > r.retentionDays {
		agg.TimeSeriesData = agg.TimeSeriesData[:r.retentionDays]
	}
}

// Snapshot returns the current aggregate.
func (r *Recorder) Snapshot(ctx context.Context) (models.Analytics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *Recorder) load(ctx context.Context) (models.Analytics, error) {
	raw, ok, err := r.store.Get(ctx, aggregateKey)
	if err != nil {
		return models.Analytics{}, fmt.Errorf("failed to load analytics aggregate: %w", err)
	}
	if !ok {
		return models.NewAnalytics(), nil
	}

	var agg models.Analytics
	if err := json.Unmarshal([]byte(raw), &agg); err != nil {
		return models.Analytics{}, fmt.Errorf("corrupt analytics aggregate: %w", err)
	}
	if agg.PlatformBreakdown == nil {
		agg.PlatformBreakdown = map[string]int64{}
	}
	if agg.TonePreferences == nil {
		agg.TonePreferences = map[string]int64{}
	}
	return agg, nil
}

func (r *Recorder) save(ctx context.Context, agg models.Analytics) error {
	data, err := json.Marshal(agg)
	if err != nil {
		return fmt.Errorf("failed to marshal analytics aggregate: %w", err)
	}
	return r.store.Set(ctx, aggregateKey, string(data), 0)
}
