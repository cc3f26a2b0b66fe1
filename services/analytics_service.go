package services

import (
	"context"

	"reply-pilot/analytics"
	"reply-pilot/models"
)

// AnalyticsService exposes the aggregate snapshot to the API layer.
type AnalyticsService struct {
	recorder *analytics.Recorder
}

func NewAnalyticsService(recorder *analytics.Recorder) *AnalyticsService {
	return &AnalyticsService{recorder: recorder}
}

func (s *AnalyticsService) Snapshot(ctx context.Context) (models.Analytics, error) {
	return s.recorder.Snapshot(ctx)
}
