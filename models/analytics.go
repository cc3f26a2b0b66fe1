package models

// SentimentDistribution counts generations per sentiment label.
type SentimentDistribution struct {
	Positive int64 `json:"positive"`
	Neutral  int64 `json:"neutral"`
	Negative int64 `json:"negative"`
}

// TimeSeriesPoint is one calendar day of generation activity.
// Date uses the YYYY-MM-DD form.
type TimeSeriesPoint struct {
	Date         string  `json:"date"`
	Generations  int64   `json:"generations"`
	AvgSentiment float64 `json:"avgSentiment"`
}

// Analytics is the single running aggregate updated on every generation
// attempt. Counters are only ever added to; the time series is trimmed to
// the retention window.
type Analytics struct {
	TotalGenerations      int64                 `json:"totalGenerations"`
	SuccessRate           float64               `json:"successRate"`
	AverageResponseTime   float64               `json:"averageResponseTime"`
	SentimentDistribution SentimentDistribution `json:"sentimentDistribution"`
	PlatformBreakdown     map[string]int64      `json:"platformBreakdown"`
	TonePreferences       map[string]int64      `json:"tonePreferences"`
	TimeSeriesData        []TimeSeriesPoint     `json:"timeSeriesData"`
}

// NewAnalytics returns an empty aggregate. SuccessRate starts at 1.0 so the
// running update formula is well defined from the first event.
func NewAnalytics() Analytics {
	return Analytics{
		SuccessRate:       1.0,
		PlatformBreakdown: map[string]int64{},
		TonePreferences:   map[string]int64{},
		TimeSeriesData:    []TimeSeriesPoint{},
	}
}
