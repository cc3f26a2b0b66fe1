package models

// Sentiment labels derived from the numeric score.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// EmotionScores are five normalized 0..1 emotion channels.
type EmotionScores struct {
	Anger    float64 `json:"anger"`
	Joy      float64 `json:"joy"`
	Sadness  float64 `json:"sadness"`
	Fear     float64 `json:"fear"`
	Surprise float64 `json:"surprise"`
}

// SentimentAnalysis is the heuristic scoring of one review text.
// Score is in [-1,1], Confidence in [0,1]; both rounded to 2 decimals.
type SentimentAnalysis struct {
	Score      float64       `json:"score"`
	Label      string        `json:"label"`
	Confidence float64       `json:"confidence"`
	Emotions   EmotionScores `json:"emotions"`
	Keywords   []string      `json:"keywords"`
}
