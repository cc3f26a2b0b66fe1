package models

import "time"

// Allowed enum values for GenerateRequest fields.
var (
	Tones     = []string{"professional", "friendly", "casual", "formal"}
	Lengths   = []string{"short", "medium", "long"}
	Platforms = []string{"google", "yelp", "facebook", "tripadvisor", "other"}
)

// GenerateRequest is the input of one reply-generation call. It lives only
// for the duration of the request and is never persisted.
type GenerateRequest struct {
	Review       string `json:"review"`
	Stars        int    `json:"stars,omitempty"`
	Tone         string `json:"tone"`
	BrandVoice   string `json:"brandVoice,omitempty"`
	Length       string `json:"length"`
	Platform     string `json:"platform,omitempty"`
	BusinessType string `json:"businessType,omitempty"`
}

// ReplyOptions holds the three labeled reply candidates. All three are
// always populated; a partial parse fails the whole generation.
type ReplyOptions struct {
	A string `json:"A"`
	B string `json:"B"`
	C string `json:"C"`
}

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	GeneratedAt      time.Time `json:"generatedAt"`
	Model            string    `json:"model"`
	ProcessingTimeMs int64     `json:"processingTime"`
	WordCount        int       `json:"wordCount"`
	ReadabilityScore float64   `json:"readabilityScore"`
}

// GenerateResponse is the envelope returned for a successful generation.
type GenerateResponse struct {
	Options     ReplyOptions      `json:"options"`
	Sentiment   SentimentAnalysis `json:"sentiment"`
	Suggestions []string          `json:"suggestions"`
	Metadata    ResponseMetadata  `json:"metadata"`
}
