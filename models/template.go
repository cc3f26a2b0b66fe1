package models

import "time"

// Template is a named preset used to pre-fill a GenerateRequest.
type Template struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Tone         string    `json:"tone"`
	BrandVoice   string    `json:"brandVoice,omitempty"`
	Length       string    `json:"length"`
	Platform     string    `json:"platform,omitempty"`
	BusinessType string    `json:"businessType,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UsageCount   int64     `json:"usageCount"`
}
