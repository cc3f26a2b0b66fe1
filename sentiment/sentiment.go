package sentiment

import (
	"math"
	"strings"

	"reply-pilot/models"
)

// Keyword lists are matched by substring containment on the lowercased
// text, not by token. A list entry embedded inside a longer word still
// matches; that is the intended (if crude) behavior.
var positiveWords = []string{
	"excellent", "amazing", "great", "fantastic", "wonderful", "perfect", "love", "best",
	"awesome", "outstanding", "superb", "brilliant", "incredible", "delicious", "beautiful",
	"helpful", "friendly", "professional", "quick", "fast", "clean", "fresh", "recommend",
}

var negativeWords = []string{
	"terrible", "awful", "horrible", "worst", "hate", "disgusting", "dirty", "slow",
	"rude", "unprofessional", "expensive", "overpriced", "disappointing", "poor", "bad",
	"broken", "delayed", "cancelled", "refund", "complaint", "issue", "problem",
}

var emotionKeywords = map[string][]string{
	"anger":    {"angry", "furious", "mad", "annoyed", "frustrated", "outraged", "livid"},
	"joy":      {"happy", "excited", "thrilled", "delighted", "pleased", "satisfied", "cheerful"},
	"sadness":  {"sad", "disappointed", "upset", "depressed", "unhappy", "dissatisfied"},
	"fear":     {"worried", "concerned", "anxious", "scared", "nervous", "uncertain"},
	"surprise": {"surprised", "shocked", "amazed", "astonished", "unexpected", "wow"},
}

// Analyze scores a review text with the fixed keyword heuristic.
// Pure function: no I/O, deterministic for a given input.
func Analyze(text string) models.SentimentAnalysis {
	lowerText := strings.ToLower(text)

	positiveCount := 0
	negativeCount := 0
	keywords := []string{}

	for _, word := range positiveWords {
		if strings.Contains(lowerText, word) {
			positiveCount++
			keywords = append(keywords, word)
		}
	}
	for _, word := range negativeWords {
		if strings.Contains(lowerText, word) {
			negativeCount++
			keywords = append(keywords, word)
		}
	}

	emotions := models.EmotionScores{
		Anger:    emotionScore(lowerText, emotionKeywords["anger"]),
		Joy:      emotionScore(lowerText, emotionKeywords["joy"]),
		Sadness:  emotionScore(lowerText, emotionKeywords["sadness"]),
		Fear:     emotionScore(lowerText, emotionKeywords["fear"]),
		Surprise: emotionScore(lowerText, emotionKeywords["surprise"]),
	}

	totalMatches := positiveCount + negativeCount
	score := 0.0
	label := models.SentimentNeutral
	// Confidence has a fixed 0.5 floor and is only overwritten when
	// keywords matched.
	confidence := 0.5

	if totalMatches > 0 {
		score = float64(positiveCount-negativeCount) / math.Max(float64(totalMatches), 1)
		confidence = math.Min(float64(totalMatches)/5, 1)

		if score > 0.2 {
			label = models.SentimentPositive
		} else if score < -0.2 {
			label = models.SentimentNegative
		}
	}

	// Intensity adjustment for shouty reviews: many exclamation marks or a
	// high uppercase ratio push the score further from zero.
	if exclamationCount(text) > 2 || capsRatio(text) > 0.3 {
		if score > 0 {
			score = math.Min(score+0.2, 1)
		} else {
			score = math.Max(score-0.2, -1)
		}
		confidence = math.Min(confidence+0.1, 1)
	}

	return models.SentimentAnalysis{
		Score:      round2(score),
		Label:      label,
		Confidence: round2(confidence),
		Emotions:   emotions,
		Keywords:   keywords,
	}
}

func emotionScore(lowerText string, words []string) float64 {
	count := 0
	for _, word := range words {
		if strings.Contains(lowerText, word) {
			count++
		}
	}
	return math.Min(float64(count)/3, 1)
}

func exclamationCount(text string) int {
	return strings.Count(text, "!")
}

func capsRatio(text string) float64 {
	runes := []rune(text)
	if len(runes) == 0 {
		return 0
	}
	caps := 0
	for _, r := range runes {
		if r >= 'A' && r <= 'Z' {
			caps++
		}
	}
	return float64(caps) / float64(len(runes))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
