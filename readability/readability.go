package readability

import "math"

// Score computes an approximate Flesch reading-ease value in [0,100].
// Syllables are approximated by counting vowel letters, which is rough but
// stable; the score is only used as response metadata.
func Score(text string) float64 {
	sentences := 0
	inSentence := false
	words := 0
	inWord := false
	syllables := 0

	for _, r := range text {
		switch {
		case r == '.' || r == '!' || r == '?':
			if !inSentence {
				sentences++
				inSentence = true
			}
		default:
			inSentence = false
		}

		if isSpace(r) {
			inWord = false
		} else if !inWord {
			words++
			inWord = true
		}

		if isVowel(r) {
			syllables++
		}
	}

	if sentences == 0 || words == 0 {
		return 0
	}

	avgSentenceLength := float64(words) / float64(sentences)
	avgSyllablesPerWord := float64(syllables) / float64(words)

	score := 206.835 - 1.015*avgSentenceLength - 84.6*avgSyllablesPerWord
	return math.Max(0, math.Min(100, score))
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v'
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}
