package prompt

import (
	"fmt"

	"reply-pilot/models"
)

const defaultBrandVoice = "Professional and customer-focused"

const negativeStarGuidance = "This is a negative review. Focus on acknowledging the issue, apologizing sincerely, and offering a specific solution or invitation to discuss offline. Be empathetic and professional."
const positiveStarGuidance = "This is a positive review. Express genuine gratitude, mention specific details from their experience, and encourage future engagement. Be warm and appreciative."
const neutralStarGuidance = "This is a neutral review. Acknowledge their feedback, thank them for taking the time to review, and express commitment to improvement. Be balanced and professional."

var lengthGuidance = map[string]string{
	"short":  "Keep responses under 50 words - concise and to the point.",
	"medium": "Keep responses between 50-100 words - balanced detail.",
	"long":   "Keep responses between 100-150 words - detailed and comprehensive.",
}

// The review text is interpolated verbatim inside quotes. A review that
// contains the surrounding delimiters can distort the template; this is an
// accepted constraint, not something the builder sanitizes.
const promptTemplate = `You are a professional customer service representative helping businesses respond to customer reviews.

%s

%s

Brand Voice: %s
Tone: %s
Length: %s

Customer Review: "%s"

Generate exactly 3 different response options labeled A, B, and C. Each response should:
- Match the specified tone and brand voice
- Be appropriate for the star rating
- Include the specified length
- Be professional and authentic
- Avoid generic responses

Format your response exactly as follows:
A: [Response A]
B: [Response B]
C: [Response C]

Do not include any other text, explanations, or formatting.`

// Build assembles the model prompt from a request. Pure and deterministic:
// identical requests produce byte-identical prompts.
func Build(req models.GenerateRequest) string {
	stars := req.Stars
	if stars == 0 {
		stars = 3
	}

	var starGuidance string
	switch {
	case stars <= 2:
		starGuidance = negativeStarGuidance
	case stars >= 4:
		starGuidance = positiveStarGuidance
	default:
		starGuidance = neutralStarGuidance
	}

	brandVoice := req.BrandVoice
	if brandVoice == "" {
		brandVoice = defaultBrandVoice
	}

	return fmt.Sprintf(promptTemplate,
		starGuidance,
		guidanceFor(req.BusinessType),
		brandVoice,
		req.Tone,
		lengthGuidance[req.Length],
		req.Review,
	)
}
