package services

import (
	"strings"

	"reply-pilot/models"
)

// buildSuggestions derives coaching tips from the sentiment label and star
// rating. A static rule table, fully deterministic; no model call involved.
func buildSuggestions(label string, stars int, businessType string) []string {
	suggestions := []string{}
	lowerType := strings.ToLower(businessType)
	foodBusiness := strings.Contains(lowerType, "restaurant") || strings.Contains(lowerType, "food") || strings.Contains(lowerType, "cafe")

	switch label {
	case models.SentimentNegative:
		suggestions = append(suggestions,
			"Consider acknowledging the specific issue mentioned",
			"Offer a concrete solution or next steps",
			"Invite them to contact you directly to resolve the matter",
		)
		if foodBusiness {
			suggestions = append(suggestions, "Offer to have a manager reach out about their dining experience")
		}
	case models.SentimentPositive:
		suggestions = append(suggestions,
			"Thank them for specific details they mentioned",
			"Encourage them to share their experience with others",
			"Invite them to return or try other services",
		)
		if foodBusiness {
			suggestions = append(suggestions, "Suggest a dish or menu item for their next visit")
		}
	default:
		suggestions = append(suggestions,
			"Ask for more specific feedback to improve",
			"Highlight your commitment to customer satisfaction",
		)
	}

	if stars >= 1 && stars <= 2 {
		suggestions = append(suggestions,
			"Consider offering a discount or compensation",
			"Follow up privately to resolve their concerns",
		)
	}

	return suggestions
}
