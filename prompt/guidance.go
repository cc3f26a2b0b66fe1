package prompt

import "strings"

// businessGuidance maps business categories to reply guidance. Matching is
// case-insensitive substring containment against the request's business
// type. This is product copy kept as data so it can be revised without
// touching the builder.
type businessGuidance struct {
	keywords []string
	text     string
}

var businessGuidanceTable = []businessGuidance{
	{
		keywords: []string{"restaurant", "food", "cafe", "bakery", "catering"},
		text:     "This is a food service business. Reference the dining experience where relevant, and for complaints consider offering to have a manager follow up or to make it right on a future visit.",
	},
	{
		keywords: []string{"hotel", "travel", "hostel", "resort", "tour"},
		text:     "This is a hospitality or travel business. Acknowledge the stay or trip specifically, and emphasize comfort, cleanliness and the effort put into each guest's experience.",
	},
	{
		keywords: []string{"retail", "store", "shop", "boutique"},
		text:     "This is a retail business. Mention product quality or selection where relevant, and invite the customer back to browse new arrivals.",
	},
	{
		keywords: []string{"legal", "medical", "dental", "consulting", "accounting"},
		text:     "This is a professional services business. Keep the reply measured and discreet, never discuss case or treatment details, and invite private follow-up through official channels.",
	},
	{
		keywords: []string{"tech", "software", "agency", "marketing"},
		text:     "This is a technology or agency business. Highlight responsiveness and expertise, and reference the outcome delivered rather than internal process.",
	},
	{
		keywords: []string{"spa", "wellness", "fitness", "gym", "salon"},
		text:     "This is a wellness business. Use a caring, personal register and emphasize how much the team values each client's wellbeing.",
	},
	{
		keywords: []string{"automotive", "auto", "car", "mechanic"},
		text:     "This is an automotive business. Reference the vehicle service performed where relevant and stress transparency and safety.",
	},
	{
		keywords: []string{"education", "school", "tutoring", "training"},
		text:     "This is an education business. Emphasize student outcomes and the dedication of instructors, and thank families for their trust.",
	},
}

const genericGuidance = "Tailor the reply to the customer's specific experience with the business."

// guidanceFor returns the guidance paragraph for a business type, falling
// back to a generic sentence when no category matches.
func guidanceFor(businessType string) string {
	lower := strings.ToLower(strings.TrimSpace(businessType))
	if lower == "" {
		return genericGuidance
	}
	for _, g := range businessGuidanceTable {
		for _, kw := range g.keywords {
			if strings.Contains(lower, kw) {
				return g.text
			}
		}
	}
	return genericGuidance
}
