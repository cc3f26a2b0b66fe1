package parser

import (
	"errors"
	"strings"

	"reply-pilot/models"
)

// ErrInvalidFormat is returned when the model output does not contain
// exactly the three labeled options.
var ErrInvalidFormat = errors.New("model response did not contain three labeled reply options")

// ParseReplyOptions extracts the A/B/C reply options from raw model text.
// Only lines starting with "A:", "B:" or "C:" are considered; everything
// else is ignored. All three labels must be present with non-empty content,
// otherwise the whole parse fails. No partial results are returned.
func ParseReplyOptions(raw string) (*models.ReplyOptions, error) {
	found := map[string]string{}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 2 {
			continue
		}
		if line[1] != ':' {
			continue
		}
		label := line[:1]
		if label != "A" && label != "B" && label != "C" {
			continue
		}
		content := strings.TrimSpace(line[2:])
		if content != "" {
			found[label] = content
		}
	}

	if len(found) != 3 {
		return nil, ErrInvalidFormat
	}

	return &models.ReplyOptions{
		A: found["A"],
		B: found["B"],
		C: found["C"],
	}, nil
}
