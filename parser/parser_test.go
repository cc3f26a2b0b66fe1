package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reply-pilot/parser"
)

func TestParseReplyOptionsValid(t *testing.T) {
	raw := "A: Thank you so much for the kind words!\nB: We really appreciate your feedback.\nC: Thanks for visiting, see you again soon."

	opts, err := parser.ParseReplyOptions(raw)
	assert.NoError(t, err)
	assert.Equal(t, "Thank you so much for the kind words!", opts.A)
	assert.Equal(t, "We really appreciate your feedback.", opts.B)
	assert.Equal(t, "Thanks for visiting, see you again soon.", opts.C)
}

func TestParseReplyOptionsIgnoresSurroundingProse(t *testing.T) {
	raw := "Here are your responses:\n\nA: First option.\nB: Second option.\nC: Third option.\n\nLet me know if you need more!"

	opts, err := parser.ParseReplyOptions(raw)
	assert.NoError(t, err)
	assert.Equal(t, "First option.", opts.A)
}

func TestParseReplyOptionsTrimsWhitespace(t *testing.T) {
	raw := "  A:   padded option one  \nB: two\nC: three"

	opts, err := parser.ParseReplyOptions(raw)
	assert.NoError(t, err)
	assert.Equal(t, "padded option one", opts.A)
}

func TestParseReplyOptionsMissingLabel(t *testing.T) {
	raw := "A: only one\nB: and two"

	opts, err := parser.ParseReplyOptions(raw)
	assert.ErrorIs(t, err, parser.ErrInvalidFormat)
	assert.Nil(t, opts)
}

func TestParseReplyOptionsEmptyContent(t *testing.T) {
	raw := "A: one\nB:\nC: three"

	_, err := parser.ParseReplyOptions(raw)
	assert.ErrorIs(t, err, parser.ErrInvalidFormat)
}

func TestParseReplyOptionsLastOccurrenceWins(t *testing.T) {
	raw := "A: first draft\nA: revised draft\nB: two\nC: three"

	opts, err := parser.ParseReplyOptions(raw)
	assert.NoError(t, err)
	assert.Equal(t, "revised draft", opts.A)
}

func TestParseReplyOptionsEmptyInput(t *testing.T) {
	_, err := parser.ParseReplyOptions("")
	assert.ErrorIs(t, err, parser.ErrInvalidFormat)
}
