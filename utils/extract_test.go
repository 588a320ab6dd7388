package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObjectFencedWins(t *testing.T) {
	// A decoy brace span before the fence must not shadow the labeled block.
	text := "Here is context {\"decoy\": true} and the answer:\n```json\n{\"career_summary\": \"x\"}\n```\nThanks!"

	payload, ok := ExtractJSONObject(text)
	require.True(t, ok)
	assert.Equal(t, `{"career_summary": "x"}`, payload)
}

func TestExtractJSONObjectFenceCaseInsensitive(t *testing.T) {
	payload, ok := ExtractJSONObject("```JSON\n{\"a\": 1}\n```")
	require.True(t, ok)
	assert.Equal(t, `{"a": 1}`, payload)
}

func TestExtractJSONObjectBraceSpan(t *testing.T) {
	payload, ok := ExtractJSONObject("The model says: {\"a\": 1, \"b\": {\"c\": 2}} hope that helps")
	require.True(t, ok)
	assert.Equal(t, `{"a": 1, "b": {"c": 2}}`, payload)
}

func TestExtractJSONObjectBareJSON(t *testing.T) {
	payload, ok := ExtractJSONObject("  {\"a\": 1}  ")
	require.True(t, ok)
	assert.Equal(t, `{"a": 1}`, payload)
}

func TestExtractJSONObjectNoPayload(t *testing.T) {
	_, ok := ExtractJSONObject("I am sorry, I cannot help with that.")
	assert.False(t, ok)

	_, ok = ExtractJSONObject("   ")
	assert.False(t, ok)
}

func TestExtractJSONArray(t *testing.T) {
	span, ok := ExtractJSONArray("Sure! [\"topic 1\", \"topic 2\"] is my answer")
	require.True(t, ok)
	assert.Equal(t, `["topic 1", "topic 2"]`, span)

	_, ok = ExtractJSONArray("no list here")
	assert.False(t, ok)
}
