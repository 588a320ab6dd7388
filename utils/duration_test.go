package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseISODuration(t *testing.T) {
	assert.InDelta(t, 62.05, ParseISODuration("PT1H2M3S"), 1e-9)
	assert.InDelta(t, 7, ParseISODuration("PT7M"), 1e-9)
	assert.InDelta(t, 0.5, ParseISODuration("PT30S"), 1e-9)
	assert.InDelta(t, 120, ParseISODuration("PT2H"), 1e-9)
	assert.Equal(t, 0.0, ParseISODuration("PT0M"))
	assert.Equal(t, 0.0, ParseISODuration("PT"))
}

func TestParseISODurationMalformed(t *testing.T) {
	assert.Equal(t, 0.0, ParseISODuration(""))
	assert.Equal(t, 0.0, ParseISODuration("four minutes"))
	assert.Equal(t, 0.0, ParseISODuration("4M13S"))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "7 minutes", FormatMinutes(7))
	assert.Equal(t, "62.05 minutes", FormatMinutes(62.05))
}
