package utils

import (
	"regexp"
	"strconv"
)

// Matches ISO-8601 time tokens like PT4M13S. Hours, minutes and seconds are
// each optional.
var isoDurationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseISODuration converts a duration token into fractional minutes.
// Tokens that do not match yield 0; there is no error path, missing or
// malformed durations are simply treated as zero-length.
func ParseISODuration(token string) float64 {
	m := isoDurationRe.FindStringSubmatch(token)
	if m == nil {
		return 0
	}
	hours := atoiOrZero(m[1])
	minutes := atoiOrZero(m[2])
	seconds := atoiOrZero(m[3])
	return float64(hours)*60 + float64(minutes) + float64(seconds)/60
}

// FormatMinutes renders fractional minutes the way plans display them,
// using the shortest decimal that round-trips.
func FormatMinutes(minutes float64) string {
	return strconv.FormatFloat(minutes, 'f', -1, 64) + " minutes"
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
