package utils

import (
	"regexp"
	"strings"
)

var (
	fencedJSONRe = regexp.MustCompile("(?is)```json\\s*(.*?)```")
	braceSpanRe  = regexp.MustCompile(`(?s)\{.*\}`)
	arraySpanRe  = regexp.MustCompile(`(?s)\[.*?\]`)
)

// An extractStrategy recovers a candidate JSON payload from raw model text.
// Strategies run in declaration order and the first hit wins, so a labeled
// fence always beats a coincidental brace match elsewhere in the text.
type extractStrategy func(text string) (string, bool)

var objectStrategies = []extractStrategy{fencedBlock, braceSpan, wholeObject}

func fencedBlock(text string) (string, bool) {
	if m := fencedJSONRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

func braceSpan(text string) (string, bool) {
	if m := braceSpanRe.FindString(text); m != "" {
		return strings.TrimSpace(m), true
	}
	return "", false
}

func wholeObject(text string) (string, bool) {
	t := strings.TrimSpace(text)
	if strings.HasPrefix(t, "{") && strings.HasSuffix(t, "}") {
		return t, true
	}
	return "", false
}

// ExtractJSONObject pulls a JSON object payload out of free-form model text.
// Model output reliability varies: sometimes the fence instruction is obeyed,
// sometimes prose surrounds the object, rarely the text is bare JSON. A false
// result means no payload was present, which is a normal outcome for
// misbehaving output, not an exception.
func ExtractJSONObject(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	for _, strategy := range objectStrategies {
		if payload, ok := strategy(text); ok {
			return payload, true
		}
	}
	return "", false
}

// ExtractJSONArray locates the first [...] span. Deliberately narrower than
// the object extraction: topic lists are short, flat arrays of strings.
func ExtractJSONArray(text string) (string, bool) {
	if m := arraySpanRe.FindString(text); m != "" {
		return m, true
	}
	return "", false
}
