package utils

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillbite/models"
)

// scriptedSearch answers queries from a fixed table; unknown queries return
// no results.
type scriptedSearch struct {
	results map[string][]VideoResult
	err     error
}

func (s *scriptedSearch) Search(ctx context.Context, query string, maxResults int) ([]VideoResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.results[query], nil
}

func TestBuildVideoResourcesOnePerTopic(t *testing.T) {
	topics := []string{"sql tutorial", "excel basics", "python pandas"}
	svc := &scriptedSearch{results: map[string][]VideoResult{
		"sql tutorial":  {{ID: "a1", Title: "SQL in 10 minutes", Description: "short course", Duration: "PT10M"}},
		"excel basics":  {{ID: "b2", Title: "Excel walkthrough", Description: "sheets", Duration: "PT15M30S"}},
		"python pandas": {{ID: "c3", Title: "Pandas deep dive", Description: "frames", Duration: "PT45M"}},
	}}

	videos := BuildVideoResources(context.Background(), svc, topics, 1)
	require.Len(t, videos, 3)

	for i, video := range videos {
		assert.False(t, video.Fallback)
		assert.Equal(t, topics[i], video.Resource.Topic)
		assert.Equal(t, models.ResourceTypeYouTube, video.Resource.Type)
		assert.Equal(t, "Watch and practice along", video.Resource.RecommendedNextStep)
	}
	assert.Equal(t, "https://www.youtube.com/watch?v=a1", videos[0].Resource.Link)
	assert.Equal(t, "10 minutes", videos[0].Resource.Duration)
	assert.Equal(t, "15.5 minutes", videos[1].Resource.Duration)
}

func TestBuildVideoResourcesFallbackOnError(t *testing.T) {
	topics := []string{"goal tutorial", "goal crash course"}
	svc := &scriptedSearch{err: NewAppError(ErrTransport, "video search returned status 403")}

	videos := BuildVideoResources(context.Background(), svc, topics, 1)
	require.Len(t, videos, 2)

	for i, video := range videos {
		assert.True(t, video.Fallback)
		assert.Equal(t, topics[i], video.Resource.Topic)
		assert.Equal(t, "Varies", video.Resource.Duration)
		assert.Equal(t, models.ResourceTypeYouTube, video.Resource.Type)
	}
	assert.Equal(t, "https://www.youtube.com/results?search_query=goal+tutorial", videos[0].Resource.Link)
}

func TestBuildVideoResourcesFallbackOnEmptyResults(t *testing.T) {
	svc := &scriptedSearch{results: map[string][]VideoResult{}}

	videos := BuildVideoResources(context.Background(), svc, []string{"obscure topic"}, 1)
	require.Len(t, videos, 1)
	assert.True(t, videos[0].Fallback)
}

func TestDurationGateBoundaries(t *testing.T) {
	cases := []struct {
		duration string
		included bool
	}{
		{"PT1M", false},
		{"PT2M", true},
		{"PT60M", true},
		{"PT61M", false},
		{"PT1H1M", false},
		{"PT1H", true},
	}

	for _, tc := range cases {
		svc := &scriptedSearch{results: map[string][]VideoResult{
			"topic": {{ID: "v", Title: "video", Duration: tc.duration}},
		}}
		videos := BuildVideoResources(context.Background(), svc, []string{"topic"}, 1)
		require.Len(t, videos, 1)
		assert.Equal(t, !tc.included, videos[0].Fallback, "duration %s", tc.duration)
	}
}

func TestDurationGateSkipsToNextCandidate(t *testing.T) {
	svc := &scriptedSearch{results: map[string][]VideoResult{
		"topic": {
			{ID: "short", Title: "teaser", Duration: "PT1M"},
			{ID: "good", Title: "real lesson", Duration: "PT12M"},
		},
	}}

	videos := BuildVideoResources(context.Background(), svc, []string{"topic"}, 2)
	require.Len(t, videos, 1)
	assert.False(t, videos[0].Fallback)
	assert.Equal(t, "https://www.youtube.com/watch?v=good", videos[0].Resource.Link)
}

func TestSummaryTruncation(t *testing.T) {
	long := strings.Repeat("a", 250)
	svc := &scriptedSearch{results: map[string][]VideoResult{
		"topic": {{ID: "v", Title: "video", Description: long, Duration: "PT10M"}},
	}}

	videos := BuildVideoResources(context.Background(), svc, []string{"topic"}, 1)
	require.Len(t, videos, 1)

	summary := videos[0].Resource.Summary
	assert.Len(t, []rune(summary), 203)
	assert.True(t, strings.HasSuffix(summary, "..."))

	// Short descriptions pass through untouched.
	svc.results["topic"][0].Description = "short"
	videos = BuildVideoResources(context.Background(), svc, []string{"topic"}, 1)
	assert.Equal(t, "short", videos[0].Resource.Summary)
}
