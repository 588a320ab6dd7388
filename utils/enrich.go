package utils

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"sync"

	"skillbite/models"
)

// Candidates outside this window (in minutes, bounds inclusive) are skipped.
const (
	minVideoMinutes = 2
	maxVideoMinutes = 60
)

const watchNextStep = "Watch and practice along"

// EnrichedVideo tags whether a topic produced a real search hit or the
// synthetic fallback, so callers can tell the paths apart without matching
// on synthesized titles.
type EnrichedVideo struct {
	Resource models.Resource
	Fallback bool
}

// BuildVideoResources turns search topics into video resources, one per
// topic. Topic searches are independent, so they run concurrently; results
// are reassembled in topic order. A topic whose search fails or filters down
// to nothing gets the fallback resource, so the output count always equals
// the topic count.
func BuildVideoResources(ctx context.Context, svc YouTubeService, topics []string, maxResults int) []EnrichedVideo {
	results := make([]EnrichedVideo, len(topics))

	var wg sync.WaitGroup
	wg.Add(len(topics))
	for i, topic := range topics {
		go func(i int, topic string) {
			defer wg.Done()
			results[i] = enrichTopic(ctx, svc, topic, maxResults)
		}(i, topic)
	}
	wg.Wait()

	return results
}

// enrichTopic returns the first candidate that passes the duration gate, or
// the fallback when the search errors or nothing passes.
func enrichTopic(ctx context.Context, svc YouTubeService, topic string, maxResults int) EnrichedVideo {
	candidates, err := svc.Search(ctx, topic, maxResults)
	if err != nil {
		log.Printf("Video search failed for %q, using fallback: %v", topic, err)
		return fallbackResource(topic)
	}

	for _, video := range candidates {
		minutes := ParseISODuration(video.Duration)
		if minutes < minVideoMinutes || minutes > maxVideoMinutes {
			continue
		}
		return EnrichedVideo{Resource: models.Resource{
			Title:               video.Title,
			Summary:             truncateSummary(video.Description),
			Link:                "https://www.youtube.com/watch?v=" + video.ID,
			Duration:            FormatMinutes(minutes),
			Topic:               topic,
			RecommendedNextStep: watchNextStep,
			Type:                models.ResourceTypeYouTube,
		}}
	}
	return fallbackResource(topic)
}

// fallbackResource points the user at the generic search-results page for
// the topic. Trades precision for availability: enrichment must never shrink
// the plan below the requested resource count.
func fallbackResource(topic string) EnrichedVideo {
	return EnrichedVideo{
		Fallback: true,
		Resource: models.Resource{
			Title:               fmt.Sprintf("Search YouTube: %s", topic),
			Summary:             fmt.Sprintf("No suitable video was found automatically. Search %q on YouTube and pick a recent, well-rated video to get started.", topic),
			Link:                "https://www.youtube.com/results?search_query=" + url.QueryEscape(topic),
			Duration:            "Varies",
			Topic:               topic,
			RecommendedNextStep: watchNextStep,
			Type:                models.ResourceTypeYouTube,
		},
	}
}

func truncateSummary(s string) string {
	runes := []rune(s)
	if len(runes) > 200 {
		return string(runes[:200]) + "..."
	}
	return s
}
