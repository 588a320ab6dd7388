package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"skillbite/config"
)

// VideoResult is one search candidate with its detail lookup merged in.
// Duration stays in the raw ISO-8601 token form (e.g. "PT7M30S").
type VideoResult struct {
	ID          string
	Title       string
	Description string
	Duration    string
}

// YouTubeService is the video-search collaborator. Search asks for medium
// length, embeddable videos in relevance order, then batches a detail lookup
// for durations.
type YouTubeService interface {
	Search(ctx context.Context, query string, maxResults int) ([]VideoResult, error)
}

type youtubeClient struct {
	searchUrl string
	videosUrl string
	apiKey    string
	client    *resty.Client
}

// NewYouTubeClient builds the client from loaded config, rejecting a missing
// key at startup.
func NewYouTubeClient() (YouTubeService, error) {
	cfg := config.AppConfig
	if cfg.YouTubeApiKey == "" {
		return nil, fmt.Errorf("missing YOUTUBE_API_KEY")
	}
	return &youtubeClient{
		searchUrl: cfg.YouTubeSearchUrl,
		videosUrl: cfg.YouTubeVideosUrl,
		apiKey:    cfg.YouTubeApiKey,
		client:    resty.New().SetTimeout(time.Duration(cfg.HttpTimeoutSeconds) * time.Second),
	}, nil
}

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

type youtubeVideosResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

func (y *youtubeClient) Search(ctx context.Context, query string, maxResults int) ([]VideoResult, error) {
	resp, err := y.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":            "snippet",
			"q":               query,
			"type":            "video",
			"key":             y.apiKey,
			"maxResults":      strconv.Itoa(maxResults),
			"videoDuration":   "medium",
			"videoEmbeddable": "true",
			"order":           "relevance",
		}).
		Get(y.searchUrl)
	if err != nil {
		return nil, NewAppError(ErrTransport, "video search unreachable").WithRaw(err.Error())
	}
	if resp.StatusCode() != 200 {
		// 403 here usually means quota or key trouble
		return nil, NewAppError(ErrTransport, fmt.Sprintf("video search returned status %d", resp.StatusCode())).WithRaw(resp.String())
	}

	var search youtubeSearchResponse
	if err := json.Unmarshal(resp.Body(), &search); err != nil {
		return nil, NewAppError(ErrTransport, "invalid video search envelope").WithRaw(resp.String())
	}

	ids := make([]string, 0, len(search.Items))
	for _, item := range search.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	if len(ids) == 0 {
		return []VideoResult{}, nil
	}

	detailResp, err := y.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part": "snippet,contentDetails,statistics",
			"id":   strings.Join(ids, ","),
			"key":  y.apiKey,
		}).
		Get(y.videosUrl)
	if err != nil {
		return nil, NewAppError(ErrTransport, "video detail lookup unreachable").WithRaw(err.Error())
	}
	if detailResp.StatusCode() != 200 {
		return nil, NewAppError(ErrTransport, fmt.Sprintf("video detail lookup returned status %d", detailResp.StatusCode())).WithRaw(detailResp.String())
	}

	var details youtubeVideosResponse
	if err := json.Unmarshal(detailResp.Body(), &details); err != nil {
		return nil, NewAppError(ErrTransport, "invalid video detail envelope").WithRaw(detailResp.String())
	}

	results := make([]VideoResult, 0, len(details.Items))
	for _, item := range details.Items {
		results = append(results, VideoResult{
			ID:          item.ID,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			Duration:    item.ContentDetails.Duration,
		})
	}
	return results, nil
}
