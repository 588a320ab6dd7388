package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"skillbite/models"
)

// LinkChecker probes article links. Used once before a plan is persisted and
// again by the nightly audit.
type LinkChecker interface {
	Alive(ctx context.Context, link string) bool
}

type httpLinkChecker struct {
	client *resty.Client
}

// NewLinkChecker returns a probe with a short fixed timeout; link checking
// must never dominate generation latency.
func NewLinkChecker() LinkChecker {
	return &httpLinkChecker{client: resty.New().SetTimeout(5 * time.Second)}
}

func (l *httpLinkChecker) Alive(ctx context.Context, link string) bool {
	resp, err := l.client.R().SetContext(ctx).Head(link)
	if err != nil {
		// A probe transport failure is not proof the page is gone.
		return true
	}
	return resp.StatusCode() < 400
}

// FilterDeadArticles drops article resources whose links answer 4xx/5xx.
// Probes run concurrently; survivors keep their relative order. Runs before
// persistence only, so resource indices stay stable once a plan is written.
func FilterDeadArticles(ctx context.Context, checker LinkChecker, resources []models.Resource) []models.Resource {
	alive := make([]bool, len(resources))

	var wg sync.WaitGroup
	for i, r := range resources {
		if r.Type != models.ResourceTypeArticle || r.Link == "" {
			alive[i] = true
			continue
		}
		wg.Add(1)
		go func(i int, link string) {
			defer wg.Done()
			alive[i] = checker.Alive(ctx, link)
		}(i, r.Link)
	}
	wg.Wait()

	kept := make([]models.Resource, 0, len(resources))
	for i, r := range resources {
		if alive[i] {
			kept = append(kept, r)
		}
	}
	return kept
}
