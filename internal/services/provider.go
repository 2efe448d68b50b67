package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// SimilarityClient talks to the external semantic search service. The
// provider exposes a single GET endpoint taking a free-text query and
// returning candidate items as [id, distance] pairs.
type SimilarityClient struct {
	baseURL string
	client  *http.Client
}

func NewSimilarityClient(baseURL string) *SimilarityClient {
	return &SimilarityClient{
		baseURL: baseURL,
		client: &http.Client{
			// Transport-level ceiling; the per-request budget comes in via ctx.
			Timeout: 30 * time.Second,
		},
	}
}

// Search returns the provider's raw candidate set for a query. The candidate
// count bound is provider-defined; there is no pagination. A cancelled or
// expired ctx surfaces as the context's own error so callers can tell a
// timeout apart from an unreachable provider.
func (s *SimilarityClient) Search(ctx context.Context, query string) ([]Candidate, error) {
	endpoint := s.baseURL + "?" + url.Values{"query": {query}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var pairs [][2]float64
	if err := json.NewDecoder(resp.Body).Decode(&pairs); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: bad response body: %v", ErrUpstreamUnavailable, err)
	}

	candidates := make([]Candidate, len(pairs))
	for i, pair := range pairs {
		candidates[i] = Candidate{ItemID: int64(pair[0]), Distance: pair[1]}
	}
	return candidates, nil
}
