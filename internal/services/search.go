package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"newsgrove/internal/models"

	"gorm.io/gorm"
)

// SearchResult is one enriched search hit: the full item, its fused relevance
// score, and (unless excluded) a bounded preview of its comment thread.
type SearchResult struct {
	models.Item
	Relevance   float64  `json:"relevance"`
	CommentText []string `json:"comment_text,omitempty"`
}

// SearchService coordinates provider → ranker → store → thread assembler
// into one search response. Stages run strictly in that order; each consumes
// the previous stage's output.
type SearchService struct {
	provider *SimilarityClient
	store    *ItemStore
	ranker   *Ranker
	threads  *ThreadAssembler
}

func NewSearchService(provider *SimilarityClient, store *ItemStore, weights RankWeights) *SearchService {
	return &SearchService{
		provider: provider,
		store:    store,
		ranker:   NewRanker(store, weights),
		threads:  NewThreadAssembler(store),
	}
}

// Search runs the full pipeline. Ranking happens over the provider's entire
// candidate set; truncation to limit only happens after fusion and sort, so a
// close-but-low-fused candidate can never displace a better one. Results are
// all-or-nothing: any stage error fails the whole request.
func (s *SearchService) Search(ctx context.Context, rawQuery string, limit int, excludeComments bool) ([]SearchResult, error) {
	query := strings.TrimSpace(rawQuery)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		limit = models.DefaultLimit
	}
	if limit > models.MaxLimit {
		limit = models.MaxLimit
	}

	start := time.Now()
	candidates, err := s.provider.Search(ctx, query)
	if err != nil {
		return nil, asPipelineErr(err)
	}
	searchTime := time.Since(start)

	start = time.Now()
	ranked, err := s.ranker.Rank(ctx, query, candidates)
	if err != nil {
		return nil, asPipelineErr(err)
	}
	rankTime := time.Since(start)

	log.Printf("search(%.3f) rank(%.3f) num(%d -> %d): %q",
		searchTime.Seconds(), rankTime.Seconds(), len(ranked), limit, query)

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	results := make([]SearchResult, 0, len(ranked))
	for _, rc := range ranked {
		item, err := s.store.GetByID(ctx, rc.ItemID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, asPipelineErr(err)
		}

		result := SearchResult{Item: item, Relevance: rc.Score}
		if !excludeComments {
			texts, err := s.threads.Preview(ctx, rc.ItemID)
			if err != nil {
				return nil, asPipelineErr(err)
			}
			result.CommentText = texts
		}
		results = append(results, result)
	}
	return results, nil
}

// asPipelineErr maps a blown request budget onto ErrTimeout so callers report
// it distinctly from an unavailable upstream.
func asPipelineErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return err
}
