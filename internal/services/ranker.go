package services

import (
	"context"
	"sort"
	"strings"

	"newsgrove/internal/utils"

	"golang.org/x/sync/errgroup"
)

// RankWeights control how the four relevance signals are fused. The weights
// are fixed at construction; they are configuration, not tunables.
type RankWeights struct {
	Score    float64
	Distance float64
	Age      float64
	Overlap  float64
}

var DefaultWeights = RankWeights{
	Score:    0.4,
	Distance: 0.4,
	Age:      0.1,
	Overlap:  0.1,
}

// Candidate is one raw similarity hit from the provider.
type Candidate struct {
	ItemID   int64
	Distance float64
}

// RankedCandidate is a candidate with its fused relevance score.
type RankedCandidate struct {
	ItemID int64
	Score  float64
}

// Bound on concurrent metadata lookups per request.
const maxMetadataFetches = 8

// Ranker fuses community score, recency, semantic distance and keyword
// overlap into a single ordering.
type Ranker struct {
	store   *ItemStore
	weights RankWeights
}

func NewRanker(store *ItemStore, weights RankWeights) *Ranker {
	return &Ranker{store: store, weights: weights}
}

type rankInput struct {
	id       int64
	distance float64
	title    string
	score    float64
	age      float64
	ok       bool
}

// Rank orders candidates by descending fused score. Candidates missing from
// the store or lacking a title are dropped. Ties are broken by descending
// item id so the ordering is fully deterministic.
func (r *Ranker) Rank(ctx context.Context, query string, candidates []Candidate) ([]RankedCandidate, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	// Metadata lookups are independent point reads, so they run in parallel
	// with a bounded group. Each result lands at its candidate's index to
	// keep the scoring input order deterministic.
	inputs := make([]rankInput, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxMetadataFetches)
	for i, cand := range candidates {
		g.Go(func() error {
			title, score, age, ok, err := r.store.RankInputs(gctx, cand.ItemID)
			if err != nil {
				return err
			}
			inputs[i] = rankInput{
				id:       cand.ItemID,
				distance: cand.Distance,
				title:    title,
				score:    float64(score),
				age:      float64(age),
				ok:       ok,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	kept := make([]rankInput, 0, len(inputs))
	for _, in := range inputs {
		if in.ok {
			kept = append(kept, in)
		}
	}
	if len(kept) == 0 {
		return nil, nil
	}

	scores := make([]float64, len(kept))
	ages := make([]float64, len(kept))
	distances := make([]float64, len(kept))
	for i, in := range kept {
		scores[i] = in.score
		ages[i] = in.age
		distances[i] = in.distance
	}

	normScores := utils.Normalize(scores, false)
	normAges := utils.Normalize(ages, false)
	normDistances := utils.Normalize(distances, true)

	queryWords := tokenSet(query)

	ranked := make([]RankedCandidate, len(kept))
	for i, in := range kept {
		// Keyword overlap stays an unbounded integer on purpose: a title
		// hitting several query words should outweigh the normalized signals.
		matches := overlap(queryWords, tokenSet(in.title))

		fused := r.weights.Score*normScores[i] +
			r.weights.Distance*normDistances[i] +
			r.weights.Age*normAges[i] +
			r.weights.Overlap*float64(matches)
		ranked[i] = RankedCandidate{ItemID: in.id, Score: fused}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ItemID > ranked[j].ItemID
	})

	return ranked, nil
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range strings.Fields(s) {
		set[strings.ToLower(word)] = struct{}{}
	}
	return set
}

func overlap(a, b map[string]struct{}) int {
	n := 0
	for word := range a {
		if _, ok := b[word]; ok {
			n++
		}
	}
	return n
}
