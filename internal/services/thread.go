package services

import (
	"context"

	"newsgrove/internal/models"
)

// Fixed traversal bounds: at most 10 top-level comments, each followed by at
// most 1 reply. The cap is a cost contract, not a heuristic.
const (
	previewComments = 10
	previewReplies  = 1
)

// ThreadAssembler builds the bounded comment preview attached to search
// results.
type ThreadAssembler struct {
	store *ItemStore
}

func NewThreadAssembler(store *ItemStore) *ThreadAssembler {
	return &ThreadAssembler{store: store}
}

// Preview returns the texts of up to 10 top-level comments of a story in
// display order, each immediately followed by the text of its first reply
// when that reply exists and has text. At most 20 fragments come back.
func (t *ThreadAssembler) Preview(ctx context.Context, storyID int64) ([]string, error) {
	comments, err := t.store.ListChildren(ctx, storyID, models.KindComment, previewComments)
	if err != nil {
		return nil, err
	}

	texts := make([]string, 0, previewComments*2)
	for _, comment := range comments {
		if comment.Text == nil || *comment.Text == "" {
			continue
		}
		texts = append(texts, *comment.Text)

		replies, err := t.store.ListChildren(ctx, comment.ID, models.KindComment, previewReplies)
		if err != nil {
			return nil, err
		}
		if len(replies) > 0 && replies[0].Text != nil && *replies[0].Text != "" {
			texts = append(texts, *replies[0].Text)
		}
	}
	return texts, nil
}
