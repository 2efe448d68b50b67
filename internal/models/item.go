package models

// Item kinds as stored in the dataset's type column.
const (
	KindComment = "comment"
	KindJob     = "job"
	KindStory   = "story"
	KindPoll    = "poll"
	KindPollOpt = "pollopt"
)

// ValidKind reports whether s is a known item kind.
func ValidKind(s string) bool {
	switch s {
	case KindComment, KindJob, KindStory, KindPoll, KindPollOpt:
		return true
	}
	return false
}

// Item is a single forum node: story, job, poll, poll option or comment.
// Most columns are nullable in the dataset, so optional fields are pointers.
// The API never writes items; they are loaded by an external importer.
type Item struct {
	ID          int64   `gorm:"primaryKey" json:"id"`
	Kind        string  `gorm:"column:type;index" json:"type"`
	By          *string `gorm:"index" json:"by,omitempty"`
	Time        *int64  `gorm:"index" json:"time,omitempty"`
	Title       *string `json:"title,omitempty"`
	URL         *string `json:"url,omitempty"`
	Text        *string `gorm:"type:text" json:"text,omitempty"`
	Score       *int    `json:"score,omitempty"`
	Descendants *int    `json:"descendants,omitempty"`
}

func (Item) TableName() string {
	return "items"
}

// ItemChild is one parent→child edge with an explicit ordering among the
// siblings of a parent. Thread traversal only ever walks parent→children with
// a small fixed depth, so the edges are queried per parent and never
// materialized into an in-memory graph.
type ItemChild struct {
	Item         int64 `gorm:"index" json:"item"`
	Kid          int64 `gorm:"index" json:"kid"`
	DisplayOrder int   `json:"display_order"`
}

func (ItemChild) TableName() string {
	return "kids"
}
