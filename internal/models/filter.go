package models

type SortBy string

const (
	SortByScore SortBy = "score"
	SortByTime  SortBy = "time"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Paging bounds enforced on every listing and search request.
const (
	DefaultLimit = 10
	MaxLimit     = 50
)

// ItemFilter describes one listing request. Nil/zero fields impose no
// constraint; set fields combine with AND semantics. Contradictory bounds
// (e.g. MinScore > MaxScore) are legal and simply match nothing.
type ItemFilter struct {
	Kind        string
	By          *string
	BeforeTime  *int64
	AfterTime   *int64
	MinScore    *int
	MaxScore    *int
	MinComments *int
	MaxComments *int
	Query       string
	SortBy      SortBy
	SortOrder   SortOrder
	Skip        int
	Limit       int
}

// Clamp applies the server-side paging bounds: a missing limit falls back to
// DefaultLimit, anything above MaxLimit is cut down to MaxLimit.
func (f *ItemFilter) Clamp() {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.Skip < 0 {
		f.Skip = 0
	}
}
