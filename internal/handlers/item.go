package handlers

import (
	"net/http"
	"strconv"

	"newsgrove/internal/db"
	"newsgrove/internal/models"
	"newsgrove/internal/services"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	query *services.QueryEngine
	store *services.ItemStore
}

func NewItemHandler() *ItemHandler {
	return &ItemHandler{
		query: services.NewQueryEngine(db.DB),
		store: services.NewItemStore(db.DB),
	}
}

// optInt reads an optional integer query parameter. The second return value
// is false when the parameter is present but not a number.
func optInt(c *gin.Context, name string) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &v, true
}

func optInt64(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}

// List handles GET /items.
func (h *ItemHandler) List(c *gin.Context) {
	var filter models.ItemFilter

	if kind := c.Query("item_type"); kind != "" {
		if !models.ValidKind(kind) {
			JSONError(c, http.StatusBadRequest, "unknown item_type: "+kind)
			return
		}
		filter.Kind = kind
	}
	if by := c.Query("by"); by != "" {
		filter.By = &by
	}

	var ok bool
	if filter.BeforeTime, ok = optInt64(c, "before_time"); !ok {
		JSONError(c, http.StatusBadRequest, "invalid before_time")
		return
	}
	if filter.AfterTime, ok = optInt64(c, "after_time"); !ok {
		JSONError(c, http.StatusBadRequest, "invalid after_time")
		return
	}
	if filter.MinScore, ok = optInt(c, "min_score"); !ok {
		JSONError(c, http.StatusBadRequest, "invalid min_score")
		return
	}
	if filter.MaxScore, ok = optInt(c, "max_score"); !ok {
		JSONError(c, http.StatusBadRequest, "invalid max_score")
		return
	}
	if filter.MinComments, ok = optInt(c, "min_comments"); !ok {
		JSONError(c, http.StatusBadRequest, "invalid min_comments")
		return
	}
	if filter.MaxComments, ok = optInt(c, "max_comments"); !ok {
		JSONError(c, http.StatusBadRequest, "invalid max_comments")
		return
	}

	filter.Query = c.Query("query")

	if sortBy := c.Query("sort_by"); sortBy != "" {
		if sortBy != string(models.SortByScore) && sortBy != string(models.SortByTime) {
			JSONError(c, http.StatusBadRequest, "sort_by must be 'score' or 'time'")
			return
		}
		filter.SortBy = models.SortBy(sortBy)
	}
	if sortOrder := c.Query("sort_order"); sortOrder != "" {
		if sortOrder != string(models.OrderAsc) && sortOrder != string(models.OrderDesc) {
			JSONError(c, http.StatusBadRequest, "sort_order must be 'asc' or 'desc'")
			return
		}
		filter.SortOrder = models.SortOrder(sortOrder)
	}

	if raw := c.Query("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			JSONError(c, http.StatusBadRequest, "skip must be a non-negative integer")
			return
		}
		filter.Skip = skip
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			JSONError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		// Oversized limits are clamped inside the query engine, not rejected.
		filter.Limit = limit
	}

	items, err := h.query.List(c.Request.Context(), filter)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get handles GET /items/:id.
func (h *ItemHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		JSONError(c, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}
