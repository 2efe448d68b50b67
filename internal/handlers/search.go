package handlers

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"newsgrove/internal/db"
	"newsgrove/internal/models"
	"newsgrove/internal/services"
	"newsgrove/internal/utils"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	search *services.SearchService
}

func NewSearchHandler() *SearchHandler {
	providerURL := os.Getenv("SEARCH_PROVIDER_URL")
	if providerURL == "" {
		providerURL = "http://localhost:8001/search"
	}

	store := services.NewItemStore(db.DB)
	return &SearchHandler{
		search: services.NewSearchService(
			services.NewSimilarityClient(providerURL),
			store,
			services.DefaultWeights,
		),
	}
}

// Search handles GET /search.
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if strings.TrimSpace(query) == "" {
		JSONError(c, http.StatusBadRequest, "query must not be empty")
		return
	}

	limit := models.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			JSONError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	excludeComments := false
	if raw := c.Query("exclude_comments"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			JSONError(c, http.StatusBadRequest, "exclude_comments must be a boolean")
			return
		}
		excludeComments = parsed
	}

	cacheKey := fmt.Sprintf("search:%s:%d:%t", query, limit, excludeComments)
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if results, ok := cached.([]services.SearchResult); ok {
			c.JSON(http.StatusOK, results)
			return
		}
	}

	results, err := h.search.Search(c.Request.Context(), query, limit, excludeComments)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	utils.GetCache().Set(cacheKey, results, 1*time.Minute)
	c.JSON(http.StatusOK, results)
}
