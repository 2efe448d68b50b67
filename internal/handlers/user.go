package handlers

import (
	"net/http"

	"newsgrove/internal/db"
	"newsgrove/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	store *services.ItemStore
}

func NewUserHandler() *UserHandler {
	return &UserHandler{
		store: services.NewItemStore(db.DB),
	}
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.store.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
