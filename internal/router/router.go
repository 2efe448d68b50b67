package router

import (
	"net/http"

	"newsgrove/internal/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	itemHandler := handlers.NewItemHandler()
	userHandler := handlers.NewUserHandler()
	searchHandler := handlers.NewSearchHandler()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/items", itemHandler.List)      // filtered/sorted/paginated listing
	r.GET("/items/:id", itemHandler.Get)   // point lookup
	r.GET("/users/:id", userHandler.Get)   // user profile
	r.GET("/search", searchHandler.Search) // hybrid semantic search
}
