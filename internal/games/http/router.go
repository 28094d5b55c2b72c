package http

import "github.com/gin-gonic/gin"

// Register attaches catalog routes to the given API group. The guards
// are passed in so the route table stays readable in one place:
// browsing is public (with optional identity for favorite state), the
// toggle and favorites view need a signed-in user, and the authoring
// surface additionally needs the stored admin flag.
func (h *Handler) Register(api *gin.RouterGroup, optionalUser, requireUser, requireAdmin gin.HandlerFunc) {
	games := api.Group("/games")
	games.GET("", optionalUser, h.list)
	games.GET("/:id", optionalUser, h.get)
	games.POST("/:id/favorite", requireUser, h.toggleFavorite)

	admin := games.Group("", requireUser, requireAdmin)
	admin.POST("", h.create)
	admin.PATCH("/:id", h.update)
	admin.DELETE("/:id", h.delete)

	api.GET("/favorites", requireUser, h.favorites)
}
