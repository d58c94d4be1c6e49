package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group. The group is
// expected to be guarded for brands.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.CreateProject)
	rg.GET("", h.ListProjects)
	rg.GET("/events", h.StreamProjectEvents)
	rg.GET("/:id", h.GetProject)
	rg.PATCH("/:id", h.UpdateProject)
	rg.POST("/:id/creators", h.AddCreators)
	rg.GET("/:id/available-creators", h.AvailableCreators)
}

// RegisterCreators attaches the catalog routes. The group accepts any
// identity; the proposals view additionally runs brandOnly.
func (h *Handler) RegisterCreators(rg *gin.RouterGroup, brandOnly gin.HandlerFunc) {
	rg.GET("", h.ListCreators)
	rg.GET("/:id", h.GetCreator)
	rg.GET("/:id/projects", brandOnly, h.CreatorProjects)
}
