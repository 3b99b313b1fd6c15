package http

import "github.com/gin-gonic/gin"

// Register attaches the view routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/users/me", h.me)
	rg.GET("/projects", h.listProjects)
	rg.GET("/projects/:projectGuid", h.projectDetails)
	rg.GET("/families/:familyGuid", h.family)
}
