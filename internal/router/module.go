package router

import "github.com/gin-gonic/gin"

// Module is a feature area (dictionary, auth, contributions) that mounts its
// own routes onto the shared /api group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
