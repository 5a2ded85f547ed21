package app

import "github.com/gin-gonic/gin"

// Module defines the contract for a self-registering business module.
// Each module registers its own API routes on the group it is given.
type Module interface {
	RegisterRoutes(api *gin.RouterGroup)
}
