package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roomly/utils"
)

// HealthHandler reports the latest stored health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
