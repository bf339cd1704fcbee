package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medbook/utils"
)

// HealthHandler reports the latest external-service health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"health": utils.GetHealthStatus(),
	})
}
