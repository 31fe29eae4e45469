package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// Health reports liveness plus storage reachability.
func Health(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, NewErrorResponse("storage unavailable"))
			return
		}
		c.JSON(http.StatusOK, NewSuccessResponse(gin.H{"status": "ok"}))
	}
}
