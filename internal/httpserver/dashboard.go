package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func dashboardHandler(svc statsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := svc.Summarize(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}
