package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func loginHandler(svc authService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond(c, http.StatusBadRequest, "username and password required")
			return
		}
		token, err := svc.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

func profileHandler(svc authService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := svc.Profile(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}
