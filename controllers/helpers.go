package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"wellbeing/middlewares"
	"wellbeing/services"
	"wellbeing/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func ownerFromCtx(c *gin.Context) (string, bool) {
	email := c.GetString(middlewares.OwnerKey)
	return email, email != ""
}

// respondError maps service errors onto status codes. Internal details are
// logged and never sent to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		utils.Log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String(middlewares.RequestIDKey, c.GetString(middlewares.RequestIDKey)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
}

// bindJSON reports malformed bodies as 400.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// windowParam reads ?window=N days; absent means the default window.
func windowParam(c *gin.Context) (int, bool) {
	v := c.Query("window")
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "window must be a positive number of days"})
		return 0, false
	}
	return n, true
}
