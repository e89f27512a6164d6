package controllers

import (
	"net/http"

	"wellbeing/services"

	"github.com/gin-gonic/gin"
)

type GratitudeController struct {
	Svc *services.GratitudeService
}

func NewGratitudeController(svc *services.GratitudeService) *GratitudeController {
	return &GratitudeController{Svc: svc}
}

// List returns the most recent journal days, newest first.
func (h *GratitudeController) List(c *gin.Context) {
	owner, ok := ownerFromCtx(c)
	if !ok {
		unauthorized(c)
		return
	}
	out, err := h.Svc.List(c.Request.Context(), owner)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *GratitudeController) ForDay(c *gin.Context) {
	owner, ok := ownerFromCtx(c)
	if !ok {
		unauthorized(c)
		return
	}
	out, err := h.Svc.ForDay(c.Request.Context(), owner, c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *GratitudeController) Save(c *gin.Context) {
	owner, ok := ownerFromCtx(c)
	if !ok {
		unauthorized(c)
		return
	}
	var in services.GratitudeInput
	if !bindJSON(c, &in) {
		return
	}
	out, err := h.Svc.Save(c.Request.Context(), owner, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Delete removes the day given by ?date=. Absent days are not an error.
func (h *GratitudeController) Delete(c *gin.Context) {
	owner, ok := ownerFromCtx(c)
	if !ok {
		unauthorized(c)
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), owner, c.Query("date")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gratitude deleted"})
}
