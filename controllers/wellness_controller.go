package controllers

import (
	"net/http"

	"wellbeing/services"

	"github.com/gin-gonic/gin"
)

type WellnessController struct {
	Svc *services.WellnessService
}

func NewWellnessController(svc *services.WellnessService) *WellnessController {
	return &WellnessController{Svc: svc}
}

func (h *WellnessController) Today(c *gin.Context) {
	owner, ok := ownerFromCtx(c)
	if !ok {
		unauthorized(c)
		return
	}
	out, err := h.Svc.Today(c.Request.Context(), owner)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Save replaces the whole day; omitted fields are stored as zero.
func (h *WellnessController) Save(c *gin.Context) {
	owner, ok := ownerFromCtx(c)
	if !ok {
		unauthorized(c)
		return
	}
	var in services.WellnessInput
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
