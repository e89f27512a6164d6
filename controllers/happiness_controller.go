package controllers

import (
	"net/http"

	"wellbeing/models"
	"wellbeing/services"

	"github.com/gin-gonic/gin"
)

type HappinessController struct {
	Svc *services.HappinessService
}

func NewHappinessController(svc *services.HappinessService) *HappinessController {
	return &HappinessController{Svc: svc}
}

func (h *HappinessController) Today(c *gin.Context) {
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

func (h *HappinessController) Save(c *gin.Context) {
	owner, ok := ownerFromCtx(c)
	if !ok {
		unauthorized(c)
		return
	}
	var in services.HappinessInput
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

func (h *HappinessController) Detractors(c *gin.Context) {
	owner, ok := ownerFromCtx(c)
	if !ok {
		unauthorized(c)
		return
	}
	out, err := h.Svc.TodayDetractors(c.Request.Context(), owner)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mood_detractors": out})
}

type detractorsReq struct {
	MoodDetractors []models.MoodDetractor `json:"mood_detractors"`
}

func (h *HappinessController) SaveDetractors(c *gin.Context) {
	owner, ok := ownerFromCtx(c)
	if !ok {
		unauthorized(c)
		return
	}
	var req detractorsReq
	if !bindJSON(c, &req) {
		return
	}
	out, err := h.Svc.SaveDetractors(c.Request.Context(), owner, req.MoodDetractors)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mood_detractors": out})
}
