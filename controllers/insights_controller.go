package controllers

import (
	"net/http"

	"wellbeing/services"

	"github.com/gin-gonic/gin"
)

type InsightsController struct {
	Svc *services.InsightsService
}

func NewInsightsController(svc *services.InsightsService) *InsightsController {
	return &InsightsController{Svc: svc}
}

// Stats is the dashboard summary for today.
func (h *InsightsController) Stats(c *gin.Context) {
	owner, ok := ownerFromCtx(c)
	if !ok {
		unauthorized(c)
		return
	}
	out, err := h.Svc.TodaySummary(c.Request.Context(), owner)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *InsightsController) WeeklyTrend(c *gin.Context) {
	owner, ok := ownerFromCtx(c)
	if !ok {
		unauthorized(c)
		return
	}
	out, err := h.Svc.WeeklyHappinessTrend(c.Request.Context(), owner)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *InsightsController) DetractorBreakdown(c *gin.Context) {
	owner, ok := ownerFromCtx(c)
	if !ok {
		unauthorized(c)
		return
	}
	window, ok := windowParam(c)
	if !ok {
		return
	}
	out, err := h.Svc.MoodDetractorBreakdown(c.Request.Context(), owner, window)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *InsightsController) Insights(c *gin.Context) {
	owner, ok := ownerFromCtx(c)
	if !ok {
		unauthorized(c)
		return
	}
	window, ok := windowParam(c)
	if !ok {
		return
	}
	out, err := h.Svc.Insights(c.Request.Context(), owner, window)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": out})
}

func (h *InsightsController) WellnessCompletion(c *gin.Context) {
	owner, ok := ownerFromCtx(c)
	if !ok {
		unauthorized(c)
		return
	}
	pct, err := h.Svc.WellnessCompletionPercentage(c.Request.Context(), owner)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"percentage": pct})
}
