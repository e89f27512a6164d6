package controllers

import (
	"net/http"

	"wellbeing/services"

	"github.com/gin-gonic/gin"
)

type CalendarController struct {
	Svc *services.CalendarService
}

func NewCalendarController(svc *services.CalendarService) *CalendarController {
	return &CalendarController{Svc: svc}
}

// Range serves ?from=&to= (YYYY-MM-DD); both default to the current month.
func (h *CalendarController) Range(c *gin.Context) {
	owner, ok := ownerFromCtx(c)
	if !ok {
		unauthorized(c)
		return
	}
	out, err := h.Svc.Range(c.Request.Context(), owner, c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
