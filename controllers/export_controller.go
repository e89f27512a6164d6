package controllers

import (
	"net/http"

	"wellbeing/services"

	"github.com/gin-gonic/gin"
)

type ExportController struct {
	Svc *services.ExportService
}

func NewExportController(svc *services.ExportService) *ExportController {
	return &ExportController{Svc: svc}
}

type exportReq struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (h *ExportController) Export(c *gin.Context) {
	owner, ok := ownerFromCtx(c)
	if !ok {
		unauthorized(c)
		return
	}
	var req exportReq
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	out, err := h.Svc.Export(c.Request.Context(), owner, req.From, req.To)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}
