package api

import (
	"net/http"

	resdto "clubhouse/internal/handler/dto/response"
	"clubhouse/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var waitlistErrorMappings = []errorMapping{
	{target: commands.ErrSessionNotFound, status: http.StatusNotFound, message: "Class session not found"},
	{target: commands.ErrPromotionContended, status: http.StatusConflict, message: "Promotion contended, retry"},
}

type WaitlistHandler struct {
	cmds commands.WaitlistCommands
}

func NewWaitlistHandler(cmds commands.WaitlistCommands) *WaitlistHandler {
	return &WaitlistHandler{cmds: cmds}
}

// @Summary Promote from waitlist
// @Description Offer the next open seat of a class session to the first waiting member
// @Tags waitlist
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class session ID"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/sessions/{id}/promote [post]
func (h *WaitlistHandler) Promote(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	result, err := h.cmds.PromoteNext(c.Request.Context(), id)
	if err != nil {
		abortWithMapped(c, err, waitlistErrorMappings)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotionResult(result))
}
