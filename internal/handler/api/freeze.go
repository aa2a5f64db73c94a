package api

import (
	"io"
	"net/http"
	"time"

	reqdto "clubhouse/internal/handler/dto/request"
	resdto "clubhouse/internal/handler/dto/response"
	"clubhouse/internal/handler/httperr"
	"clubhouse/internal/pkg/errs"
	"clubhouse/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var freezeErrorMappings = []errorMapping{
	{target: commands.ErrMemberNotFound, status: http.StatusNotFound, message: "Membership not found"},
	{target: commands.ErrFreezeRequestNotFound, status: http.StatusNotFound, message: "Freeze request not found"},
	{target: commands.ErrFreezeRequestNotOwned, status: http.StatusForbidden, message: "Freeze request belongs to another member"},
	{target: commands.ErrFreezeInvalidRequest, status: http.StatusBadRequest, message: "Invalid freeze request"},
	{target: commands.ErrMemberNotActive, status: http.StatusConflict, message: "Membership is not active"},
	{target: commands.ErrFreezeRequestOutstanding, status: http.StatusConflict, message: "A freeze request is already outstanding"},
	{target: commands.ErrFreezeInvalidTransition, status: http.StatusConflict, message: "Freeze request cannot change to that status"},
	{target: commands.ErrFreezeNotEligible, status: http.StatusUnprocessableEntity, message: "Freeze allowance exhausted for this year"},
}

type FreezeHandler struct {
	cmds commands.FreezeCommands
	loc  *time.Location
}

func NewFreezeHandler(cmds commands.FreezeCommands, loc *time.Location) *FreezeHandler {
	return &FreezeHandler{cmds: cmds, loc: loc}
}

// @Summary Request freeze
// @Description Ask for a one or two month membership freeze starting on a future date
// @Tags freezes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFreezeRequest true "Freeze request"
// @Success 201 {object} resdto.FreezeRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/me/freeze-requests [post]
func (h *FreezeHandler) Request(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req reqdto.CreateFreezeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start date", nil)
		return
	}
	created, err := h.cmds.RequestFreeze(c.Request.Context(), userID, in)
	if err != nil {
		abortWithMapped(c, err, freezeErrorMappings)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromFreezeRequest(created))
}

// @Summary Cancel freeze request
// @Description Withdraw one of the caller's pending or approved freeze requests
// @Tags freezes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Freeze request ID"
// @Success 200 {object} resdto.FreezeRequestResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/me/freeze-requests/{id}/cancel [post]
func (h *FreezeHandler) Cancel(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	updated, err := h.cmds.CancelFreeze(c.Request.Context(), userID, id)
	if err != nil {
		abortWithMapped(c, err, freezeErrorMappings)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFreezeRequest(updated))
}

// @Summary Approve freeze request
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Freeze request ID"
// @Param request body reqdto.ApproveFreezeRequest false "Optional start date override"
// @Success 200 {object} resdto.FreezeRequestResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/freeze-requests/{id}/approve [post]
func (h *FreezeHandler) Approve(c *gin.Context) {
	adminID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req reqdto.ApproveFreezeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errs.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	override, err := req.StartOverride(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start date", nil)
		return
	}
	updated, err := h.cmds.ApproveFreeze(c.Request.Context(), adminID, id, override)
	if err != nil {
		abortWithMapped(c, err, freezeErrorMappings)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFreezeRequest(updated))
}

// @Summary Reject freeze request
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Freeze request ID"
// @Param request body reqdto.RejectFreezeRequest true "Rejection reason"
// @Success 200 {object} resdto.FreezeRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/freeze-requests/{id}/reject [post]
func (h *FreezeHandler) Reject(c *gin.Context) {
	adminID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req reqdto.RejectFreezeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	updated, err := h.cmds.RejectFreeze(c.Request.Context(), adminID, id, req.Reason)
	if err != nil {
		abortWithMapped(c, err, freezeErrorMappings)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFreezeRequest(updated))
}

// @Summary Activate freeze
// @Description Record the freeze fee as paid and freeze the member's billing
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Freeze request ID"
// @Success 200 {object} resdto.FreezeRequestResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/freeze-requests/{id}/activate [post]
func (h *FreezeHandler) Activate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	updated, err := h.cmds.ActivateFreeze(c.Request.Context(), id)
	if err != nil {
		abortWithMapped(c, err, freezeErrorMappings)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFreezeRequest(updated))
}
