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

var creditErrorMappings = []errorMapping{
	{target: commands.ErrMemberNotFound, status: http.StatusNotFound, message: "Member not found"},
	{target: commands.ErrMembershipNotPending, status: http.StatusConflict, message: "Membership is not pending activation"},
	{target: commands.ErrInvalidActivationDate, status: http.StatusBadRequest, message: "Invalid activation date"},
}

// CreditHandler exposes the manual triggers of credit issuance.
type CreditHandler struct {
	cmds commands.CreditCommands
	loc  *time.Location
}

func NewCreditHandler(cmds commands.CreditCommands, loc *time.Location) *CreditHandler {
	return &CreditHandler{cmds: cmds, loc: loc}
}

// @Summary Run daily credit issuance
// @Description Issue every credit grant due on the given day, today when omitted. Safe to repeat.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RunIssuanceRequest false "Issuance day"
// @Success 200 {object} resdto.IssuanceResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/credit-issuance/run [post]
func (h *CreditHandler) RunIssuance(c *gin.Context) {
	var req reqdto.RunIssuanceRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errs.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	day, err := req.Day(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	result, err := h.cmds.RunDailyIssuance(c.Request.Context(), day)
	if err != nil {
		abortWithMapped(c, err, creditErrorMappings)
		return
	}
	c.JSON(http.StatusOK, resdto.FromIssuanceResult(result))
}

// @Summary Activate membership
// @Description Move a pending membership to active and issue its first credit cycle
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Param request body reqdto.ActivateMembershipRequest false "Activation time"
// @Success 200 {object} resdto.ActivationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/members/{id}/activate [post]
func (h *CreditHandler) ActivateMembership(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req reqdto.ActivateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errs.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	var at time.Time
	if req.ActivatedAt != nil {
		at = req.ActivatedAt.In(h.loc)
	}
	result, err := h.cmds.ActivateMembership(c.Request.Context(), id, at)
	if err != nil {
		abortWithMapped(c, err, creditErrorMappings)
		return
	}
	c.JSON(http.StatusOK, resdto.FromActivationResult(result))
}
