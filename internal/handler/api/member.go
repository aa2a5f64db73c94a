package api

import (
	"net/http"
	"strconv"

	resdto "clubhouse/internal/handler/dto/response"
	"clubhouse/internal/handler/httperr"
	"clubhouse/internal/pkg/errs"
	"clubhouse/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var memberErrorMappings = []errorMapping{
	{target: queries.ErrMemberNotFound, status: http.StatusNotFound, message: "Membership not found"},
}

type MemberHandler struct {
	members queries.MemberQueries
	freezes queries.FreezeQueries
}

func NewMemberHandler(members queries.MemberQueries, freezes queries.FreezeQueries) *MemberHandler {
	return &MemberHandler{members: members, freezes: freezes}
}

// @Summary Payment status
// @Description Derive the caller's payment health from their membership record
// @Tags members
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PaymentStatusResponse
// @Failure 401 {object} httperr.Response
// @Router /api/me/payment-status [get]
func (h *MemberHandler) PaymentStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	view, err := h.members.PaymentStatus(c.Request.Context(), userID)
	if err != nil {
		abortWithMapped(c, err, memberErrorMappings)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentStatusView(view))
}

// @Summary Freeze eligibility
// @Description Remaining freeze allowance for a calendar year, defaulting to the current one
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param year query int false "Freeze year"
// @Success 200 {object} resdto.FreezeEligibilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/me/freeze-eligibility [get]
func (h *MemberHandler) FreezeEligibility(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	year := 0
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 2000 || y > 9999 {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrInvalidQueryParam, "Invalid year", nil)
			return
		}
		year = y
	}
	view, err := h.freezes.Eligibility(c.Request.Context(), userID, year)
	if err != nil {
		abortWithMapped(c, err, memberErrorMappings)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFreezeEligibilityView(view))
}
