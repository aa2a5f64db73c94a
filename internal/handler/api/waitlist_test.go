//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"clubhouse/internal/domain/user"
	"clubhouse/internal/handler/api"
	resdto "clubhouse/internal/handler/dto/response"
	"clubhouse/internal/pkg/errs"
	"clubhouse/internal/usecase/commands"
	"clubhouse/tests/common/httptest"
	commandsmock "clubhouse/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WaitlistHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWaitlistCommands
}

func (s *WaitlistHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWaitlistCommands(s.mockCtrl)

	h := api.NewWaitlistHandler(s.mockCommands)
	s.router.POST("/admin/sessions/:id/promote", fakeAuth(uuid.New(), user.RoleStaff), h.Promote)
}

func (s *WaitlistHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWaitlistHandlerSuite(t *testing.T) {
	suite.Run(t, new(WaitlistHandlerTestSuite))
}

func (s *WaitlistHandlerTestSuite) TestPromote() {
	sessionID := uuid.New()
	url := "/admin/sessions/" + sessionID.String() + "/promote"

	s.Run("success: entry promoted", func() {
		entryID, userID := uuid.New(), uuid.New()
		expires := time.Date(2025, time.June, 2, 17, 5, 0, 0, time.UTC)
		s.mockCommands.EXPECT().PromoteNext(gomock.Any(), sessionID).Return(&commands.PromotionResult{
			Promoted:       true,
			Reason:         commands.PromotionPromoted,
			EntryID:        &entryID,
			UserID:         &userID,
			ClaimExpiresAt: &expires,
			Notified:       true,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var got resdto.PromotionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.True(got.Promoted)
		s.Equal("promoted", got.Reason)
		s.Equal(entryID, *got.EntryID)
		s.True(expires.Equal(*got.ClaimExpiresAt))
		s.True(got.Notified)
	})

	s.Run("success: full session reports no capacity", func() {
		s.mockCommands.EXPECT().PromoteNext(gomock.Any(), sessionID).
			Return(&commands.PromotionResult{Reason: commands.PromotionNoCapacity}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"promoted":false,"reason":"no_capacity","notified":false}`, rec.Body.String())
	})

	s.Run("error: unknown session", func() {
		s.mockCommands.EXPECT().PromoteNext(gomock.Any(), sessionID).
			Return(nil, errs.Mark(errs.New("no rows"), commands.ErrSessionNotFound))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Class session not found")
	})

	s.Run("error: every attempt lost the race", func() {
		s.mockCommands.EXPECT().PromoteNext(gomock.Any(), sessionID).Return(nil, commands.ErrPromotionContended)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "retry")
	})

	s.Run("error: malformed session id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/sessions/42/promote", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
