//go:build e2e

package waitlist_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"clubhouse/internal/domain/user"
	resdto "clubhouse/internal/handler/dto/response"
	"clubhouse/tests/common/authtest"
	"clubhouse/tests/common/dbtest"
	"clubhouse/tests/common/httptest"
	"clubhouse/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const promoteURL = "/api/admin/sessions/%s/promote"

type WaitlistSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *WaitlistSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestWaitlistSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(WaitlistSuite))
}

func (s *WaitlistSuite) staffToken() string {
	t := s.T()
	staffID := dbtest.CreateProfile(t, s.DB, "staff-"+uuid.NewString()[:8]+"@example.com")
	return s.jwt.GenerateToken(t, staffID, user.RoleStaff)
}

func (s *WaitlistSuite) promote(sessionID uuid.UUID, token string) (int, resdto.PromotionResponse) {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(promoteURL, sessionID), nil, token)
	var res resdto.PromotionResponse
	if w.Code == http.StatusOK {
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	}
	return w.Code, res
}

func (s *WaitlistSuite) TestPromoteNext() {
	s.Run("Freed seat goes to the lowest position and is then held", func() {
		t := s.T()
		token := s.staffToken()
		sessionID := dbtest.CreateClassSession(t, s.DB, "Morning Flow", time.Now().UTC().Add(24*time.Hour), 9, 10)
		firstUser := dbtest.CreateProfile(t, s.DB, "first@example.com")
		secondUser := dbtest.CreateProfile(t, s.DB, "second@example.com")
		secondEntry := dbtest.AddWaitlistEntry(t, s.DB, sessionID, secondUser, 2)
		firstEntry := dbtest.AddWaitlistEntry(t, s.DB, sessionID, firstUser, 1)

		code, res := s.promote(sessionID, token)
		require.Equal(t, http.StatusOK, code)
		require.True(t, res.Promoted)
		require.Equal(t, "promoted", res.Reason)
		require.Equal(t, &firstEntry, res.EntryID)
		require.Equal(t, &firstUser, res.UserID)
		require.NotNil(t, res.ClaimExpiresAt)
		require.WithinDuration(t, time.Now().Add(s.Config.Club.ClaimWindow), *res.ClaimExpiresAt, time.Minute)
		require.Equal(t, "notified", dbtest.WaitlistStatus(t, s.DB, firstEntry))

		// the live hold occupies the only open seat
		code, res = s.promote(sessionID, token)
		require.Equal(t, http.StatusOK, code)
		require.False(t, res.Promoted)
		require.Equal(t, "no_capacity", res.Reason)
		require.Equal(t, "waiting", dbtest.WaitlistStatus(t, s.DB, secondEntry))
	})

	s.Run("Empty queue reports queue_empty", func() {
		t := s.T()
		sessionID := dbtest.CreateClassSession(t, s.DB, "Evening Strength", time.Now().UTC().Add(48*time.Hour), 3, 10)

		code, res := s.promote(sessionID, s.staffToken())
		require.Equal(t, http.StatusOK, code)
		require.False(t, res.Promoted)
		require.Equal(t, "queue_empty", res.Reason)
	})

	s.Run("Full session reports no_capacity", func() {
		t := s.T()
		sessionID := dbtest.CreateClassSession(t, s.DB, "Full House", time.Now().UTC().Add(48*time.Hour), 10, 10)
		dbtest.AddWaitlistEntry(t, s.DB, sessionID, dbtest.CreateProfile(t, s.DB, "hopeful@example.com"), 1)

		code, res := s.promote(sessionID, s.staffToken())
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "no_capacity", res.Reason)
	})

	s.Run("Unknown session is not found", func() {
		code, _ := s.promote(uuid.New(), s.staffToken())
		require.Equal(s.T(), http.StatusNotFound, code)
	})

	s.Run("Members cannot promote", func() {
		t := s.T()
		sessionID := dbtest.CreateClassSession(t, s.DB, "Members Only", time.Now().UTC().Add(24*time.Hour), 1, 10)
		memberID := dbtest.CreateProfile(t, s.DB, "member@example.com")

		code, _ := s.promote(sessionID, s.jwt.GenerateToken(t, memberID, user.RoleMember))
		require.Equal(t, http.StatusForbidden, code)
	})
}
