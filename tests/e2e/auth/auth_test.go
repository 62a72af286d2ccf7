//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	reqdto "relecloud-api/internal/handler/dto/request"
	resdto "relecloud-api/internal/handler/dto/response"
	"relecloud-api/tests/common/authtest"
	"relecloud-api/tests/common/dbtest"
	"relecloud-api/tests/common/httptest"
	"relecloud-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestLogin() {
	s.Run("valid credentials return tokens and the user profile", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: s.Ref.MemberEmail, Password: dbtest.TestPassword}, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &response)
		require.NotEmpty(t, response.AccessToken)
		require.NotNil(t, response.User)
		require.Equal(t, s.Ref.MemberEmail, response.User.Email)
		require.Equal(t, "member", response.User.Role)

		require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
		require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))
	})

	s.Run("a wrong password is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: s.Ref.MemberEmail, Password: "wrong-password"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("an unknown email gets the same answer as a wrong password", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: "nobody@example.com", Password: dbtest.TestPassword}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid email or password")
	})
}

func (s *AuthSuite) TestMe() {
	s.Run("returns the profile for a valid token", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, s.Ref.AdminEmail, dbtest.TestPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		var response map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &response)
		require.Equal(t, s.Ref.AdminEmail, response["email"])
		require.Equal(t, "admin", response["role"])
	})

	s.Run("rejects requests without a token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("rejects a garbage token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "not-a-jwt")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *AuthSuite) TestRefresh() {
	s.Run("the refresh cookie rotates the token pair", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: s.Ref.MemberEmail, Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		refreshCookie := httptest.ExtractCookie(w, "refresh_token")
		require.NotNil(t, refreshCookie)

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL,
			nil, []*http.Cookie{refreshCookie}, "")

		var response resdto.RefreshResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &response)
		require.NotEmpty(t, response.AccessToken)

		// The rotated access token works against a protected route.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, response.AccessToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("refresh without the cookie is unauthorized", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Refresh token required")
	})
}

func (s *AuthSuite) TestLogout() {
	s.Run("logout clears the session cookies", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: s.Ref.MemberEmail, Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		token := httptest.ExtractCookie(w, "access_token").Value

		authtest.LogoutUser(t, s.Router, []*http.Cookie{
			{Name: "access_token", Value: token},
		})
	})
}
