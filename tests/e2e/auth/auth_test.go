//go:build e2e

package auth_test

import (
	"net/http"
	"testing"
	"time"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/pkg/cookie"
	"travel-booking/tests/common/authtest"
	"travel-booking/tests/common/dbtest"
	"travel-booking/tests/common/httptest"
	"travel-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
	registerURL = "/api/users"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "guest@example.com", string(user.RoleGuest))
	dbtest.CreateTestUser(s.T(), s.DB, "host@example.com", string(user.RoleHost))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleGuest))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "guest@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "guest@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive user", email: "inactive@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusUnauthorized},
		{name: "empty email", email: "", password: dbtest.DefaultPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "guest@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				return
			}

			var res resdto.LoginResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			require.NotEmpty(t, res.AccessToken)
			require.Equal(t, tt.email, res.User.Email)
			require.NotNil(t, httptest.ExtractCookie(w, cookie.RefreshTokenCookieName))

			var lastLogin *time.Time
			err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
			require.NoError(t, err)
			require.NotNil(t, lastLogin, "last_login was not updated")
		})
	}
}

func (s *authSuite) TestRegisterThenLogin() {
	s.Run("Normal case: a registered guest can log in", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterUserRequest{
			Email:     "new@example.com",
			Username:  "newcomer",
			Password:  "s3cret-pass",
			FirstName: "New",
			LastName:  "Comer",
		}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		token := authtest.LoginUser(t, s.Router, "new@example.com", "s3cret-pass")
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), string(user.RoleGuest))
	})

	s.Run("Error case: duplicate email is 409", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, request.RegisterUserRequest{
			Email:    "guest@example.com",
			Username: "someoneelse",
			Password: "s3cret-pass",
		}, "")
		s.Equal(http.StatusConflict, w.Code)
	})
}

func (s *authSuite) TestRefresh() {
	s.Run("Normal case: refresh cookie issues a new access token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "guest@example.com", Password: dbtest.DefaultPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)

		refresh := httptest.ExtractCookie(w, cookie.RefreshTokenCookieName)
		require.NotNil(t, refresh)

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, []*http.Cookie{refresh}, "")

		var res resdto.TokenResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.NotEmpty(t, res.AccessToken)
	})

	s.Run("Error case: invalid refresh token is 401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "invalid-refresh-token"}, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: missing refresh token is 401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	tests := []struct {
		name           string
		token          func() string
		expectedStatus int
	}{
		{
			name: "valid token",
			token: func() string {
				return authtest.LoginUser(s.T(), s.Router, "guest@example.com", dbtest.DefaultPassword)
			},
			expectedStatus: http.StatusNoContent,
		},
		{name: "invalid token", token: func() string { return "invalid-token" }, expectedStatus: http.StatusUnauthorized},
		{name: "no token", token: func() string { return "" }, expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, tt.token())
			require.Equal(s.T(), tt.expectedStatus, w.Code)
		})
	}
}

func (s *authSuite) TestMe() {
	for _, role := range []user.Role{user.RoleGuest, user.RoleHost, user.RoleAdmin} {
		s.Run("Normal case: "+string(role), func() {
			t := s.T()
			email := string(role) + "-me@example.com"
			_, token := authtest.CreateAndLogin(t, s.DB, s.Router, email, string(role))

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, http.StatusOK, w.Code)

			body := w.Body.String()
			require.Contains(t, body, email)
			require.Contains(t, body, string(role))
			require.NotContains(t, body, "password")
		})
	}

	s.Run("Error case: expired token is 401", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleGuest))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, s.jwtHelper.CreateExpiredToken(t, userID, user.RoleGuest))
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: no token is 401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestRoleGate() {
	s.Run("Error case: guests cannot create listings", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "guest@example.com", dbtest.DefaultPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/listings", request.CreateListingRequest{
			Name:          "Guest Listing",
			Location:      "Bahir Dar",
			PricePerNight: "80",
		}, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Normal case: hosts can", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "host@example.com", dbtest.DefaultPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/listings", request.CreateListingRequest{
			Name:          "Host Listing",
			Location:      "Bahir Dar",
			PricePerNight: "80",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}
