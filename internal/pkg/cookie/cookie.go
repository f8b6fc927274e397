package cookie

import (
	"net/http"
	"time"

	"travel-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"
)

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	setHTTPOnly(c, cfg, AccessTokenCookieName, accessToken, int(accessExpiry.Seconds()))
	setHTTPOnly(c, cfg, RefreshTokenCookieName, refreshToken, int(refreshExpiry.Seconds()))
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	setHTTPOnly(c, cfg, AccessTokenCookieName, "", -1)
	setHTTPOnly(c, cfg, RefreshTokenCookieName, "", -1)
}

func setHTTPOnly(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	c.SetCookie(name, value, maxAge, "/", cfg.Domain, cfg.Secure, true)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
