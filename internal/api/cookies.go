package api

import (
	"net/http"

	"github.com/campushire/jobboard/internal/config"
	"github.com/gin-gonic/gin"
)

func sameSiteOf(cfg config.ServerConfig) http.SameSite {
	switch cfg.CookieSameSite {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func setSessionCookie(c *gin.Context, cfg config.ServerConfig, token string, maxAge int) {
	c.SetSameSite(sameSiteOf(cfg))
	c.SetCookie(sessionCookieName, token, maxAge, "/", "", cfg.CookieSecure, true)
}

func clearSessionCookie(c *gin.Context, cfg config.ServerConfig) {
	c.SetSameSite(sameSiteOf(cfg))
	c.SetCookie(sessionCookieName, "", -1, "/", "", cfg.CookieSecure, true)
}
