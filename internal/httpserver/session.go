package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muerroui/gsm-ma-achat-simple/internal/domain"
	"github.com/muerroui/gsm-ma-achat-simple/internal/i18n"
)

func sessionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"session": toSessionDTO(currentSession(c))})
	}
}

type setViewRequest struct {
	View string `json:"view" binding:"required"`
}

func setViewHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setViewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "view required"})
			return
		}

		state := currentSession(c)
		view := domain.View(req.View)
		// Only the home view is reachable anonymously; the rest of the
		// storefront opens up after login.
		if view != domain.ViewHome && !state.LoggedIn() {
			c.JSON(http.StatusForbidden, gin.H{"error": "login required"})
			return
		}
		if err := state.SetView(view); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"session": toSessionDTO(state)})
	}
}

type setLocaleRequest struct {
	Locale string `json:"locale" binding:"required"`
}

func setLocaleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setLocaleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "locale required"})
			return
		}

		state := currentSession(c)
		state.SetLocale(req.Locale)
		c.JSON(http.StatusOK, gin.H{
			"session":   toSessionDTO(state),
			"supported": i18n.Supported(req.Locale),
		})
	}
}

// i18nHandler serves the whole translation table for a locale, fallback
// applied, so the client loads it in one request.
func i18nHandler(c *gin.Context) {
	locale := c.Param("locale")
	c.JSON(http.StatusOK, gin.H{
		"locale":    locale,
		"fallback":  i18n.FallbackLocale,
		"supported": i18n.Supported(locale),
		"strings":   i18n.Strings(locale),
	})
}
