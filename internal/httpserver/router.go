package httpserver

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// buildRouter wires routes for the storefront API. Session and i18n routes
// work anonymously; catalog, cart and orders are gated behind a logged-in
// session the same way the storefront hides those views before login.
func buildRouter(deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")

	limiter := newRateLimiter()

	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogMiddleware(),
		cors.New(corsCfg),
		limiter.middleware(),
	)

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.DB))
	router.GET("/i18n/:locale", i18nHandler)

	auth := router.Group("/auth")
	auth.POST("/session", openSessionHandler(deps.Sessions))
	auth.POST("/signup", signupHandler(deps.Customers))
	auth.POST("/login", withSession(deps.Sessions), loginHandler(deps.Customers))
	auth.POST("/logout", withSession(deps.Sessions), requireLogin(), logoutHandler())

	sess := router.Group("/session", withSession(deps.Sessions))
	sess.GET("", sessionHandler())
	sess.PUT("/view", setViewHandler())
	sess.PUT("/locale", setLocaleHandler())

	catalog := router.Group("/catalog", withSession(deps.Sessions), requireLogin())
	catalog.GET("", listCatalogHandler(deps.Catalog))
	catalog.GET("/categories", categoriesHandler())

	cartGroup := router.Group("/cart", withSession(deps.Sessions), requireLogin())
	cartGroup.GET("", getCartHandler())
	cartGroup.POST("/items", addCartItemHandler(deps.Catalog))
	cartGroup.PUT("/items/:productId", setCartQuantityHandler())
	cartGroup.POST("/checkout", checkoutHandler(deps.Orders))

	orders := router.Group("/orders", withSession(deps.Sessions), requireLogin())
	orders.GET("", listOrdersHandler(deps.Orders))
	orders.GET("/recent", recentOrdersHandler(deps.Orders))

	return router
}

// rateLimiterWindow is how long an idle client's bucket is kept around.
const rateLimiterWindow = 3 * time.Minute
