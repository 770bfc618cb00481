package bootstrap

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	httpHandler "github.com/SageMyrloc/FinalProject/internal/handler/http"
	"github.com/SageMyrloc/FinalProject/internal/metrics"
	"github.com/SageMyrloc/FinalProject/internal/middleware"
	"github.com/SageMyrloc/FinalProject/web"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Auth     *httpHandler.AuthHandler
	Catalog  *httpHandler.CatalogHandler
	Activity *httpHandler.ActivityHandler
	Pages    *httpHandler.PageHandler
}

// NewRouter builds the gin engine with middleware and routes.
func NewRouter(cfg *Config, log *logrus.Logger, h Handlers, authn middleware.SessionAuthenticator, limiter middleware.RateLimiter) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(log))
	router.Use(metrics.Instrument())
	router.Use(CORS(cfg.CORSAllowedOrigin))
	router.Use(middleware.RateLimit(limiter, cfg.RateLimitMax, cfg.RateLimitWindow))

	router.SetHTMLTemplate(web.Templates())
	router.StaticFS("/static", web.Static())

	router.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "pong"}) })
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// public pages and auth endpoints
	router.GET("/", h.Pages.Static("homepage.html"))
	router.GET("/login/", h.Pages.Static("login.html"))
	router.GET("/register/", h.Pages.Static("register.html"))
	router.GET("/forgot-password", h.Pages.Static("forgot_password.html"))
	router.GET("/logout/", h.Auth.Logout)

	api := router.Group("/api")
	{
		api.POST("/register", h.Auth.Register)
		api.POST("/login", h.Auth.Login)
		api.POST("/forgot-password", h.Auth.ForgotPassword)
	}

	gated := router.Group("", middleware.Auth(authn, "/login/"))
	{
		gated.GET("/menu/", h.Pages.Menu)
		gated.GET("/additem/", h.Pages.AddItem)
		gated.GET("/viewdata/", h.Pages.ViewData)
		gated.GET("/userlog/:page", h.Pages.UserLog)
		gated.POST("/delete_log/:log_id", h.Pages.DeleteLog)

		gated.GET("/api/items/:activity/:category", h.Catalog.Items)
		gated.POST("/api/log-appliance", h.Activity.LogAppliance)
		gated.POST("/api/log-transport", h.Activity.LogTransport)
		gated.POST("/api/log-food", h.Activity.LogFood)
		gated.GET("/api/activity-data", h.Activity.ActivityData)
	}
	return router
}

// CORS allows the configured origin to call the API with credentials.
func CORS(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Requested-With")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// LoggerMiddleware logs one line per request, at a level chosen by status.
func LoggerMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}
		entry := log.WithFields(logrus.Fields{
			"status_code": status,
			"latency_ms":  time.Since(start).Milliseconds(),
			"client_ip":   c.ClientIP(),
			"method":      c.Request.Method,
			"path":        path,
		})
		if userID, ok := middleware.UserID(c); ok {
			entry = entry.WithField("user_id", userID)
		}

		if msg := c.Errors.ByType(gin.ErrorTypePrivate).String(); msg != "" {
			entry.Error(msg)
			return
		}
		switch {
		case status >= 500:
			entry.Error("Server error")
		case status >= 400:
			entry.Warn("Client error")
		default:
			entry.Info("Request handled")
		}
	}
}
