package handler

import (
	"net/http"
	"time"

	_ "CarbonFootprintTracker/docs"
	"CarbonFootprintTracker/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterOptions struct {
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
	// InviteCode, when set, is required in X-Invite-Code to register.
	InviteCode string
}

// NewRouter wires every route of the API onto a fresh gin engine.
func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	config := cors.DefaultConfig()
	if len(opts.CORSOrigins) == 0 || (len(opts.CORSOrigins) == 1 && opts.CORSOrigins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = opts.CORSOrigins
	}
	config.AllowHeaders = append(config.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	config.MaxAge = 12 * time.Hour
	router.Use(cors.New(config))

	limited := router.Group("/")
	if opts.RateLimitRPS > 0 && opts.RateLimitBurst > 0 {
		limited.Use(middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst))
	}
	limited.POST("/register", middleware.InviteCodeMiddleware(opts.InviteCode), h.Register)
	limited.POST("/login", h.Login)

	router.POST("/user", h.GetUserRecords)
	router.GET("/survey/fields", h.SurveyFields)

	protected := router.Group("/api").Use(middleware.AuthMiddleware(h.tokens))
	{
		protected.GET("/profile", h.Profile)
		protected.GET("/records", h.GetMyRecords)
		protected.GET("/dashboard", h.Dashboard)
		protected.GET("/reduction", h.Reduction)
		protected.POST("/survey", h.SubmitSurvey)
	}

	router.GET("/ws/records", middleware.AuthMiddleware(h.tokens), h.StreamRecords)

	router.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
