// Package api 组装 gin 路由：中间件、会话鉴权、业务路由与 swagger
package api

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/softspace/config"
	"github.com/d60-Lab/softspace/internal/api/handler"
	"github.com/d60-Lab/softspace/internal/api/middleware"
	"github.com/d60-Lab/softspace/internal/app"

	_ "github.com/d60-Lab/softspace/docs"
)

// Deps 路由所需的组件
type Deps struct {
	Handler  *handler.Handler
	Registry *app.Registry
	Tokens   *middleware.TokenIssuer
	Limiter  *middleware.KeyedLimiter
}

func NewRouter(cfg *config.Config, d Deps) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.RequestLogger())
	if cfg.Tracing.Enabled {
		r.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}
	// SSE 需要逐帧刷新，不压缩
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/api/v1/events"})))

	h := d.Handler
	r.GET("/healthz", h.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(d.Limiter))
	{
		v1.POST("/sessions", h.CreateSession)
		v1.GET("/theme", h.Theme)
		v1.GET("/prompt", h.Prompt)
		v1.GET("/pulse", h.Pulse)
	}

	sess := v1.Group("")
	sess.Use(middleware.SessionAuth(d.Tokens, d.Registry.Get))
	{
		sess.GET("/screen", h.Screen)
		sess.GET("/events", h.Events)
		sess.POST("/join", h.Join)
		sess.POST("/logout", h.Logout)
		sess.POST("/navigate", h.Navigate)
		sess.POST("/navigate/feed", h.NavigateToFeed)

		ob := sess.Group("/onboarding")
		ob.GET("", h.GetOnboarding)
		ob.PUT("/name", h.SetName)
		ob.PUT("/emotion", h.SelectEmotion)
		ob.POST("/preferences", h.TogglePreference)
		ob.POST("/next", h.OnboardingNext)
		ob.POST("/back", h.OnboardingBack)

		sess.POST("/checkin", h.CheckIn)
		sess.POST("/checkin/open", h.OpenCheckIn)
		sess.POST("/checkin/close", h.CloseCheckIn)

		cr := sess.Group("/create")
		cr.GET("", h.GetCreation)
		cr.POST("/open", h.OpenCreate)
		cr.POST("/close", h.CloseCreate)
		cr.POST("/select", h.SelectType)
		cr.POST("/back", h.BackToSelect)
		cr.POST("/record", h.RecordAudio)
		cr.PATCH("/draft", h.UpdateDraft)
		cr.POST("/submit", h.SubmitCreate)

		sess.PUT("/feed/filter", h.SetFilter)
		sess.POST("/posts/:id/reactions", h.React)
		sess.POST("/posts/:id/composer", h.ToggleComposer)
		sess.PUT("/composer/text", h.SetCommentText)
		sess.POST("/composer/submit", h.SubmitComment)
	}
	return r
}
