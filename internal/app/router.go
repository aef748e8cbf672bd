package app

import (
	"net/http"
	"time"

	httpController "vocal-feed/internal/controller/http"
	"vocal-feed/pkg/jwt"
	"vocal-feed/pkg/logger"
	"vocal-feed/pkg/metrics"
	"vocal-feed/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "vocal-feed/docs" // Swagger docs
)

// Handlers groups the HTTP controllers mounted under /api/v1.
type Handlers struct {
	Post       *httpController.PostHandler
	TTS        *httpController.TTSHandler
	Auth       *httpController.AuthHandler
	Engagement *httpController.EngagementHandler
}

type RouterConfig struct {
	CORSOrigins []string
	RateLimit   int
	JWTService  *jwt.Service
	// Redis is optional; without it requests are not rate limited.
	Redis    *redis.Client
	Gatherer prometheus.Gatherer
	Logger   *logger.Logger
}

func NewRouter(rc RouterConfig, h Handlers) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     rc.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if rc.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(rc.Gatherer)))
	}

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// The limiter runs after the auth middleware of each group so that
	// authenticated callers are counted by user id.
	var limited []gin.HandlerFunc
	if rc.Redis != nil {
		limited = append(limited, middleware.RateLimitMiddleware(rc.Redis, rc.RateLimit, time.Minute, rc.Logger))
	}

	api := r.Group("/api/v1")

	anonymous := api.Group("", limited...)
	{
		anonymous.POST("/auth/register", h.Auth.Register)
		anonymous.POST("/auth/login", h.Auth.Login)
		anonymous.GET("/audio/:audioId", h.TTS.StreamAudio)
	}

	// Public reads; a valid token unlocks the caller's own drafts and private posts.
	public := api.Group("")
	public.Use(middleware.OptionalAuth(rc.JWTService))
	public.Use(limited...)
	{
		public.GET("/posts", h.Post.ListPosts)
		public.GET("/posts/:id", h.Post.GetPost)
		public.GET("/search", h.Post.SearchPosts)
		public.GET("/comments", h.Engagement.ListComments)
		public.GET("/reactions", h.Engagement.ListReactions)
		public.GET("/reactions/counts", h.Engagement.CountReactions)
		public.GET("/interactions", h.Engagement.ListInteractions)
		public.GET("/interactions/counts", h.Engagement.CountInteractions)
	}

	// Protected routes - require authentication
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(rc.JWTService))
	protected.Use(limited...)
	{
		protected.POST("/posts", h.Post.CreatePost)
		protected.POST("/posts/draft", h.Post.SaveDraft)
		protected.GET("/posts/draft", h.Post.GetLatestDraft)
		protected.DELETE("/posts/:id", h.Post.DeletePost)
		protected.POST("/tts/generate", h.TTS.GenerateAudio)

		protected.GET("/users/me", h.Auth.GetMe)
		protected.PUT("/users/me", h.Auth.UpdateMe)
		protected.GET("/users/me/posts", h.Post.GetMyPosts)

		protected.POST("/comments", h.Engagement.CreateComment)
		protected.DELETE("/comments/:id", h.Engagement.DeleteComment)
		protected.POST("/reactions", h.Engagement.AddReaction)
		protected.DELETE("/reactions/:id", h.Engagement.RemoveReaction)
		protected.DELETE("/reactions", h.Engagement.RemoveReactionByEmoji)
		protected.POST("/interactions", h.Engagement.RecordInteraction)
	}

	return r
}
