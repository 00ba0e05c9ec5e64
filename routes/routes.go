package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tubeline/config"
	"tubeline/handlers"
	"tubeline/middleware"
)

// SetupRouter builds the engine. reg receives the HTTP metrics and is also
// what /metrics serves.
func SetupRouter(cfg *config.Config, h *handlers.Handler, log *slog.Logger, reg *prometheus.Registry) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recover(),
		middleware.RequestID(log),
		middleware.Logger(),
		middleware.NewMetrics(reg).Handler(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With", middleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", "Content-Type", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)

	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := router.Group("/api/v1")
	api.Use(
		middleware.RateLimit(middleware.NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)),
		middleware.BodyLimit(cfg.HTTP.MaxBodyBytes),
	)
	auth := middleware.JWTAuth(cfg.Auth.JWTSecret)

	users := api.Group("/users")
	users.POST("/register", h.Register)
	users.POST("/sign-in", h.SignIn)
	users.GET("/is-exists/:username", h.UsernameExists)
	users.GET("/public-profile/:channelId", h.PublicProfile)
	users.GET("/user-data/:userId", h.UserData)
	users.GET("/current-user", auth, h.CurrentUser)
	users.POST("/update-profile/:id", auth, h.UpdateProfile)

	posts := api.Group("/posts")
	posts.GET("/all-posts", h.ListPosts)
	posts.GET("/get-user-posts/:userId", h.UserPosts)
	posts.GET("/post/:id", h.GetPost)
	posts.GET("/post-stats/:id", h.PostStats)
	posts.GET("/post/user-status/:id", h.PostUserStatus)
	posts.GET("/post-comments/:id", h.PostComments)
	posts.POST("/create-post", auth, h.CreatePost)
	posts.PATCH("/update-post/:id", auth, h.UpdatePost)
	posts.DELETE("/delete-post/:id", auth, h.DeletePost)

	videos := api.Group("/videos")
	videos.GET("/all-videos", h.ListVideos)
	videos.GET("/video/:id", h.GetVideo)
	videos.GET("/video-page/:id", h.VideoPage)
	videos.GET("/like-and-subscribe/:id", h.LikeAndSubscription)
	videos.GET("/channel/:username", h.ChannelVideos)
	videos.GET("/video-stats/:id", h.VideoStats)
	videos.GET("/user-status/:id", h.VideoUserStatus)
	videos.POST("/upload-video", auth, h.UploadVideo)
	videos.PATCH("/update-video/:id", auth, h.UpdateVideo)
	videos.DELETE("/delete-video/:id", auth, h.DeleteVideo)

	comments := api.Group("/comments")
	comments.GET("/:target/:id", h.ListComments)
	comments.GET("/:target/:id/count", h.CountComments)
	comments.POST("/:target", auth, h.CreateComment)
	comments.PATCH("/:target/:commentId", auth, h.UpdateComment)
	comments.DELETE("/:target/:commentId", auth, h.DeleteComment)

	likes := api.Group("/likes", auth)
	likes.PUT("/:target/:id", h.SetLike)
	likes.DELETE("/:target/:id", h.RemoveLike)

	bookmarks := api.Group("/bookmarks")
	bookmarks.GET("/:userId", h.ListBookmarks)
	bookmarks.POST("/:postId", auth, h.AddBookmark)
	bookmarks.DELETE("/:postId", auth, h.RemoveBookmark)

	subscriptions := api.Group("/subscriptions", auth)
	subscriptions.POST("/:channelId", h.Subscribe)
	subscriptions.DELETE("/:channelId", h.Unsubscribe)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.Response{
			Status:  http.StatusNotFound,
			Message: "endpoint not found",
		})
	})

	return router
}
