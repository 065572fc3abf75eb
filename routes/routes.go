package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"playtube/handlers"
	"playtube/middleware"
)

func SetupRouter() *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RateLimit())

	api := router.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
	}

	users := api.Group("/users", middleware.RequireAuth())
	{
		users.GET("/me", handlers.GetCurrentUser)
		users.GET("/history", handlers.GetWatchHistory)
	}

	videos := api.Group("/videos")
	{
		// Reads take an optional identity so like/subscription state
		// resolves for signed-in viewers and defaults false otherwise.
		videos.GET("", middleware.OptionalAuth(), handlers.ListVideos)
		videos.GET("/:videoId", middleware.OptionalAuth(), handlers.GetVideoByID)

		videos.POST("", middleware.RequireAuth(), handlers.PublishVideo)
		videos.PATCH("/:videoId", middleware.RequireAuth(), handlers.UpdateVideo)
		videos.DELETE("/:videoId", middleware.RequireAuth(), handlers.DeleteVideo)
		videos.PATCH("/toggle/publish/:videoId", middleware.RequireAuth(), handlers.TogglePublishStatus)
	}

	comments := api.Group("/comments")
	{
		comments.GET("/:videoId", middleware.OptionalAuth(), handlers.GetVideoComments)
		comments.POST("/:videoId", middleware.RequireAuth(), handlers.AddComment)
		comments.PATCH("/c/:commentId", middleware.RequireAuth(), handlers.UpdateComment)
		comments.DELETE("/c/:commentId", middleware.RequireAuth(), handlers.DeleteComment)
	}

	tweets := api.Group("/tweets")
	{
		tweets.POST("", middleware.RequireAuth(), handlers.CreateTweet)
		tweets.GET("/user/:userId", handlers.GetUserTweets)
		tweets.PATCH("/:tweetId", middleware.RequireAuth(), handlers.UpdateTweet)
		tweets.DELETE("/:tweetId", middleware.RequireAuth(), handlers.DeleteTweet)
	}

	likes := api.Group("/likes", middleware.RequireAuth())
	{
		likes.POST("/toggle/v/:videoId", handlers.ToggleVideoLike)
		likes.POST("/toggle/c/:commentId", handlers.ToggleCommentLike)
		likes.POST("/toggle/t/:tweetId", handlers.ToggleTweetLike)
		likes.GET("/videos", handlers.GetLikedVideos)
	}

	subscriptions := api.Group("/subscriptions")
	{
		subscriptions.POST("/c/:channelId", middleware.RequireAuth(), handlers.ToggleSubscription)
		subscriptions.GET("/c/:channelId", middleware.OptionalAuth(), handlers.GetChannelSubscribers)
		subscriptions.GET("/u/:subscriberId", middleware.OptionalAuth(), handlers.GetSubscribedChannels)
	}

	return router
}
