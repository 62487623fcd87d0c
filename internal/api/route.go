package api

import (
	"net/http"
	"twijournal/internal/api/middleware"
	"twijournal/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code":    200,
				"message": "pong",
				"data":    nil,
			})
		})

		apiGroup.POST("/auth/token", group.AuthHandler.IssueToken)

		userGroup := apiGroup.Group("/users")
		{
			userGroup.POST("", group.UserHandler.Register)
			userGroup.GET("", group.UserHandler.ListUsers)
			userGroup.GET("/:username", group.UserHandler.GetUser)
			userGroup.GET("/:username/followers", group.UserFollowHandler.GetFollowers)
			userGroup.GET("/:username/followees", group.UserFollowHandler.GetFollowees)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/follow", group.UserFollowHandler.Follow)
				authGroup.DELETE("/follow", group.UserFollowHandler.Unfollow)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/detail/:post_id", group.PostHandler.GetPost)
				authOptGroup.GET("/:username", group.PostHandler.GetPostsByUsername)
			}

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostHandler.CreatePost)
			}
		}

		feedGroup := apiGroup.Group("/feeds")
		feedGroup.Use(middleware.AuthMiddleware())
		{
			feedGroup.GET("", group.FeedHandler.GetFeed)
		}
	}

	return r
}
