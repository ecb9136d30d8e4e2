package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/refind-dev/refind/internal/handlers"
	"github.com/refind-dev/refind/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		api.POST("/signup", handlers.CreateUser)
		api.POST("/login", handlers.Login)

		users := api.Group("/users")
		{
			users.GET("", handlers.ListUsers)
			users.GET("/:id", handlers.GetUser)
			users.POST("/:id", handlers.UpdateUser)
			users.DELETE("/:id", handlers.DeleteUser)
		}

		posts := api.Group("/posts")
		{
			posts.GET("", handlers.ListPosts)
			posts.GET("/:id", handlers.GetPost)
			// POST /posts/:id creates a post owned by user :id
			posts.POST("/:id", handlers.CreatePost)
			posts.POST("/:id/update", handlers.UpdatePost)
			posts.DELETE("/:id", handlers.DeletePost)
		}

		comments := api.Group("/comments")
		{
			comments.GET("", handlers.ListComments)
			comments.GET("/:id", handlers.GetComment)
			comments.POST("/:user_id/:post_id", handlers.CreateComment)
			comments.POST("/update/:id", handlers.UpdateComment)
			comments.DELETE("/:id", handlers.DeleteComment)
		}

		upload := api.Group("/upload")
		{
			upload.POST("", handlers.UploadImage)
			upload.GET("/:id", handlers.GetImage)
		}
	}

	return r
}
