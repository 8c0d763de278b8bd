package posts

import (
	"github.com/xyz-asif/dashboard/internal/config"
	"github.com/xyz-asif/dashboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	posts := router.Group("/posts")
	posts.Use(middleware.Auth(cfg.JWTSecret))
	{
		posts.GET("", handler.Feed)
		posts.POST("", handler.Create)
		posts.PUT("/:id", handler.Update)
		posts.DELETE("/:id", handler.Delete)
		posts.GET("/user/:userId", handler.ByUser)
	}
}
