package tasks

import (
	"github.com/xyz-asif/dashboard/internal/config"
	"github.com/xyz-asif/dashboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	tasks := router.Group("/tasks")
	tasks.Use(middleware.Auth(cfg.JWTSecret))
	{
		tasks.GET("", handler.List)
		tasks.POST("", handler.Create)
		tasks.PUT("/:id", handler.Update)
		tasks.DELETE("/:id", handler.Delete)
	}
}
