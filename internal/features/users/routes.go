package users

import (
	"github.com/xyz-asif/dashboard/internal/config"
	"github.com/xyz-asif/dashboard/internal/features/auth"
	"github.com/xyz-asif/dashboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := auth.NewRepository(db)
	handler := NewHandler(repo)

	user := router.Group("/user")
	user.Use(middleware.Auth(cfg.JWTSecret))
	{
		user.GET("/profile", handler.GetProfile)
		user.PUT("/profile", handler.UpdateProfile)
	}
}
