package auth

import (
	"github.com/xyz-asif/dashboard/internal/config"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// RegisterRoutes wires the auth endpoints. The limiter slows down brute-force
// attempts against signup/login; pass nil to disable (tests).
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, limiter gin.HandlerFunc) {
	repo := NewRepository(db)
	handler := NewHandler(repo, cfg)

	auth := router.Group("/auth")
	if limiter != nil {
		auth.Use(limiter)
	}
	{
		auth.POST("/signup", handler.Signup)
		auth.POST("/login", handler.Login)
	}
}
