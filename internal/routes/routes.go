package routes

import (
	"time"

	"github.com/xyz-asif/dashboard/internal/config"
	"github.com/xyz-asif/dashboard/internal/features/auth"
	"github.com/xyz-asif/dashboard/internal/features/posts"
	"github.com/xyz-asif/dashboard/internal/features/tasks"
	"github.com/xyz-asif/dashboard/internal/features/users"
	"github.com/xyz-asif/dashboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"
)

func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	api := router.Group("/api")

	// Signup/login get a per-IP limiter: 10 attempts per minute, burst of 5
	authLimiter := middleware.NewRateLimiter(rate.Every(6*time.Second), 5)

	auth.RegisterRoutes(api, db, cfg, authLimiter.Middleware())
	users.RegisterRoutes(api, db, cfg)
	posts.RegisterRoutes(api, db, cfg)
	tasks.RegisterRoutes(api, db, cfg)
}
