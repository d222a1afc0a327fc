// Package routes defines HTTP routes for the course platform.
package routes

import (
	"github.com/Diatessaron/Best-Course-Ever/internal/handlers"
	"github.com/Diatessaron/Best-Course-Ever/internal/middleware"
	"github.com/Diatessaron/Best-Course-Ever/internal/models"
	"github.com/Diatessaron/Best-Course-Ever/internal/repository"
	"github.com/Diatessaron/Best-Course-Ever/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup configures all HTTP routes. Role requirements are declared here as
// plain per-route middleware arguments; routes without RequireRoles accept
// any authenticated principal.
func Setup(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	courseHandler *handlers.CourseHandler,
	healthHandler *handlers.HealthHandler,
	tokens service.TokenService,
	blacklist repository.TokenBlacklist,
) {
	authn := middleware.RequireAuth(tokens, blacklist)

	router.GET("/health", healthHandler.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authn, authHandler.Logout)
	}

	users := v1.Group("/users", authn)
	{
		users.GET("/me", authHandler.Me)
	}

	courses := v1.Group("/courses", authn)
	{
		courses.GET("", courseHandler.List)
		courses.GET("/:id", courseHandler.Get)
		courses.POST("", middleware.RequireRoles(models.RoleAuthor, models.RoleAdmin), courseHandler.Create)
	}
}
