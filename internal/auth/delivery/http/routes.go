package http

import (
	"github.com/tusharverma21/cloud-video-eraser/internal/auth"
	"github.com/tusharverma21/cloud-video-eraser/internal/middleware"

	"github.com/labstack/echo/v4"
)

func MapAuthRoutes(authGroup *echo.Group, h auth.Handler, mw *middleware.MiddlewareManager) {
	authGroup.POST("/register", h.Register())
	authGroup.POST("/login", h.Login())
	authGroup.POST("/logout", h.Logout())
	authGroup.Use(mw.AuthJWTMiddleware())
	authGroup.GET("/me", h.GetMe())
	authGroup.GET("/:user_id", h.GetUserByID(), mw.OwnerMiddleware())
	authGroup.PUT("/:user_id", h.Update(), mw.OwnerMiddleware())
	authGroup.GET("/user/usage/stats", h.GetUsageStats())
}
