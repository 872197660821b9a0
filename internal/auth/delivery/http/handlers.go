package http

import (
	"net/http"

	"github.com/tusharverma21/cloud-video-eraser/internal/auth"
	"github.com/tusharverma21/cloud-video-eraser/internal/config"
	"github.com/tusharverma21/cloud-video-eraser/internal/models"
	"github.com/tusharverma21/cloud-video-eraser/pkg/logger"
	"github.com/tusharverma21/cloud-video-eraser/pkg/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type authHandler struct {
	cfg    *config.Config
	authUc auth.UseCase
	logger logger.Logger
}

func NewAuthHandler(cfg *config.Config, authUc auth.UseCase, logger logger.Logger) auth.Handler {
	return &authHandler{
		cfg:    cfg,
		authUc: authUc,
		logger: logger,
	}
}

func (h *authHandler) Register() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := &models.User{}
		if err := c.Bind(user); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}

		createdUser, err := h.authUc.Register(c.Request().Context(), user)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		c.SetCookie(utils.CreateJWTCookie(h.cfg, createdUser.Token))
		return c.JSON(http.StatusCreated, createdUser)
	}
}

func (h *authHandler) Login() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := &models.User{}
		if err := c.Bind(user); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}

		loginUser, err := h.authUc.Login(c.Request().Context(), user)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		c.SetCookie(utils.CreateJWTCookie(h.cfg, loginUser.Token))
		return c.JSON(http.StatusOK, loginUser)
	}
}

func (h *authHandler) Logout() echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie := utils.CreateJWTCookie(h.cfg, "")
		cookie.MaxAge = -1
		c.SetCookie(cookie)
		return c.JSON(http.StatusOK, map[string]string{"message": "Logged out"})
	}
}

func (h *authHandler) GetMe() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get("user").(*models.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized access"})
		}
		return c.JSON(http.StatusOK, user)
	}
}

func (h *authHandler) GetUserByID() echo.HandlerFunc {
	return func(c echo.Context) error {
		uID, err := uuid.Parse(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid user id"})
		}

		user, err := h.authUc.GetByID(c.Request().Context(), uID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, user)
	}
}

func (h *authHandler) Update() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := &models.User{}
		if err := c.Bind(user); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}

		updatedUser, err := h.authUc.Update(c.Request().Context(), user)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, updatedUser)
	}
}

func (h *authHandler) GetUsageStats() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get("user").(*models.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized access"})
		}
		stats, err := h.authUc.GetUsageStats(c.Request().Context(), user.UserID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, stats)
	}
}
