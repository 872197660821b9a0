package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tusharverma21/cloud-video-eraser/internal/models"
	"github.com/tusharverma21/cloud-video-eraser/pkg/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthJWTMiddleware authenticates via a bearer token or the jwt cookie
// and loads the user into both the echo and the request contexts.
func (mw *MiddlewareManager) AuthJWTMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			bearerHeader := c.Request().Header.Get("Authorization")

			if bearerHeader != "" {
				headerParts := strings.Split(bearerHeader, " ")
				if len(headerParts) != 2 {
					mw.logger.Errorf("auth middleware: malformed authorization header, RequestID: %s", utils.GetRequestID(c))
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
				}

				if err := mw.validateJWTToken(headerParts[1], c); err != nil {
					mw.logger.Errorf("auth middleware: invalid bearer token: %v", err)
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
				}
				return next(c)
			}

			cookie, err := c.Cookie(mw.cfg.Cookie.Name)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}
			if err = mw.validateJWTToken(cookie.Value, c); err != nil {
				mw.logger.Errorf("auth middleware: invalid cookie token: %v", err)
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}
			return next(c)
		}
	}
}

func (mw *MiddlewareManager) validateJWTToken(tokenString string, c echo.Context) error {
	claims, err := utils.ValidateToken(tokenString, mw.cfg.Server.JwtSecretKey)
	if err != nil {
		return err
	}

	userUUID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return err
	}

	u, err := mw.authUC.GetByID(c.Request().Context(), userUUID)
	if err != nil {
		return err
	}

	c.Set("user", u)

	ctx := context.WithValue(c.Request().Context(), utils.UserCtxKey{}, u)
	c.SetRequest(c.Request().WithContext(ctx))
	return nil
}

// OwnerMiddleware restricts a :user_id route to the user it names.
func (mw *MiddlewareManager) OwnerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get("user").(*models.User)
			if !ok {
				mw.logger.Errorf("Error c.Get(user) RequestID: %s, ERROR: %s,", utils.GetRequestID(c), "invalid user ctx")
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}

			if user.UserID.String() != c.Param("user_id") {
				mw.logger.Errorf("Error c.Get(user) RequestID: %s, UserID: %s, ERROR: %s,",
					utils.GetRequestID(c),
					user.UserID.String(),
					"invalid user ctx",
				)
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Forbidden"})
			}

			return next(c)
		}
	}
}
