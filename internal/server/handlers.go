package server

import (
	"net/http"

	authHttp "github.com/tusharverma21/cloud-video-eraser/internal/auth/delivery/http"
	authRepository "github.com/tusharverma21/cloud-video-eraser/internal/auth/repository"
	authUsecase "github.com/tusharverma21/cloud-video-eraser/internal/auth/usecase"
	jobsHttp "github.com/tusharverma21/cloud-video-eraser/internal/editjobs/delivery/http"
	jobsRepository "github.com/tusharverma21/cloud-video-eraser/internal/editjobs/repository"
	jobsUsecase "github.com/tusharverma21/cloud-video-eraser/internal/editjobs/usecase"
	"github.com/tusharverma21/cloud-video-eraser/internal/middleware"
	"github.com/tusharverma21/cloud-video-eraser/pkg/utils"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

func (s *Server) MapHandlers(e *echo.Echo) error {
	aRepo := authRepository.NewAuthRepo(s.db)
	jRepo := jobsRepository.NewEditJobsRepo(s.db)
	jAWSRepo := jobsRepository.NewAwsRepository(s.s3Client, s.preSignClient)
	jRedisRepo := jobsRepository.NewEditJobsRedisRepo(s.redisClient)

	authUC := authUsecase.NewAuthUseCase(s.cfg, aRepo, s.logger)
	jobsUC := jobsUsecase.NewEditJobsUseCase(s.cfg, jRepo, jRedisRepo, jAWSRepo, s.logger)

	authHandlers := authHttp.NewAuthHandler(s.cfg, authUC, s.logger)
	jobsHandlers := jobsHttp.NewEditJobsHandler(jobsUC, s.logger)

	mw := middleware.NewMiddlewareManager(authUC, s.cfg, []string{"*"}, s.logger)

	e.Use(echoMiddleware.RequestID())

	v1 := e.Group("/api/v1")
	health := v1.Group("/health")
	authGroup := v1.Group("/auth")
	videoGroup := v1.Group("/videos")
	jobGroup := v1.Group("/jobs")

	authHttp.MapAuthRoutes(authGroup, authHandlers, mw)
	jobsHttp.MapEditJobsRoutes(videoGroup, jobGroup, jobsHandlers, mw)

	health.GET("", func(c echo.Context) error {
		s.logger.Infof("Health check RequestID: %s", utils.GetRequestID(c))
		_, cpuUsage := utils.CheckCPUUsage(100)
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":      "OK",
			"app_version": s.cfg.Server.AppVersion,
			"cpu_usage":   cpuUsage,
		})
	})
	return nil
}
