package http

import (
	"github.com/tusharverma21/cloud-video-eraser/internal/editjobs"
	"github.com/tusharverma21/cloud-video-eraser/internal/middleware"

	"github.com/labstack/echo/v4"
)

func MapEditJobsRoutes(videoGroup, jobGroup *echo.Group, h editjobs.Handler, mw *middleware.MiddlewareManager) {
	videoGroup.Use(mw.AuthJWTMiddleware())
	videoGroup.POST("/get-upload-url", h.GetPresignUpload())
	videoGroup.POST("/upload", h.RegisterVideo())
	videoGroup.GET("/:video_id", h.GetVideoByID())

	jobGroup.Use(mw.AuthJWTMiddleware())
	jobGroup.POST("", h.CreateJob())
	jobGroup.GET("", h.ListJobs())
	jobGroup.GET("/:job_id", h.GetJobByID())
	jobGroup.DELETE("/:job_id", h.DeleteJob())
	jobGroup.GET("/:job_id/download", h.DownloadResult())
}
