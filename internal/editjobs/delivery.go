package editjobs

import "github.com/labstack/echo/v4"

type Handler interface {
	GetPresignUpload() echo.HandlerFunc
	RegisterVideo() echo.HandlerFunc
	GetVideoByID() echo.HandlerFunc

	CreateJob() echo.HandlerFunc
	GetJobByID() echo.HandlerFunc
	ListJobs() echo.HandlerFunc
	DeleteJob() echo.HandlerFunc
	DownloadResult() echo.HandlerFunc
}
