package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/tusharverma21/cloud-video-eraser/internal/editjobs"
	"github.com/tusharverma21/cloud-video-eraser/internal/models"
	"github.com/tusharverma21/cloud-video-eraser/pkg/logger"
	"github.com/tusharverma21/cloud-video-eraser/pkg/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const downloadChunkSize = 8 * 1024

type editJobsHandler struct {
	jobsUC editjobs.UseCase
	logger logger.Logger
}

func NewEditJobsHandler(jobsUC editjobs.UseCase, logger logger.Logger) editjobs.Handler {
	return &editJobsHandler{
		jobsUC: jobsUC,
		logger: logger,
	}
}

func (h *editJobsHandler) GetPresignUpload() echo.HandlerFunc {
	return func(c echo.Context) error {
		input := &models.UploadInput{}
		if err := c.Bind(input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		presignUrl, err := h.jobsUC.GetUploadURL(c.Request().Context(), input)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"presignUrl": presignUrl})
	}
}

func (h *editJobsHandler) RegisterVideo() echo.HandlerFunc {
	return func(c echo.Context) error {
		input := &models.VideoUploadInput{}
		if err := c.Bind(input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		video, err := h.jobsUC.RegisterVideo(c.Request().Context(), input)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, video)
	}
}

func (h *editJobsHandler) GetVideoByID() echo.HandlerFunc {
	return func(c echo.Context) error {
		videoID, err := uuid.Parse(c.Param("video_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid video id"})
		}
		video, err := h.jobsUC.GetVideo(c.Request().Context(), videoID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, video)
	}
}

func (h *editJobsHandler) CreateJob() echo.HandlerFunc {
	return func(c echo.Context) error {
		input := &models.CreateJobInput{}
		if err := c.Bind(input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}

		job, validationErrs, err := h.jobsUC.CreateJob(c.Request().Context(), input)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		if len(validationErrs) > 0 {
			return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
				"errors": validationErrs,
			})
		}
		return c.JSON(http.StatusCreated, job)
	}
}

func (h *editJobsHandler) GetJobByID() echo.HandlerFunc {
	return func(c echo.Context) error {
		jobID, err := uuid.Parse(c.Param("job_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
		}
		job, err := h.jobsUC.GetJob(c.Request().Context(), jobID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, job)
	}
}

func (h *editJobsHandler) ListJobs() echo.HandlerFunc {
	return func(c echo.Context) error {
		pagination, err := utils.GetPaginationFromCtx(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		jobs, err := h.jobsUC.ListJobs(c.Request().Context(), pagination)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, jobs)
	}
}

func (h *editJobsHandler) DeleteJob() echo.HandlerFunc {
	return func(c echo.Context) error {
		jobID, err := uuid.Parse(c.Param("job_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
		}
		if err = h.jobsUC.DeleteJob(c.Request().Context(), jobID); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Job deleted successfully"})
	}
}

// DownloadResult streams a finished render back in fixed-size chunks
// with an attachment disposition.
func (h *editJobsHandler) DownloadResult() echo.HandlerFunc {
	return func(c echo.Context) error {
		jobID, err := uuid.Parse(c.Param("job_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
		}
		stream, err := h.jobsUC.DownloadResult(c.Request().Context(), jobID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		defer stream.Body.Close()

		resp := c.Response()
		resp.Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+stream.FileName+`"`)
		contentType := stream.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		resp.Header().Set(echo.HeaderContentType, contentType)
		if stream.ContentLength > 0 {
			resp.Header().Set(echo.HeaderContentLength, strconv.FormatInt(stream.ContentLength, 10))
		}
		resp.WriteHeader(http.StatusOK)

		buf := make([]byte, downloadChunkSize)
		if _, err := io.CopyBuffer(resp.Writer, stream.Body, buf); err != nil {
			h.logger.Errorf("DownloadResult - stream error for job %s: %v", jobID, err)
			return err
		}
		return nil
	}
}
