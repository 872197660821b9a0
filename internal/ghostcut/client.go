package ghostcut

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tusharverma21/cloud-video-eraser/internal/config"
	"github.com/tusharverma21/cloud-video-eraser/internal/models"
	"github.com/tusharverma21/cloud-video-eraser/pkg/logger"
)

const (
	statusPath = "/v-w-c/gateway/ve/work/status"
	renderPath = "/v-w-c/gateway/ve/work/free"

	defaultSuccessCode = 1000
)

// StatusChecker is the part of the client the poller depends on.
type StatusChecker interface {
	CheckStatus(ctx context.Context, remoteTaskID int64) (*models.RemoteStatus, error)
}

// Submitter is the part of the client the submission worker depends on.
type Submitter interface {
	SubmitRender(ctx context.Context, videoURL string, regions []models.EffectRegion) (int64, error)
}

type Client struct {
	baseURL     string
	appKey      string
	appSecret   string
	successCode int
	httpClient  *http.Client
	logger      logger.Logger
}

func NewClient(cfg *config.Config, logger logger.Logger) *Client {
	successCode := cfg.GhostCut.SuccessCode
	if successCode == 0 {
		successCode = defaultSuccessCode
	}
	return &Client{
		baseURL:     cfg.GhostCut.BaseURL,
		appKey:      cfg.GhostCut.AppKey,
		appSecret:   cfg.GhostCut.AppSecret,
		successCode: successCode,
		httpClient: &http.Client{
			Timeout: cfg.GhostCut.RequestTimeoutDuration(),
		},
		logger: logger,
	}
}

// CheckStatus queries the remote gateway for a single task and maps its
// numeric progress onto a local status: >=100 completed, >0 processing,
// else pending. A non-success response code maps to an error status
// carrying the remote message rather than a Go error.
func (c *Client) CheckStatus(ctx context.Context, remoteTaskID int64) (*models.RemoteStatus, error) {
	reqBody := statusRequest{IDProjects: []int64{remoteTaskID}}

	var resp statusResponse
	if err := c.post(ctx, statusPath, reqBody, &resp); err != nil {
		return nil, err
	}

	if resp.Code != c.successCode {
		return &models.RemoteStatus{
			Status: models.RemoteStatusError,
			Error:  resp.Msg,
		}, nil
	}

	if len(resp.Body.Content) == 0 {
		return &models.RemoteStatus{
			Status: models.RemoteStatusError,
			Error:  fmt.Sprintf("no status returned for task %d", remoteTaskID),
		}, nil
	}

	content := resp.Body.Content[0]
	status := &models.RemoteStatus{
		Progress:  content.ProcessProgress,
		OutputURL: content.VideoURL,
	}
	switch {
	case content.ProcessProgress >= 100:
		status.Status = models.RemoteStatusCompleted
	case content.ProcessProgress > 0:
		status.Status = models.RemoteStatusProcessing
	default:
		status.Status = models.RemoteStatusPending
	}
	return status, nil
}

// SubmitRender submits an inpainting request for the given video and
// effect regions and returns the remote task id.
func (c *Client) SubmitRender(ctx context.Context, videoURL string, regions []models.EffectRegion) (int64, error) {
	masks := make([]inpaintMask, 0, len(regions))
	for _, r := range regions {
		masks = append(masks, inpaintMask{
			Type:  maskType(r.Type),
			Start: r.StartTime,
			End:   r.EndTime,
			Region: [][2]float64{
				{r.Rect.X1, r.Rect.Y1},
				{r.Rect.X2, r.Rect.Y1},
				{r.Rect.X2, r.Rect.Y2},
				{r.Rect.X1, r.Rect.Y2},
			},
		})
	}

	reqBody := renderRequest{
		URLs:               []string{videoURL},
		NeedChineseOcclude: 1,
	}
	if len(masks) > 0 {
		maskJSON, err := json.Marshal(masks)
		if err != nil {
			return 0, fmt.Errorf("failed to encode inpaint masks: %w", err)
		}
		reqBody.VideoInpaintMasks = string(maskJSON)
	}

	var resp renderResponse
	if err := c.post(ctx, renderPath, reqBody, &resp); err != nil {
		return 0, err
	}
	if resp.Code != c.successCode {
		return 0, fmt.Errorf("render submission rejected: code=%d msg=%s", resp.Code, resp.Msg)
	}
	if resp.Body.IDProject == 0 {
		return 0, fmt.Errorf("render submission returned no task id")
	}
	return resp.Body.IDProject, nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("AppKey", c.appKey)
	req.Header.Set("AppSign", Sign(raw, c.appSecret))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, path, string(data))
	}
	if err = json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

func maskType(t models.EffectType) string {
	switch t {
	case models.EffectProtect:
		return "keep"
	case models.EffectText:
		return "remove_only_ocr"
	default:
		return "remove"
	}
}
