package ghostcut

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tusharverma21/cloud-video-eraser/internal/config"
	"github.com/tusharverma21/cloud-video-eraser/internal/models"
	"github.com/tusharverma21/cloud-video-eraser/pkg/logger"

	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	cfg := &config.Config{
		GhostCut: config.GhostCutConfig{
			BaseURL:   baseURL,
			AppKey:    "test-key",
			AppSecret: "test-secret",
		},
		Logger: config.Logger{Development: true, Encoding: "console", Level: "error"},
	}
	apiLogger := logger.NewApiLogger(cfg)
	apiLogger.InitLogger()
	return NewClient(cfg, apiLogger)
}

func TestCheckStatus_Completed(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, statusPath, r.URL.Path)
		require.Equal(t, "test-key", r.Header.Get("AppKey"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Equal(t, Sign(body, "test-secret"), r.Header.Get("AppSign"))

		var req statusRequest
		require.NoError(t, json.Unmarshal(body, &req))
		require.Equal(t, []int64{42}, req.IDProjects)

		resp := statusResponse{Code: 1000}
		resp.Body.Content = []statusContent{
			{IDProject: 42, ProcessProgress: 100, VideoURL: "https://cdn.example.com/out.mp4"},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	status, err := testClient(t, srv.URL).CheckStatus(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, models.RemoteStatusCompleted, status.Status)
	require.Equal(t, float64(100), status.Progress)
	require.Equal(t, "https://cdn.example.com/out.mp4", status.OutputURL)
}

func TestCheckStatus_ProgressMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		progress float64
		expected models.RemoteTaskStatus
	}{
		{"zero is pending", 0, models.RemoteStatusPending},
		{"partial is processing", 37, models.RemoteStatusProcessing},
		{"full is completed", 100, models.RemoteStatusCompleted},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				resp := statusResponse{Code: 1000}
				resp.Body.Content = []statusContent{{IDProject: 1, ProcessProgress: tc.progress}}
				require.NoError(t, json.NewEncoder(w).Encode(resp))
			}))
			defer srv.Close()

			status, err := testClient(t, srv.URL).CheckStatus(context.Background(), 1)
			require.NoError(t, err)
			require.Equal(t, tc.expected, status.Status)
		})
	}
}

func TestCheckStatus_NonSuccessCodeIsErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(statusResponse{Code: 4001, Msg: "invalid app key"}))
	}))
	defer srv.Close()

	status, err := testClient(t, srv.URL).CheckStatus(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, models.RemoteStatusError, status.Status)
	require.Equal(t, "invalid app key", status.Error)
}

func TestCheckStatus_EmptyContentIsErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(statusResponse{Code: 1000}))
	}))
	defer srv.Close()

	status, err := testClient(t, srv.URL).CheckStatus(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, models.RemoteStatusError, status.Status)
}

func TestSubmitRender(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, renderPath, r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Equal(t, Sign(body, "test-secret"), r.Header.Get("AppSign"))

		var req renderRequest
		require.NoError(t, json.Unmarshal(body, &req))
		require.Equal(t, []string{"https://in.example.com/src.mp4"}, req.URLs)
		require.Equal(t, 1, req.NeedChineseOcclude)

		var masks []inpaintMask
		require.NoError(t, json.Unmarshal([]byte(req.VideoInpaintMasks), &masks))
		require.Len(t, masks, 2)
		require.Equal(t, "remove", masks[0].Type)
		require.Equal(t, "keep", masks[1].Type)
		require.Equal(t, [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, masks[0].Region)

		resp := renderResponse{Code: 1000}
		resp.Body.IDProject = 777
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	regions := []models.EffectRegion{
		{Type: models.EffectErase, Rect: models.Rect{X1: 0, Y1: 0, X2: 1, Y2: 1}, StartTime: 0, EndTime: 5},
		{Type: models.EffectProtect, Rect: models.Rect{X1: 0.2, Y1: 0.2, X2: 0.4, Y2: 0.4}, StartTime: 1, EndTime: 3},
	}
	taskID, err := testClient(t, srv.URL).SubmitRender(context.Background(), "https://in.example.com/src.mp4", regions)
	require.NoError(t, err)
	require.Equal(t, int64(777), taskID)
}

func TestSubmitRender_Rejected(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(renderResponse{Code: 5000, Msg: "quota exceeded"}))
	}))
	defer srv.Close()

	_, err := testClient(t, srv.URL).SubmitRender(context.Background(), "https://in.example.com/src.mp4", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "quota exceeded")
}
