package models

// RemoteTaskStatus mirrors the state the inpainting API reports for a
// submitted task. Transient, never persisted directly.
type RemoteTaskStatus string

const (
	RemoteStatusPending    RemoteTaskStatus = "pending"
	RemoteStatusProcessing RemoteTaskStatus = "processing"
	RemoteStatusCompleted  RemoteTaskStatus = "completed"
	RemoteStatusFailed     RemoteTaskStatus = "failed"
	RemoteStatusError      RemoteTaskStatus = "error"
)

type RemoteStatus struct {
	Status    RemoteTaskStatus `json:"status"`
	Progress  float64          `json:"progress"`
	OutputURL string           `json:"output_url,omitempty"`
	Error     string           `json:"error,omitempty"`
}
