package middleware

import (
	"github.com/tusharverma21/cloud-video-eraser/internal/auth"
	"github.com/tusharverma21/cloud-video-eraser/internal/config"
	"github.com/tusharverma21/cloud-video-eraser/pkg/logger"
)

type MiddlewareManager struct {
	authUC  auth.UseCase
	cfg     *config.Config
	origins []string
	logger  logger.Logger
}

// Middleware manager constructor
func NewMiddlewareManager(authUC auth.UseCase, cfg *config.Config, origins []string, logger logger.Logger) *MiddlewareManager {
	return &MiddlewareManager{authUC: authUC, cfg: cfg, origins: origins, logger: logger}
}
