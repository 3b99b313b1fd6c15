package http

import (
	"log/slog"

	"github.com/GoSim-25-26J-441/seqr-views/internal/views/service"
)

// Handler bundles the dependencies for the view endpoints.
type Handler struct {
	svc    *service.ViewService
	logger *slog.Logger
}

func New(svc *service.ViewService, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}
