package handlers

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator"

	"github.com/iByteABit256/MRN-Generator/internal/service"
)

type GeneratorService interface {
	GenerateBatch(ctx context.Context, cmd service.GenerateCommand) ([]string, error)
}

type MrnHandler struct {
	generator GeneratorService
	validate  *validator.Validate
	logger    *slog.Logger
}

func NewMrnHandler(generator GeneratorService, logger *slog.Logger) *MrnHandler {
	return &MrnHandler{
		generator: generator,
		validate:  validator.New(),
		logger:    logger,
	}
}

func (h *MrnHandler) RegisterRoutes(r chi.Router) {
	r.Post("/v1/mrns", h.HandleGenerate)
	r.Get("/healthz", h.HandleHealth)
}
