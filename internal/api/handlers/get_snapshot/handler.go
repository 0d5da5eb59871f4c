package get_snapshot

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Festum-DesignService/internal/api/handlers"
	"github.com/m04kA/Festum-DesignService/internal/service/designs"
	"github.com/m04kA/Festum-DesignService/internal/service/designs/models"
)

const (
	msgDesignNotFound  = "diseño no encontrado"
	msgNoSnapshot      = "no hay un diseño guardado"
	msgCorruptSnapshot = "el diseño guardado está dañado"
)

// Source какой снимок читает обработчик
type Source string

const (
	SourceAutosave Source = "autosave"
	SourceSaved    Source = "saved"
)

type Handler struct {
	service DesignService
	source  Source
	logger  Logger
}

func NewHandler(service DesignService, source Source, logger Logger) *Handler {
	return &Handler{
		service: service,
		source:  source,
		logger:  logger,
	}
}

// Handle GET /api/v1/designs/{designId}/autosave
// Handle GET /api/v1/designs/{designId}/saved
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем designId из URL
	designID := mux.Vars(r)["designId"]

	// Вызываем сервис
	snapshot, err := h.load(r.Context(), designID)
	if err != nil {
		switch {
		case errors.Is(err, designs.ErrDesignNotFound):
			h.logger.Warn("GET /designs/{id}/%s - Design not found: design_id=%s", h.source, designID)
			handlers.RespondNotFound(w, msgDesignNotFound)
		case errors.Is(err, designs.ErrNoSnapshot):
			handlers.RespondNotFound(w, msgNoSnapshot)
		case errors.Is(err, designs.ErrCorruptSnapshot):
			h.logger.Warn("GET /designs/{id}/%s - Corrupt snapshot: design_id=%s", h.source, designID)
			handlers.RespondConflict(w, msgCorruptSnapshot)
		default:
			h.logger.Error("GET /designs/{id}/%s - Failed to load snapshot: design_id=%s, error=%v", h.source, designID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, snapshot)
}

func (h *Handler) load(ctx context.Context, designID string) (*models.SnapshotResponse, error) {
	if h.source == SourceSaved {
		return h.service.GetSavedDesign(ctx, designID)
	}
	return h.service.GetAutosave(ctx, designID)
}
