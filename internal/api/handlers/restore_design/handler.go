package restore_design

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Festum-DesignService/internal/api/handlers"
	"github.com/m04kA/Festum-DesignService/internal/service/designs"
	"github.com/m04kA/Festum-DesignService/internal/service/designs/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidSource      = "origen no válido, se espera autosave o saved"
	msgDesignNotFound     = "diseño no encontrado"
	msgNoSnapshot         = "no hay un diseño guardado para restaurar"
	msgCorruptSnapshot    = "el diseño guardado está dañado"
)

type Handler struct {
	service DesignService
	logger  Logger
}

func NewHandler(service DesignService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/designs/{designId}/restore
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем designId из URL
	designID := mux.Vars(r)["designId"]

	// Без тела восстанавливаем из автосохранения
	req := models.RestoreRequest{Source: models.RestoreFromAutosave}
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /designs/{id}/restore - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем сервис
	design, err := h.service.Restore(r.Context(), designID, &req)
	if err != nil {
		switch {
		case errors.Is(err, designs.ErrInvalidInput):
			h.logger.Warn("POST /designs/{id}/restore - Invalid source: source=%s", req.Source)
			handlers.RespondBadRequest(w, msgInvalidSource)
		case errors.Is(err, designs.ErrDesignNotFound):
			h.logger.Warn("POST /designs/{id}/restore - Design not found: design_id=%s", designID)
			handlers.RespondNotFound(w, msgDesignNotFound)
		case errors.Is(err, designs.ErrNoSnapshot):
			handlers.RespondNotFound(w, msgNoSnapshot)
		case errors.Is(err, designs.ErrCorruptSnapshot):
			h.logger.Warn("POST /designs/{id}/restore - Corrupt snapshot: design_id=%s", designID)
			handlers.RespondConflict(w, msgCorruptSnapshot)
		default:
			h.logger.Error("POST /designs/{id}/restore - Failed to restore design: design_id=%s, error=%v", designID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /designs/{id}/restore - Design restored: design_id=%s, source=%s", designID, req.Source)
	handlers.RespondJSON(w, http.StatusOK, design)
}
