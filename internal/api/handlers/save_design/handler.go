package save_design

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Festum-DesignService/internal/api/handlers"
	"github.com/m04kA/Festum-DesignService/internal/service/designs"
)

const (
	msgDesignNotFound = "diseño no encontrado"
	msgNoTemplate     = "seleccione una plantilla antes de guardar el diseño"
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

// Handle POST /api/v1/designs/{designId}/save
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем designId из URL
	designID := mux.Vars(r)["designId"]

	// Вызываем сервис
	saved, err := h.service.Save(r.Context(), designID)
	if err != nil {
		switch {
		case errors.Is(err, designs.ErrDesignNotFound):
			h.logger.Warn("POST /designs/{id}/save - Design not found: design_id=%s", designID)
			handlers.RespondNotFound(w, msgDesignNotFound)
		case errors.Is(err, designs.ErrInvalidInput):
			h.logger.Warn("POST /designs/{id}/save - Design has no template: design_id=%s", designID)
			handlers.RespondConflict(w, msgNoTemplate)
		default:
			h.logger.Error("POST /designs/{id}/save - Failed to save design: design_id=%s, error=%v", designID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /designs/{id}/save - Design saved: design_id=%s, elements=%d", designID, len(saved.Elements))
	handlers.RespondJSON(w, http.StatusOK, saved)
}
