package close_design

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Festum-DesignService/internal/api/handlers"
	"github.com/m04kA/Festum-DesignService/internal/service/designs"
)

const (
	msgDesignNotFound = "diseño no encontrado"
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

// Handle DELETE /api/v1/designs/{designId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем designId из URL
	designID := mux.Vars(r)["designId"]

	// Вызываем сервис
	if err := h.service.Close(r.Context(), designID); err != nil {
		switch {
		case errors.Is(err, designs.ErrDesignNotFound):
			h.logger.Warn("DELETE /designs/{id} - Design not found: design_id=%s", designID)
			handlers.RespondNotFound(w, msgDesignNotFound)
		default:
			h.logger.Error("DELETE /designs/{id} - Failed to close design: design_id=%s, error=%v", designID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /designs/{id} - Design closed: design_id=%s", designID)
	handlers.RespondNoContent(w)
}
