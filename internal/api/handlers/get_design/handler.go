package get_design

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

// Handle GET /api/v1/designs/{designId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем designId из URL
	designID := mux.Vars(r)["designId"]

	// Вызываем сервис
	design, err := h.service.Get(r.Context(), designID)
	if err != nil {
		switch {
		case errors.Is(err, designs.ErrDesignNotFound):
			h.logger.Warn("GET /designs/{id} - Design not found: design_id=%s", designID)
			handlers.RespondNotFound(w, msgDesignNotFound)
		default:
			h.logger.Error("GET /designs/{id} - Failed to get design: design_id=%s, error=%v", designID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, design)
}
