package remove_element

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

// Handle DELETE /api/v1/designs/{designId}/elements/{elementId}
// Удаление фиксированного элемента не является ошибкой: ответ 200 с applied=false и уведомлением.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем designId и elementId из URL
	vars := mux.Vars(r)
	designID := vars["designId"]
	elementID := vars["elementId"]

	// Вызываем сервис
	design, err := h.service.RemoveElement(r.Context(), designID, elementID)
	if err != nil {
		switch {
		case errors.Is(err, designs.ErrDesignNotFound):
			h.logger.Warn("DELETE /designs/{id}/elements/{elementId} - Design not found: design_id=%s", designID)
			handlers.RespondNotFound(w, msgDesignNotFound)
		default:
			h.logger.Error("DELETE /designs/{id}/elements/{elementId} - Failed to remove element: design_id=%s, element_id=%s, error=%v",
				designID, elementID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, design)
}
