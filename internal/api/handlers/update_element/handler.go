package update_element

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Festum-DesignService/internal/api/handlers"
	"github.com/m04kA/Festum-DesignService/internal/service/designs"
	"github.com/m04kA/Festum-DesignService/internal/service/designs/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidAction      = "acción no válida para el elemento"
	msgDesignNotFound     = "diseño no encontrado"
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

// Handle PATCH /api/v1/designs/{designId}/elements/{elementId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем designId и elementId из URL
	vars := mux.Vars(r)
	designID := vars["designId"]
	elementID := vars["elementId"]

	// Парсим тело запроса
	var req models.UpdateElementRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /designs/{id}/elements/{elementId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем сервис
	design, err := h.service.UpdateElement(r.Context(), designID, elementID, &req)
	if err != nil {
		switch {
		case errors.Is(err, designs.ErrInvalidInput):
			h.logger.Warn("PATCH /designs/{id}/elements/{elementId} - Invalid action: action=%s, error=%v", req.Action, err)
			handlers.RespondBadRequest(w, msgInvalidAction)
		case errors.Is(err, designs.ErrDesignNotFound):
			h.logger.Warn("PATCH /designs/{id}/elements/{elementId} - Design not found: design_id=%s", designID)
			handlers.RespondNotFound(w, msgDesignNotFound)
		default:
			h.logger.Error("PATCH /designs/{id}/elements/{elementId} - Failed to update element: design_id=%s, element_id=%s, error=%v",
				designID, elementID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, design)
}
