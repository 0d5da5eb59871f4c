package drag_element

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
	msgInvalidPhase       = "fase de arrastre no válida, se espera start, move o end"
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

// Handle POST /api/v1/designs/{designId}/elements/{elementId}/drag
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем designId и elementId из URL
	vars := mux.Vars(r)
	designID := vars["designId"]
	elementID := vars["elementId"]

	// Парсим тело запроса
	var req models.DragRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /designs/{id}/elements/{elementId}/drag - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем сервис
	design, err := h.service.Drag(r.Context(), designID, elementID, &req)
	if err != nil {
		switch {
		case errors.Is(err, designs.ErrInvalidInput):
			h.logger.Warn("POST /designs/{id}/elements/{elementId}/drag - Invalid phase: phase=%s", req.Phase)
			handlers.RespondBadRequest(w, msgInvalidPhase)
		case errors.Is(err, designs.ErrDesignNotFound):
			h.logger.Warn("POST /designs/{id}/elements/{elementId}/drag - Design not found: design_id=%s", designID)
			handlers.RespondNotFound(w, msgDesignNotFound)
		default:
			h.logger.Error("POST /designs/{id}/elements/{elementId}/drag - Failed to drag element: design_id=%s, element_id=%s, error=%v",
				designID, elementID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, design)
}
