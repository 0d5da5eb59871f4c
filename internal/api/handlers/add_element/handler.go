package add_element

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
	msgMissingArchetypeID = "falta el ID del elemento del catálogo"
	msgDesignNotFound     = "diseño no encontrado"
	msgArchetypeNotFound  = "elemento del catálogo no encontrado"
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

// Handle POST /api/v1/designs/{designId}/elements
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем designId из URL
	designID := mux.Vars(r)["designId"]

	// Парсим тело запроса
	var req models.AddElementRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /designs/{id}/elements - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	// Валидация обязательных полей
	if req.ArchetypeID == "" {
		handlers.RespondBadRequest(w, msgMissingArchetypeID)
		return
	}

	// Вызываем сервис
	design, err := h.service.AddElement(r.Context(), designID, &req)
	if err != nil {
		switch {
		case errors.Is(err, designs.ErrDesignNotFound):
			h.logger.Warn("POST /designs/{id}/elements - Design not found: design_id=%s", designID)
			handlers.RespondNotFound(w, msgDesignNotFound)
		case errors.Is(err, designs.ErrArchetypeNotFound):
			h.logger.Warn("POST /designs/{id}/elements - Archetype not found: archetype_id=%s", req.ArchetypeID)
			handlers.RespondNotFound(w, msgArchetypeNotFound)
		default:
			h.logger.Error("POST /designs/{id}/elements - Failed to add element: design_id=%s, error=%v", designID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Размещенный элемент отдаем со статусом 201
	status := http.StatusOK
	if design.Applied {
		status = http.StatusCreated
	}
	handlers.RespondJSON(w, status, design)
}
