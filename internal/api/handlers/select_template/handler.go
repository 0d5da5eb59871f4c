package select_template

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
	msgMissingTemplateID  = "falta el ID de la plantilla"
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

// Handle PUT /api/v1/designs/{designId}/template
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем designId из URL
	designID := mux.Vars(r)["designId"]

	// Парсим тело запроса
	var req models.SelectTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /designs/{id}/template - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	// Валидация обязательных полей
	if req.TemplateID == "" {
		handlers.RespondBadRequest(w, msgMissingTemplateID)
		return
	}

	// Вызываем сервис
	design, err := h.service.SelectTemplate(r.Context(), designID, &req)
	if err != nil {
		switch {
		case errors.Is(err, designs.ErrDesignNotFound):
			h.logger.Warn("PUT /designs/{id}/template - Design not found: design_id=%s", designID)
			handlers.RespondNotFound(w, msgDesignNotFound)
		default:
			h.logger.Error("PUT /designs/{id}/template - Failed to select template: design_id=%s, error=%v", designID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /designs/{id}/template - Template selected: design_id=%s, template_id=%s", designID, req.TemplateID)
	handlers.RespondJSON(w, http.StatusOK, design)
}
