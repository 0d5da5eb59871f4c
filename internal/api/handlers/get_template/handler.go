package get_template

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Festum-DesignService/internal/api/handlers"
	"github.com/m04kA/Festum-DesignService/internal/service/designs"
)

const (
	msgTemplateNotFound = "plantilla no encontrada"
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

// Handle GET /api/v1/templates/{templateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем templateId из URL
	templateID := mux.Vars(r)["templateId"]

	// Вызываем сервис
	template, err := h.service.GetTemplate(templateID)
	if err != nil {
		switch {
		case errors.Is(err, designs.ErrTemplateNotFound):
			h.logger.Warn("GET /templates/{id} - Template not found: template_id=%s", templateID)
			handlers.RespondNotFound(w, msgTemplateNotFound)
		default:
			h.logger.Error("GET /templates/{id} - Failed to get template: template_id=%s, error=%v", templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, template)
}
