package list_templates

import (
	"net/http"

	"github.com/m04kA/Festum-DesignService/internal/api/handlers"
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

// Handle GET /api/v1/templates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list := h.service.ListTemplates()

	h.logger.Info("GET /templates - Templates listed: count=%d", len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
