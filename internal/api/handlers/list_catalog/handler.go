package list_catalog

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

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	items := h.service.ListCatalog()

	h.logger.Info("GET /catalog - Catalog listed: count=%d", len(items))
	handlers.RespondJSON(w, http.StatusOK, items)
}
