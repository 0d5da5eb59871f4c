package get_preview

import (
	"errors"
	"net/http"
	"strconv"

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

// Handle GET /api/v1/designs/{designId}/preview.png
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем designId из URL
	designID := mux.Vars(r)["designId"]

	// Вызываем сервис
	image, err := h.service.Preview(r.Context(), designID)
	if err != nil {
		switch {
		case errors.Is(err, designs.ErrDesignNotFound):
			h.logger.Warn("GET /designs/{id}/preview.png - Design not found: design_id=%s", designID)
			handlers.RespondNotFound(w, msgDesignNotFound)
		default:
			h.logger.Error("GET /designs/{id}/preview.png - Failed to render preview: design_id=%s, error=%v", designID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем PNG ответ
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(image)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(image); err != nil {
		h.logger.Warn("GET /designs/{id}/preview.png - Failed to write response: %v", err)
	}
}
