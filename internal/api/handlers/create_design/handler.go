package create_design

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/Festum-DesignService/internal/api/handlers"
	"github.com/m04kA/Festum-DesignService/internal/api/middleware"
	"github.com/m04kA/Festum-DesignService/internal/domain"
	"github.com/m04kA/Festum-DesignService/internal/service/designs"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgTooManySessions    = "se alcanzó el límite de diseños abiertos"
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

// Handle POST /api/v1/designs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Пустое тело допустимо: будет выбран шаблон по умолчанию
	var req CreateDesignRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /designs - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем workspaceID из контекста (установлен middleware Workspace)
	workspaceID, ok := middleware.GetWorkspaceID(r.Context())
	if !ok {
		workspaceID = domain.DefaultWorkspaceID
	}

	// Вызываем сервис
	design, err := h.service.Create(r.Context(), req.ToServiceRequest(workspaceID))
	if err != nil {
		switch {
		case errors.Is(err, designs.ErrTooManySessions):
			h.logger.Warn("POST /designs - Session limit reached: workspace=%s", workspaceID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgTooManySessions)
		default:
			h.logger.Error("POST /designs - Failed to create design: workspace=%s, error=%v", workspaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /designs - Design created: design_id=%s, workspace=%s", design.ID, workspaceID)
	handlers.RespondJSON(w, http.StatusCreated, design)
}
