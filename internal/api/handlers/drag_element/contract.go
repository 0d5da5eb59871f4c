package drag_element

import (
	"context"

	"github.com/m04kA/Festum-DesignService/internal/service/designs/models"
)

type DesignService interface {
	Drag(ctx context.Context, id string, elementID string, req *models.DragRequest) (*models.DesignResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
