package add_element

import (
	"context"

	"github.com/m04kA/Festum-DesignService/internal/service/designs/models"
)

type DesignService interface {
	AddElement(ctx context.Context, id string, req *models.AddElementRequest) (*models.DesignResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
