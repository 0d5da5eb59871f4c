package create_design

import (
	"context"

	"github.com/m04kA/Festum-DesignService/internal/service/designs/models"
)

type DesignService interface {
	Create(ctx context.Context, req *models.CreateDesignRequest) (*models.DesignResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
