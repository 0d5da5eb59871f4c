package get_template

import (
	"github.com/m04kA/Festum-DesignService/internal/service/designs/models"
)

type DesignService interface {
	GetTemplate(id string) (*models.TemplateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
