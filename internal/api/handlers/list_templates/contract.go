package list_templates

import (
	"github.com/m04kA/Festum-DesignService/internal/service/designs/models"
)

type DesignService interface {
	ListTemplates() []models.TemplateResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
