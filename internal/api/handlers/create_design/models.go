package create_design

import (
	"github.com/m04kA/Festum-DesignService/internal/service/designs/models"
)

// CreateDesignRequest HTTP request model
type CreateDesignRequest struct {
	TemplateID string `json:"templateId"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateDesignRequest) ToServiceRequest(workspaceID string) *models.CreateDesignRequest {
	return &models.CreateDesignRequest{
		WorkspaceID: workspaceID,
		TemplateID:  r.TemplateID,
	}
}
