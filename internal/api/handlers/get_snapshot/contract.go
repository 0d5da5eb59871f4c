package get_snapshot

import (
	"context"

	"github.com/m04kA/Festum-DesignService/internal/service/designs/models"
)

type DesignService interface {
	GetAutosave(ctx context.Context, id string) (*models.SnapshotResponse, error)
	GetSavedDesign(ctx context.Context, id string) (*models.SnapshotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
