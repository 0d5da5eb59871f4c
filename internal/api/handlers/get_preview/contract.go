package get_preview

import (
	"context"
)

type DesignService interface {
	Preview(ctx context.Context, id string) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
