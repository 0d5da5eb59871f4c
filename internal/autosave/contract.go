package autosave

import "context"

// Store key-value хранилище, разделенное по рабочим пространствам
type Store interface {
	Set(ctx context.Context, workspaceID, key string, value []byte) error
	Get(ctx context.Context, workspaceID, key string) ([]byte, error)
}

// FailureRecorder учитывает неудачные автосохранения
type FailureRecorder interface {
	AutosaveFailed(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
