package designs

import (
	"github.com/m04kA/Festum-DesignService/internal/autosave"
	"github.com/m04kA/Festum-DesignService/internal/domain"
)

// Catalog интерфейс каталога размещаемых элементов
type Catalog interface {
	List() []domain.Archetype
	Get(id string) (domain.Archetype, error)
}

// TemplateRegistry интерфейс реестра шаблонов залов
type TemplateRegistry interface {
	List() []domain.RoomTemplate
	Get(id string) (domain.RoomTemplate, error)
	GetOrDefault(id string) (domain.RoomTemplate, bool)
	Default() domain.RoomTemplate
}

// Store key-value хранилище для автосохранения
type Store = autosave.Store

// Metrics интерфейс для учета операций над холстами
type Metrics interface {
	CanvasMutation(operation string)
	OperationRejected(operation string)
	AutosaveFailed(reason string)
	SessionOpened()
	SessionClosed()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
