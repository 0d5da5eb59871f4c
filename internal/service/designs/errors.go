package designs

import "errors"

var (
	// ErrDesignNotFound возвращается, когда сессия дизайна не найдена
	ErrDesignNotFound = errors.New("design not found")

	// ErrArchetypeNotFound возвращается, когда элемент каталога не найден
	ErrArchetypeNotFound = errors.New("archetype not found")

	// ErrTemplateNotFound возвращается, когда шаблон зала не найден
	ErrTemplateNotFound = errors.New("template not found")

	// ErrTooManySessions возвращается при превышении лимита открытых сессий
	ErrTooManySessions = errors.New("too many open design sessions")

	// ErrNoSnapshot возвращается, когда сохраненного дизайна нет
	ErrNoSnapshot = errors.New("no saved design")

	// ErrCorruptSnapshot возвращается, когда сохраненный дизайн поврежден
	ErrCorruptSnapshot = errors.New("saved design is corrupt")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
