package autosave

import "errors"

var (
	// ErrNoSnapshot возвращается, когда в хранилище нет сохраненного дизайна
	ErrNoSnapshot = errors.New("autosave: snapshot not found")

	// ErrCorruptSnapshot возвращается, когда сохраненные данные не удалось разобрать
	ErrCorruptSnapshot = errors.New("autosave: corrupt snapshot")

	// ErrStorage возвращается при ошибках хранилища
	ErrStorage = errors.New("autosave: storage error")
)
