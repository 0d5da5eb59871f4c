package catalog

import "errors"

var (
	// ErrArchetypeNotFound возвращается, когда элемент каталога не найден
	ErrArchetypeNotFound = errors.New("catalog: archetype not found")
)
