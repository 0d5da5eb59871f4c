package templates

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда шаблон зала не найден
	ErrTemplateNotFound = errors.New("templates: template not found")
)
