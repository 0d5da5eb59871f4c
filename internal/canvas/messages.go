package canvas

// Тексты уведомлений для пользователя
const (
	msgTemplateSelected   = "Plantilla seleccionada: %s"
	msgElementAdded       = "Elemento agregado: %s"
	msgElementRemoved     = "Elemento eliminado: %s"
	msgCannotRemoveFixed  = "No se puede eliminar un elemento fijo de la plantilla"
	msgCannotModifyFixed  = "Los elementos fijos de la plantilla no se pueden mover ni modificar"
	msgElementNotFound    = "Elemento no encontrado"
	msgNoTemplateSelected = "Seleccione una plantilla antes de editar el diseño"
	msgDesignRestored     = "Diseño restaurado: %d elementos"
	msgDragOtherElement   = "Se está arrastrando otro elemento"
)
