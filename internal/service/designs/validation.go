package designs

import (
	"fmt"

	"github.com/m04kA/Festum-DesignService/internal/layout"
	"github.com/m04kA/Festum-DesignService/internal/service/designs/models"
)

// validateUpdate проверяет, что у действия есть нужные параметры
func validateUpdate(req *models.UpdateElementRequest) error {
	switch req.Action {
	case models.ActionMove:
		if req.Delta == nil {
			return fmt.Errorf("%w: delta is required for move", ErrInvalidInput)
		}
	case models.ActionNudge:
		if !req.Direction.IsValid() {
			return fmt.Errorf("%w: direction must be one of up, down, left, right", ErrInvalidInput)
		}
	case models.ActionRotate, models.ActionGrow, models.ActionShrink, models.ActionSelect:
	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
	}
	return nil
}

// toDragEvent переводит запрос в типизированное событие перетаскивания
func toDragEvent(elementID string, req *models.DragRequest) (layout.DragEvent, error) {
	pointer := req.Pointer.ToDomainPoint()
	switch layout.DragPhase(req.Phase) {
	case layout.PhaseStart:
		return layout.DragStart{ElementID: elementID, Pointer: pointer}, nil
	case layout.PhaseMove:
		return layout.DragMove{ElementID: elementID, Pointer: pointer}, nil
	case layout.PhaseEnd:
		return layout.DragEnd{ElementID: elementID, Pointer: pointer}, nil
	default:
		return nil, fmt.Errorf("%w: unknown drag phase %q", ErrInvalidInput, req.Phase)
	}
}
