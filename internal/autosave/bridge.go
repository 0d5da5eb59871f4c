// Package autosave сохраняет свободные элементы холста в key-value хранилище.
// Автосохранение выполняется по принципу best-effort: ошибки логируются и не прерывают мутацию.
package autosave

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Festum-DesignService/internal/domain"
	kvRepo "github.com/m04kA/Festum-DesignService/internal/infra/storage/kv"
)

// Bridge мост между холстом и хранилищем для одного рабочего пространства
type Bridge struct {
	store       Store
	workspaceID string
	timeout     time.Duration
	failures    FailureRecorder
	logger      Logger
	now         func() time.Time
}

// NewBridge создает мост автосохранения.
// timeout ограничивает одну запись при автосохранении; failures может быть nil.
func NewBridge(store Store, workspaceID string, timeout time.Duration, failures FailureRecorder, logger Logger) *Bridge {
	if workspaceID == "" {
		workspaceID = domain.DefaultWorkspaceID
	}
	return &Bridge{
		store:       store,
		workspaceID: workspaceID,
		timeout:     timeout,
		failures:    failures,
		logger:      logger,
		now:         time.Now,
	}
}

// Autosave сохраняет снимок свободных элементов под ключом festum_autosave_diseno.
// Ошибки сериализации и хранилища только логируются.
func (b *Bridge) Autosave(templateID string, freeElements []domain.PlacedElement) {
	snapshot := AutosaveSnapshot{
		TemplateID: templateID,
		Elements:   FromDomainElements(freeElements),
		SavedAt:    b.now().UTC(),
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		b.fail("marshal", "Autosave: failed to marshal snapshot for workspace=%s: %v", b.workspaceID, err)
		return
	}

	ctx := context.Background()
	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	if err := b.store.Set(ctx, b.workspaceID, domain.AutosaveKey, payload); err != nil {
		b.fail("storage", "Autosave: failed to store snapshot for workspace=%s: %v", b.workspaceID, err)
		return
	}
}

// SaveDesign явно сохраняет дизайн под ключом festum_ultimo_diseno
func (b *Bridge) SaveDesign(ctx context.Context, template domain.RoomTemplate, freeElements []domain.PlacedElement) (*SavedDesign, error) {
	design := &SavedDesign{
		TemplateID:   template.ID,
		TemplateName: template.DisplayName,
		Elements:     FromDomainElements(freeElements),
		SavedAt:      b.now().UTC(),
		Version:      domain.DesignVersion,
	}

	payload, err := json.Marshal(design)
	if err != nil {
		return nil, fmt.Errorf("%w: SaveDesign - marshal: %v", ErrStorage, err)
	}

	if err := b.store.Set(ctx, b.workspaceID, domain.SavedDesignKey, payload); err != nil {
		b.logger.Error("SaveDesign: failed to store design for workspace=%s: %v", b.workspaceID, err)
		return nil, fmt.Errorf("%w: SaveDesign - store: %v", ErrStorage, err)
	}

	b.logger.Info("SaveDesign: saved design template=%s elements=%d workspace=%s",
		template.ID, len(freeElements), b.workspaceID)
	return design, nil
}

// LoadAutosave читает последний снимок автосохранения.
// Восстановление холста из снимка остается на стороне вызывающего кода.
func (b *Bridge) LoadAutosave(ctx context.Context) (*AutosaveSnapshot, error) {
	var snapshot AutosaveSnapshot
	if err := b.load(ctx, domain.AutosaveKey, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// LoadSavedDesign читает последний явно сохраненный дизайн
func (b *Bridge) LoadSavedDesign(ctx context.Context) (*SavedDesign, error) {
	var design SavedDesign
	if err := b.load(ctx, domain.SavedDesignKey, &design); err != nil {
		return nil, err
	}
	return &design, nil
}

// WorkspaceID возвращает рабочее пространство моста
func (b *Bridge) WorkspaceID() string {
	return b.workspaceID
}

func (b *Bridge) load(ctx context.Context, key string, dst interface{}) error {
	payload, err := b.store.Get(ctx, b.workspaceID, key)
	if err != nil {
		if errors.Is(err, kvRepo.ErrKeyNotFound) {
			return ErrNoSnapshot
		}
		return fmt.Errorf("%w: load %s: %v", ErrStorage, key, err)
	}

	if err := json.Unmarshal(payload, dst); err != nil {
		b.logger.Warn("load: corrupt payload under key=%s workspace=%s: %v", key, b.workspaceID, err)
		return fmt.Errorf("%w: key=%s: %v", ErrCorruptSnapshot, key, err)
	}
	return nil
}

func (b *Bridge) fail(reason string, format string, v ...interface{}) {
	b.logger.Error(format, v...)
	if b.failures != nil {
		b.failures.AutosaveFailed(reason)
	}
}
