package designs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Festum-DesignService/internal/autosave"
	"github.com/m04kA/Festum-DesignService/internal/canvas"
	catalogPkg "github.com/m04kA/Festum-DesignService/internal/catalog"
	"github.com/m04kA/Festum-DesignService/internal/domain"
	"github.com/m04kA/Festum-DesignService/internal/layout"
	"github.com/m04kA/Festum-DesignService/internal/notify"
	"github.com/m04kA/Festum-DesignService/internal/render"
	"github.com/m04kA/Festum-DesignService/internal/service/designs/models"
	templatesPkg "github.com/m04kA/Festum-DesignService/internal/templates"
)

const msgTemplateFallback = "Plantilla \"%s\" no encontrada, se usa el lienzo vacío"

// Options параметры сервиса
type Options struct {
	DefaultTemplateID string
	MaxSessions       int
	AutosaveTimeout   time.Duration
	// SessionIdleTimeout время бездействия, после которого сессия закрывается; 0 - без ограничения
	SessionIdleTimeout time.Duration
	// NewID генератор идентификаторов сессий, по умолчанию uuid
	NewID func() string
}

// Service сервис сессий дизайна плана зала
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*session

	catalog   Catalog
	templates TemplateRegistry
	store     Store
	metrics   Metrics
	logger    Logger
	opts      Options
	newID     func() string
	now       func() time.Time
}

// NewService создает новый экземпляр сервиса
func NewService(
	catalog Catalog,
	templates TemplateRegistry,
	store Store,
	metrics Metrics,
	logger Logger,
	opts Options,
) *Service {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	return &Service{
		sessions:  make(map[string]*session),
		catalog:   catalog,
		templates: templates,
		store:     store,
		metrics:   metrics,
		logger:    logger,
		opts:      opts,
		newID:     newID,
		now:       time.Now,
	}
}

// ListCatalog возвращает каталог размещаемых элементов
func (s *Service) ListCatalog() []models.ArchetypeResponse {
	return models.FromDomainArchetypes(s.catalog.List())
}

// ListTemplates возвращает шаблоны залов
func (s *Service) ListTemplates() []models.TemplateResponse {
	return models.FromDomainTemplates(s.templates.List())
}

// GetTemplate возвращает шаблон зала по ID
func (s *Service) GetTemplate(id string) (*models.TemplateResponse, error) {
	t, err := s.templates.Get(id)
	if err != nil {
		if errors.Is(err, templatesPkg.ErrTemplateNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("%w: GetTemplate: %v", ErrInternal, err)
	}
	resp := models.FromDomainTemplate(t)
	return &resp, nil
}

// Create открывает новую сессию дизайна и выбирает шаблон.
// Неизвестный шаблон заменяется пустым шаблоном по умолчанию с уведомлением.
func (s *Service) Create(ctx context.Context, req *models.CreateDesignRequest) (*models.DesignResponse, error) {
	workspaceID := req.WorkspaceID
	if workspaceID == "" {
		workspaceID = domain.DefaultWorkspaceID
	}
	templateID := req.TemplateID
	if templateID == "" {
		templateID = s.opts.DefaultTemplateID
	}

	s.mu.Lock()
	s.evictIdleLocked()
	if s.opts.MaxSessions > 0 && len(s.sessions) >= s.opts.MaxSessions {
		s.mu.Unlock()
		s.logger.Warn("Create: session limit reached (%d)", s.opts.MaxSessions)
		return nil, ErrTooManySessions
	}

	id := s.newID()
	sess := &session{
		id:          id,
		workspaceID: workspaceID,
		notes:       notify.NewBuffer(),
	}
	sess.touch(s.now())
	sess.bridge = autosave.NewBridge(s.store, workspaceID, s.opts.AutosaveTimeout, s.metrics, s.logger)
	sess.canvas = canvas.New(canvas.Options{
		Notifier:  notify.Fanout{sess.notes, notify.NewLogging("design "+id, s.logger)},
		Autosaver: sess.bridge,
	})
	s.sessions[id] = sess
	s.mu.Unlock()

	s.metrics.SessionOpened()

	sess.mu.Lock()
	defer sess.mu.Unlock()

	s.selectTemplate(sess, templateID)

	s.logger.Info("Create: opened design id=%s workspace=%s template=%s", id, workspaceID, templateID)
	return s.respond(sess, true), nil
}

// Get возвращает текущее состояние сессии
func (s *Service) Get(ctx context.Context, id string) (*models.DesignResponse, error) {
	return s.withSession(id, func(sess *session) bool { return true })
}

// Close закрывает сессию дизайна. Последний снимок автосохранения остается в хранилище.
func (s *Service) Close(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		s.logger.Warn("Close: design id=%s not found", id)
		return ErrDesignNotFound
	}

	s.remove(id, "closed by client")
	return nil
}

// SelectTemplate меняет шаблон зала. Свободные элементы отбрасываются.
func (s *Service) SelectTemplate(ctx context.Context, id string, req *models.SelectTemplateRequest) (*models.DesignResponse, error) {
	return s.withSession(id, func(sess *session) bool {
		s.selectTemplate(sess, req.TemplateID)
		s.metrics.CanvasMutation("select_template")
		return true
	})
}

// AddElement размещает элемент каталога на холсте
func (s *Service) AddElement(ctx context.Context, id string, req *models.AddElementRequest) (*models.DesignResponse, error) {
	archetype, err := s.catalog.Get(req.ArchetypeID)
	if err != nil {
		if errors.Is(err, catalogPkg.ErrArchetypeNotFound) {
			s.logger.Warn("AddElement: archetype id=%s not found", req.ArchetypeID)
			return nil, ErrArchetypeNotFound
		}
		return nil, fmt.Errorf("%w: AddElement - catalog: %v", ErrInternal, err)
	}

	return s.withSession(id, func(sess *session) bool {
		var ok bool
		if req.Position != nil {
			_, ok = sess.canvas.AddElement(archetype, req.Position.ToDomainPoint())
		} else {
			_, ok = sess.canvas.DropArchetype(archetype, req.DropPoint.ToDomainPoint(), req.CanvasOrigin.ToDomainPoint())
		}
		return s.track("add", ok)
	})
}

// RemoveElement удаляет свободный элемент; попытка удалить фиксированный элемент - no-op с уведомлением
func (s *Service) RemoveElement(ctx context.Context, id string, elementID string) (*models.DesignResponse, error) {
	return s.withSession(id, func(sess *session) bool {
		return s.track("remove", sess.canvas.RemoveElement(elementID))
	})
}

// UpdateElement применяет действие к элементу (move, rotate, grow, shrink, nudge, select)
func (s *Service) UpdateElement(ctx context.Context, id string, elementID string, req *models.UpdateElementRequest) (*models.DesignResponse, error) {
	if err := validateUpdate(req); err != nil {
		s.logger.Warn("UpdateElement: validation failed: %v", err)
		return nil, err
	}

	return s.withSession(id, func(sess *session) bool {
		c := sess.canvas
		switch req.Action {
		case models.ActionMove:
			return s.track("move", c.Move(elementID, req.Delta.ToDomainPoint()))
		case models.ActionRotate:
			return s.track("rotate", c.Rotate(elementID))
		case models.ActionGrow:
			return s.track("grow", c.Grow(elementID))
		case models.ActionShrink:
			return s.track("shrink", c.Shrink(elementID))
		case models.ActionNudge:
			return s.track("nudge", c.Nudge(elementID, req.Direction))
		case models.ActionSelect:
			return c.Select(elementID)
		default:
			return false
		}
	})
}

// Drag обрабатывает фазу перетаскивания элемента
func (s *Service) Drag(ctx context.Context, id string, elementID string, req *models.DragRequest) (*models.DesignResponse, error) {
	event, err := toDragEvent(elementID, req)
	if err != nil {
		s.logger.Warn("Drag: validation failed: %v", err)
		return nil, err
	}

	return s.withSession(id, func(sess *session) bool {
		applied := sess.canvas.HandleDrag(event)
		if event.Phase() == layout.PhaseStart {
			if !applied {
				s.metrics.OperationRejected("drag")
			}
			return applied
		}
		return s.track("drag", applied)
	})
}

// Save явно сохраняет дизайн под ключом festum_ultimo_diseno
func (s *Service) Save(ctx context.Context, id string) (*models.SnapshotResponse, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	tpl, ok := sess.canvas.Template()
	if !ok {
		return nil, fmt.Errorf("%w: design has no template", ErrInvalidInput)
	}

	saved, err := sess.bridge.SaveDesign(ctx, tpl, sess.canvas.ListFreeElements())
	if err != nil {
		s.logger.Error("Save: failed to save design id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Save: %v", ErrInternal, err)
	}

	s.logger.Info("Save: saved design id=%s template=%s", id, tpl.ID)
	return models.FromSavedDesign(saved), nil
}

// GetAutosave возвращает последний снимок автосохранения рабочего пространства сессии
func (s *Service) GetAutosave(ctx context.Context, id string) (*models.SnapshotResponse, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	snapshot, err := sess.bridge.LoadAutosave(ctx)
	if err != nil {
		return nil, s.mapLoadError("GetAutosave", id, err)
	}
	return models.FromAutosaveSnapshot(snapshot), nil
}

// GetSavedDesign возвращает явно сохраненный дизайн рабочего пространства сессии
func (s *Service) GetSavedDesign(ctx context.Context, id string) (*models.SnapshotResponse, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	design, err := sess.bridge.LoadSavedDesign(ctx)
	if err != nil {
		return nil, s.mapLoadError("GetSavedDesign", id, err)
	}
	return models.FromSavedDesign(design), nil
}

// Restore восстанавливает холст из автосохранения или явно сохраненного дизайна.
// Восстановление выполняется только по явному запросу клиента.
func (s *Service) Restore(ctx context.Context, id string, req *models.RestoreRequest) (*models.DesignResponse, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	var (
		templateID string
		elements   []domain.PlacedElement
	)

	switch req.Source {
	case models.RestoreFromAutosave, "":
		snapshot, err := sess.bridge.LoadAutosave(ctx)
		if err != nil {
			return nil, s.mapLoadError("Restore", id, err)
		}
		templateID, elements = snapshot.TemplateID, autosave.ToDomainElements(snapshot.Elements)
	case models.RestoreFromSaved:
		design, err := sess.bridge.LoadSavedDesign(ctx)
		if err != nil {
			return nil, s.mapLoadError("Restore", id, err)
		}
		templateID, elements = design.TemplateID, autosave.ToDomainElements(design.Elements)
	default:
		return nil, fmt.Errorf("%w: unknown restore source %q", ErrInvalidInput, req.Source)
	}

	return s.withSession(id, func(sess *session) bool {
		tpl, found := s.templates.GetOrDefault(templateID)
		if !found {
			sess.notes.Notify(fmt.Sprintf(msgTemplateFallback, templateID))
		}
		restored := sess.canvas.Restore(tpl, elements)
		s.logger.Info("Restore: design id=%s restored %d elements from %s (template=%s)", id, restored, req.Source, tpl.ID)
		return s.track("restore", true)
	})
}

// Preview рисует PNG-превью холста
func (s *Service) Preview(ctx context.Context, id string) ([]byte, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	tpl, ok := sess.canvas.Template()
	elements := sess.canvas.Elements()
	sess.mu.Unlock()

	if !ok {
		tpl = s.templates.Default()
	}

	var buf bytes.Buffer
	if err := render.RenderPNG(&buf, tpl.CanvasSize, elements); err != nil {
		s.logger.Error("Preview: failed to render design id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Preview: %v", ErrInternal, err)
	}
	return buf.Bytes(), nil
}

// EvictIdle закрывает сессии, бездействующие дольше SessionIdleTimeout.
// Возвращает количество закрытых сессий.
func (s *Service) EvictIdle() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evictIdleLocked()
}

// RunEvictor периодически вызывает EvictIdle до закрытия stopCh
func (s *Service) RunEvictor(interval time.Duration, stopCh <-chan struct{}) {
	if s.opts.SessionIdleTimeout <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if n := s.EvictIdle(); n > 0 {
				s.logger.Info("RunEvictor: evicted %d idle designs, open=%d", n, s.SessionCount())
			}
		}
	}
}

// SessionCount возвращает число открытых сессий
func (s *Service) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Вспомогательные методы

func (s *Service) session(id string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		s.logger.Warn("design id=%s not found", id)
		return nil, ErrDesignNotFound
	}

	now := s.now()
	if s.expired(sess, now) {
		s.mu.Lock()
		if current, ok := s.sessions[id]; ok && current == sess && s.expired(sess, now) {
			s.remove(id, "idle")
		}
		s.mu.Unlock()
		s.logger.Warn("design id=%s expired after %s idle", id, s.opts.SessionIdleTimeout)
		return nil, ErrDesignNotFound
	}

	sess.touch(now)
	return sess, nil
}

func (s *Service) expired(sess *session, now time.Time) bool {
	return s.opts.SessionIdleTimeout > 0 && sess.idleSince(now) > s.opts.SessionIdleTimeout
}

// evictIdleLocked вызывается под s.mu
func (s *Service) evictIdleLocked() int {
	if s.opts.SessionIdleTimeout <= 0 {
		return 0
	}
	now := s.now()
	evicted := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			s.remove(id, "idle")
			evicted++
		}
	}
	return evicted
}

// remove вызывается под s.mu
func (s *Service) remove(id string, reason string) {
	delete(s.sessions, id)
	s.metrics.SessionClosed()
	s.logger.Info("closed design id=%s (%s)", id, reason)
}

// withSession выполняет операцию под мьютексом сессии и формирует ответ
// с накопленными за операцию уведомлениями
func (s *Service) withSession(id string, op func(sess *session) bool) (*models.DesignResponse, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	applied := op(sess)
	return s.respond(sess, applied), nil
}

func (s *Service) selectTemplate(sess *session, templateID string) {
	tpl, found := s.templates.GetOrDefault(templateID)
	if !found {
		s.logger.Warn("selectTemplate: template id=%s not found, using default for design id=%s", templateID, sess.id)
		sess.notes.Notify(fmt.Sprintf(msgTemplateFallback, templateID))
	}
	sess.canvas.SelectTemplate(tpl)
}

func (s *Service) track(operation string, applied bool) bool {
	if applied {
		s.metrics.CanvasMutation(operation)
	} else {
		s.metrics.OperationRejected(operation)
	}
	return applied
}

func (s *Service) respond(sess *session, applied bool) *models.DesignResponse {
	resp := &models.DesignResponse{
		ID:            sess.id,
		WorkspaceID:   sess.workspaceID,
		State:         string(sess.canvas.State()),
		Elements:      models.FromDomainElements(sess.canvas.Elements()),
		Applied:       applied,
		Notifications: sess.notes.Drain(),
	}
	if tpl, ok := sess.canvas.Template(); ok {
		t := models.FromDomainTemplate(tpl)
		resp.Template = &t
	}
	if selected, ok := sess.canvas.Selected(); ok {
		resp.SelectedElementID = &selected
	}
	return resp
}

func (s *Service) mapLoadError(op string, id string, err error) error {
	switch {
	case errors.Is(err, autosave.ErrNoSnapshot):
		s.logger.Info("%s: no snapshot for design id=%s", op, id)
		return ErrNoSnapshot
	case errors.Is(err, autosave.ErrCorruptSnapshot):
		s.logger.Warn("%s: corrupt snapshot for design id=%s: %v", op, id, err)
		return ErrCorruptSnapshot
	default:
		s.logger.Error("%s: failed to load snapshot for design id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}
}

type nopMetrics struct{}

func (nopMetrics) CanvasMutation(string)    {}
func (nopMetrics) OperationRejected(string) {}
func (nopMetrics) AutosaveFailed(string)    {}
func (nopMetrics) SessionOpened()           {}
func (nopMetrics) SessionClosed()           {}
