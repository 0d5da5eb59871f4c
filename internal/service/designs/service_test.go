package designs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Festum-DesignService/internal/catalog"
	"github.com/m04kA/Festum-DesignService/internal/domain"
	kvRepo "github.com/m04kA/Festum-DesignService/internal/infra/storage/kv"
	"github.com/m04kA/Festum-DesignService/internal/service/designs/models"
	"github.com/m04kA/Festum-DesignService/internal/templates"
)

type memoryStore struct {
	mu    sync.Mutex
	items map[string][]byte
	fail  bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{items: make(map[string][]byte)}
}

func (s *memoryStore) Set(_ context.Context, workspaceID, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("disk full")
	}
	s.items[workspaceID+"/"+key] = append([]byte(nil), value...)
	return nil
}

func (s *memoryStore) Get(_ context.Context, workspaceID, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[workspaceID+"/"+key]
	if !ok {
		return nil, kvRepo.ErrKeyNotFound
	}
	return v, nil
}

func (s *memoryStore) has(workspaceID, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.items[workspaceID+"/"+key]
	return ok
}

type recordingMetrics struct {
	mu        sync.Mutex
	mutations map[string]int
	rejected  map[string]int
	failures  int
	opened    int
	closed    int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{mutations: map[string]int{}, rejected: map[string]int{}}
}

func (m *recordingMetrics) CanvasMutation(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mutations[op]++
}

func (m *recordingMetrics) OperationRejected(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejected[op]++
}

func (m *recordingMetrics) AutosaveFailed(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures++
}

func (m *recordingMetrics) SessionOpened() { m.opened++ }
func (m *recordingMetrics) SessionClosed() { m.closed++ }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	svc     *Service
	store   *memoryStore
	metrics *recordingMetrics
}

func newFixture(t *testing.T, maxSessions int) *fixture {
	t.Helper()
	store := newMemoryStore()
	metrics := newRecordingMetrics()
	seq := 0
	svc := NewService(catalog.New(), templates.NewRegistry(), store, metrics, nopLogger{}, Options{
		DefaultTemplateID: domain.DefaultTemplateID,
		MaxSessions:       maxSessions,
		NewID: func() string {
			seq++
			return fmt.Sprintf("design-%d", seq)
		},
	})
	return &fixture{svc: svc, store: store, metrics: metrics}
}

func (f *fixture) create(t *testing.T, workspaceID, templateID string) *models.DesignResponse {
	t.Helper()
	resp, err := f.svc.Create(context.Background(), &models.CreateDesignRequest{WorkspaceID: workspaceID, TemplateID: templateID})
	require.NoError(t, err)
	return resp
}

func (f *fixture) addTable(t *testing.T, designID string) models.ElementResponse {
	t.Helper()
	resp, err := f.svc.AddElement(context.Background(), designID, &models.AddElementRequest{
		ArchetypeID: "mesa-rectangular",
		DropPoint:   models.Point{X: 400, Y: 300},
	})
	require.NoError(t, err)
	require.True(t, resp.Applied)
	return resp.Elements[len(resp.Elements)-1]
}

func findElement(t *testing.T, resp *models.DesignResponse, id string) models.ElementResponse {
	t.Helper()
	for _, e := range resp.Elements {
		if e.ID == id {
			return e
		}
	}
	t.Fatalf("element %s not found", id)
	return models.ElementResponse{}
}

func TestService_CreateSelectsTemplate(t *testing.T) {
	f := newFixture(t, 0)

	resp := f.create(t, "ws-1", "salon-cuadrado")

	assert.Equal(t, "design-1", resp.ID)
	assert.Equal(t, "ws-1", resp.WorkspaceID)
	assert.Equal(t, string(domain.CanvasStateTemplateSelected), resp.State)
	require.NotNil(t, resp.Template)
	assert.Equal(t, "salon-cuadrado", resp.Template.ID)
	require.Len(t, resp.Elements, 1)
	assert.Equal(t, "escenario-centro", resp.Elements[0].ID)
	assert.True(t, resp.Elements[0].IsFixed)
	assert.Equal(t, []string{"Plantilla seleccionada: Salón cuadrado"}, resp.Notifications)
	assert.Equal(t, 1, f.metrics.opened)
	assert.False(t, f.store.has("ws-1", domain.AutosaveKey))
}

func TestService_CreateUnknownTemplateFallsBack(t *testing.T) {
	f := newFixture(t, 0)

	resp := f.create(t, "", "castillo")

	assert.Equal(t, domain.DefaultWorkspaceID, resp.WorkspaceID)
	require.NotNil(t, resp.Template)
	assert.Equal(t, domain.DefaultTemplateID, resp.Template.ID)
	assert.Equal(t, 800.0, resp.Template.CanvasSize.Width)
	assert.Empty(t, resp.Elements)
	require.Len(t, resp.Notifications, 2)
	assert.Contains(t, resp.Notifications[0], "castillo")
}

func TestService_CreateRespectsSessionLimit(t *testing.T) {
	f := newFixture(t, 1)
	f.create(t, "ws", "jardin")

	_, err := f.svc.Create(context.Background(), &models.CreateDesignRequest{TemplateID: "jardin"})
	assert.ErrorIs(t, err, ErrTooManySessions)
}

func TestService_AddElementCentersOnDropPoint(t *testing.T) {
	f := newFixture(t, 0)
	design := f.create(t, "ws", "salon-rectangular")

	el := f.addTable(t, design.ID)

	assert.Equal(t, models.Point{X: 340, Y: 270}, el.Position)
	assert.Equal(t, models.Size{Width: 120, Height: 60}, el.Size)
	assert.False(t, el.IsFixed)
	assert.Equal(t, 1, f.metrics.mutations["add"])
	assert.True(t, f.store.has("ws", domain.AutosaveKey))

	got, err := f.svc.Get(context.Background(), design.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.CanvasStateEditing), got.State)
	assert.Len(t, got.Elements, 3)
	assert.Empty(t, got.Notifications)
}

func TestService_AddElementAtExplicitPosition(t *testing.T) {
	f := newFixture(t, 0)
	design := f.create(t, "ws", "terraza")

	resp, err := f.svc.AddElement(context.Background(), design.ID, &models.AddElementRequest{
		ArchetypeID: "silla",
		Position:    &models.Point{X: 590, Y: 10},
	})
	require.NoError(t, err)

	el := resp.Elements[len(resp.Elements)-1]
	assert.Equal(t, models.Point{X: 570, Y: 10}, el.Position)
}

func TestService_AddElementUnknownArchetype(t *testing.T) {
	f := newFixture(t, 0)
	design := f.create(t, "ws", "jardin")

	_, err := f.svc.AddElement(context.Background(), design.ID, &models.AddElementRequest{ArchetypeID: "unicornio"})
	assert.ErrorIs(t, err, ErrArchetypeNotFound)
}

func TestService_FixedElementsAreProtected(t *testing.T) {
	f := newFixture(t, 0)
	design := f.create(t, "ws", "salon-cuadrado")

	resp, err := f.svc.RemoveElement(context.Background(), design.ID, "escenario-centro")
	require.NoError(t, err)
	assert.False(t, resp.Applied)
	assert.Len(t, resp.Elements, 1)
	assert.Equal(t, []string{"No se puede eliminar un elemento fijo de la plantilla"}, resp.Notifications)

	resp, err = f.svc.UpdateElement(context.Background(), design.ID, "escenario-centro", &models.UpdateElementRequest{Action: models.ActionRotate})
	require.NoError(t, err)
	assert.False(t, resp.Applied)
	assert.Equal(t, 0, resp.Elements[0].RotationDegrees)
	assert.Equal(t, 1, f.metrics.rejected["remove"])
	assert.Equal(t, 1, f.metrics.rejected["rotate"])
	assert.False(t, f.store.has("ws", domain.AutosaveKey))
}

func TestService_UpdateElementActions(t *testing.T) {
	f := newFixture(t, 0)
	design := f.create(t, "ws", "salon-rectangular")
	el := f.addTable(t, design.ID)
	ctx := context.Background()

	resp, err := f.svc.UpdateElement(ctx, design.ID, el.ID, &models.UpdateElementRequest{Action: models.ActionRotate})
	require.NoError(t, err)
	assert.Equal(t, 45, findElement(t, resp, el.ID).RotationDegrees)

	resp, err = f.svc.UpdateElement(ctx, design.ID, el.ID, &models.UpdateElementRequest{Action: models.ActionGrow})
	require.NoError(t, err)
	assert.Equal(t, models.Size{Width: 144, Height: 72}, findElement(t, resp, el.ID).Size)

	resp, err = f.svc.UpdateElement(ctx, design.ID, el.ID, &models.UpdateElementRequest{Action: models.ActionNudge, Direction: domain.DirectionRight})
	require.NoError(t, err)
	assert.Equal(t, 345.0, findElement(t, resp, el.ID).Position.X)

	resp, err = f.svc.UpdateElement(ctx, design.ID, el.ID, &models.UpdateElementRequest{Action: models.ActionMove, Delta: &models.Point{X: -1000, Y: 10}})
	require.NoError(t, err)
	assert.Equal(t, models.Point{X: 0, Y: 280}, findElement(t, resp, el.ID).Position)

	resp, err = f.svc.UpdateElement(ctx, design.ID, el.ID, &models.UpdateElementRequest{Action: models.ActionSelect})
	require.NoError(t, err)
	require.NotNil(t, resp.SelectedElementID)
	assert.Equal(t, el.ID, *resp.SelectedElementID)
}

func TestService_UpdateElementValidation(t *testing.T) {
	f := newFixture(t, 0)
	design := f.create(t, "ws", "jardin")
	ctx := context.Background()

	_, err := f.svc.UpdateElement(ctx, design.ID, "x", &models.UpdateElementRequest{Action: models.ActionMove})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.UpdateElement(ctx, design.ID, "x", &models.UpdateElementRequest{Action: models.ActionNudge, Direction: "diagonal"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.UpdateElement(ctx, design.ID, "x", &models.UpdateElementRequest{Action: "explode"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_DragSequence(t *testing.T) {
	f := newFixture(t, 0)
	design := f.create(t, "ws", "salon-rectangular")
	el := f.addTable(t, design.ID)
	ctx := context.Background()

	resp, err := f.svc.Drag(ctx, design.ID, el.ID, &models.DragRequest{Phase: "start", Pointer: models.Point{X: 400, Y: 300}})
	require.NoError(t, err)
	assert.True(t, resp.Applied)

	resp, err = f.svc.Drag(ctx, design.ID, el.ID, &models.DragRequest{Phase: "move", Pointer: models.Point{X: 410, Y: 320}})
	require.NoError(t, err)
	assert.Equal(t, models.Point{X: 350, Y: 290}, findElement(t, resp, el.ID).Position)

	resp, err = f.svc.Drag(ctx, design.ID, el.ID, &models.DragRequest{Phase: "end", Pointer: models.Point{X: 420, Y: 330}})
	require.NoError(t, err)
	assert.Equal(t, models.Point{X: 360, Y: 300}, findElement(t, resp, el.ID).Position)

	resp, err = f.svc.Drag(ctx, design.ID, el.ID, &models.DragRequest{Phase: "move", Pointer: models.Point{X: 0, Y: 0}})
	require.NoError(t, err)
	assert.False(t, resp.Applied)

	_, err = f.svc.Drag(ctx, design.ID, el.ID, &models.DragRequest{Phase: "hover"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_DragIgnoresOtherElementRoute(t *testing.T) {
	f := newFixture(t, 0)
	design := f.create(t, "ws", "salon-rectangular")
	a := f.addTable(t, design.ID)
	resp, err := f.svc.AddElement(context.Background(), design.ID, &models.AddElementRequest{
		ArchetypeID: "silla",
		Position:    &models.Point{X: 100, Y: 100},
	})
	require.NoError(t, err)
	b := resp.Elements[len(resp.Elements)-1]
	ctx := context.Background()

	_, err = f.svc.Drag(ctx, design.ID, a.ID, &models.DragRequest{Phase: "start", Pointer: models.Point{X: 0, Y: 0}})
	require.NoError(t, err)

	resp, err = f.svc.Drag(ctx, design.ID, b.ID, &models.DragRequest{Phase: "move", Pointer: models.Point{X: -100, Y: -100}})
	require.NoError(t, err)
	assert.False(t, resp.Applied)
	assert.Len(t, resp.Notifications, 1)
	assert.Equal(t, a.Position, findElement(t, resp, a.ID).Position)
	assert.Equal(t, b.Position, findElement(t, resp, b.ID).Position)
	assert.Equal(t, 1, f.metrics.rejected["drag"])

	resp, err = f.svc.Drag(ctx, design.ID, a.ID, &models.DragRequest{Phase: "end", Pointer: models.Point{X: 10, Y: 10}})
	require.NoError(t, err)
	assert.True(t, resp.Applied)
	assert.Equal(t, models.Point{X: 350, Y: 280}, findElement(t, resp, a.ID).Position)
}

func TestService_RestoreClampsStoredRecords(t *testing.T) {
	f := newFixture(t, 0)
	design := f.create(t, "ws", "salon-rectangular")
	payload := `{"plantillaId":"salon-rectangular","elementos":[{"id":"x","tipo":"mesa","nombre":"Mesa","x":0,"y":10,"ancho":5000,"alto":-40,"rotacion":30}],"fechaAutosave":"2026-10-18T12:30:00Z"}`
	require.NoError(t, f.store.Set(context.Background(), "ws", domain.AutosaveKey, []byte(payload)))

	resp, err := f.svc.Restore(context.Background(), design.ID, &models.RestoreRequest{Source: models.RestoreFromAutosave})
	require.NoError(t, err)

	el := findElement(t, resp, "x")
	assert.Equal(t, models.Size{Width: 300, Height: 25}, el.Size)
	assert.Equal(t, models.Point{X: 0, Y: 10}, el.Position)
	assert.Equal(t, 45, el.RotationDegrees)
}

func TestService_SelectTemplateDiscardsFreeElements(t *testing.T) {
	f := newFixture(t, 0)
	design := f.create(t, "ws", "salon-rectangular")
	f.addTable(t, design.ID)

	resp, err := f.svc.SelectTemplate(context.Background(), design.ID, &models.SelectTemplateRequest{TemplateID: "terraza"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.CanvasStateTemplateSelected), resp.State)
	require.Len(t, resp.Elements, 1)
	assert.True(t, resp.Elements[0].IsFixed)

	snapshot, err := f.svc.GetAutosave(context.Background(), design.ID)
	require.NoError(t, err)
	assert.Equal(t, "salon-rectangular", snapshot.TemplateID)
	assert.Len(t, snapshot.Elements, 1)
}

func TestService_SaveAndRestore(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	design := f.create(t, "ws", "salon-cuadrado")
	el := f.addTable(t, design.ID)

	saved, err := f.svc.Save(ctx, design.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DesignVersion, saved.Version)
	assert.Equal(t, "Salón cuadrado", saved.TemplateName)

	got, err := f.svc.GetSavedDesign(ctx, design.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.TemplateID, got.TemplateID)
	require.Len(t, got.Elements, 1)
	assert.Equal(t, el.ID, got.Elements[0].ID)

	other := f.create(t, "ws", "jardin")
	resp, err := f.svc.Restore(ctx, other.ID, &models.RestoreRequest{Source: models.RestoreFromSaved})
	require.NoError(t, err)
	require.NotNil(t, resp.Template)
	assert.Equal(t, "salon-cuadrado", resp.Template.ID)
	assert.Len(t, resp.Elements, 2)
	assert.Equal(t, el.Position, findElement(t, resp, el.ID).Position)

	resp, err = f.svc.Restore(ctx, other.ID, &models.RestoreRequest{Source: models.RestoreFromAutosave})
	require.NoError(t, err)
	assert.Len(t, resp.Elements, 2)

	_, err = f.svc.Restore(ctx, other.ID, &models.RestoreRequest{Source: "cloud"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_SnapshotsAreScopedByWorkspace(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	design := f.create(t, "ws-a", "jardin")
	f.addTable(t, design.ID)

	other := f.create(t, "ws-b", "jardin")
	_, err := f.svc.GetAutosave(ctx, other.ID)
	assert.ErrorIs(t, err, ErrNoSnapshot)

	_, err = f.svc.Restore(ctx, other.ID, &models.RestoreRequest{Source: models.RestoreFromSaved})
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestService_AutosaveFailureKeepsMutation(t *testing.T) {
	f := newFixture(t, 0)
	design := f.create(t, "ws", "jardin")
	f.store.fail = true

	resp, err := f.svc.AddElement(context.Background(), design.ID, &models.AddElementRequest{ArchetypeID: "dj", DropPoint: models.Point{X: 100, Y: 100}})
	require.NoError(t, err)
	assert.True(t, resp.Applied)
	assert.Len(t, resp.Elements, 3)
	assert.Equal(t, 1, f.metrics.failures)
}

func TestService_CorruptSnapshot(t *testing.T) {
	f := newFixture(t, 0)
	design := f.create(t, "ws", "jardin")
	require.NoError(t, f.store.Set(context.Background(), "ws", domain.AutosaveKey, []byte("{not json")))

	_, err := f.svc.GetAutosave(context.Background(), design.ID)
	assert.ErrorIs(t, err, ErrCorruptSnapshot)
}

func TestService_Close(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	design := f.create(t, "ws", "jardin")

	require.NoError(t, f.svc.Close(ctx, design.ID))
	assert.Equal(t, 0, f.svc.SessionCount())
	assert.Equal(t, 1, f.metrics.closed)

	_, err := f.svc.Get(ctx, design.ID)
	assert.ErrorIs(t, err, ErrDesignNotFound)
	assert.ErrorIs(t, f.svc.Close(ctx, design.ID), ErrDesignNotFound)
}

func TestService_Preview(t *testing.T) {
	f := newFixture(t, 0)
	design := f.create(t, "ws", "terraza")
	f.addTable(t, design.ID)

	png, err := f.svc.Preview(context.Background(), design.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestService_TemplatesAndCatalog(t *testing.T) {
	f := newFixture(t, 0)

	assert.Len(t, f.svc.ListCatalog(), 10)
	assert.Len(t, f.svc.ListTemplates(), 5)

	tpl, err := f.svc.GetTemplate("salon-cuadrado")
	require.NoError(t, err)
	assert.Len(t, tpl.FixedElements, 1)

	_, err = f.svc.GetTemplate("castillo")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestService_ConcurrentMutations(t *testing.T) {
	f := newFixture(t, 0)
	design := f.create(t, "ws", "jardin")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.AddElement(context.Background(), design.ID, &models.AddElementRequest{ArchetypeID: "silla", DropPoint: models.Point{X: 50, Y: 50}})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	resp, err := f.svc.Get(context.Background(), design.ID)
	require.NoError(t, err)
	assert.Len(t, resp.Elements, 22)
}

// idleClock подменяет часы сервиса и включает вытеснение брошенных сессий
func (f *fixture) idleClock(timeout time.Duration) *time.Time {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	f.svc.opts.SessionIdleTimeout = timeout
	f.svc.now = func() time.Time { return now }
	return &now
}

func TestService_CreateEvictsAbandonedSessions(t *testing.T) {
	f := newFixture(t, 3)
	now := f.idleClock(30 * time.Minute)

	for i := 0; i < 3; i++ {
		f.create(t, "ws", "jardin")
	}
	_, err := f.svc.Create(context.Background(), &models.CreateDesignRequest{WorkspaceID: "ws"})
	require.ErrorIs(t, err, ErrTooManySessions)

	// вкладки закрыты без DELETE
	*now = now.Add(31 * time.Minute)

	fresh, err := f.svc.Create(context.Background(), &models.CreateDesignRequest{WorkspaceID: "ws"})
	require.NoError(t, err)
	assert.Equal(t, "design-4", fresh.ID)
	assert.Equal(t, 1, f.svc.SessionCount())
	assert.Equal(t, 3, f.metrics.closed)
}

func TestService_ExpiredSessionNotFound(t *testing.T) {
	f := newFixture(t, 0)
	now := f.idleClock(10 * time.Minute)

	idle := f.create(t, "ws", "jardin")
	active := f.create(t, "ws", "jardin")

	*now = now.Add(8 * time.Minute)
	_, err := f.svc.Get(context.Background(), active.ID)
	require.NoError(t, err)

	*now = now.Add(3 * time.Minute)
	_, err = f.svc.Get(context.Background(), idle.ID)
	assert.ErrorIs(t, err, ErrDesignNotFound)
	assert.Equal(t, 1, f.metrics.closed)

	resp, err := f.svc.Get(context.Background(), active.ID)
	require.NoError(t, err)
	assert.Equal(t, active.ID, resp.ID)
	assert.Equal(t, 1, f.svc.SessionCount())
}

func TestService_EvictIdle(t *testing.T) {
	f := newFixture(t, 0)
	assert.Equal(t, 0, f.svc.EvictIdle())

	now := f.idleClock(time.Minute)
	first := f.create(t, "ws", "jardin")
	f.create(t, "ws", "jardin")
	f.create(t, "ws", "jardin")

	*now = now.Add(45 * time.Second)
	_, err := f.svc.Get(context.Background(), first.ID)
	require.NoError(t, err)

	*now = now.Add(30 * time.Second)
	assert.Equal(t, 2, f.svc.EvictIdle())
	assert.Equal(t, 1, f.svc.SessionCount())
	assert.Equal(t, 2, f.metrics.closed)

	_, err = f.svc.Get(context.Background(), first.ID)
	assert.NoError(t, err)
}

func TestService_RunEvictorStops(t *testing.T) {
	f := newFixture(t, 0)
	f.svc.opts.SessionIdleTimeout = time.Nanosecond
	f.create(t, "ws", "jardin")

	stopCh := make(chan struct{})
	done := make(chan struct{})
	go func() {
		f.svc.RunEvictor(5*time.Millisecond, stopCh)
		close(done)
	}()

	assert.Eventually(t, func() bool { return f.svc.SessionCount() == 0 }, time.Second, 5*time.Millisecond)

	close(stopCh)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("evictor did not stop")
	}
}
