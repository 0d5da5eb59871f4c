package designs

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/m04kA/Festum-DesignService/internal/autosave"
	"github.com/m04kA/Festum-DesignService/internal/canvas"
	"github.com/m04kA/Festum-DesignService/internal/notify"
)

// session - хост одного холста: владеет моделью холста, мостом автосохранения и буфером уведомлений.
// Мьютекс гарантирует, что холст получает мутации строго по одной.
type session struct {
	mu          sync.Mutex
	id          string
	workspaceID string
	canvas      *canvas.Canvas
	bridge      *autosave.Bridge
	notes       *notify.Buffer

	// время последнего обращения, unix nano
	lastUsed atomic.Int64
}

func (s *session) touch(now time.Time) {
	s.lastUsed.Store(now.UnixNano())
}

func (s *session) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, s.lastUsed.Load()))
}
