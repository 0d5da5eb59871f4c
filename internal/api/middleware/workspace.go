package middleware

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/Festum-DesignService/internal/api/handlers"
	"github.com/m04kA/Festum-DesignService/internal/domain"
)

// WorkspaceHeader заголовок с идентификатором рабочего пространства
const WorkspaceHeader = "X-Workspace-ID"

// MaxWorkspaceIDLength совпадает с шириной колонки workspace_id в хранилище
const MaxWorkspaceIDLength = 128

const msgWorkspaceTooLong = "X-Workspace-ID demasiado largo"

type contextKey string

const workspaceIDKey contextKey = "workspaceID"

// Workspace извлекает X-Workspace-ID и кладет его в контекст.
// Пустой заголовок заменяется пространством по умолчанию,
// слишком длинный отклоняется с 400.
func Workspace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workspaceID := strings.TrimSpace(r.Header.Get(WorkspaceHeader))
		if utf8.RuneCountInString(workspaceID) > MaxWorkspaceIDLength {
			handlers.RespondBadRequest(w, msgWorkspaceTooLong)
			return
		}
		if workspaceID == "" {
			workspaceID = domain.DefaultWorkspaceID
		}
		ctx := context.WithValue(r.Context(), workspaceIDKey, workspaceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetWorkspaceID возвращает ID рабочего пространства из контекста
func GetWorkspaceID(ctx context.Context) (string, bool) {
	workspaceID, ok := ctx.Value(workspaceIDKey).(string)
	return workspaceID, ok
}
