// Package api собирает HTTP маршруты сервиса
package api

import (
	"net/http"

	"github.com/gorilla/mux"

	addElementHandler "github.com/m04kA/Festum-DesignService/internal/api/handlers/add_element"
	closeDesignHandler "github.com/m04kA/Festum-DesignService/internal/api/handlers/close_design"
	createDesignHandler "github.com/m04kA/Festum-DesignService/internal/api/handlers/create_design"
	dragElementHandler "github.com/m04kA/Festum-DesignService/internal/api/handlers/drag_element"
	getDesignHandler "github.com/m04kA/Festum-DesignService/internal/api/handlers/get_design"
	getPreviewHandler "github.com/m04kA/Festum-DesignService/internal/api/handlers/get_preview"
	getSnapshotHandler "github.com/m04kA/Festum-DesignService/internal/api/handlers/get_snapshot"
	getTemplateHandler "github.com/m04kA/Festum-DesignService/internal/api/handlers/get_template"
	listCatalogHandler "github.com/m04kA/Festum-DesignService/internal/api/handlers/list_catalog"
	listTemplatesHandler "github.com/m04kA/Festum-DesignService/internal/api/handlers/list_templates"
	removeElementHandler "github.com/m04kA/Festum-DesignService/internal/api/handlers/remove_element"
	restoreDesignHandler "github.com/m04kA/Festum-DesignService/internal/api/handlers/restore_design"
	saveDesignHandler "github.com/m04kA/Festum-DesignService/internal/api/handlers/save_design"
	selectTemplateHandler "github.com/m04kA/Festum-DesignService/internal/api/handlers/select_template"
	updateElementHandler "github.com/m04kA/Festum-DesignService/internal/api/handlers/update_element"
	"github.com/m04kA/Festum-DesignService/internal/api/middleware"
	"github.com/m04kA/Festum-DesignService/internal/service/designs"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RouterOptions параметры роутера. Если Metrics равен nil, метрики не подключаются.
type RouterOptions struct {
	Metrics        middleware.HTTPMetrics
	MetricsPath    string
	MetricsHandler http.Handler
}

// NewRouter регистрирует все маршруты /api/v1
func NewRouter(svc *designs.Service, log Logger, opts RouterOptions) *mux.Router {
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
	}
	if opts.MetricsHandler != nil && opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, opts.MetricsHandler).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Workspace)

	// --- Каталог и шаблоны ---
	api.HandleFunc("/catalog", listCatalogHandler.NewHandler(svc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/templates", listTemplatesHandler.NewHandler(svc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/templates/{templateId}", getTemplateHandler.NewHandler(svc, log).Handle).Methods(http.MethodGet)

	// --- Сессии дизайна ---
	api.HandleFunc("/designs", createDesignHandler.NewHandler(svc, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/designs/{designId}", getDesignHandler.NewHandler(svc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/designs/{designId}", closeDesignHandler.NewHandler(svc, log).Handle).Methods(http.MethodDelete)
	api.HandleFunc("/designs/{designId}/template", selectTemplateHandler.NewHandler(svc, log).Handle).Methods(http.MethodPut)

	// --- Элементы ---
	api.HandleFunc("/designs/{designId}/elements", addElementHandler.NewHandler(svc, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/designs/{designId}/elements/{elementId}", updateElementHandler.NewHandler(svc, log).Handle).Methods(http.MethodPatch)
	api.HandleFunc("/designs/{designId}/elements/{elementId}", removeElementHandler.NewHandler(svc, log).Handle).Methods(http.MethodDelete)
	api.HandleFunc("/designs/{designId}/elements/{elementId}/drag", dragElementHandler.NewHandler(svc, log).Handle).Methods(http.MethodPost)

	// --- Сохранение ---
	api.HandleFunc("/designs/{designId}/save", saveDesignHandler.NewHandler(svc, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/designs/{designId}/autosave",
		getSnapshotHandler.NewHandler(svc, getSnapshotHandler.SourceAutosave, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/designs/{designId}/saved",
		getSnapshotHandler.NewHandler(svc, getSnapshotHandler.SourceSaved, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/designs/{designId}/restore", restoreDesignHandler.NewHandler(svc, log).Handle).Methods(http.MethodPost)

	// --- Превью ---
	api.HandleFunc("/designs/{designId}/preview.png", getPreviewHandler.NewHandler(svc, log).Handle).Methods(http.MethodGet)

	return r
}
