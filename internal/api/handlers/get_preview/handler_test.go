package get_preview

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Festum-DesignService/internal/service/designs"
)

type stubService struct {
	image []byte
	err   error
}

func (s *stubService) Preview(context.Context, string) ([]byte, error) {
	return s.image, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc DesignService) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/designs/{designId}/preview.png", NewHandler(svc, nopLogger{}).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/designs/d-1/preview.png", nil))
	return rec
}

func TestHandle_WritesImage(t *testing.T) {
	rec := serve(&stubService{image: []byte("\x89PNGdata")})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "8", rec.Header().Get("Content-Length"))
	assert.Equal(t, "\x89PNGdata", rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	rec := serve(&stubService{err: designs.ErrDesignNotFound})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(&stubService{err: fmt.Errorf("%w: render", designs.ErrInternal)})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = serve(&stubService{err: errors.New("boom")})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
