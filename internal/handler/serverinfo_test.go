package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/fibulaproject/fibulopedia/internal/catalog"
)

const handlerServerInfoFixture = `{
	"id": "server_001",
	"name": "Fibula Project",
	"rates": {"exp": 2.0, "loot": 1.5},
	"version": "7.1"
}`

func serverInfoRouter(svc *catalog.Service) chi.Router {
	r := chi.NewRouter()
	r.Get("/server-info", HandleGetServerInfo(svc))
	r.Get("/server-info/rates/{name}", HandleGetRate(svc))
	return r
}

func TestHandleGetServerInfo(t *testing.T) {
	t.Run("returns the singleton", func(t *testing.T) {
		svc := newTestCatalog(t, map[string]string{catalog.ServerInfoFile: handlerServerInfoFixture})
		router := serverInfoRouter(svc)

		req := httptest.NewRequest("GET", "/server-info", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Fibula Project")
	})

	t.Run("missing file yields 404", func(t *testing.T) {
		svc := newTestCatalog(t, nil)
		router := serverInfoRouter(svc)

		req := httptest.NewRequest("GET", "/server-info", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleGetRate(t *testing.T) {
	svc := newTestCatalog(t, map[string]string{catalog.ServerInfoFile: handlerServerInfoFixture})
	router := serverInfoRouter(svc)

	t.Run("known rate", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/server-info/rates/exp", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"value":2`)
	})

	t.Run("unknown rate", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/server-info/rates/pvp", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
