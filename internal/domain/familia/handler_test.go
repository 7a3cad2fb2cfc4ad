package familia

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Alssex/Proyecto-salud/internal/platform/apperr"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperr.HTTPErrorHandler(zerolog.Nop())
	return e
}

func TestHandlerCreate(t *testing.T) {
	e := newTestEcho()
	h := NewHandler(NewService(newMockRepo()))
	h.RegisterRoutes(e.Group("/api"))

	body := `{"apellido_principal":"García","direccion":"Calle 10","municipio":"Popayán","creado_por_uid":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/familias", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var got Familia
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.FamiliaID == 0 {
		t.Error("expected familia_id in response")
	}
	if got.IntegrantesCount != 0 {
		t.Errorf("integrantes_count = %d", got.IntegrantesCount)
	}
}

func TestHandlerCreateMissingFields(t *testing.T) {
	e := newTestEcho()
	h := NewHandler(NewService(newMockRepo()))
	h.RegisterRoutes(e.Group("/api"))

	req := httptest.NewRequest(http.MethodPost, "/api/familias", strings.NewReader(`{"direccion":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "apellido_principal") {
		t.Errorf("body should name missing field: %s", rec.Body.String())
	}
}

func TestHandlerGetNotFound(t *testing.T) {
	e := newTestEcho()
	h := NewHandler(NewService(newMockRepo()))
	h.RegisterRoutes(e.Group("/api"))

	req := httptest.NewRequest(http.MethodGet, "/api/familias/77", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHandlerGetInvalidID(t *testing.T) {
	e := newTestEcho()
	h := NewHandler(NewService(newMockRepo()))
	h.RegisterRoutes(e.Group("/api"))

	req := httptest.NewRequest(http.MethodGet, "/api/familias/abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandlerListEmpty(t *testing.T) {
	e := newTestEcho()
	h := NewHandler(NewService(newMockRepo()))
	h.RegisterRoutes(e.Group("/api"))

	req := httptest.NewRequest(http.MethodGet, "/api/familias", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("empty list should serialize as [], got %s", rec.Body.String())
	}
}

func TestHandlerServesBothSurfaces(t *testing.T) {
	e := newTestEcho()
	h := NewHandler(NewService(newMockRepo()))
	h.RegisterRoutes(e.Group("/api"), e.Group("/api/v1"))

	for _, path := range []string{"/api/familias", "/api/v1/familias"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d", path, rec.Code)
		}
	}
}

func TestHandlerDelete(t *testing.T) {
	e := newTestEcho()
	repo := newMockRepo()
	h := NewHandler(NewService(repo))
	h.RegisterRoutes(e.Group("/api"))

	id, _ := repo.Create(nil, validInput())

	req := httptest.NewRequest(http.MethodDelete, "/api/familias/1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if _, ok := repo.store[id]; ok {
		t.Error("familia should be removed")
	}
}
