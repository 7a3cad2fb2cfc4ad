package paciente

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Alssex/Proyecto-salud/internal/platform/apperr"
	"github.com/Alssex/Proyecto-salud/internal/platform/db"
)

func newTestRepo(t *testing.T) (Repository, *sql.DB) {
	t.Helper()
	ctx := context.Background()
	conn, err := db.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if _, err := db.NewMigrator(conn, "../../../migrations").Up(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	seed := []string{
		`INSERT INTO Usuarios (nombre_completo, email, numero_documento, rol_id) VALUES ('Ana Pérez', 'ana@aps.test', '123', 1)`,
		`INSERT INTO Familias (apellido_principal, direccion, municipio, creado_por_uid) VALUES ('García', 'Calle 10', 'Popayán', 1)`,
	}
	for _, s := range seed {
		if _, err := conn.ExecContext(ctx, s); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return NewRepoSQLite(conn), conn
}

func validInput() *CreateInput {
	return &CreateInput{
		FamiliaID:       1,
		TipoDocumento:   "CC",
		NumeroDocumento: "1061000000",
		PrimerNombre:    "Luis",
		PrimerApellido:  "García",
	}
}

func TestCreateAndGet(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewService(repo)
	ctx := context.Background()

	p, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Activo != 1 {
		t.Errorf("activo = %d, want 1", p.Activo)
	}

	got, err := svc.Get(ctx, p.PacienteID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PrimerNombre != "Luis" {
		t.Errorf("primer_nombre = %q", got.PrimerNombre)
	}
}

func TestCreateMissingFields(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewService(repo)

	in := validInput()
	in.TipoDocumento = ""
	in.NumeroDocumento = ""

	_, err := svc.Create(context.Background(), in)
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 2 {
		t.Errorf("fields = %v", ve.Fields)
	}
}

func TestListByFamiliaExcludesInactive(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewService(repo)
	ctx := context.Background()

	p1, _ := svc.Create(ctx, validInput())
	in2 := validInput()
	in2.NumeroDocumento = "1061000001"
	in2.PrimerNombre = "Rosa"
	p2, _ := svc.Create(ctx, in2)

	if err := svc.Delete(ctx, p2.PacienteID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	items, err := svc.ListByFamilia(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d pacientes, want 1", len(items))
	}
	if items[0].PacienteID != p1.PacienteID {
		t.Errorf("wrong paciente: %d", items[0].PacienteID)
	}

	// Soft delete keeps the row
	got, err := svc.Get(ctx, p2.PacienteID)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got.Activo != 0 {
		t.Errorf("activo = %d, want 0", got.Activo)
	}
}

func TestUpdateCoalesce(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewService(repo)
	ctx := context.Background()

	p, _ := svc.Create(ctx, validInput())

	tel := "3100000000"
	got, err := svc.Update(ctx, p.PacienteID, &UpdateInput{Telefono: &tel})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Telefono == nil || *got.Telefono != tel {
		t.Errorf("telefono = %v", got.Telefono)
	}
	if got.PrimerNombre != "Luis" {
		t.Errorf("omitted column changed: %q", got.PrimerNombre)
	}
}

func TestUpdateNotFound(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewService(repo)
	_, err := svc.Update(context.Background(), 404, &UpdateInput{})
	var nf *apperr.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func newTestServer(t *testing.T) (*echo.Echo, Repository) {
	repo, _ := newTestRepo(t)
	e := echo.New()
	e.HTTPErrorHandler = apperr.HTTPErrorHandler(zerolog.Nop())
	NewHandler(NewService(repo)).RegisterRoutes(e.Group("/api"), e.Group("/api/v1"))
	return e, repo
}

func TestHandlerCreate(t *testing.T) {
	e, _ := newTestServer(t)

	body := `{"familia_id":1,"tipo_documento":"CC","numero_documento":"999","primer_nombre":"Luis","primer_apellido":"García"}`
	req := httptest.NewRequest(http.MethodPost, "/api/pacientes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var got Paciente
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.PacienteID == 0 {
		t.Error("expected paciente_id")
	}
}

func TestHandlerDeleteAndNotFound(t *testing.T) {
	e, repo := newTestServer(t)
	id, err := repo.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/pacientes/1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	p, _ := repo.GetByID(context.Background(), id)
	if p.Activo != 0 {
		t.Errorf("activo = %d after delete", p.Activo)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/pacientes/999", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
