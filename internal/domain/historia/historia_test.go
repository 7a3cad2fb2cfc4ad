package historia

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Alssex/Proyecto-salud/internal/platform/apperr"
	"github.com/Alssex/Proyecto-salud/internal/platform/db"
	"github.com/Alssex/Proyecto-salud/internal/platform/jsontext"
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
		`INSERT INTO Usuarios (nombre_completo, email, numero_documento, rol_id) VALUES ('Ana Pérez', 'ana@aps.test', '123', 3)`,
		`INSERT INTO Familias (apellido_principal, direccion, municipio, creado_por_uid) VALUES ('García', 'Calle 10', 'Popayán', 1)`,
		`INSERT INTO Pacientes (familia_id, tipo_documento, numero_documento, primer_nombre, primer_apellido) VALUES (1, 'CC', '100', 'Luis', 'García')`,
		`INSERT INTO Demandas_Inducidas (paciente_id, fecha_demanda, solicitado_por_uid) VALUES (1, '2025-04-02', 1)`,
	}
	for _, s := range seed {
		if _, err := conn.ExecContext(ctx, s); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return NewRepoSQLite(conn, jsontext.NewCodec(zerolog.Nop())), conn
}

func validInput() *CreateInput {
	profesional := int64(1)
	return &CreateInput{
		PacienteID:     1,
		ProfesionalID:  &profesional,
		TipoConsulta:   "consulta externa",
		MotivoConsulta: "control de hipertensión",
	}
}

func TestCreateAndList(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewService(repo)
	ctx := context.Background()

	id, err := svc.Create(ctx, 1, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := svc.ListByPaciente(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d historias, want 1", len(items))
	}
	h := items[0]
	if h.HistoriaClinicaID != id {
		t.Errorf("historia_clinica_id = %d", h.HistoriaClinicaID)
	}
	if h.DemandaID == nil || *h.DemandaID != 1 {
		t.Errorf("demanda_id = %v", h.DemandaID)
	}
	if h.ProfesionalNombre == nil || *h.ProfesionalNombre != "Ana Pérez" {
		t.Errorf("profesional_nombre = %v", h.ProfesionalNombre)
	}
}

func TestCreateMissingFields(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), 1, &CreateInput{PacienteID: 1})
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, f := range []string{"tipo_consulta", "motivo_consulta"} {
		if _, ok := ve.Fields[f]; !ok {
			t.Errorf("%s not reported", f)
		}
	}
}

func TestCreateOrdenLab(t *testing.T) {
	repo, conn := newTestRepo(t)
	svc := NewService(repo)
	ctx := context.Background()

	historiaID, err := svc.Create(ctx, 1, validInput())
	if err != nil {
		t.Fatalf("create historia: %v", err)
	}

	id, err := svc.CreateOrdenLab(ctx, historiaID, &OrdenLabInput{
		TipoExamen:  "hemograma",
		Descripcion: "hemograma completo",
	})
	if err != nil {
		t.Fatalf("create orden: %v", err)
	}

	var estado string
	if err := conn.QueryRowContext(ctx,
		`SELECT estado FROM Ordenes_Laboratorio WHERE orden_lab_id = ?`, id).Scan(&estado); err != nil {
		t.Fatalf("query: %v", err)
	}
	if estado != "pendiente" {
		t.Errorf("estado = %q, want pendiente", estado)
	}

	_, err = svc.CreateOrdenLab(ctx, historiaID, &OrdenLabInput{})
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateReceta(t *testing.T) {
	repo, conn := newTestRepo(t)
	svc := NewService(repo)
	ctx := context.Background()

	id, err := svc.CreateReceta(ctx, 1, &RecetaInput{
		Medicamentos:  []interface{}{"losartán 50mg"},
		ProfesionalID: 1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var medicamentos string
	var activa int
	if err := conn.QueryRowContext(ctx,
		`SELECT medicamentos, activa FROM Recetas WHERE receta_id = ?`, id).Scan(&medicamentos, &activa); err != nil {
		t.Fatalf("query: %v", err)
	}
	if !strings.Contains(medicamentos, "losartán") {
		t.Errorf("medicamentos = %q", medicamentos)
	}
	if activa != 1 {
		t.Errorf("activa = %d, want 1", activa)
	}

	_, err = svc.CreateReceta(ctx, 1, &RecetaInput{})
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestHandlerCreate(t *testing.T) {
	repo, _ := newTestRepo(t)
	e := echo.New()
	e.HTTPErrorHandler = apperr.HTTPErrorHandler(zerolog.Nop())
	NewHandler(NewService(repo)).RegisterRoutes(e.Group("/api"), e.Group("/api/v1"))

	body := `{"paciente_id":1,"tipo_consulta":"consulta externa","motivo_consulta":"control"}`
	req := httptest.NewRequest(http.MethodPost, "/api/demandas/1/historia-clinica", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "historia_clinica_id") {
		t.Errorf("body = %s", rec.Body.String())
	}
}
