package historia

import (
	"context"
	"database/sql"

	"github.com/Alssex/Proyecto-salud/internal/platform/db"
	"github.com/Alssex/Proyecto-salud/internal/platform/jsontext"
)

type repoSQLite struct {
	conn  *sql.DB
	codec *jsontext.Codec
}

func NewRepoSQLite(conn *sql.DB, codec *jsontext.Codec) Repository {
	return &repoSQLite{conn: conn, codec: codec}
}

func (r *repoSQLite) q(ctx context.Context) db.Queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.conn
}

func (r *repoSQLite) Create(ctx context.Context, demandaID int64, in *CreateInput) (int64, error) {
	res, err := r.q(ctx).ExecContext(ctx, `
		INSERT INTO Historias_Clinicas (paciente_id, demanda_id, profesional_id,
			tipo_consulta, motivo_consulta, sintomas, diagnostico, tratamiento,
			observaciones, fecha_consulta)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, datetime('now'))`,
		in.PacienteID, demandaID, in.ProfesionalID,
		in.TipoConsulta, in.MotivoConsulta, in.Sintomas, in.Diagnostico,
		in.Tratamiento, in.Observaciones)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *repoSQLite) ListByPaciente(ctx context.Context, pacienteID int64) ([]*Historia, error) {
	rows, err := r.q(ctx).QueryContext(ctx, `
		SELECT hc.historia_clinica_id, hc.paciente_id, hc.demanda_id,
			hc.profesional_id, hc.tipo_consulta, hc.motivo_consulta, hc.sintomas,
			hc.diagnostico, hc.tratamiento, hc.observaciones, hc.fecha_consulta,
			u.nombre_completo AS profesional_nombre
		FROM Historias_Clinicas hc
		LEFT JOIN Usuarios u ON hc.profesional_id = u.usuario_id
		WHERE hc.paciente_id = ?
		ORDER BY hc.fecha_consulta DESC`, pacienteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Historia
	for rows.Next() {
		var h Historia
		if err := rows.Scan(
			&h.HistoriaClinicaID, &h.PacienteID, &h.DemandaID,
			&h.ProfesionalID, &h.TipoConsulta, &h.MotivoConsulta, &h.Sintomas,
			&h.Diagnostico, &h.Tratamiento, &h.Observaciones, &h.FechaConsulta,
			&h.ProfesionalNombre); err != nil {
			return nil, err
		}
		items = append(items, &h)
	}
	return items, rows.Err()
}

func (r *repoSQLite) CreateOrdenLab(ctx context.Context, historiaID int64, in *OrdenLabInput) (int64, error) {
	res, err := r.q(ctx).ExecContext(ctx, `
		INSERT INTO Ordenes_Laboratorio (historia_clinica_id, tipo_examen,
			descripcion, instrucciones, fecha_requerida, fecha_creacion, estado)
		VALUES (?, ?, ?, ?, ?, datetime('now'), 'pendiente')`,
		historiaID, in.TipoExamen, in.Descripcion, in.Instrucciones, in.FechaRequerida)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *repoSQLite) CreateReceta(ctx context.Context, pacienteID int64, in *RecetaInput) (int64, error) {
	medicamentos, err := r.codec.EncodeList(in.Medicamentos)
	if err != nil {
		return 0, err
	}
	res, err := r.q(ctx).ExecContext(ctx, `
		INSERT INTO Recetas (paciente_id, profesional_id, medicamentos,
			instrucciones, fecha_vencimiento, fecha_emision, activa)
		VALUES (?, ?, ?, ?, ?, datetime('now'), 1)`,
		pacienteID, in.ProfesionalID, medicamentos, in.Instrucciones, in.FechaVencimiento)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
