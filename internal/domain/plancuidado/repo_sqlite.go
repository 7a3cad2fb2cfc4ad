package plancuidado

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

func (r *repoSQLite) Create(ctx context.Context, in *CreateInput) (int64, error) {
	asociado, err := r.codec.EncodeList(in.PlanAsociado)
	if err != nil {
		return 0, err
	}
	res, err := r.q(ctx).ExecContext(ctx, `
		INSERT INTO Planes_Cuidado_Familiar (
			familia_id, paciente_principal_id, fecha_entrega, plan_asociado,
			condicion_identificada, logro_salud, cuidados_salud,
			demandas_inducidas_desc, educacion_salud, estado, creado_por_uid,
			fecha_aceptacion
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.FamiliaID, in.PacientePrincipalID, in.FechaEntrega, asociado,
		in.CondicionIdentificada, in.LogroSalud, in.CuidadosSalud,
		in.DemandasInducidasDesc, in.EducacionSalud, in.Estado, in.CreadoPorUID,
		in.FechaAceptacion)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *repoSQLite) ListByPaciente(ctx context.Context, pacienteID int64) ([]*Plan, error) {
	rows, err := r.q(ctx).QueryContext(ctx, `
		SELECT pcf.plan_id, pcf.familia_id, pcf.paciente_principal_id,
			pcf.fecha_entrega, pcf.plan_asociado, pcf.condicion_identificada,
			pcf.logro_salud, pcf.cuidados_salud, pcf.demandas_inducidas_desc,
			pcf.educacion_salud, pcf.estado, pcf.creado_por_uid,
			pcf.fecha_aceptacion,
			u.nombre_completo AS creado_por_nombre,
			f.apellido_principal, p.primer_nombre, p.primer_apellido
		FROM Planes_Cuidado_Familiar pcf
		LEFT JOIN Usuarios u ON pcf.creado_por_uid = u.usuario_id
		LEFT JOIN Familias f ON pcf.familia_id = f.familia_id
		LEFT JOIN Pacientes p ON pcf.paciente_principal_id = p.paciente_id
		WHERE pcf.paciente_principal_id = ?
		ORDER BY pcf.fecha_entrega DESC`, pacienteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Plan
	for rows.Next() {
		var pl Plan
		var asociado sql.NullString
		if err := rows.Scan(
			&pl.PlanID, &pl.FamiliaID, &pl.PacientePrincipalID,
			&pl.FechaEntrega, &asociado, &pl.CondicionIdentificada,
			&pl.LogroSalud, &pl.CuidadosSalud, &pl.DemandasInducidasDesc,
			&pl.EducacionSalud, &pl.Estado, &pl.CreadoPorUID,
			&pl.FechaAceptacion,
			&pl.CreadoPorNombre,
			&pl.ApellidoPrincipal, &pl.PrimerNombre, &pl.PrimerApellido); err != nil {
			return nil, err
		}
		pl.PlanAsociado = r.codec.DecodeList("plan_asociado", asociado)
		items = append(items, &pl)
	}
	return items, rows.Err()
}

func (r *repoSQLite) LegacyCreate(ctx context.Context, familiaID int64, in *LegacyInput) (int64, error) {
	res, err := r.q(ctx).ExecContext(ctx, `
		INSERT INTO Planes_Cuidado (familia_id, objetivo, actividades,
			responsable, fecha_inicio, fecha_fin, observaciones, fecha_creacion)
		VALUES (?, ?, ?, ?, ?, ?, ?, datetime('now'))`,
		familiaID, in.Objetivo, in.Actividades, in.Responsable,
		in.FechaInicio, in.FechaFin, in.Observaciones)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
