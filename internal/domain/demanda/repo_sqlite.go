package demanda

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Alssex/Proyecto-salud/internal/platform/apperr"
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

const demandaCols = `di.demanda_id, di.numero_formulario, di.paciente_id,
	di.plan_id, di.fecha_demanda, di.diligenciamiento, di.remision_a,
	di.estado, di.asignado_a_uid, di.solicitado_por_uid, di.seguimiento,
	di.fecha_creacion, di.fecha_asignacion, di.observaciones`

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *repoSQLite) scan(row rowScanner, extra ...any) (*Demanda, error) {
	var d Demanda
	var diligenciamiento, remision, seguimiento sql.NullString

	dest := []any{
		&d.DemandaID, &d.NumeroFormulario, &d.PacienteID,
		&d.PlanID, &d.FechaDemanda, &diligenciamiento, &remision,
		&d.Estado, &d.AsignadoAUID, &d.SolicitadoPorUID, &seguimiento,
		&d.FechaCreacion, &d.FechaAsignacion, &d.Observaciones,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	d.Diligenciamiento = r.codec.DecodeList("diligenciamiento", diligenciamiento)
	d.RemisionA = r.codec.DecodeList("remision_a", remision)
	d.Seguimiento = r.codec.DecodeObject("seguimiento", seguimiento)
	return &d, nil
}

func (r *repoSQLite) Create(ctx context.Context, in *CreateInput) (int64, error) {
	diligenciamiento, err := r.codec.EncodeList(in.Diligenciamiento)
	if err != nil {
		return 0, err
	}
	remision, err := r.codec.EncodeList(in.RemisionA)
	if err != nil {
		return 0, err
	}
	seguimiento, err := r.codec.EncodeObject(in.Seguimiento)
	if err != nil {
		return 0, err
	}

	res, err := r.q(ctx).ExecContext(ctx, `
		INSERT INTO Demandas_Inducidas (
			numero_formulario, paciente_id, plan_id, fecha_demanda,
			diligenciamiento, remision_a, estado, asignado_a_uid,
			solicitado_por_uid, seguimiento
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.NumeroFormulario, in.PacienteID, in.PlanID, in.FechaDemanda,
		diligenciamiento, remision, in.Estado, in.AsignadoAUID,
		in.SolicitadoPorUID, seguimiento)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *repoSQLite) GetByID(ctx context.Context, id int64) (*Demanda, error) {
	row := r.q(ctx).QueryRowContext(ctx, `
		SELECT `+demandaCols+`
		FROM Demandas_Inducidas di
		WHERE di.demanda_id = ?`, id)
	d, err := r.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("demanda", id)
	}
	return d, err
}

func (r *repoSQLite) ListByPaciente(ctx context.Context, pacienteID int64) ([]*Demanda, error) {
	rows, err := r.q(ctx).QueryContext(ctx, `
		SELECT `+demandaCols+`,
			pcf.condicion_identificada,
			u1.nombre_completo AS solicitado_por_nombre,
			u2.nombre_completo AS asignado_a_nombre
		FROM Demandas_Inducidas di
		LEFT JOIN Planes_Cuidado_Familiar pcf ON di.plan_id = pcf.plan_id
		LEFT JOIN Usuarios u1 ON di.solicitado_por_uid = u1.usuario_id
		LEFT JOIN Usuarios u2 ON di.asignado_a_uid = u2.usuario_id
		WHERE di.paciente_id = ?
		ORDER BY di.fecha_demanda DESC`, pacienteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Demanda
	for rows.Next() {
		var condicion, solicitadoPor, asignadoA sql.NullString
		d, err := r.scan(rows, &condicion, &solicitadoPor, &asignadoA)
		if err != nil {
			return nil, err
		}
		if condicion.Valid {
			d.CondicionIdentificada = &condicion.String
		}
		if solicitadoPor.Valid {
			d.SolicitadoPorNombre = &solicitadoPor.String
		}
		if asignadoA.Valid {
			d.AsignadoANombre = &asignadoA.String
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func (r *repoSQLite) ListAsignadas(ctx context.Context, usuarioID int64) ([]*Demanda, error) {
	rows, err := r.q(ctx).QueryContext(ctx, `
		SELECT `+demandaCols+`,
			p.primer_nombre, p.primer_apellido, p.numero_documento,
			f.apellido_principal
		FROM Demandas_Inducidas di
		JOIN Pacientes p ON di.paciente_id = p.paciente_id
		JOIN Familias f ON p.familia_id = f.familia_id
		WHERE di.asignado_a_uid = ? AND di.estado IN (?, ?)
		ORDER BY di.fecha_demanda DESC`,
		usuarioID, EstadoPendiente, EstadoAsignada)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Demanda
	for rows.Next() {
		var primerNombre, primerApellido, numeroDocumento, apellidoPrincipal sql.NullString
		d, err := r.scan(rows, &primerNombre, &primerApellido, &numeroDocumento, &apellidoPrincipal)
		if err != nil {
			return nil, err
		}
		if primerNombre.Valid {
			d.PrimerNombre = &primerNombre.String
		}
		if primerApellido.Valid {
			d.PrimerApellido = &primerApellido.String
		}
		if numeroDocumento.Valid {
			d.NumeroDocumento = &numeroDocumento.String
		}
		if apellidoPrincipal.Valid {
			d.ApellidoPrincipal = &apellidoPrincipal.String
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func (r *repoSQLite) UpdateEstado(ctx context.Context, id int64, estado string, asignadoAUID *int64) error {
	if estado == EstadoAsignada {
		_, err := r.q(ctx).ExecContext(ctx, `
			UPDATE Demandas_Inducidas SET
				estado = ?,
				fecha_asignacion = datetime('now'),
				asignado_a_uid = COALESCE(?, asignado_a_uid)
			WHERE demanda_id = ?`, estado, asignadoAUID, id)
		return err
	}
	_, err := r.q(ctx).ExecContext(ctx,
		`UPDATE Demandas_Inducidas SET estado = ? WHERE demanda_id = ?`, estado, id)
	return err
}

func (r *repoSQLite) LegacyListActivas(ctx context.Context) ([]*LegacyDemanda, error) {
	rows, err := r.q(ctx).QueryContext(ctx, `
		SELECT d.demanda_id, d.tipo_demanda, d.descripcion, d.fecha_creacion,
			d.estado, f.apellido_principal, f.familia_id,
			p.primer_nombre, p.primer_apellido, p.paciente_id
		FROM Demandas d
		LEFT JOIN Familias f ON d.familia_id = f.familia_id
		LEFT JOIN Pacientes p ON d.paciente_id = p.paciente_id
		WHERE d.activa = 1
		ORDER BY d.fecha_creacion DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*LegacyDemanda
	for rows.Next() {
		var d LegacyDemanda
		if err := rows.Scan(
			&d.DemandaID, &d.TipoDemanda, &d.Descripcion, &d.FechaCreacion,
			&d.Estado, &d.ApellidoPrincipal, &d.FamiliaID,
			&d.PrimerNombre, &d.PrimerApellido, &d.PacienteID); err != nil {
			return nil, err
		}
		items = append(items, &d)
	}
	return items, rows.Err()
}

func (r *repoSQLite) LegacyCreate(ctx context.Context, planCuidadoID int64, in *LegacyInput) (int64, error) {
	res, err := r.q(ctx).ExecContext(ctx, `
		INSERT INTO Demandas (plan_cuidado_id, tipo_demanda, descripcion,
			prioridad, fecha_limite, fecha_creacion, activa)
		VALUES (?, ?, ?, ?, ?, datetime('now'), 1)`,
		planCuidadoID, in.TipoDemanda, in.Descripcion, in.Prioridad, in.FechaLimite)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
