package reporte

import (
	"context"
	"database/sql"

	"github.com/Alssex/Proyecto-salud/internal/platform/db"
)

type repoSQLite struct {
	conn *sql.DB
}

func NewRepoSQLite(conn *sql.DB) Repository {
	return &repoSQLite{conn: conn}
}

func (r *repoSQLite) q(ctx context.Context) db.Queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.conn
}

func (r *repoSQLite) Epidemiologico(ctx context.Context, rango *Rango) (*Epidemiologico, error) {
	query := `
		SELECT
			COUNT(DISTINCT p.paciente_id) AS total_pacientes,
			COUNT(DISTINCT f.familia_id) AS total_familias,
			COUNT(DISTINCT hc.historia_clinica_id) AS total_consultas,
			COUNT(DISTINCT CASE WHEN hc.tipo_consulta = 'control' THEN hc.historia_clinica_id END) AS consultas_control,
			COUNT(DISTINCT CASE WHEN hc.tipo_consulta = 'urgencia' THEN hc.historia_clinica_id END) AS consultas_urgencia
		FROM Pacientes p
		LEFT JOIN Familias f ON p.familia_id = f.familia_id
		LEFT JOIN Historias_Clinicas hc ON p.paciente_id = hc.paciente_id
		WHERE p.activo = 1`
	var args []any

	if rango.FechaDesde != "" {
		query += ` AND hc.fecha_consulta >= ?`
		args = append(args, rango.FechaDesde)
	}
	if rango.FechaHasta != "" {
		query += ` AND hc.fecha_consulta <= ?`
		args = append(args, rango.FechaHasta)
	}

	var e Epidemiologico
	if err := r.q(ctx).QueryRowContext(ctx, query, args...).Scan(
		&e.TotalPacientes, &e.TotalFamilias, &e.TotalConsultas,
		&e.ConsultasControl, &e.ConsultasUrgencia); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repoSQLite) Productividad(ctx context.Context, usuarioID int64, rango *Rango) ([]*Productividad, error) {
	query := `
		SELECT
			u.usuario_id, u.nombre_completo, ro.nombre_rol,
			COUNT(DISTINCT hc.historia_clinica_id) AS total_consultas,
			COUNT(DISTINCT b.bitacora_id) AS total_bitacoras,
			COUNT(DISTINCT re.receta_id) AS total_recetas
		FROM Usuarios u
		JOIN Roles ro ON u.rol_id = ro.rol_id
		LEFT JOIN Historias_Clinicas hc ON u.usuario_id = hc.profesional_id
		LEFT JOIN Bitacoras b ON u.usuario_id = b.usuario_id
		LEFT JOIN Recetas re ON u.usuario_id = re.profesional_id
		WHERE u.activo = 1`
	var args []any

	if usuarioID != 0 {
		query += ` AND u.usuario_id = ?`
		args = append(args, usuarioID)
	}
	if rango.FechaDesde != "" {
		query += ` AND (hc.fecha_consulta >= ? OR b.fecha_registro >= ? OR re.fecha_emision >= ?)`
		args = append(args, rango.FechaDesde, rango.FechaDesde, rango.FechaDesde)
	}
	if rango.FechaHasta != "" {
		query += ` AND (hc.fecha_consulta <= ? OR b.fecha_registro <= ? OR re.fecha_emision <= ?)`
		args = append(args, rango.FechaHasta, rango.FechaHasta, rango.FechaHasta)
	}
	query += ` GROUP BY u.usuario_id, u.nombre_completo, ro.nombre_rol
		ORDER BY total_consultas DESC`

	rows, err := r.q(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Productividad
	for rows.Next() {
		var p Productividad
		if err := rows.Scan(
			&p.UsuarioID, &p.NombreCompleto, &p.NombreRol,
			&p.TotalConsultas, &p.TotalBitacoras, &p.TotalRecetas); err != nil {
			return nil, err
		}
		items = append(items, &p)
	}
	return items, rows.Err()
}
