package bitacora

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

func (r *repoSQLite) Create(ctx context.Context, in *CreateInput) (int64, error) {
	res, err := r.q(ctx).ExecContext(ctx, `
		INSERT INTO Bitacoras (usuario_id, tipo_actividad, descripcion,
			ubicacion, observaciones, fecha_registro)
		VALUES (?, ?, ?, ?, ?, datetime('now'))`,
		in.UsuarioID, in.TipoActividad, in.Descripcion, in.Ubicacion, in.Observaciones)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *repoSQLite) Search(ctx context.Context, f *Filter) ([]*Bitacora, error) {
	query := `
		SELECT b.bitacora_id, b.usuario_id, b.tipo_actividad, b.descripcion,
			b.ubicacion, b.observaciones, b.fecha_registro,
			u.nombre_completo AS usuario_nombre
		FROM Bitacoras b
		JOIN Usuarios u ON b.usuario_id = u.usuario_id
		WHERE 1=1`
	var args []any

	if f.UsuarioID != 0 {
		query += ` AND b.usuario_id = ?`
		args = append(args, f.UsuarioID)
	}
	if f.TipoActividad != "" {
		query += ` AND b.tipo_actividad = ?`
		args = append(args, f.TipoActividad)
	}
	if f.FechaDesde != "" {
		query += ` AND b.fecha_registro >= ?`
		args = append(args, f.FechaDesde)
	}
	if f.FechaHasta != "" {
		query += ` AND b.fecha_registro <= ?`
		args = append(args, f.FechaHasta)
	}
	query += ` ORDER BY b.fecha_registro DESC`

	if f.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := r.q(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Bitacora
	for rows.Next() {
		var b Bitacora
		if err := rows.Scan(
			&b.BitacoraID, &b.UsuarioID, &b.TipoActividad, &b.Descripcion,
			&b.Ubicacion, &b.Observaciones, &b.FechaRegistro,
			&b.UsuarioNombre); err != nil {
			return nil, err
		}
		items = append(items, &b)
	}
	return items, rows.Err()
}
