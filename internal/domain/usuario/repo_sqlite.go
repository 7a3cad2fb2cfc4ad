package usuario

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Alssex/Proyecto-salud/internal/platform/apperr"
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

const usuarioCols = `u.usuario_id, u.nombre_completo, u.email, u.numero_documento,
	u.telefono, r.nombre_rol, r.rol_id, e.nombre_equipo, e.equipo_id,
	e.zona_cobertura`

const usuarioFrom = `FROM Usuarios u
	JOIN Roles r ON u.rol_id = r.rol_id
	LEFT JOIN Equipos_Basicos e ON u.equipo_id = e.equipo_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUsuario(row rowScanner) (*Usuario, error) {
	var u Usuario
	if err := row.Scan(
		&u.UsuarioID, &u.NombreCompleto, &u.Email, &u.NumeroDocumento,
		&u.Telefono, &u.NombreRol, &u.RolID, &u.NombreEquipo, &u.EquipoID,
		&u.ZonaCobertura); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repoSQLite) collect(rows *sql.Rows) ([]*Usuario, error) {
	defer rows.Close()
	var items []*Usuario
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, rows.Err()
}

func (r *repoSQLite) Authenticate(ctx context.Context, email, documento string) (*Usuario, error) {
	row := r.q(ctx).QueryRowContext(ctx, `
		SELECT `+usuarioCols+` `+usuarioFrom+`
		WHERE u.email = ? AND u.numero_documento = ?`, email, documento)
	u, err := scanUsuario(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("usuario", 0)
	}
	return u, err
}

func (r *repoSQLite) GetByID(ctx context.Context, id int64) (*Usuario, error) {
	row := r.q(ctx).QueryRowContext(ctx, `
		SELECT `+usuarioCols+` `+usuarioFrom+`
		WHERE u.usuario_id = ?`, id)
	u, err := scanUsuario(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("usuario", id)
	}
	return u, err
}

func (r *repoSQLite) List(ctx context.Context) ([]*Usuario, error) {
	rows, err := r.q(ctx).QueryContext(ctx, `
		SELECT `+usuarioCols+` `+usuarioFrom+`
		WHERE u.activo = 1
		ORDER BY u.nombre_completo`)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *repoSQLite) ListByRol(ctx context.Context, rol string) ([]*Usuario, error) {
	rows, err := r.q(ctx).QueryContext(ctx, `
		SELECT `+usuarioCols+` `+usuarioFrom+`
		WHERE r.nombre_rol = ? AND u.activo = 1
		ORDER BY u.nombre_completo`, rol)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *repoSQLite) ListByEquipo(ctx context.Context, equipoID int64) ([]*Usuario, error) {
	rows, err := r.q(ctx).QueryContext(ctx, `
		SELECT `+usuarioCols+` `+usuarioFrom+`
		WHERE u.equipo_id = ? AND u.activo = 1
		ORDER BY u.nombre_completo`, equipoID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *repoSQLite) ListRoles(ctx context.Context) ([]*Rol, error) {
	rows, err := r.q(ctx).QueryContext(ctx,
		`SELECT rol_id, nombre_rol FROM Roles ORDER BY nombre_rol`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Rol
	for rows.Next() {
		var rol Rol
		if err := rows.Scan(&rol.RolID, &rol.NombreRol); err != nil {
			return nil, err
		}
		items = append(items, &rol)
	}
	return items, rows.Err()
}

func (r *repoSQLite) ListEquipos(ctx context.Context) ([]*Equipo, error) {
	rows, err := r.q(ctx).QueryContext(ctx,
		`SELECT equipo_id, nombre_equipo, zona_cobertura FROM Equipos_Basicos ORDER BY nombre_equipo`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Equipo
	for rows.Next() {
		var e Equipo
		if err := rows.Scan(&e.EquipoID, &e.NombreEquipo, &e.ZonaCobertura); err != nil {
			return nil, err
		}
		items = append(items, &e)
	}
	return items, rows.Err()
}
