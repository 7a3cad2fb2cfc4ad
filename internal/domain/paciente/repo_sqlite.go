package paciente

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

const pacienteCols = `paciente_id, familia_id, tipo_documento, numero_documento,
	primer_nombre, segundo_nombre, primer_apellido, segundo_apellido,
	fecha_nacimiento, genero, telefono, email, activo`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPaciente(row rowScanner) (*Paciente, error) {
	var p Paciente
	err := row.Scan(&p.PacienteID, &p.FamiliaID, &p.TipoDocumento, &p.NumeroDocumento,
		&p.PrimerNombre, &p.SegundoNombre, &p.PrimerApellido, &p.SegundoApellido,
		&p.FechaNacimiento, &p.Genero, &p.Telefono, &p.Email, &p.Activo)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repoSQLite) Create(ctx context.Context, in *CreateInput) (int64, error) {
	res, err := r.q(ctx).ExecContext(ctx, `
		INSERT INTO Pacientes (
			familia_id, tipo_documento, numero_documento,
			primer_nombre, segundo_nombre, primer_apellido, segundo_apellido,
			fecha_nacimiento, genero, telefono, email, activo
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1)`,
		in.FamiliaID, in.TipoDocumento, in.NumeroDocumento,
		in.PrimerNombre, in.SegundoNombre, in.PrimerApellido, in.SegundoApellido,
		in.FechaNacimiento, in.Genero, in.Telefono, in.Email)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *repoSQLite) GetByID(ctx context.Context, id int64) (*Paciente, error) {
	p, err := scanPaciente(r.q(ctx).QueryRowContext(ctx,
		`SELECT `+pacienteCols+` FROM Pacientes WHERE paciente_id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("paciente", id)
	}
	return p, err
}

func (r *repoSQLite) ListByFamilia(ctx context.Context, familiaID int64) ([]*Paciente, error) {
	rows, err := r.q(ctx).QueryContext(ctx,
		`SELECT `+pacienteCols+` FROM Pacientes WHERE familia_id = ? AND activo = 1`, familiaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Paciente
	for rows.Next() {
		p, err := scanPaciente(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *repoSQLite) Update(ctx context.Context, id int64, in *UpdateInput) error {
	res, err := r.q(ctx).ExecContext(ctx, `
		UPDATE Pacientes SET
			familia_id = COALESCE(?, familia_id),
			tipo_documento = COALESCE(?, tipo_documento),
			numero_documento = COALESCE(?, numero_documento),
			primer_nombre = COALESCE(?, primer_nombre),
			segundo_nombre = COALESCE(?, segundo_nombre),
			primer_apellido = COALESCE(?, primer_apellido),
			segundo_apellido = COALESCE(?, segundo_apellido),
			fecha_nacimiento = COALESCE(?, fecha_nacimiento),
			genero = COALESCE(?, genero),
			telefono = COALESCE(?, telefono),
			email = COALESCE(?, email),
			activo = COALESCE(?, activo)
		WHERE paciente_id = ?`,
		in.FamiliaID, in.TipoDocumento, in.NumeroDocumento,
		in.PrimerNombre, in.SegundoNombre, in.PrimerApellido, in.SegundoApellido,
		in.FechaNacimiento, in.Genero, in.Telefono, in.Email, in.Activo, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFound("paciente", id)
	}
	return nil
}

func (r *repoSQLite) Deactivate(ctx context.Context, id int64) error {
	res, err := r.q(ctx).ExecContext(ctx,
		`UPDATE Pacientes SET activo = 0 WHERE paciente_id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFound("paciente", id)
	}
	return nil
}
