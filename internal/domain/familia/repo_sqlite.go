package familia

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

const integrantesCount = `(
	SELECT COUNT(1) FROM Pacientes p
	WHERE p.familia_id = f.familia_id AND p.activo = 1
)`

const familiaCols = `f.familia_id, f.apellido_principal, f.direccion, f.barrio_vereda,
	f.municipio, f.telefono_contacto, f.creado_por_uid,
	f.numero_ficha, f.zona, f.territorio, f.estrato, f.tipo_familia,
	f.riesgo_familiar, f.fecha_caracterizacion,
	f.info_vivienda, f.situaciones_proteccion, f.condiciones_salud_publica,
	f.practicas_cuidado`

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *repoSQLite) scan(row rowScanner, withCreator bool) (*Familia, error) {
	var f Familia
	var vivienda, proteccion, saludPublica, practicas sql.NullString

	dest := []any{
		&f.FamiliaID, &f.ApellidoPrincipal, &f.Direccion, &f.BarrioVereda,
		&f.Municipio, &f.TelefonoContacto, &f.CreadoPorUID,
		&f.NumeroFicha, &f.Zona, &f.Territorio, &f.Estrato, &f.TipoFamilia,
		&f.RiesgoFamiliar, &f.FechaCaracterizacion,
		&vivienda, &proteccion, &saludPublica, &practicas,
	}
	if withCreator {
		dest = append(dest, &f.CreadoPor)
	}
	dest = append(dest, &f.IntegrantesCount)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	f.InfoVivienda = r.codec.DecodeObject("info_vivienda", vivienda)
	f.SituacionesProteccion = r.codec.DecodeList("situaciones_proteccion", proteccion)
	f.CondicionesSaludPublica = r.codec.DecodeList("condiciones_salud_publica", saludPublica)
	f.PracticasCuidado = r.codec.DecodeObject("practicas_cuidado", practicas)
	return &f, nil
}

func (r *repoSQLite) Create(ctx context.Context, in *CreateInput) (int64, error) {
	res, err := r.q(ctx).ExecContext(ctx, `
		INSERT INTO Familias (apellido_principal, direccion, barrio_vereda, municipio, telefono_contacto, creado_por_uid)
		VALUES (?, ?, ?, ?, ?, ?)`,
		in.ApellidoPrincipal, in.Direccion, in.BarrioVereda, in.Municipio, in.TelefonoContacto, in.CreadoPorUID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *repoSQLite) GetByID(ctx context.Context, id int64) (*Familia, error) {
	row := r.q(ctx).QueryRowContext(ctx, `
		SELECT `+familiaCols+`, `+integrantesCount+` AS integrantes_count
		FROM Familias f WHERE f.familia_id = ?`, id)
	f, err := r.scan(row, false)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("familia", id)
	}
	return f, err
}

func (r *repoSQLite) List(ctx context.Context) ([]*Familia, error) {
	rows, err := r.q(ctx).QueryContext(ctx, `
		SELECT `+familiaCols+`, u.nombre_completo AS creado_por, `+integrantesCount+` AS integrantes_count
		FROM Familias f
		JOIN Usuarios u ON f.creado_por_uid = u.usuario_id
		ORDER BY f.apellido_principal`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Familia
	for rows.Next() {
		f, err := r.scan(rows, true)
		if err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

func (r *repoSQLite) Update(ctx context.Context, id int64, in *UpdateInput) error {
	res, err := r.q(ctx).ExecContext(ctx, `
		UPDATE Familias SET
			apellido_principal = COALESCE(?, apellido_principal),
			direccion = COALESCE(?, direccion),
			barrio_vereda = COALESCE(?, barrio_vereda),
			municipio = COALESCE(?, municipio),
			telefono_contacto = COALESCE(?, telefono_contacto)
		WHERE familia_id = ?`,
		in.ApellidoPrincipal, in.Direccion, in.BarrioVereda, in.Municipio, in.TelefonoContacto, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFound("familia", id)
	}
	return nil
}

func (r *repoSQLite) Delete(ctx context.Context, id int64) error {
	return db.WithTx(ctx, r.conn, func(ctx context.Context) error {
		res, err := r.q(ctx).ExecContext(ctx, `
			DELETE FROM Familias
			WHERE familia_id = ?
			  AND NOT EXISTS (
				SELECT 1 FROM Pacientes p
				WHERE p.familia_id = Familias.familia_id AND p.activo = 1
			  )`, id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		// Nothing deleted: either the family is missing or the guard held.
		var exists int
		if err := r.q(ctx).QueryRowContext(ctx,
			`SELECT COUNT(1) FROM Familias WHERE familia_id = ?`, id).Scan(&exists); err != nil {
			return err
		}
		if exists == 0 {
			return apperr.NotFound("familia", id)
		}
		return apperr.Conflict("no se puede eliminar: la familia tiene pacientes activos")
	})
}
