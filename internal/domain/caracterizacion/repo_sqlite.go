package caracterizacion

import (
	"context"
	"database/sql"
	"errors"
	"time"

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

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Replace runs the three-step rewrite in one transaction: family update first,
// then the wholesale delete of member records, then the fresh inserts. The
// ordering guarantees a crash mid-sequence never leaves member rows pointing
// at a family whose characterization date was not updated.
func (r *repoSQLite) Replace(ctx context.Context, in *ReplaceInput) error {
	df := in.DatosFamilia

	vivienda, err := r.codec.EncodeObject(df.InfoVivienda)
	if err != nil {
		return err
	}
	proteccion, err := r.codec.EncodeList(df.SituacionesProteccion)
	if err != nil {
		return err
	}
	saludPublica, err := r.codec.EncodeList(df.CondicionesSaludPublica)
	if err != nil {
		return err
	}
	practicas, err := r.codec.EncodeObject(df.PracticasCuidado)
	if err != nil {
		return err
	}

	return db.WithTx(ctx, r.conn, func(ctx context.Context) error {
		if _, err := r.q(ctx).ExecContext(ctx, `
			UPDATE Familias SET
				numero_ficha = ?,
				zona = ?,
				territorio = ?,
				estrato = ?,
				tipo_familia = ?,
				riesgo_familiar = ?,
				fecha_caracterizacion = ?,
				info_vivienda = ?,
				situaciones_proteccion = ?,
				condiciones_salud_publica = ?,
				practicas_cuidado = ?
			WHERE familia_id = ?`,
			df.NumeroFicha, df.Zona, df.Territorio, df.Estrato, df.TipoFamilia,
			df.RiesgoFamiliar, df.FechaCaracterizacion,
			vivienda, proteccion, saludPublica, practicas, in.FamiliaID); err != nil {
			return err
		}

		if _, err := r.q(ctx).ExecContext(ctx, `
			DELETE FROM Caracterizacion_Paciente
			WHERE paciente_id IN (SELECT paciente_id FROM Pacientes WHERE familia_id = ?)`,
			in.FamiliaID); err != nil {
			return err
		}

		for _, m := range in.Integrantes {
			fecha := m.FechaCaracterizacion
			if fecha == nil {
				fecha = df.FechaCaracterizacion
			}
			if fecha == nil {
				today := time.Now().Format("2006-01-02")
				fecha = &today
			}

			discapacidad, err := r.codec.EncodeList(m.Discapacidad)
			if err != nil {
				return err
			}
			pyp, err := r.codec.EncodeObject(m.DatosPyP)
			if err != nil {
				return err
			}
			salud, err := r.codec.EncodeObject(m.DatosSalud)
			if err != nil {
				return err
			}

			if _, err := r.q(ctx).ExecContext(ctx, `
				INSERT INTO Caracterizacion_Paciente (
					paciente_id, fecha_caracterizacion, rol_familiar, ocupacion,
					nivel_educativo, grupo_poblacional, regimen_afiliacion,
					pertenencia_etnica, discapacidad, victima_violencia,
					datos_pyp, datos_salud, creado_por_uid
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				m.PacienteID, fecha, m.RolFamiliar, m.Ocupacion,
				m.NivelEducativo, m.GrupoPoblacional, m.RegimenAfiliacion,
				m.PertenenciaEtnica, discapacidad, boolToInt(m.VictimaViolencia),
				pyp, salud, m.CreadoPorUID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repoSQLite) GetByFamilia(ctx context.Context, familiaID int64) (*Resumen, error) {
	row := r.q(ctx).QueryRowContext(ctx, `
		SELECT f.familia_id, f.apellido_principal, f.direccion, f.barrio_vereda,
			f.municipio, f.telefono_contacto, f.creado_por_uid, u.nombre_completo,
			f.numero_ficha, f.zona, f.territorio, f.estrato, f.tipo_familia,
			f.riesgo_familiar, f.fecha_caracterizacion,
			f.info_vivienda, f.situaciones_proteccion, f.condiciones_salud_publica,
			f.practicas_cuidado
		FROM Familias f
		LEFT JOIN Usuarios u ON f.creado_por_uid = u.usuario_id
		WHERE f.familia_id = ?`, familiaID)

	var fam FamiliaCaracterizada
	var vivienda, proteccion, saludPublica, practicas sql.NullString
	err := row.Scan(
		&fam.FamiliaID, &fam.ApellidoPrincipal, &fam.Direccion, &fam.BarrioVereda,
		&fam.Municipio, &fam.TelefonoContacto, &fam.CreadoPorUID, &fam.CreadoPorNombre,
		&fam.NumeroFicha, &fam.Zona, &fam.Territorio, &fam.Estrato, &fam.TipoFamilia,
		&fam.RiesgoFamiliar, &fam.FechaCaracterizacion,
		&vivienda, &proteccion, &saludPublica, &practicas)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("familia", familiaID)
	}
	if err != nil {
		return nil, err
	}
	fam.InfoVivienda = r.codec.DecodeObject("info_vivienda", vivienda)
	fam.SituacionesProteccion = r.codec.DecodeList("situaciones_proteccion", proteccion)
	fam.CondicionesSaludPublica = r.codec.DecodeList("condiciones_salud_publica", saludPublica)
	fam.PracticasCuidado = r.codec.DecodeObject("practicas_cuidado", practicas)

	rows, err := r.q(ctx).QueryContext(ctx, `
		SELECT p.paciente_id, p.numero_documento, p.tipo_documento,
			p.primer_nombre, p.segundo_nombre, p.primer_apellido, p.segundo_apellido,
			p.fecha_nacimiento, p.genero,
			cp.caracterizacion_id, cp.fecha_caracterizacion, cp.rol_familiar,
			cp.ocupacion, cp.nivel_educativo, cp.grupo_poblacional,
			cp.regimen_afiliacion, cp.pertenencia_etnica, cp.discapacidad,
			cp.victima_violencia, cp.datos_pyp, cp.datos_salud
		FROM Pacientes p
		LEFT JOIN Caracterizacion_Paciente cp ON p.paciente_id = cp.paciente_id
		WHERE p.familia_id = ? AND p.activo = 1
		ORDER BY p.primer_nombre`, familiaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	integrantes := []*IntegranteDetalle{}
	for rows.Next() {
		var m IntegranteDetalle
		var discapacidad, victima, pyp, salud sql.NullString
		if err := rows.Scan(
			&m.PacienteID, &m.NumeroDocumento, &m.TipoDocumento,
			&m.PrimerNombre, &m.SegundoNombre, &m.PrimerApellido, &m.SegundoApellido,
			&m.FechaNacimiento, &m.Genero,
			&m.CaracterizacionID, &m.FechaCaracterizacion, &m.RolFamiliar,
			&m.Ocupacion, &m.NivelEducativo, &m.GrupoPoblacional,
			&m.RegimenAfiliacion, &m.PertenenciaEtnica, &discapacidad,
			&victima, &pyp, &salud); err != nil {
			return nil, err
		}
		m.Discapacidad = r.codec.DecodeList("discapacidad", discapacidad)
		m.VictimaViolencia = victima.Valid && (victima.String == "1" || victima.String == "true")
		m.DatosPyP = r.codec.DecodeObject("datos_pyp", pyp)
		m.DatosSalud = r.codec.DecodeObject("datos_salud", salud)
		integrantes = append(integrantes, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &Resumen{
		Familia:              &fam,
		Integrantes:          integrantes,
		TieneCaracterizacion: fam.FechaCaracterizacion != nil,
	}, nil
}

func (r *repoSQLite) LegacyCreate(ctx context.Context, familiaID int64, in *LegacyInput) (int64, error) {
	res, err := r.q(ctx).ExecContext(ctx, `
		INSERT INTO Caracterizaciones (familia_id, tipo_vivienda, material_paredes,
			material_piso, servicios_publicos, numero_habitaciones, numero_personas,
			ingresos_mensuales, observaciones, fecha_caracterizacion)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, datetime('now'))`,
		familiaID, in.TipoVivienda, in.MaterialParedes, in.MaterialPiso,
		in.ServiciosPublicos, in.NumeroHabitaciones, in.NumeroPersonas,
		in.IngresosMensuales, in.Observaciones)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *repoSQLite) LegacyUpdate(ctx context.Context, id int64, in *LegacyInput) error {
	res, err := r.q(ctx).ExecContext(ctx, `
		UPDATE Caracterizaciones SET
			tipo_vivienda = COALESCE(?, tipo_vivienda),
			material_paredes = COALESCE(?, material_paredes),
			material_piso = COALESCE(?, material_piso),
			servicios_publicos = COALESCE(?, servicios_publicos),
			numero_habitaciones = COALESCE(?, numero_habitaciones),
			numero_personas = COALESCE(?, numero_personas),
			ingresos_mensuales = COALESCE(?, ingresos_mensuales),
			observaciones = COALESCE(?, observaciones)
		WHERE caracterizacion_id = ?`,
		in.TipoVivienda, in.MaterialParedes, in.MaterialPiso,
		in.ServiciosPublicos, in.NumeroHabitaciones, in.NumeroPersonas,
		in.IngresosMensuales, in.Observaciones, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFound("caracterización", id)
	}
	return nil
}
