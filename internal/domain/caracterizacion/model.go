// Package caracterizacion implements the household characterization survey:
// the family-level section stored on the Familias row, the per-member section
// stored in Caracterizacion_Paciente, and the reduced legacy survey kept in
// the Caracterizaciones table for older clients.
package caracterizacion

// DatosFamilia is the family-level section of a characterization submission.
// The structured fields are persisted as JSON text on the Familias row.
type DatosFamilia struct {
	NumeroFicha             *string                `json:"numero_ficha"`
	Zona                    *string                `json:"zona"`
	Territorio              *string                `json:"territorio"`
	Estrato                 *string                `json:"estrato"`
	TipoFamilia             *string                `json:"tipo_familia"`
	RiesgoFamiliar          *string                `json:"riesgo_familiar"`
	FechaCaracterizacion    *string                `json:"fecha_caracterizacion"`
	InfoVivienda            map[string]interface{} `json:"info_vivienda"`
	SituacionesProteccion   []interface{}          `json:"situaciones_proteccion"`
	CondicionesSaludPublica []interface{}          `json:"condiciones_salud_publica"`
	PracticasCuidado        map[string]interface{} `json:"practicas_cuidado"`
}

// Integrante is one member's section of a characterization submission.
type Integrante struct {
	PacienteID           int64                  `json:"paciente_id"`
	FechaCaracterizacion *string                `json:"fecha_caracterizacion"`
	RolFamiliar          *string                `json:"rol_familiar"`
	Ocupacion            *string                `json:"ocupacion"`
	NivelEducativo       *string                `json:"nivel_educativo"`
	GrupoPoblacional     *string                `json:"grupo_poblacional"`
	RegimenAfiliacion    *string                `json:"regimen_afiliacion"`
	PertenenciaEtnica    *string                `json:"pertenencia_etnica"`
	Discapacidad         []interface{}          `json:"discapacidad"`
	VictimaViolencia     bool                   `json:"victima_violencia"`
	DatosPyP             map[string]interface{} `json:"datos_pyp"`
	DatosSalud           map[string]interface{} `json:"datos_salud"`
	CreadoPorUID         *int64                 `json:"creado_por_uid"`
}

// ReplaceInput is the full-survey submission. Applying it rewrites the
// family's characterization and every member record in one transaction.
type ReplaceInput struct {
	FamiliaID    int64         `json:"familia_id"`
	DatosFamilia *DatosFamilia `json:"datos_familia"`
	Integrantes  []*Integrante `json:"integrantes"`
}

// FamiliaCaracterizada is the family block of a characterization read:
// the full Familias row with structured fields parsed plus the creator name.
type FamiliaCaracterizada struct {
	FamiliaID               int64                  `json:"familia_id"`
	ApellidoPrincipal       string                 `json:"apellido_principal"`
	Direccion               string                 `json:"direccion"`
	BarrioVereda            *string                `json:"barrio_vereda"`
	Municipio               string                 `json:"municipio"`
	TelefonoContacto        *string                `json:"telefono_contacto"`
	CreadoPorUID            int64                  `json:"creado_por_uid"`
	CreadoPorNombre         *string                `json:"creado_por_nombre"`
	NumeroFicha             *string                `json:"numero_ficha"`
	Zona                    *string                `json:"zona"`
	Territorio              *string                `json:"territorio"`
	Estrato                 *string                `json:"estrato"`
	TipoFamilia             *string                `json:"tipo_familia"`
	RiesgoFamiliar          *string                `json:"riesgo_familiar"`
	FechaCaracterizacion    *string                `json:"fecha_caracterizacion"`
	InfoVivienda            map[string]interface{} `json:"info_vivienda"`
	SituacionesProteccion   []interface{}          `json:"situaciones_proteccion"`
	CondicionesSaludPublica []interface{}          `json:"condiciones_salud_publica"`
	PracticasCuidado        map[string]interface{} `json:"practicas_cuidado"`
}

// IntegranteDetalle is one active patient of the family with their
// characterization record joined in. Survey fields are nil when the patient
// has not been characterized yet.
type IntegranteDetalle struct {
	PacienteID           int64                  `json:"paciente_id"`
	NumeroDocumento      string                 `json:"numero_documento"`
	TipoDocumento        string                 `json:"tipo_documento"`
	PrimerNombre         string                 `json:"primer_nombre"`
	SegundoNombre        *string                `json:"segundo_nombre"`
	PrimerApellido       string                 `json:"primer_apellido"`
	SegundoApellido      *string                `json:"segundo_apellido"`
	FechaNacimiento      *string                `json:"fecha_nacimiento"`
	Genero               *string                `json:"genero"`
	CaracterizacionID    *int64                 `json:"caracterizacion_id"`
	FechaCaracterizacion *string                `json:"fecha_caracterizacion"`
	RolFamiliar          *string                `json:"rol_familiar"`
	Ocupacion            *string                `json:"ocupacion"`
	NivelEducativo       *string                `json:"nivel_educativo"`
	GrupoPoblacional     *string                `json:"grupo_poblacional"`
	RegimenAfiliacion    *string                `json:"regimen_afiliacion"`
	PertenenciaEtnica    *string                `json:"pertenencia_etnica"`
	Discapacidad         []interface{}          `json:"discapacidad"`
	VictimaViolencia     bool                   `json:"victima_violencia"`
	DatosPyP             map[string]interface{} `json:"datos_pyp"`
	DatosSalud           map[string]interface{} `json:"datos_salud"`
}

// Resumen is the full characterization read for one family.
type Resumen struct {
	Familia              *FamiliaCaracterizada `json:"familia"`
	Integrantes          []*IntegranteDetalle  `json:"integrantes"`
	TieneCaracterizacion bool                  `json:"tiene_caracterizacion"`
}

// LegacyCaracterizacion maps to the reduced Caracterizaciones table.
type LegacyCaracterizacion struct {
	CaracterizacionID    int64   `json:"caracterizacion_id"`
	FamiliaID            int64   `json:"familia_id"`
	TipoVivienda         *string `json:"tipo_vivienda"`
	MaterialParedes      *string `json:"material_paredes"`
	MaterialPiso         *string `json:"material_piso"`
	ServiciosPublicos    *string `json:"servicios_publicos"`
	NumeroHabitaciones   *int64  `json:"numero_habitaciones"`
	NumeroPersonas       *int64  `json:"numero_personas"`
	IngresosMensuales    *string `json:"ingresos_mensuales"`
	Observaciones        *string `json:"observaciones"`
	FechaCaracterizacion string  `json:"fecha_caracterizacion"`
}

// LegacyInput covers both the legacy create and the legacy partial update.
// On update, nil fields keep the stored value.
type LegacyInput struct {
	TipoVivienda       *string `json:"tipo_vivienda"`
	MaterialParedes    *string `json:"material_paredes"`
	MaterialPiso       *string `json:"material_piso"`
	ServiciosPublicos  *string `json:"servicios_publicos"`
	NumeroHabitaciones *int64  `json:"numero_habitaciones"`
	NumeroPersonas     *int64  `json:"numero_personas"`
	IngresosMensuales  *string `json:"ingresos_mensuales"`
	Observaciones      *string `json:"observaciones"`
}
