package familia

// Familia maps to the Familias table. The characterization columns are
// filled by the household survey and stay NULL until the family has been
// characterized. JSON columns are decoded into Go values on read.
type Familia struct {
	FamiliaID         int64   `db:"familia_id" json:"familia_id"`
	ApellidoPrincipal string  `db:"apellido_principal" json:"apellido_principal"`
	Direccion         string  `db:"direccion" json:"direccion"`
	BarrioVereda      *string `db:"barrio_vereda" json:"barrio_vereda,omitempty"`
	Municipio         string  `db:"municipio" json:"municipio"`
	TelefonoContacto  *string `db:"telefono_contacto" json:"telefono_contacto,omitempty"`
	CreadoPorUID      int64   `db:"creado_por_uid" json:"creado_por_uid"`

	NumeroFicha          *string `db:"numero_ficha" json:"numero_ficha,omitempty"`
	Zona                 *string `db:"zona" json:"zona,omitempty"`
	Territorio           *string `db:"territorio" json:"territorio,omitempty"`
	Estrato              *string `db:"estrato" json:"estrato,omitempty"`
	TipoFamilia          *string `db:"tipo_familia" json:"tipo_familia,omitempty"`
	RiesgoFamiliar       *string `db:"riesgo_familiar" json:"riesgo_familiar,omitempty"`
	FechaCaracterizacion *string `db:"fecha_caracterizacion" json:"fecha_caracterizacion,omitempty"`

	InfoVivienda            map[string]interface{} `db:"info_vivienda" json:"info_vivienda"`
	SituacionesProteccion   []interface{}          `db:"situaciones_proteccion" json:"situaciones_proteccion"`
	CondicionesSaludPublica []interface{}          `db:"condiciones_salud_publica" json:"condiciones_salud_publica"`
	PracticasCuidado        map[string]interface{} `db:"practicas_cuidado" json:"practicas_cuidado"`

	// Joined creator name, present in listings.
	CreadoPor *string `db:"creado_por" json:"creado_por,omitempty"`
	// Count of active patients, computed at read time.
	IntegrantesCount int `db:"integrantes_count" json:"integrantes_count"`
}

// CreateInput is the payload for registering a family.
type CreateInput struct {
	ApellidoPrincipal string  `json:"apellido_principal"`
	Direccion         string  `json:"direccion"`
	BarrioVereda      *string `json:"barrio_vereda"`
	Municipio         string  `json:"municipio"`
	TelefonoContacto  *string `json:"telefono_contacto"`
	CreadoPorUID      int64   `json:"creado_por_uid"`
}

// UpdateInput is the payload for a partial family update. Nil fields keep
// the stored value. A field explicitly sent as JSON null also arrives nil,
// so null cannot be used to clear a column; that matches the stored
// COALESCE semantics.
type UpdateInput struct {
	ApellidoPrincipal *string `json:"apellido_principal"`
	Direccion         *string `json:"direccion"`
	BarrioVereda      *string `json:"barrio_vereda"`
	Municipio         *string `json:"municipio"`
	TelefonoContacto  *string `json:"telefono_contacto"`
}
