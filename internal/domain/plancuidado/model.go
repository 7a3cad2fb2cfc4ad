// Package plancuidado implements family care plans: the structured
// Planes_Cuidado_Familiar records and the narrative legacy Planes_Cuidado
// table kept for older clients.
package plancuidado

// Plan maps to Planes_Cuidado_Familiar. plan_asociado is stored as a JSON
// list. Listings join the creator, family and principal patient names.
type Plan struct {
	PlanID                int64         `json:"plan_id"`
	FamiliaID             int64         `json:"familia_id"`
	PacientePrincipalID   int64         `json:"paciente_principal_id"`
	FechaEntrega          string        `json:"fecha_entrega"`
	PlanAsociado          []interface{} `json:"plan_asociado"`
	CondicionIdentificada *string       `json:"condicion_identificada"`
	LogroSalud            *string       `json:"logro_salud"`
	CuidadosSalud         *string       `json:"cuidados_salud"`
	DemandasInducidasDesc *string       `json:"demandas_inducidas_desc"`
	EducacionSalud        *string       `json:"educacion_salud"`
	Estado                string        `json:"estado"`
	CreadoPorUID          int64         `json:"creado_por_uid"`
	FechaAceptacion       *string       `json:"fecha_aceptacion"`
	CreadoPorNombre       *string       `json:"creado_por_nombre,omitempty"`
	ApellidoPrincipal     *string       `json:"apellido_principal,omitempty"`
	PrimerNombre          *string       `json:"primer_nombre,omitempty"`
	PrimerApellido        *string       `json:"primer_apellido,omitempty"`
}

// CreateInput is the payload for registering a care plan.
type CreateInput struct {
	FamiliaID             int64         `json:"familia_id"`
	PacientePrincipalID   int64         `json:"paciente_principal_id"`
	FechaEntrega          string        `json:"fecha_entrega"`
	PlanAsociado          []interface{} `json:"plan_asociado"`
	CondicionIdentificada *string       `json:"condicion_identificada"`
	LogroSalud            *string       `json:"logro_salud"`
	CuidadosSalud         *string       `json:"cuidados_salud"`
	DemandasInducidasDesc *string       `json:"demandas_inducidas_desc"`
	EducacionSalud        *string       `json:"educacion_salud"`
	Estado                string        `json:"estado"`
	CreadoPorUID          int64         `json:"creado_por_uid"`
	FechaAceptacion       *string       `json:"fecha_aceptacion"`
}

// LegacyInput is the narrative care-plan payload for the legacy route.
type LegacyInput struct {
	Objetivo      string  `json:"objetivo"`
	Actividades   string  `json:"actividades"`
	Responsable   *string `json:"responsable"`
	FechaInicio   *string `json:"fecha_inicio"`
	FechaFin      *string `json:"fecha_fin"`
	Observaciones *string `json:"observaciones"`
}
