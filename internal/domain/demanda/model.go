// Package demanda implements induced demands: referral requests generated
// from a care plan or directly for a patient, tracked through an explicit
// status lifecycle (Pendiente, Asignada, Completada, Cancelada).
package demanda

// Demand statuses. Transitions are explicit writes, never inferred:
// Pendiente can move to Asignada; Asignada to Completada or Cancelada.
const (
	EstadoPendiente  = "Pendiente"
	EstadoAsignada   = "Asignada"
	EstadoCompletada = "Completada"
	EstadoCancelada  = "Cancelada"
)

// Demanda maps to Demandas_Inducidas. diligenciamiento and remision_a are
// stored as JSON lists, seguimiento as a JSON object.
type Demanda struct {
	DemandaID        int64                  `json:"demanda_id"`
	NumeroFormulario *string                `json:"numero_formulario"`
	PacienteID       int64                  `json:"paciente_id"`
	PlanID           *int64                 `json:"plan_id"`
	FechaDemanda     string                 `json:"fecha_demanda"`
	Diligenciamiento []interface{}          `json:"diligenciamiento"`
	RemisionA        []interface{}          `json:"remision_a"`
	Estado           string                 `json:"estado"`
	AsignadoAUID     *int64                 `json:"asignado_a_uid"`
	SolicitadoPorUID int64                  `json:"solicitado_por_uid"`
	Seguimiento      map[string]interface{} `json:"seguimiento"`
	FechaCreacion    string                 `json:"fecha_creacion"`
	FechaAsignacion  *string                `json:"fecha_asignacion"`
	Observaciones    *string                `json:"observaciones"`

	// Joined presentation fields, populated per listing.
	CondicionIdentificada *string `json:"condicion_identificada,omitempty"`
	SolicitadoPorNombre   *string `json:"solicitado_por_nombre,omitempty"`
	AsignadoANombre       *string `json:"asignado_a_nombre,omitempty"`
	PrimerNombre          *string `json:"primer_nombre,omitempty"`
	PrimerApellido        *string `json:"primer_apellido,omitempty"`
	NumeroDocumento       *string `json:"numero_documento,omitempty"`
	ApellidoPrincipal     *string `json:"apellido_principal,omitempty"`
}

// CreateInput is the payload for registering an induced demand.
type CreateInput struct {
	NumeroFormulario *string                `json:"numero_formulario"`
	PacienteID       int64                  `json:"paciente_id"`
	PlanID           *int64                 `json:"plan_id"`
	FechaDemanda     string                 `json:"fecha_demanda"`
	Diligenciamiento []interface{}          `json:"diligenciamiento"`
	RemisionA        []interface{}          `json:"remision_a"`
	Estado           string                 `json:"estado"`
	AsignadoAUID     *int64                 `json:"asignado_a_uid"`
	SolicitadoPorUID int64                  `json:"solicitado_por_uid"`
	Seguimiento      map[string]interface{} `json:"seguimiento"`
}

// EstadoInput is the payload for an explicit status write.
type EstadoInput struct {
	Estado       string `json:"estado"`
	AsignadoAUID *int64 `json:"asignado_a_uid"`
}

// LegacyDemanda is one row of the legacy Demandas assignment feed.
type LegacyDemanda struct {
	DemandaID         int64   `json:"demanda_id"`
	TipoDemanda       string  `json:"tipo_demanda"`
	Descripcion       string  `json:"descripcion"`
	FechaCreacion     string  `json:"fecha_creacion"`
	Estado            string  `json:"estado"`
	ApellidoPrincipal *string `json:"apellido_principal"`
	FamiliaID         *int64  `json:"familia_id"`
	PrimerNombre      *string `json:"primer_nombre"`
	PrimerApellido    *string `json:"primer_apellido"`
	PacienteID        *int64  `json:"paciente_id"`
}

// LegacyInput is the payload for creating a demand under a legacy care plan.
type LegacyInput struct {
	TipoDemanda string  `json:"tipo_demanda"`
	Descripcion string  `json:"descripcion"`
	Prioridad   string  `json:"prioridad"`
	FechaLimite *string `json:"fecha_limite"`
}
