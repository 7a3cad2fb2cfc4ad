// Package historia implements clinical visit records and what hangs off
// them: laboratory orders per record and prescriptions per patient.
package historia

// Historia maps to Historias_Clinicas.
type Historia struct {
	HistoriaClinicaID int64   `json:"historia_clinica_id"`
	PacienteID        int64   `json:"paciente_id"`
	DemandaID         *int64  `json:"demanda_id"`
	ProfesionalID     *int64  `json:"profesional_id"`
	TipoConsulta      string  `json:"tipo_consulta"`
	MotivoConsulta    string  `json:"motivo_consulta"`
	Sintomas          *string `json:"sintomas"`
	Diagnostico       *string `json:"diagnostico"`
	Tratamiento       *string `json:"tratamiento"`
	Observaciones     *string `json:"observaciones"`
	FechaConsulta     string  `json:"fecha_consulta"`
	ProfesionalNombre *string `json:"profesional_nombre,omitempty"`
}

// CreateInput is the payload for logging a visit under a demand.
type CreateInput struct {
	PacienteID     int64   `json:"paciente_id"`
	ProfesionalID  *int64  `json:"profesional_id"`
	TipoConsulta   string  `json:"tipo_consulta"`
	MotivoConsulta string  `json:"motivo_consulta"`
	Sintomas       *string `json:"sintomas"`
	Diagnostico    *string `json:"diagnostico"`
	Tratamiento    *string `json:"tratamiento"`
	Observaciones  *string `json:"observaciones"`
}

// OrdenLabInput is the payload for a laboratory order.
type OrdenLabInput struct {
	TipoExamen     string  `json:"tipo_examen"`
	Descripcion    string  `json:"descripcion"`
	Instrucciones  *string `json:"instrucciones"`
	FechaRequerida *string `json:"fecha_requerida"`
}

// RecetaInput is the payload for a prescription. medicamentos is stored as a
// JSON list.
type RecetaInput struct {
	Medicamentos     []interface{} `json:"medicamentos"`
	Instrucciones    *string       `json:"instrucciones"`
	FechaVencimiento *string       `json:"fecha_vencimiento"`
	ProfesionalID    int64         `json:"profesional_id"`
}
