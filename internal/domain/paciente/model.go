package paciente

// Paciente maps to the Pacientes table. activo is a soft-delete flag:
// deleted patients keep their row but drop out of listings and counts.
type Paciente struct {
	PacienteID      int64   `db:"paciente_id" json:"paciente_id"`
	FamiliaID       int64   `db:"familia_id" json:"familia_id"`
	TipoDocumento   string  `db:"tipo_documento" json:"tipo_documento"`
	NumeroDocumento string  `db:"numero_documento" json:"numero_documento"`
	PrimerNombre    string  `db:"primer_nombre" json:"primer_nombre"`
	SegundoNombre   *string `db:"segundo_nombre" json:"segundo_nombre,omitempty"`
	PrimerApellido  string  `db:"primer_apellido" json:"primer_apellido"`
	SegundoApellido *string `db:"segundo_apellido" json:"segundo_apellido,omitempty"`
	FechaNacimiento *string `db:"fecha_nacimiento" json:"fecha_nacimiento,omitempty"`
	Genero          *string `db:"genero" json:"genero,omitempty"`
	Telefono        *string `db:"telefono" json:"telefono,omitempty"`
	Email           *string `db:"email" json:"email,omitempty"`
	Activo          int     `db:"activo" json:"activo"`
}

// CreateInput is the payload for registering a patient in a family.
type CreateInput struct {
	FamiliaID       int64   `json:"familia_id"`
	TipoDocumento   string  `json:"tipo_documento"`
	NumeroDocumento string  `json:"numero_documento"`
	PrimerNombre    string  `json:"primer_nombre"`
	SegundoNombre   *string `json:"segundo_nombre"`
	PrimerApellido  string  `json:"primer_apellido"`
	SegundoApellido *string `json:"segundo_apellido"`
	FechaNacimiento *string `json:"fecha_nacimiento"`
	Genero          *string `json:"genero"`
	Telefono        *string `json:"telefono"`
	Email           *string `json:"email"`
}

// UpdateInput is the payload for a partial patient update. Nil fields keep
// the stored value.
type UpdateInput struct {
	FamiliaID       *int64  `json:"familia_id"`
	TipoDocumento   *string `json:"tipo_documento"`
	NumeroDocumento *string `json:"numero_documento"`
	PrimerNombre    *string `json:"primer_nombre"`
	SegundoNombre   *string `json:"segundo_nombre"`
	PrimerApellido  *string `json:"primer_apellido"`
	SegundoApellido *string `json:"segundo_apellido"`
	FechaNacimiento *string `json:"fecha_nacimiento"`
	Genero          *string `json:"genero"`
	Telefono        *string `json:"telefono"`
	Email           *string `json:"email"`
	Activo          *int    `json:"activo"`
}
