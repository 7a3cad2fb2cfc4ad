// Package bitacora implements the field activity log kept by promoters and
// care teams.
package bitacora

// Bitacora maps to Bitacoras. Listings join the author's name.
type Bitacora struct {
	BitacoraID    int64   `json:"bitacora_id"`
	UsuarioID     int64   `json:"usuario_id"`
	TipoActividad string  `json:"tipo_actividad"`
	Descripcion   string  `json:"descripcion"`
	Ubicacion     *string `json:"ubicacion"`
	Observaciones *string `json:"observaciones"`
	FechaRegistro string  `json:"fecha_registro"`
	UsuarioNombre *string `json:"usuario_nombre,omitempty"`
}

// CreateInput is the payload for logging an activity.
type CreateInput struct {
	UsuarioID     int64   `json:"usuario_id"`
	TipoActividad string  `json:"tipo_actividad"`
	Descripcion   string  `json:"descripcion"`
	Ubicacion     *string `json:"ubicacion"`
	Observaciones *string `json:"observaciones"`
}

// Filter narrows a log search. Zero-valued fields are ignored. A zero Limit
// returns every matching row.
type Filter struct {
	UsuarioID     int64
	TipoActividad string
	FechaDesde    string
	FechaHasta    string
	Limit         int
	Offset        int
}
