// Package reporte serves the read-only dashboard rollups. The queries have
// no invariants of their own; they only aggregate what the other packages
// write.
package reporte

// Epidemiologico is the population-level consultation summary.
type Epidemiologico struct {
	TotalPacientes    int64 `json:"total_pacientes"`
	TotalFamilias     int64 `json:"total_familias"`
	TotalConsultas    int64 `json:"total_consultas"`
	ConsultasControl  int64 `json:"consultas_control"`
	ConsultasUrgencia int64 `json:"consultas_urgencia"`
}

// Productividad is one professional's activity rollup.
type Productividad struct {
	UsuarioID      int64  `json:"usuario_id"`
	NombreCompleto string `json:"nombre_completo"`
	NombreRol      string `json:"nombre_rol"`
	TotalConsultas int64  `json:"total_consultas"`
	TotalBitacoras int64  `json:"total_bitacoras"`
	TotalRecetas   int64  `json:"total_recetas"`
}

// Rango is an optional date window applied to the rollups.
type Rango struct {
	FechaDesde string
	FechaHasta string
}
