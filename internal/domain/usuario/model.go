// Package usuario covers authentication and the user/role/team directory.
// The credential scheme mirrors the registry the field teams already use:
// the document number acts as the password. It is a placeholder, not a
// security design.
package usuario

// Usuario is a user profile with the role and team lookups joined in.
type Usuario struct {
	UsuarioID       int64   `json:"usuario_id"`
	NombreCompleto  string  `json:"nombre_completo"`
	Email           string  `json:"email"`
	NumeroDocumento string  `json:"numero_documento"`
	Telefono        *string `json:"telefono"`
	NombreRol       string  `json:"nombre_rol"`
	RolID           int64   `json:"rol_id"`
	NombreEquipo    *string `json:"nombre_equipo"`
	EquipoID        *int64  `json:"equipo_id"`
	ZonaCobertura   *string `json:"zona_cobertura"`
}

// PerfilSesion is the user object returned by the login and token routes.
type PerfilSesion struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	RoleID   int64   `json:"roleId"`
	Team     *string `json:"team"`
	Document string  `json:"document"`
}

// Perfil shapes the profile for a session response.
func (u *Usuario) Perfil() *PerfilSesion {
	return &PerfilSesion{
		ID:       u.UsuarioID,
		Name:     u.NombreCompleto,
		Email:    u.Email,
		Role:     u.NombreRol,
		RoleID:   u.RolID,
		Team:     u.NombreEquipo,
		Document: u.NumeroDocumento,
	}
}

// Credenciales is the login payload.
type Credenciales struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Rol is one catalog role.
type Rol struct {
	RolID     int64  `json:"rol_id"`
	NombreRol string `json:"nombre_rol"`
}

// Equipo is one basic care team.
type Equipo struct {
	EquipoID      int64   `json:"equipo_id"`
	NombreEquipo  string  `json:"nombre_equipo"`
	ZonaCobertura *string `json:"zona_cobertura"`
}
