package usuario

import "context"

// Repository reads the user directory.
type Repository interface {
	// Authenticate matches email and document number. A miss returns
	// sql.ErrNoRows wrapped in the repository's not-found error.
	Authenticate(ctx context.Context, email, documento string) (*Usuario, error)
	GetByID(ctx context.Context, id int64) (*Usuario, error)
	List(ctx context.Context) ([]*Usuario, error)
	ListByRol(ctx context.Context, rol string) ([]*Usuario, error)
	ListByEquipo(ctx context.Context, equipoID int64) ([]*Usuario, error)
	ListRoles(ctx context.Context) ([]*Rol, error)
	ListEquipos(ctx context.Context) ([]*Equipo, error)
}
