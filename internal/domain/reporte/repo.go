package reporte

import "context"

// Repository runs the dashboard aggregates.
type Repository interface {
	Epidemiologico(ctx context.Context, r *Rango) (*Epidemiologico, error)
	Productividad(ctx context.Context, usuarioID int64, r *Rango) ([]*Productividad, error)
}
