package demanda

import "context"

// Repository persists induced demands and serves the legacy Demandas feed.
type Repository interface {
	Create(ctx context.Context, in *CreateInput) (int64, error)
	GetByID(ctx context.Context, id int64) (*Demanda, error)
	ListByPaciente(ctx context.Context, pacienteID int64) ([]*Demanda, error)

	// ListAsignadas returns the open demands (Pendiente or Asignada)
	// assigned to one professional, with patient and family names joined.
	ListAsignadas(ctx context.Context, usuarioID int64) ([]*Demanda, error)

	// UpdateEstado applies a lifecycle transition. Moving to Asignada
	// stamps fecha_asignacion and, when given, the assignee.
	UpdateEstado(ctx context.Context, id int64, estado string, asignadoAUID *int64) error

	LegacyListActivas(ctx context.Context) ([]*LegacyDemanda, error)
	LegacyCreate(ctx context.Context, planCuidadoID int64, in *LegacyInput) (int64, error)
}
