package historia

import "context"

// Repository persists clinical records, lab orders and prescriptions.
type Repository interface {
	Create(ctx context.Context, demandaID int64, in *CreateInput) (int64, error)
	ListByPaciente(ctx context.Context, pacienteID int64) ([]*Historia, error)
	CreateOrdenLab(ctx context.Context, historiaID int64, in *OrdenLabInput) (int64, error)
	CreateReceta(ctx context.Context, pacienteID int64, in *RecetaInput) (int64, error)
}
