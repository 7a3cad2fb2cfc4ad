package plancuidado

import "context"

// Repository persists care plans.
type Repository interface {
	Create(ctx context.Context, in *CreateInput) (int64, error)
	ListByPaciente(ctx context.Context, pacienteID int64) ([]*Plan, error)
	LegacyCreate(ctx context.Context, familiaID int64, in *LegacyInput) (int64, error)
}
