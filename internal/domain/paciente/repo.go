package paciente

import "context"

type Repository interface {
	Create(ctx context.Context, in *CreateInput) (int64, error)
	GetByID(ctx context.Context, id int64) (*Paciente, error)
	ListByFamilia(ctx context.Context, familiaID int64) ([]*Paciente, error)
	Update(ctx context.Context, id int64, in *UpdateInput) error
	// Deactivate marks the patient inactive without removing the row.
	Deactivate(ctx context.Context, id int64) error
}
