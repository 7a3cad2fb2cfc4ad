package familia

import "context"

type Repository interface {
	Create(ctx context.Context, in *CreateInput) (int64, error)
	GetByID(ctx context.Context, id int64) (*Familia, error)
	List(ctx context.Context) ([]*Familia, error)
	Update(ctx context.Context, id int64, in *UpdateInput) error
	// Delete removes the family only when it has no active patients. The
	// guard and the delete run as one conditional statement inside a
	// transaction.
	Delete(ctx context.Context, id int64) error
}
