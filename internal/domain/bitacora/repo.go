package bitacora

import "context"

// Repository persists activity log entries.
type Repository interface {
	Create(ctx context.Context, in *CreateInput) (int64, error)
	Search(ctx context.Context, f *Filter) ([]*Bitacora, error)
}
