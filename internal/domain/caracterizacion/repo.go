package caracterizacion

import "context"

// Repository persists characterization surveys.
type Repository interface {
	// Replace rewrites the family's characterization atomically: the family
	// row is updated, every member record owned by the family is removed and
	// one fresh record is inserted per provided member.
	Replace(ctx context.Context, in *ReplaceInput) error

	// GetByFamilia returns the family's characterization with all active
	// members and their survey records.
	GetByFamilia(ctx context.Context, familiaID int64) (*Resumen, error)

	// LegacyCreate inserts a row in the reduced survey table.
	LegacyCreate(ctx context.Context, familiaID int64, in *LegacyInput) (int64, error)

	// LegacyUpdate applies a partial update to a reduced survey row.
	LegacyUpdate(ctx context.Context, id int64, in *LegacyInput) error
}
