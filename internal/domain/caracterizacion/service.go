package caracterizacion

import (
	"context"

	"github.com/Alssex/Proyecto-salud/internal/platform/apperr"
)

type Service struct {
	surveys Repository
}

func NewService(surveys Repository) *Service {
	return &Service{surveys: surveys}
}

// Replace validates and applies a full characterization submission. An empty
// member list is valid: existing member records are still cleared.
func (s *Service) Replace(ctx context.Context, in *ReplaceInput) (int, error) {
	fields := map[string]string{}
	if in.FamiliaID == 0 {
		fields["familia_id"] = "es obligatorio"
	}
	if in.DatosFamilia == nil {
		fields["datos_familia"] = "es obligatorio"
	}
	if len(fields) > 0 {
		return 0, &apperr.ValidationError{Fields: fields}
	}

	if err := s.surveys.Replace(ctx, in); err != nil {
		return 0, apperr.Persistence("replace caracterización", err)
	}
	return len(in.Integrantes), nil
}

func (s *Service) GetByFamilia(ctx context.Context, familiaID int64) (*Resumen, error) {
	return s.surveys.GetByFamilia(ctx, familiaID)
}

func (s *Service) LegacyCreate(ctx context.Context, familiaID int64, in *LegacyInput) (int64, error) {
	id, err := s.surveys.LegacyCreate(ctx, familiaID, in)
	if err != nil {
		return 0, apperr.Persistence("insert caracterización", err)
	}
	return id, nil
}

func (s *Service) LegacyUpdate(ctx context.Context, id int64, in *LegacyInput) error {
	return s.surveys.LegacyUpdate(ctx, id, in)
}
