package familia

import (
	"context"

	"github.com/Alssex/Proyecto-salud/internal/platform/apperr"
)

type Service struct {
	familias Repository
}

func NewService(familias Repository) *Service {
	return &Service{familias: familias}
}

func (s *Service) Create(ctx context.Context, in *CreateInput) (*Familia, error) {
	fields := map[string]string{}
	if in.ApellidoPrincipal == "" {
		fields["apellido_principal"] = "es obligatorio"
	}
	if in.Direccion == "" {
		fields["direccion"] = "es obligatorio"
	}
	if in.Municipio == "" {
		fields["municipio"] = "es obligatorio"
	}
	if in.CreadoPorUID == 0 {
		fields["creado_por_uid"] = "es obligatorio"
	}
	if len(fields) > 0 {
		return nil, &apperr.ValidationError{Fields: fields}
	}

	id, err := s.familias.Create(ctx, in)
	if err != nil {
		return nil, apperr.Persistence("insert familia", err)
	}
	return s.familias.GetByID(ctx, id)
}

func (s *Service) Get(ctx context.Context, id int64) (*Familia, error) {
	return s.familias.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Familia, error) {
	items, err := s.familias.List(ctx)
	if err != nil {
		return nil, apperr.Persistence("list familias", err)
	}
	return items, nil
}

// Update applies a partial update and returns the reloaded row.
func (s *Service) Update(ctx context.Context, id int64, in *UpdateInput) (*Familia, error) {
	if err := s.familias.Update(ctx, id, in); err != nil {
		return nil, err
	}
	return s.familias.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.familias.Delete(ctx, id)
}
