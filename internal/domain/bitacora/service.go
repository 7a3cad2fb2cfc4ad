package bitacora

import (
	"context"

	"github.com/Alssex/Proyecto-salud/internal/platform/apperr"
)

type Service struct {
	bitacoras Repository
}

func NewService(bitacoras Repository) *Service {
	return &Service{bitacoras: bitacoras}
}

func (s *Service) Create(ctx context.Context, in *CreateInput) (int64, error) {
	fields := map[string]string{}
	if in.UsuarioID == 0 {
		fields["usuario_id"] = "es obligatorio"
	}
	if in.TipoActividad == "" {
		fields["tipo_actividad"] = "es obligatorio"
	}
	if in.Descripcion == "" {
		fields["descripcion"] = "es obligatorio"
	}
	if len(fields) > 0 {
		return 0, &apperr.ValidationError{Fields: fields}
	}

	id, err := s.bitacoras.Create(ctx, in)
	if err != nil {
		return 0, apperr.Persistence("insert bitácora", err)
	}
	return id, nil
}

func (s *Service) Search(ctx context.Context, f *Filter) ([]*Bitacora, error) {
	items, err := s.bitacoras.Search(ctx, f)
	if err != nil {
		return nil, apperr.Persistence("search bitácoras", err)
	}
	return items, nil
}
