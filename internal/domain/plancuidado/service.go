package plancuidado

import (
	"context"

	"github.com/Alssex/Proyecto-salud/internal/platform/apperr"
)

type Service struct {
	planes Repository
}

func NewService(planes Repository) *Service {
	return &Service{planes: planes}
}

func (s *Service) Create(ctx context.Context, in *CreateInput) (int64, error) {
	fields := map[string]string{}
	if in.FamiliaID == 0 {
		fields["familia_id"] = "es obligatorio"
	}
	if in.PacientePrincipalID == 0 {
		fields["paciente_principal_id"] = "es obligatorio"
	}
	if in.FechaEntrega == "" {
		fields["fecha_entrega"] = "es obligatorio"
	}
	if in.CreadoPorUID == 0 {
		fields["creado_por_uid"] = "es obligatorio"
	}
	if len(fields) > 0 {
		return 0, &apperr.ValidationError{Fields: fields}
	}
	if in.Estado == "" {
		in.Estado = "Activo"
	}

	id, err := s.planes.Create(ctx, in)
	if err != nil {
		return 0, apperr.Persistence("insert plan de cuidado", err)
	}
	return id, nil
}

func (s *Service) ListByPaciente(ctx context.Context, pacienteID int64) ([]*Plan, error) {
	items, err := s.planes.ListByPaciente(ctx, pacienteID)
	if err != nil {
		return nil, apperr.Persistence("list planes de cuidado", err)
	}
	return items, nil
}

func (s *Service) LegacyCreate(ctx context.Context, familiaID int64, in *LegacyInput) (int64, error) {
	fields := map[string]string{}
	if in.Objetivo == "" {
		fields["objetivo"] = "es obligatorio"
	}
	if in.Actividades == "" {
		fields["actividades"] = "es obligatorio"
	}
	if len(fields) > 0 {
		return 0, &apperr.ValidationError{Fields: fields}
	}

	id, err := s.planes.LegacyCreate(ctx, familiaID, in)
	if err != nil {
		return 0, apperr.Persistence("insert plan de cuidado", err)
	}
	return id, nil
}
