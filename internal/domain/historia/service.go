package historia

import (
	"context"

	"github.com/Alssex/Proyecto-salud/internal/platform/apperr"
)

type Service struct {
	historias Repository
}

func NewService(historias Repository) *Service {
	return &Service{historias: historias}
}

func (s *Service) Create(ctx context.Context, demandaID int64, in *CreateInput) (int64, error) {
	fields := map[string]string{}
	if in.PacienteID == 0 {
		fields["paciente_id"] = "es obligatorio"
	}
	if in.TipoConsulta == "" {
		fields["tipo_consulta"] = "es obligatorio"
	}
	if in.MotivoConsulta == "" {
		fields["motivo_consulta"] = "es obligatorio"
	}
	if len(fields) > 0 {
		return 0, &apperr.ValidationError{Fields: fields}
	}

	id, err := s.historias.Create(ctx, demandaID, in)
	if err != nil {
		return 0, apperr.Persistence("insert historia clínica", err)
	}
	return id, nil
}

func (s *Service) ListByPaciente(ctx context.Context, pacienteID int64) ([]*Historia, error) {
	items, err := s.historias.ListByPaciente(ctx, pacienteID)
	if err != nil {
		return nil, apperr.Persistence("list historias clínicas", err)
	}
	return items, nil
}

func (s *Service) CreateOrdenLab(ctx context.Context, historiaID int64, in *OrdenLabInput) (int64, error) {
	fields := map[string]string{}
	if in.TipoExamen == "" {
		fields["tipo_examen"] = "es obligatorio"
	}
	if in.Descripcion == "" {
		fields["descripcion"] = "es obligatorio"
	}
	if len(fields) > 0 {
		return 0, &apperr.ValidationError{Fields: fields}
	}

	id, err := s.historias.CreateOrdenLab(ctx, historiaID, in)
	if err != nil {
		return 0, apperr.Persistence("insert orden de laboratorio", err)
	}
	return id, nil
}

func (s *Service) CreateReceta(ctx context.Context, pacienteID int64, in *RecetaInput) (int64, error) {
	fields := map[string]string{}
	if len(in.Medicamentos) == 0 {
		fields["medicamentos"] = "es obligatorio"
	}
	if in.ProfesionalID == 0 {
		fields["profesional_id"] = "es obligatorio"
	}
	if len(fields) > 0 {
		return 0, &apperr.ValidationError{Fields: fields}
	}

	id, err := s.historias.CreateReceta(ctx, pacienteID, in)
	if err != nil {
		return 0, apperr.Persistence("insert receta", err)
	}
	return id, nil
}
