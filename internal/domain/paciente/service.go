package paciente

import (
	"context"

	"github.com/Alssex/Proyecto-salud/internal/platform/apperr"
)

type Service struct {
	pacientes Repository
}

func NewService(pacientes Repository) *Service {
	return &Service{pacientes: pacientes}
}

func (s *Service) Create(ctx context.Context, in *CreateInput) (*Paciente, error) {
	fields := map[string]string{}
	if in.FamiliaID == 0 {
		fields["familia_id"] = "es obligatorio"
	}
	if in.TipoDocumento == "" {
		fields["tipo_documento"] = "es obligatorio"
	}
	if in.NumeroDocumento == "" {
		fields["numero_documento"] = "es obligatorio"
	}
	if in.PrimerNombre == "" {
		fields["primer_nombre"] = "es obligatorio"
	}
	if in.PrimerApellido == "" {
		fields["primer_apellido"] = "es obligatorio"
	}
	if len(fields) > 0 {
		return nil, &apperr.ValidationError{Fields: fields}
	}

	id, err := s.pacientes.Create(ctx, in)
	if err != nil {
		return nil, apperr.Persistence("insert paciente", err)
	}
	return s.pacientes.GetByID(ctx, id)
}

func (s *Service) Get(ctx context.Context, id int64) (*Paciente, error) {
	return s.pacientes.GetByID(ctx, id)
}

// ListByFamilia returns the family's active patients.
func (s *Service) ListByFamilia(ctx context.Context, familiaID int64) ([]*Paciente, error) {
	items, err := s.pacientes.ListByFamilia(ctx, familiaID)
	if err != nil {
		return nil, apperr.Persistence("list pacientes", err)
	}
	return items, nil
}

// Update applies a partial update and returns the reloaded row.
func (s *Service) Update(ctx context.Context, id int64, in *UpdateInput) (*Paciente, error) {
	if err := s.pacientes.Update(ctx, id, in); err != nil {
		return nil, err
	}
	return s.pacientes.GetByID(ctx, id)
}

// Delete deactivates the patient. The row is kept for history.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.pacientes.Deactivate(ctx, id)
}
